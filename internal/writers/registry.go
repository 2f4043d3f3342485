// internal/writers/registry.go
package writers

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"syscall"

	"bmicalc/internal/output"
	"bmicalc/internal/pretty"
)

// Options are the knobs shared by every format. Formats ignore what they
// do not use.
type Options struct {
	Sort   bool
	Header bool
	Pretty bool
	Card   pretty.Options
}

// StartFunc launches a writer goroutine. The goroutine owns out until the
// error channel yields.
type StartFunc func(out io.Writer, opt Options, bufSize int) (chan<- output.Outcome, <-chan error)

// Format → writer. Registered in init() blocks of the format files.
var registry = map[string]StartFunc{}

// Register installs fn for format (last wins).
func Register(format string, fn StartFunc) { registry[format] = fn }

// Registered returns the registered formats, sorted.
func Registered() []string {
	out := make([]string, 0, len(registry))
	for f := range registry {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// StartOutcomeWriter dispatches to the writer registered for format.
func StartOutcomeWriter(out io.Writer, format string, opt Options, bufSize int) (chan<- output.Outcome, <-chan error, error) {
	fn, ok := registry[format]
	if !ok {
		return nil, nil, fmt.Errorf("unsupported output %q (no writer registered)", format)
	}
	if bufSize <= 0 {
		bufSize = 64
	}
	in, errCh := fn(out, opt, bufSize)
	return in, errCh, nil
}

// IsBrokenPipe reports whether an error is a broken pipe / closed pipe.
// Downstream consumers like `head` close early; that is not a failure.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}

// collect drains in, sorting when asked.
func collect(in <-chan output.Outcome, sortIt bool) []output.Outcome {
	var buf []output.Outcome
	for o := range in {
		buf = append(buf, o)
	}
	if sortIt {
		output.SortOutcomes(buf)
	}
	return buf
}
