// internal/cli/examples.go
package cli

import (
	"errors"
	"fmt"
	"io"
)

// ErrExamples is returned by ParseArgs when --examples was given. Callers
// print PrintExamples and exit 0.
var ErrExamples = errors.New("examples requested")

// PrintExamples prints a short quickstart followed by a pointer to --help.
func PrintExamples(out io.Writer, name string) {
	if out == nil {
		return
	}
	_, _ = fmt.Fprintf(out, "%s quickstart\n\n", name)
	_, _ = fmt.Fprintf(out, "  # one measurement, result card\n  %s -w 70 -H 175 --pretty\n\n", name)
	_, _ = fmt.Fprintf(out, "  # a file of \"id weight height\" rows as JSON lines, sorted by id\n  %s -o jsonl --sort people.tsv\n\n", name)
	_, _ = fmt.Fprintf(out, "  # HTML result page and Prometheus textfile metrics\n  %s -o html --metrics-file bmi.prom people.tsv > bmi.html\n\n", name)
	_, _ = fmt.Fprintf(out, "  # reproduce first-release classification\n  %s -w 74.7 -H 173 --bands legacy\n", name)
	_, _ = fmt.Fprintln(out, "\nTip: run with --help for all flags.")
}
