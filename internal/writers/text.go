package writers

import (
	"io"

	"bmicalc/internal/output"
	"bmicalc/internal/pretty"
)

func init() { Register(output.FormatText, startText) }

func startText(out io.Writer, opt Options, bufSize int) (chan<- output.Outcome, <-chan error) {
	in := make(chan output.Outcome, bufSize)
	errCh := make(chan error, 1)
	render := func(o output.Outcome) string {
		return pretty.RenderResultWithOptions(o.ID, o.Result, o.Err, opt.Card)
	}

	go func() {
		if opt.Sort {
			errCh <- output.WriteTextWithRenderer(out, collect(in, true), opt.Header, opt.Pretty, render)
			return
		}
		errCh <- output.StreamTextWithRenderer(out, in, opt.Header, opt.Pretty, render)
	}()
	return in, errCh
}
