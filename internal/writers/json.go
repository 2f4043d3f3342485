package writers

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"sync"

	"bmicalc/internal/output"
)

func init() {
	Register(output.FormatJSON, startJSON)
	Register(output.FormatJSONL, startJSONL)
	Register(output.FormatHTML, startHTML)
}

// JSON is a single array, so it always buffers.
func startJSON(out io.Writer, opt Options, bufSize int) (chan<- output.Outcome, <-chan error) {
	in := make(chan output.Outcome, bufSize)
	errCh := make(chan error, 1)
	go func() {
		errCh <- output.WriteJSON(out, collect(in, opt.Sort))
	}()
	return in, errCh
}

// Reuse a 64 KiB buffered writer across JSONL writers to avoid per-writer mallocs.
var bwPool = sync.Pool{
	New: func() any {
		return bufio.NewWriterSize(io.Discard, 64<<10)
	},
}

// startJSONL streams one v1 object per line; with Sort it buffers first.
func startJSONL(out io.Writer, opt Options, bufSize int) (chan<- output.Outcome, <-chan error) {
	in := make(chan output.Outcome, bufSize)
	errCh := make(chan error, 1)

	go func() {
		bw := bwPool.Get().(*bufio.Writer)
		bw.Reset(out)
		defer func() {
			bw.Reset(io.Discard)
			bwPool.Put(bw)
		}()
		enc := json.NewEncoder(bw)

		var err error
		encode := func(o output.Outcome) {
			if err == nil {
				err = enc.Encode(output.ToAPIResult(o))
			}
		}
		if opt.Sort {
			for _, o := range collect(in, true) {
				encode(o)
			}
		} else {
			for o := range in {
				encode(o)
			}
		}
		if err != nil {
			errCh <- err
			return
		}
		if ferr := bw.Flush(); ferr != nil && !IsBrokenPipe(ferr) {
			errCh <- ferr
			return
		}
		errCh <- nil
	}()
	return in, errCh
}

func startHTML(out io.Writer, opt Options, bufSize int) (chan<- output.Outcome, <-chan error) {
	in := make(chan output.Outcome, bufSize)
	errCh := make(chan error, 1)
	go func() {
		ctx := context.Background()
		if opt.Sort {
			errCh <- output.WriteHTML(ctx, out, collect(in, true))
			return
		}
		errCh <- output.StreamHTML(ctx, out, in)
	}()
	return in, errCh
}
