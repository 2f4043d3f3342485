// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"bmicalc-core/bmi"
	"bmicalc/internal/cli"
	"bmicalc/internal/cmdutil"
	"bmicalc/internal/config"
	"bmicalc/internal/measure"
	"bmicalc/internal/metrics"
	"bmicalc/internal/output"
	"bmicalc/internal/pipeline"
	"bmicalc/internal/present"
	"bmicalc/internal/pretty"
	"bmicalc/internal/version"
	"bmicalc/internal/writers"
)

// Exit codes besides 0 and --invalid-exit-code.
const (
	ExitUsage     = 2
	ExitIO        = 3
	ExitCancelled = 130
)

// singleID labels the record built from --weight/--height.
const singleID = "input"

// RunContext parses argv, computes and writes results. It returns the
// process exit code; nothing here calls os.Exit.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	defaults, err := config.ParseEnv()
	if err != nil {
		cmdutil.Errorf(stderr, "%v", err)
		return ExitUsage
	}

	fs := cli.NewFlagSet("bmi")
	fs.SetOutput(io.Discard)
	if len(argv) == 0 {
		argv = []string{"-h"}
	}

	opts, err := cli.ParseArgs(fs, argv, defaults)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return flush(outw, stderr, 0)
		}
		if errors.Is(err, cli.ErrExamples) {
			cli.PrintExamples(outw, "bmi")
			return flush(outw, stderr, 0)
		}
		cmdutil.Errorf(stderr, "%v", err)
		fs.SetOutput(stderr)
		fs.Usage()
		return ExitUsage
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "bmi version %s\n", version.Version)
		return flush(outw, stderr, 0)
	}

	rec := metrics.New()
	var recs []measure.Record
	if opts.Single() {
		// Validate before any output so a rejected input renders nothing.
		if _, err := measure.Compute(opts.Weight, opts.Height, opts.Bands); err != nil {
			rec.Observe(bmi.Result{}, err)
			_, _ = fmt.Fprintln(stderr, present.Notice)
			cmdutil.Warnf(stderr, opts.Quiet, "%v", err)
			if code := writeMetrics(rec, opts, stderr); code != 0 {
				return code
			}
			return opts.InvalidExitCode
		}
		recs = []measure.Record{{ID: singleID, Weight: opts.Weight, Height: opts.Height}}
	} else {
		for _, fn := range opts.InputFiles {
			list, err := measure.LoadTSV(fn)
			if err != nil {
				cmdutil.Errorf(stderr, "%v", err)
				return ExitUsage
			}
			recs = append(recs, list...)
		}
		if len(recs) == 0 {
			cmdutil.Warnf(stderr, opts.Quiet, "no measurements in input")
		}
	}

	return execute(parent, opts, recs, rec, outw, stderr)
}

func execute(parent context.Context, opts cli.Options, recs []measure.Record, rec *metrics.Recorder, outw *bufio.Writer, stderr io.Writer) int {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	in, writeErr, err := writers.StartOutcomeWriter(outw, opts.Output, writers.Options{
		Sort:   opts.Sort,
		Header: opts.Header,
		Pretty: opts.Pretty,
		Card:   pretty.DefaultOptions,
	}, 64)
	if err != nil {
		cmdutil.Errorf(stderr, "%v", err)
		return ExitUsage
	}

	st, perr := pipeline.ForEachOutcome(ctx, recs, opts.Bands, func(o output.Outcome) error {
		rec.Observe(o.Result, o.Err)
		if !o.OK() {
			cmdutil.Warnf(stderr, opts.Quiet, "%s:%d %s: %v", o.SourceFile, o.Line, o.ID, o.Err)
		}
		select {
		case in <- o:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	})
	close(in)

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return 0
	} else if werr != nil {
		cmdutil.Errorf(stderr, "%v", werr)
		return ExitIO
	}
	if code := flush(outw, stderr, 0); code != 0 {
		return code
	}
	if perr != nil {
		if errors.Is(perr, context.Canceled) {
			return ExitCancelled
		}
		cmdutil.Errorf(stderr, "%v", perr)
		return ExitIO
	}
	if code := writeMetrics(rec, opts, stderr); code != 0 {
		return code
	}
	if st.Invalid > 0 {
		return opts.InvalidExitCode
	}
	return 0
}

func writeMetrics(rec *metrics.Recorder, opts cli.Options, stderr io.Writer) int {
	if opts.MetricsFile == "" {
		return 0
	}
	if err := rec.WriteTextfile(opts.MetricsFile); err != nil {
		cmdutil.Errorf(stderr, "%v", err)
		return ExitIO
	}
	return 0
}

// flush returns code, or ExitIO when the flush fails for a reason other
// than a closed pipe.
func flush(outw *bufio.Writer, stderr io.Writer, code int) int {
	if err := outw.Flush(); writers.IsBrokenPipe(err) {
		return 0
	} else if err != nil {
		cmdutil.Errorf(stderr, "%v", err)
		return ExitIO
	}
	return code
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
