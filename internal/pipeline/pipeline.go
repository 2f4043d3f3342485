// internal/pipeline/pipeline.go
package pipeline

import (
	"context"

	"bmicalc-core/bmi"
	"bmicalc/internal/measure"
	"bmicalc/internal/output"
)

// Computer is the minimal capability the pipeline needs. bmi.Bands
// satisfies it; tests can pass fakes.
type Computer interface {
	Compute(m bmi.Measurement) (bmi.Result, error)
}

// Stats counts what a run produced.
type Stats struct {
	Total   int
	Invalid int
}

// ForEachOutcome parses and computes each record and hands the outcome to
// fn. A rejected measurement is an outcome, not an error; the first error
// returned by fn, or ctx cancellation, stops the run.
func ForEachOutcome(ctx context.Context, recs []measure.Record, c Computer, fn func(output.Outcome) error) (Stats, error) {
	var st Stats
	for _, rec := range recs {
		if err := ctx.Err(); err != nil {
			return st, err
		}
		o := output.Outcome{Record: rec}
		m, err := measure.Parse(rec.Weight, rec.Height)
		if err == nil {
			o.Result, err = c.Compute(m)
		}
		o.Err = err
		st.Total++
		if err != nil {
			st.Invalid++
		}
		if err := fn(o); err != nil {
			return st, err
		}
	}
	return st, nil
}
