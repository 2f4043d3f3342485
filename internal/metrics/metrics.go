// Package metrics counts what one run computed and exports the counts in
// the Prometheus text format, for the node_exporter textfile collector.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"bmicalc-core/bmi"
)

// Recorder holds a private registry; nothing is registered globally.
type Recorder struct {
	reg     *prometheus.Registry
	results *prometheus.CounterVec
	invalid prometheus.Counter
}

func New() *Recorder {
	r := &Recorder{
		reg: prometheus.NewRegistry(),
		results: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bmi_results_total",
			Help: "Computed BMI results by category.",
		}, []string{"category"}),
		invalid: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bmi_invalid_inputs_total",
			Help: "Measurements rejected as invalid input.",
		}),
	}
	r.reg.MustRegister(r.results, r.invalid)
	// export zeros for every category so series exist from the first run
	for _, c := range bmi.Categories() {
		r.results.WithLabelValues(c.String())
	}
	return r
}

// Observe counts one outcome.
func (r *Recorder) Observe(res bmi.Result, err error) {
	if err != nil {
		r.invalid.Inc()
		return
	}
	r.results.WithLabelValues(res.Category.String()).Inc()
}

// Results returns the counter for c (for tests and summaries).
func (r *Recorder) Results(c bmi.Category) prometheus.Counter {
	return r.results.WithLabelValues(c.String())
}

// Invalid returns the rejected-input counter.
func (r *Recorder) Invalid() prometheus.Counter { return r.invalid }

// Gatherer exposes the registry.
func (r *Recorder) Gatherer() prometheus.Gatherer { return r.reg }

// WriteTextfile atomically writes the registry to path.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.reg); err != nil {
		return fmt.Errorf("write metrics %s: %w", path, err)
	}
	return nil
}
