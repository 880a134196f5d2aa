package experiment

import (
	"fmt"
	"sort"

	"github.com/san-kum/escapetime/internal/metrics"
	"github.com/san-kum/escapetime/internal/orbit"
)

type Registry struct {
	metrics map[string]func(radius float64) orbit.Metric
}

func NewRegistry() *Registry {
	r := &Registry{
		metrics: make(map[string]func(float64) orbit.Metric),
	}

	r.metrics["max_magnitude"] = func(float64) orbit.Metric { return metrics.NewMaxMagnitude() }
	r.metrics["final_magnitude"] = func(float64) orbit.Metric { return metrics.NewFinalMagnitude() }
	r.metrics["step_length"] = func(float64) orbit.Metric { return metrics.NewStepLength() }
	r.metrics["stability"] = func(radius float64) orbit.Metric { return metrics.NewStability(radius) }

	return r
}

func (r *Registry) GetMetric(name string, radius float64) (orbit.Metric, error) {
	fn, ok := r.metrics[name]
	if !ok {
		return nil, fmt.Errorf("unknown metric: %s", name)
	}
	return fn(radius), nil
}

func (r *Registry) ListMetrics() []string {
	names := make([]string, 0, len(r.metrics))
	for name := range r.metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultMetrics builds one of every registered metric.
func (r *Registry) DefaultMetrics(radius float64) []orbit.Metric {
	out := make([]orbit.Metric, 0, len(r.metrics))
	for _, name := range r.ListMetrics() {
		out = append(out, r.metrics[name](radius))
	}
	return out
}
