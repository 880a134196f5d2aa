package experiment

import (
	"fmt"

	"github.com/san-kum/escapetime/internal/config"
	"github.com/san-kum/escapetime/internal/orbit"
)

type Experiment struct {
	cfg     *config.Config
	metrics []orbit.Metric
	ready   bool
}

func New(cfg *config.Config) *Experiment {
	return &Experiment{cfg: cfg}
}

func (e *Experiment) Setup(metrics []orbit.Metric) error {
	if err := e.cfg.Validate(); err != nil {
		return err
	}
	e.metrics = metrics
	e.ready = true
	return nil
}

// Run iterates the configured orbit once. Observers are only attached for
// this run; metrics are reset by the iterator at the start of every run.
func (e *Experiment) Run(observers ...orbit.Observer) (orbit.Outcome, error) {
	if !e.ready {
		return orbit.Outcome{}, fmt.Errorf("experiment not setup")
	}

	it := orbit.New(observers...)
	for _, m := range e.metrics {
		it.AddMetric(m)
	}
	return it.Run(e.cfg.Params()), nil
}

func (e *Experiment) Config() *config.Config {
	return e.cfg
}
