package experiment

import (
	"context"

	"github.com/san-kum/tslab/internal/sim"
	"github.com/san-kum/tslab/internal/stochastic"
)

type Config struct {
	Model  string
	N      int
	Seed   int64
	Params sim.Params
}

type Experiment struct {
	cfg       Config
	simulator *sim.Simulator
	label     string
}

func New(cfg Config) *Experiment {
	return &Experiment{cfg: cfg}
}

// Setup resolves the model in reg and attaches metrics. It fails with
// sim.ErrUnknownModel for names the registry does not know.
func (e *Experiment) Setup(reg *Registry, metrics []sim.Metric) error {
	gen, err := reg.GetModel(e.cfg.Model, e.cfg.Params)
	if err != nil {
		return err
	}
	e.simulator = sim.New(gen)
	for _, m := range metrics {
		e.simulator.AddMetric(m)
	}
	e.label = reg.Label(e.cfg.Model, e.cfg.Params)
	return nil
}

// Run generates the series from a fresh source seeded with cfg.Seed, so
// equal configs always give equal results.
func (e *Experiment) Run(ctx context.Context) (*sim.Result, error) {
	if e.simulator == nil {
		return nil, sim.ErrNotSetup
	}

	res, err := e.simulator.Run(ctx, stochastic.NewSource(e.cfg.Seed), sim.Config{
		N:    e.cfg.N,
		Seed: e.cfg.Seed,
	})
	if err != nil {
		return nil, err
	}
	res.Label = e.label
	return res, nil
}

// Execute sets up and runs an experiment with the registry's default
// metrics.
func Execute(ctx context.Context, reg *Registry, cfg Config) (*sim.Result, error) {
	exp := New(cfg)
	if err := exp.Setup(reg, reg.DefaultMetrics()); err != nil {
		return nil, err
	}
	return exp.Run(ctx)
}
