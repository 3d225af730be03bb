package sim

import (
	"context"
	"fmt"

	"github.com/san-kum/tslab/internal/stochastic"
)

type Simulator struct {
	gen     stochastic.Generator
	metrics []Metric
}

func New(gen stochastic.Generator) *Simulator {
	return &Simulator{
		gen:     gen,
		metrics: make([]Metric, 0),
	}
}

func (s *Simulator) AddMetric(m Metric) { s.metrics = append(s.metrics, m) }

func (s *Simulator) Run(ctx context.Context, src stochastic.UniformSource, cfg Config) (*Result, error) {
	if err := s.validateConfig(cfg); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	series := s.gen.Generate(src, cfg.N)

	result := &Result{
		Series:  series,
		Metrics: make(map[string]float64, len(s.metrics)),
		Seed:    cfg.Seed,
	}

	for _, p := range series {
		for _, m := range s.metrics {
			m.Observe(p)
		}
	}
	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}

func (s *Simulator) validateConfig(cfg Config) error {
	if cfg.N <= 0 {
		return fmt.Errorf("%w, got %d", ErrInvalidLength, cfg.N)
	}
	return nil
}
