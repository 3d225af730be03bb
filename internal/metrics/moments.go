package metrics

import (
	"github.com/san-kum/tslab/internal/stochastic"
	"gonum.org/v1/gonum/stat"
)

type Mean struct {
	name    string
	sum     float64
	samples int
}

func NewMean() *Mean {
	return &Mean{name: "mean"}
}

func (m *Mean) Name() string { return m.name }

func (m *Mean) Observe(p stochastic.SamplePoint) {
	m.sum += p.Value
	m.samples++
}

func (m *Mean) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.sum / float64(m.samples)
}

func (m *Mean) Reset() {
	m.sum = 0
	m.samples = 0
}

// StdDev is the unbiased sample standard deviation of the observed values.
type StdDev struct {
	name   string
	values []float64
}

func NewStdDev() *StdDev {
	return &StdDev{name: "stddev"}
}

func (s *StdDev) Name() string { return s.name }

func (s *StdDev) Observe(p stochastic.SamplePoint) {
	s.values = append(s.values, p.Value)
}

func (s *StdDev) Value() float64 {
	if len(s.values) < 2 {
		return 0
	}
	return stat.StdDev(s.values, nil)
}

func (s *StdDev) Reset() {
	s.values = s.values[:0]
}
