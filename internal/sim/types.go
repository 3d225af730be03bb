package sim

import (
	"github.com/san-kum/tslab/internal/stochastic"
)

type Metric interface {
	Name() string
	Observe(p stochastic.SamplePoint)
	Value() float64
	Reset()
}

type Config struct {
	N    int
	Seed int64
}

type Result struct {
	Series  stochastic.Series
	Metrics map[string]float64
	Label   string
	Seed    int64
}

// Params is the union of every model's parameters, in the shape config
// files, CLI flags and HTTP queries carry them. Each model reads only the
// fields it needs.
type Params struct {
	Phi       []float64 `yaml:"phi,omitempty" json:"phi,omitempty"`
	Theta     []float64 `yaml:"theta,omitempty" json:"theta,omitempty"`
	Sigma     float64   `yaml:"sigma" json:"sigma"`
	P         int       `yaml:"p" json:"p"`
	D         int       `yaml:"d" json:"d"`
	Q         int       `yaml:"q" json:"q"`
	Slope     float64   `yaml:"slope" json:"slope"`
	Noise     float64   `yaml:"noise" json:"noise"`
	Amplitude float64   `yaml:"amplitude" json:"amplitude"`
	Period    float64   `yaml:"period" json:"period"`
}

func DefaultParams() Params {
	return Params{
		Phi:       []float64{0.7},
		Theta:     []float64{0.5},
		Sigma:     1,
		P:         1,
		D:         1,
		Q:         1,
		Slope:     0.1,
		Noise:     1,
		Amplitude: 2,
		Period:    12,
	}
}

func (p Params) Clone() Params {
	c := p
	c.Phi = append([]float64(nil), p.Phi...)
	c.Theta = append([]float64(nil), p.Theta...)
	return c
}

func (p Params) AR() stochastic.ARParams {
	return stochastic.ARParams{Phi: p.Phi, Sigma: p.Sigma}
}

func (p Params) MA() stochastic.MAParams {
	return stochastic.MAParams{Theta: p.Theta, Sigma: p.Sigma}
}

func (p Params) ARIMA() stochastic.ARIMAParams {
	return stochastic.ARIMAParams{P: p.P, D: p.D, Q: p.Q, Phi: p.Phi, Theta: p.Theta, Sigma: p.Sigma}
}

func (p Params) Trend() stochastic.TrendParams {
	return stochastic.TrendParams{Slope: p.Slope, Noise: p.Noise}
}

func (p Params) Seasonal() stochastic.SeasonalParams {
	return stochastic.SeasonalParams{Amplitude: p.Amplitude, Period: p.Period, Noise: p.Noise}
}
