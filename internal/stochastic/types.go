package stochastic

import (
	"math"
)

// SamplePoint is one observation of a generated series.
type SamplePoint struct {
	Time  int     `json:"time"`
	Value float64 `json:"value"`
}

type Series []SamplePoint

func (s Series) Len() int { return len(s) }

func (s Series) Values() []float64 {
	v := make([]float64, len(s))
	for i, p := range s {
		v[i] = p.Value
	}
	return v
}

// IsValid reports whether every value is finite and the time index is
// contiguous from zero.
func (s Series) IsValid() bool {
	for i, p := range s {
		if p.Time != i || math.IsNaN(p.Value) || math.IsInf(p.Value, 0) {
			return false
		}
	}
	return true
}

// Generator produces a series of length n from a uniform source.
type Generator interface {
	Generate(src UniformSource, n int) Series
}

type GeneratorFunc func(src UniformSource, n int) Series

func (f GeneratorFunc) Generate(src UniformSource, n int) Series { return f(src, n) }

// ARParams configures an autoregressive model. Phi[0] is the lag-1
// coefficient; only the first three coefficients are used.
type ARParams struct {
	Phi   []float64
	Sigma float64
}

func (p ARParams) Generate(src UniformSource, n int) Series { return GenerateAR(src, n, p) }

// MAParams configures a moving-average model. Theta[0] weighs the
// innovation one step back; only the first three coefficients are used.
type MAParams struct {
	Theta []float64
	Sigma float64
}

func (p MAParams) Generate(src UniformSource, n int) Series { return GenerateMA(src, n, p) }

// ARIMAParams configures an ARIMA(p,d,q) request. Phi and Theta are
// expected to have lengths P and Q; shorter slices are zero-filled.
type ARIMAParams struct {
	P, D, Q int
	Phi     []float64
	Theta   []float64
	Sigma   float64
}

func (p ARIMAParams) Generate(src UniformSource, n int) Series { return GenerateARIMA(src, n, p) }

type NoiseParams struct {
	Sigma float64
}

func (p NoiseParams) Generate(src UniformSource, n int) Series {
	return GenerateWhiteNoise(src, n, p.Sigma)
}

type TrendParams struct {
	Slope float64
	Noise float64
}

func (p TrendParams) Generate(src UniformSource, n int) Series {
	return GenerateTrend(src, n, p.Slope, p.Noise)
}

type SeasonalParams struct {
	Amplitude float64
	Period    float64
	Noise     float64
}

func (p SeasonalParams) Generate(src UniformSource, n int) Series {
	return GenerateSeasonal(src, n, p.Amplitude, p.Period, p.Noise)
}
