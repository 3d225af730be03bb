package metrics

import (
	"math"
	"testing"

	"github.com/san-kum/tslab/internal/analysis"
	"github.com/san-kum/tslab/internal/sim"
	"github.com/san-kum/tslab/internal/stochastic"
)

func observe(m sim.Metric, values ...float64) {
	for i, v := range values {
		m.Observe(stochastic.SamplePoint{Time: i, Value: v})
	}
}

func TestMetrics(t *testing.T) {
	values := []float64{2, 4, 4, 4, 5, 5, 7, 9}

	tests := []struct {
		metric sim.Metric
		name   string
		want   float64
	}{
		{NewMean(), "mean", 5},
		{NewStdDev(), "stddev", math.Sqrt(32.0 / 7.0)},
		{NewMin(), "min", 2},
		{NewMax(), "max", 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.metric.Name() != tt.name {
				t.Errorf("Name() = %q, want %q", tt.metric.Name(), tt.name)
			}
			observe(tt.metric, values...)
			if got := tt.metric.Value(); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Value() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMetricsReset(t *testing.T) {
	for _, m := range []sim.Metric{NewMean(), NewStdDev(), NewAutocorrelation(1)} {
		observe(m, 1, 3, 2, 5)
		m.Reset()
		if got := m.Value(); got != 0 {
			t.Errorf("%s: expected 0 after reset, got %v", m.Name(), got)
		}
	}

	ext := NewMax()
	observe(ext, 1, 3)
	ext.Reset()
	if !math.IsNaN(ext.Value()) {
		t.Error("expected NaN from an empty max")
	}
	observe(ext, -4, -2)
	if ext.Value() != -2 {
		t.Errorf("expected -2 after reset, got %v", ext.Value())
	}
}

func TestAutocorrelation(t *testing.T) {
	alternating := NewAutocorrelation(1)
	observe(alternating, 1, -1, 1, -1, 1, -1, 1, -1)
	if got := alternating.Value(); got > -0.8 {
		t.Errorf("expected strong negative lag-1 autocorrelation, got %v", got)
	}

	if got := NewAutocorrelation(1).Name(); got != "acf1" {
		t.Errorf("Name() = %q, want acf1", got)
	}

	flat := NewAutocorrelation(1)
	observe(flat, 3, 3, 3)
	if got := flat.Value(); got != 0 {
		t.Errorf("expected 0 for a constant series, got %v", got)
	}

	ar := stochastic.GenerateAR(stochastic.NewSource(1), 2000, stochastic.ARParams{Phi: []float64{0.8}, Sigma: 1})
	m := NewAutocorrelation(1)
	for _, p := range ar {
		m.Observe(p)
	}
	if got := m.Value(); math.Abs(got-0.8) > 0.1 {
		t.Errorf("AR(1) with phi 0.8: acf1 = %v, want ~0.8", got)
	}
}

func TestAutocorrelation_MatchesAnalysis(t *testing.T) {
	values := stochastic.GenerateMA(stochastic.NewSource(4), 500, stochastic.MAParams{Theta: []float64{0.5}, Sigma: 1}).Values()
	want := analysis.ACF(values, 3)

	for lag := 0; lag <= 3; lag++ {
		m := NewAutocorrelation(lag)
		observe(m, values...)
		if got := m.Value(); got != want[lag] {
			t.Errorf("lag %d: metric = %v, analysis.ACF = %v", lag, got, want[lag])
		}
	}

	short := NewAutocorrelation(5)
	observe(short, 1, 2, 3)
	if got := short.Value(); got != 0 {
		t.Errorf("lag beyond series length: expected 0, got %v", got)
	}
}
