package config

import (
	"sort"

	"github.com/san-kum/tslab/internal/sim"
)

func preset(model string, n int, p sim.Params) *Config {
	return &Config{Model: model, N: n, Seed: DefaultSeed, Params: p}
}

func withParams(fn func(*sim.Params)) sim.Params {
	p := sim.DefaultParams()
	fn(&p)
	return p
}

var Presets = map[string]map[string]*Config{
	"noise": {
		"standard": preset("noise", 100, withParams(func(p *sim.Params) { p.Sigma = 1 })),
		"wide":     preset("noise", 100, withParams(func(p *sim.Params) { p.Sigma = 3 })),
	},
	"ar": {
		"persistent": preset("ar", 200, withParams(func(p *sim.Params) { p.Phi = []float64{0.7} })),
		"oscillating": preset("ar", 200, withParams(func(p *sim.Params) {
			p.Phi = []float64{-0.8}
		})),
		"ar2": preset("ar", 200, withParams(func(p *sim.Params) { p.Phi = []float64{0.5, 0.3} })),
		"near-unit-root": preset("ar", 200, withParams(func(p *sim.Params) {
			p.Phi = []float64{0.99}
		})),
	},
	"ma": {
		"ma1": preset("ma", 200, withParams(func(p *sim.Params) { p.Theta = []float64{0.5} })),
		"ma2": preset("ma", 200, withParams(func(p *sim.Params) { p.Theta = []float64{0.6, -0.3} })),
	},
	"arima": {
		"default": preset("arima", 200, sim.DefaultParams()),
		"random-walk-diff": preset("arima", 200, withParams(func(p *sim.Params) {
			p.P, p.D, p.Q = 1, 1, 0
			p.Phi = []float64{0.5}
		})),
		"pure-ma": preset("arima", 200, withParams(func(p *sim.Params) {
			p.P, p.D, p.Q = 0, 0, 1
			p.Theta = []float64{0.3}
		})),
	},
	"trend": {
		"gentle": preset("trend", 200, withParams(func(p *sim.Params) { p.Slope, p.Noise = 0.1, 1 })),
		"decline": preset("trend", 200, withParams(func(p *sim.Params) {
			p.Slope, p.Noise = -0.3, 0.5
		})),
	},
	"seasonal": {
		"monthly": preset("seasonal", 200, withParams(func(p *sim.Params) {
			p.Amplitude, p.Period, p.Noise = 2, 12, 0.5
		})),
		"quarterly": preset("seasonal", 200, withParams(func(p *sim.Params) {
			p.Amplitude, p.Period, p.Noise = 3, 4, 0.2
		})),
	},
	"stock": {
		"year": preset("stock", 250, sim.DefaultParams()),
	},
	"sales": {
		"four-years": preset("sales", 48, sim.DefaultParams()),
	},
	"gdp": {
		"ten-years": preset("gdp", 40, sim.DefaultParams()),
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(model, preset string) *Config {
	modelPresets, ok := Presets[model]
	if !ok {
		return nil
	}
	cfg, ok := modelPresets[preset]
	if !ok {
		return nil
	}
	return cfg.Clone()
}

func ListPresets(model string) []string {
	modelPresets, ok := Presets[model]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(modelPresets))
	for name := range modelPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
