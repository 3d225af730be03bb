package experiment

import (
	"fmt"
	"sort"

	"github.com/san-kum/tslab/internal/analysis"
	"github.com/san-kum/tslab/internal/metrics"
	"github.com/san-kum/tslab/internal/sim"
	"github.com/san-kum/tslab/internal/stochastic"
)

type modelEntry struct {
	description string
	build       func(sim.Params) stochastic.Generator
}

type Registry struct {
	models map[string]modelEntry
}

func NewRegistry() *Registry {
	r := &Registry{models: make(map[string]modelEntry)}

	r.models["noise"] = modelEntry{
		description: "Gaussian white noise",
		build: func(p sim.Params) stochastic.Generator {
			return stochastic.NoiseParams{Sigma: p.Sigma}
		},
	}
	r.models["ar"] = modelEntry{
		description: "autoregressive AR(p), p <= 3",
		build:       func(p sim.Params) stochastic.Generator { return p.AR() },
	}
	r.models["ma"] = modelEntry{
		description: "moving average MA(q), q <= 3",
		build:       func(p sim.Params) stochastic.Generator { return p.MA() },
	}
	r.models["arima"] = modelEntry{
		description: "ARIMA(p,d,q) composition",
		build:       func(p sim.Params) stochastic.Generator { return p.ARIMA() },
	}
	r.models["trend"] = modelEntry{
		description: "linear trend with uniform noise",
		build:       func(p sim.Params) stochastic.Generator { return p.Trend() },
	}
	r.models["seasonal"] = modelEntry{
		description: "sinusoidal cycle with uniform noise",
		build:       func(p sim.Params) stochastic.Generator { return p.Seasonal() },
	}
	r.models["stock"] = modelEntry{
		description: "stock price: cumulated AR(1) from 100",
		build: func(sim.Params) stochastic.Generator {
			return stochastic.GeneratorFunc(stochastic.GenerateStockPrice)
		},
	}
	r.models["sales"] = modelEntry{
		description: "monthly retail sales: trend plus yearly cycle",
		build: func(sim.Params) stochastic.Generator {
			return stochastic.GeneratorFunc(stochastic.GenerateRetailSales)
		},
	}
	r.models["gdp"] = modelEntry{
		description: "quarterly GDP: linear growth plus AR(1) cycle",
		build: func(sim.Params) stochastic.Generator {
			return stochastic.GeneratorFunc(stochastic.GenerateGDP)
		},
	}

	return r
}

func (r *Registry) GetModel(name string, params sim.Params) (stochastic.Generator, error) {
	entry, ok := r.models[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", sim.ErrUnknownModel, name)
	}
	return entry.build(params), nil
}

func (r *Registry) ListModels() []string {
	names := make([]string, 0, len(r.models))
	for name := range r.models {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) Describe(name string) string {
	return r.models[name].description
}

// Label is a short human readable title for a model with the given
// parameters, e.g. "AR(2)" or "ARIMA(1,1,0) [ar-differenced]".
func (r *Registry) Label(name string, p sim.Params) string {
	switch name {
	case "noise":
		return fmt.Sprintf("white noise (σ=%g)", p.Sigma)
	case "ar":
		return fmt.Sprintf("AR(%d)", analysis.Order(p.Phi))
	case "ma":
		return fmt.Sprintf("MA(%d)", analysis.Order(p.Theta))
	case "arima":
		return fmt.Sprintf("ARIMA(%d,%d,%d) [%s]", p.P, p.D, p.Q, p.ARIMA().Branch())
	case "trend":
		return fmt.Sprintf("trend (slope=%g)", p.Slope)
	case "seasonal":
		return fmt.Sprintf("seasonal (period=%g)", p.Period)
	}
	return name
}

// DefaultLength is the series length a model is usually shown with.
func (r *Registry) DefaultLength(name string) int {
	switch name {
	case "stock":
		return stochastic.StockDays
	case "sales":
		return stochastic.SalesMonths
	case "gdp":
		return stochastic.GDPQuarters
	case "noise":
		return 100
	}
	return 200
}

func (r *Registry) DefaultMetrics() []sim.Metric {
	return []sim.Metric{
		metrics.NewMean(),
		metrics.NewStdDev(),
		metrics.NewMin(),
		metrics.NewMax(),
		metrics.NewAutocorrelation(1),
	}
}
