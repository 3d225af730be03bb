package server

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"time"

	"github.com/san-kum/tslab/internal/config"
	"github.com/san-kum/tslab/internal/experiment"
	"github.com/san-kum/tslab/internal/sim"
)

// MaxN caps the series length a single request may ask for.
const MaxN = 10000

// SeriesRequest is the websocket request message. Params are applied by
// name on top of the preset or the model defaults.
type SeriesRequest struct {
	Model  string             `json:"model"`
	N      int                `json:"n,omitempty"`
	Seed   *int64             `json:"seed,omitempty"`
	Preset string             `json:"preset,omitempty"`
	Params map[string]float64 `json:"params,omitempty"`
}

func (r SeriesRequest) config() (experiment.Config, error) {
	cfg, err := baseConfig(r.Model, r.Preset)
	if err != nil {
		return experiment.Config{}, err
	}
	if r.N != 0 {
		cfg.N = r.N
	}
	cfg.Seed = seedOrNow(r.Seed)
	for name, v := range r.Params {
		if err := setParam(&cfg.Params, name, v); err != nil {
			return experiment.Config{}, err
		}
	}
	return cfg, checkN(cfg.N)
}

// parseQuery builds a run config from query parameters named like the CLI
// flags: n, seed, preset, phi, theta, and any single-valued parameter
// name such as sigma or period.
func parseQuery(model string, q url.Values) (experiment.Config, error) {
	cfg, err := baseConfig(model, q.Get("preset"))
	if err != nil {
		return experiment.Config{}, err
	}

	if v := q.Get("n"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return experiment.Config{}, &sim.ParamError{Name: "n", Err: sim.ErrInvalidParam}
		}
		cfg.N = n
	}

	var seed *int64
	if v := q.Get("seed"); v != "" {
		s, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return experiment.Config{}, &sim.ParamError{Name: "seed", Err: sim.ErrInvalidParam}
		}
		seed = &s
	}
	cfg.Seed = seedOrNow(seed)

	if v, ok := q["phi"]; ok {
		if cfg.Params.Phi, err = sim.ParseCoefficients(v[0]); err != nil {
			return experiment.Config{}, &sim.ParamError{Name: "phi", Err: err}
		}
	}
	if v, ok := q["theta"]; ok {
		if cfg.Params.Theta, err = sim.ParseCoefficients(v[0]); err != nil {
			return experiment.Config{}, &sim.ParamError{Name: "theta", Err: err}
		}
	}

	for _, name := range sim.ParamNames {
		v := q.Get(name)
		if v == "" {
			continue
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return experiment.Config{}, &sim.ParamError{Name: name, Err: sim.ErrInvalidParam}
		}
		if err := setParam(&cfg.Params, name, f); err != nil {
			return experiment.Config{}, err
		}
	}

	return cfg, checkN(cfg.N)
}

// setParam applies a named parameter. The ARIMA orders size the generator
// buffers and the differencing loop, so they must be whole numbers within
// the explorer's ranges.
func setParam(p *sim.Params, name string, v float64) error {
	switch name {
	case "p", "d", "q":
		r := config.Ranges[name]
		if v != math.Trunc(v) || v < r.Min || v > r.Max {
			return &sim.ParamError{Name: name, Err: fmt.Errorf("%w: %v is not an integer in [%v, %v]", sim.ErrInvalidParam, v, r.Min, r.Max)}
		}
	}
	return p.Set(name, v)
}

func baseConfig(model, preset string) (experiment.Config, error) {
	if preset == "" {
		return config.DefaultConfigFor(model).ExperimentConfig(), nil
	}
	p := config.GetPreset(model, preset)
	if p == nil {
		return experiment.Config{}, &sim.ParamError{Name: "preset", Err: fmt.Errorf("%w: %q", sim.ErrInvalidParam, preset)}
	}
	return p.ExperimentConfig(), nil
}

func checkN(n int) error {
	if n <= 0 {
		return fmt.Errorf("%w, got %d", sim.ErrInvalidLength, n)
	}
	if n > MaxN {
		return &sim.ParamError{Name: "n", Err: fmt.Errorf("%w: %d exceeds %d", sim.ErrInvalidParam, n, MaxN)}
	}
	return nil
}

func seedOrNow(seed *int64) int64 {
	if seed != nil {
		return *seed
	}
	return time.Now().UnixNano()
}
