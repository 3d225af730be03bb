package sim

import (
	"fmt"
	"strconv"
	"strings"
)

// ParamNames lists every name accepted by Params.Get and Params.Set.
var ParamNames = []string{
	"phi1", "phi2", "phi3",
	"theta1", "theta2", "theta3",
	"sigma", "p", "d", "q",
	"slope", "noise", "amplitude", "period",
}

// orderFill is the coefficient given to lags added by raising p or q.
const orderFill = 0.1

func (p Params) Get(name string) (float64, error) {
	if idx, ok := lagIndex(name, "phi"); ok {
		return coeff(p.Phi, idx), nil
	}
	if idx, ok := lagIndex(name, "theta"); ok {
		return coeff(p.Theta, idx), nil
	}
	switch name {
	case "sigma":
		return p.Sigma, nil
	case "p":
		return float64(p.P), nil
	case "d":
		return float64(p.D), nil
	case "q":
		return float64(p.Q), nil
	case "slope":
		return p.Slope, nil
	case "noise":
		return p.Noise, nil
	case "amplitude":
		return p.Amplitude, nil
	case "period":
		return p.Period, nil
	}
	return 0, &ParamError{Name: name, Err: ErrUnknownParam}
}

// Set assigns a parameter by name. Setting phiK or thetaK grows the slice
// with zeros as needed. Setting p or q resizes phi or theta to the new
// order, keeping existing coefficients and filling new lags with 0.1.
func (p *Params) Set(name string, v float64) error {
	if idx, ok := lagIndex(name, "phi"); ok {
		p.Phi = setCoeff(p.Phi, idx, v)
		return nil
	}
	if idx, ok := lagIndex(name, "theta"); ok {
		p.Theta = setCoeff(p.Theta, idx, v)
		return nil
	}
	switch name {
	case "sigma":
		p.Sigma = v
	case "p":
		p.P = int(v)
		p.Phi = resize(p.Phi, p.P)
	case "d":
		p.D = int(v)
	case "q":
		p.Q = int(v)
		p.Theta = resize(p.Theta, p.Q)
	case "slope":
		p.Slope = v
	case "noise":
		p.Noise = v
	case "amplitude":
		p.Amplitude = v
	case "period":
		p.Period = v
	default:
		return &ParamError{Name: name, Err: ErrUnknownParam}
	}
	return nil
}

// ParseCoefficients parses a comma separated coefficient list such as
// "0.5,-0.2". An empty string yields nil.
func ParseCoefficients(s string) ([]float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("coefficient %q: %w", part, ErrInvalidParam)
		}
		out = append(out, v)
	}
	return out, nil
}

func lagIndex(name, prefix string) (int, bool) {
	if !strings.HasPrefix(name, prefix) {
		return 0, false
	}
	k, err := strconv.Atoi(name[len(prefix):])
	if err != nil || k < 1 || k > 3 {
		return 0, false
	}
	return k - 1, true
}

func coeff(c []float64, idx int) float64 {
	if idx < len(c) {
		return c[idx]
	}
	return 0
}

func setCoeff(c []float64, idx int, v float64) []float64 {
	for len(c) <= idx {
		c = append(c, 0)
	}
	c[idx] = v
	return c
}

func resize(c []float64, order int) []float64 {
	if order < 0 {
		order = 0
	}
	out := make([]float64, order)
	for i := range out {
		if i < len(c) {
			out[i] = c[i]
		} else {
			out[i] = orderFill
		}
	}
	return out
}
