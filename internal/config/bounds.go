package config

// Range bounds an adjustable parameter in the interactive explorer.
type Range struct {
	Min, Max, Step float64
}

// Clamp limits v to the range.
func (r Range) Clamp(v float64) float64 {
	if v < r.Min {
		return r.Min
	}
	if v > r.Max {
		return r.Max
	}
	return v
}

var Ranges = map[string]Range{
	"phi1":      {-0.99, 0.99, 0.01},
	"phi2":      {-0.99, 0.99, 0.01},
	"phi3":      {-0.99, 0.99, 0.01},
	"theta1":    {-0.99, 0.99, 0.01},
	"theta2":    {-0.99, 0.99, 0.01},
	"theta3":    {-0.99, 0.99, 0.01},
	"sigma":     {0.1, 3, 0.1},
	"p":         {0, 3, 1},
	"d":         {0, 2, 1},
	"q":         {0, 3, 1},
	"slope":     {-0.5, 0.5, 0.01},
	"noise":     {0, 3, 0.1},
	"amplitude": {0.5, 5, 0.1},
	"period":    {4, 24, 1},
}

// ParamNames lists the adjustable parameters of a model in display order.
// Case-study models have fixed parameters and return nil.
func ParamNames(model string) []string {
	switch model {
	case "noise":
		return []string{"sigma"}
	case "ar":
		return []string{"phi1", "phi2", "phi3", "sigma"}
	case "ma":
		return []string{"theta1", "theta2", "theta3", "sigma"}
	case "arima":
		return []string{"p", "d", "q", "phi1", "theta1", "sigma"}
	case "trend":
		return []string{"slope", "noise"}
	case "seasonal":
		return []string{"amplitude", "period", "noise"}
	}
	return nil
}
