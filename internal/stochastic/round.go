package stochastic

import "math"

const (
	valuePlaces = 3
	pricePlaces = 2
)

func round(v float64, places int) float64 {
	p := math.Pow10(places)
	r := math.Round(v*p) / p
	if r == 0 {
		// drop the sign of negative zero
		return 0
	}
	return r
}

func toSeries(values []float64, places int) Series {
	s := make(Series, len(values))
	for i, v := range values {
		s[i] = SamplePoint{Time: i, Value: round(v, places)}
	}
	return s
}

// lags pads or truncates coeffs to exactly three lag slots.
func lags(coeffs []float64) [3]float64 {
	var out [3]float64
	copy(out[:], coeffs)
	return out
}
