package analysis

import "math"

// Order returns the AR order implied by phi: the position of the last
// non-zero coefficient among the first three.
func Order(phi []float64) int {
	order := 0
	for i := 0; i < len(phi) && i < 3; i++ {
		if phi[i] != 0 {
			order = i + 1
		}
	}
	return order
}

// IsStationary reports whether an AR model with coefficients phi lies in
// the stationary region. Orders 1 and 2 use the exact conditions; order 3
// is reported as stationary without checking, which is a known
// simplification.
func IsStationary(phi []float64) bool {
	var c [3]float64
	copy(c[:], phi)

	switch Order(phi) {
	case 0:
		return true
	case 1:
		return math.Abs(c[0]) < 1
	case 2:
		return c[0]+c[1] < 1 && c[1]-c[0] < 1 && math.Abs(c[1]) < 1
	default:
		return true
	}
}
