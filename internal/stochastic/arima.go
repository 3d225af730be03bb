package stochastic

// Branch names the generation path GenerateARIMA takes for a parameter set.
type Branch string

const (
	// BranchARDifferenced generates AR(n+d) and first-differences it d times.
	BranchARDifferenced Branch = "ar-differenced"
	// BranchMA delegates to the MA generator; d is ignored.
	BranchMA Branch = "ma"
	// BranchFallback ignores all parameters except sigma and produces AR(1)
	// with φ1 = FallbackPhi. Mixed ARMA requests (p > 0 and q > 0) land here.
	BranchFallback Branch = "fallback-ar1"
)

const FallbackPhi = 0.7

// Branch reports which path GenerateARIMA takes. Negative orders count as 0.
func (p ARIMAParams) Branch() Branch {
	ar, ma := max(p.P, 0), max(p.Q, 0)
	switch {
	case ar > 0 && ma == 0:
		return BranchARDifferenced
	case ar == 0 && ma > 0:
		return BranchMA
	default:
		return BranchFallback
	}
}

// GenerateARIMA produces an ARIMA(p,d,q) series of length n.
//
// The d parameter drives repeated first differencing of the generated AR
// series, not cumulative summation. That is the behavior existing series
// depend on; see [Difference].
func GenerateARIMA(src UniformSource, n int, params ARIMAParams) Series {
	if n <= 0 {
		return Series{}
	}

	switch params.Branch() {
	case BranchARDifferenced:
		d := max(params.D, 0)
		series := GenerateAR(src, n+d, ARParams{Phi: params.Phi, Sigma: params.Sigma})
		for i := 0; i < d; i++ {
			series = Difference(series)
		}
		if len(series) > n {
			series = series[:n]
		}
		return series
	case BranchMA:
		return GenerateMA(src, n, MAParams{Theta: params.Theta, Sigma: params.Sigma})
	default:
		return GenerateAR(src, n, ARParams{Phi: []float64{FallbackPhi}, Sigma: params.Sigma})
	}
}

// Difference returns the first difference of s: a series one point shorter
// whose value at j is s[j+1] - s[j], re-indexed from zero.
func Difference(s Series) Series {
	if len(s) < 2 {
		return Series{}
	}
	out := make(Series, len(s)-1)
	for j := range out {
		out[j] = SamplePoint{Time: j, Value: round(s[j+1].Value-s[j].Value, valuePlaces)}
	}
	return out
}

// Cumulate returns the running sum of s starting from start, rounded to
// places decimals. The first point is start itself; s[0] is not added.
func Cumulate(s Series, start float64, places int) Series {
	if len(s) == 0 {
		return Series{}
	}
	values := make([]float64, len(s))
	values[0] = start
	for i := 1; i < len(s); i++ {
		values[i] = round(values[i-1]+s[i].Value, places)
	}
	return toSeries(values, places)
}
