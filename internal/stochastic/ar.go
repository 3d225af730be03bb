package stochastic

// seedLen is the number of zero-valued points that start every AR buffer.
const seedLen = 3

// GenerateAR simulates v[t] = φ1·v[t-1] + φ2·v[t-2] + φ3·v[t-3] + e[t].
//
// The first three points are the zero seed of the recursion and are part of
// the output; callers that want a series without them must drop them. All n
// innovations are drawn up front, including the three that the seed
// overwrites. Non-stationary coefficients are accepted as is.
func GenerateAR(src UniformSource, n int, params ARParams) Series {
	if n <= 0 {
		return Series{}
	}

	phi := lags(params.Phi)
	noise := NewGaussian(src).SampleMany(n, params.Sigma)

	values := make([]float64, max(n, seedLen))
	for t := seedLen; t < n; t++ {
		values[t] = phi[0]*values[t-1] + phi[1]*values[t-2] + phi[2]*values[t-3] + noise[t]
	}

	return toSeries(values[:n], valuePlaces)
}
