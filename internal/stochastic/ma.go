package stochastic

// GenerateMA simulates v[t] = e[t] + θ1·e[t-1] + θ2·e[t-2] + θ3·e[t-3].
//
// n+3 innovations are drawn so the first output already has three past
// innovations to look back on. There is no recursion on outputs, so the
// result is stationary for any θ.
func GenerateMA(src UniformSource, n int, params MAParams) Series {
	if n <= 0 {
		return Series{}
	}

	theta := lags(params.Theta)
	noise := NewGaussian(src).SampleMany(n+seedLen, params.Sigma)

	values := make([]float64, n)
	for t := range values {
		values[t] = noise[t+3] + theta[0]*noise[t+2] + theta[1]*noise[t+1] + theta[2]*noise[t]
	}

	return toSeries(values, valuePlaces)
}
