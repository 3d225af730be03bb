package stochastic

import "math"

// GenerateWhiteNoise returns n independent Normal(0, sigma²) draws.
func GenerateWhiteNoise(src UniformSource, n int, sigma float64) Series {
	if n <= 0 {
		return Series{}
	}
	return toSeries(NewGaussian(src).SampleMany(n, sigma), valuePlaces)
}

// GenerateTrend returns slope·i plus uniform noise in [-noise, noise).
func GenerateTrend(src UniformSource, n int, slope, noise float64) Series {
	if n <= 0 {
		return Series{}
	}
	values := make([]float64, n)
	for i := range values {
		values[i] = slope*float64(i) + uniformNoise(src, noise)
	}
	return toSeries(values, valuePlaces)
}

// GenerateSeasonal returns amplitude·sin(2πi/period) plus uniform noise in
// [-noise, noise). A zero period contributes no seasonal component.
func GenerateSeasonal(src UniformSource, n int, amplitude, period, noise float64) Series {
	if n <= 0 {
		return Series{}
	}
	values := make([]float64, n)
	for i := range values {
		var seasonal float64
		if period != 0 {
			seasonal = amplitude * math.Sin(2*math.Pi*float64(i)/period)
		}
		values[i] = seasonal + uniformNoise(src, noise)
	}
	return toSeries(values, valuePlaces)
}

// uniformNoise always consumes one draw, even when noise is zero, so that
// the stream position does not depend on the noise level.
func uniformNoise(src UniformSource, noise float64) float64 {
	return (src.Float64() - 0.5) * 2 * noise
}
