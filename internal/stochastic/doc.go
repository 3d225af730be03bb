// Package stochastic generates synthetic time series from parametric
// stochastic models.
//
// The package provides the simulation core of tslab:
//
//   - [Gaussian]: normal samples from an injectable [UniformSource]
//   - [GenerateAR]: order-3 autoregressive recurrence
//   - [GenerateMA]: order-3 moving-average filter
//   - [GenerateARIMA]: AR/MA composition with a d-fold transform
//   - [GenerateWhiteNoise], [GenerateTrend], [GenerateSeasonal]: auxiliary builders
//   - [Ensemble]: many independent runs in parallel
//
// Every generator returns a [Series] whose points are indexed 0..n-1 and
// whose values are rounded to 3 decimal places. Generators never fail on
// numeric input: malformed coefficient slices are padded or truncated to
// three lags and out-of-range orders fall back to documented defaults.
//
// # Example
//
//	src := stochastic.NewSource(42)
//	s := stochastic.GenerateAR(src, 200, stochastic.ARParams{Phi: []float64{0.7}, Sigma: 1})
//
// # Thread Safety
//
// Generators hold no state between calls. A [UniformSource] returned by
// [NewSource] must not be shared between goroutines; wrap a shared stream
// with [NewLockedSource] or give each caller its own seeded source.
package stochastic
