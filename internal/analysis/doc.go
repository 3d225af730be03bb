// Package analysis provides diagnostics for generated series.
//
// Nothing here fits a model to data; the tools describe a series that a
// generator already produced:
//
//   - [ACF]: sample autocorrelation function up to a maximum lag
//   - [PowerSpectrum], [DominantPeriod]: periodogram of a series
//   - [IsStationary]: the coefficient check shown next to AR charts
//   - [Summarize]: count, mean, standard deviation and range
//
// # Reading an ACF
//
// An AR(1) series with coefficient φ has an ACF that decays roughly as φ^k,
// while an MA(q) series cuts off after lag q:
//
//	acf := analysis.ACF(series.Values(), 20)
package analysis
