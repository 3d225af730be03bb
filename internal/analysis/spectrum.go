package analysis

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/stat"
)

// PowerSpectrum returns the magnitudes of the non-negative frequency bins
// of values after removing the mean: len(values)/2+1 bins, where bin k
// corresponds to a period of len(values)/k samples.
func PowerSpectrum(values []float64) []float64 {
	if len(values) == 0 {
		return nil
	}

	mean := stat.Mean(values, nil)
	centered := make([]float64, len(values))
	for i, v := range values {
		centered[i] = v - mean
	}

	spectrum := fft.FFTReal(centered)
	ps := make([]float64, len(values)/2+1)
	for i := range ps {
		ps[i] = cmplx.Abs(spectrum[i])
	}
	return ps
}

// DominantPeriod returns the period, in samples, of the strongest non-zero
// frequency bin. ok is false when the series is too short or flat.
func DominantPeriod(values []float64) (period float64, ok bool) {
	ps := PowerSpectrum(values)
	if len(ps) < 2 {
		return 0, false
	}

	maxIdx := 0
	maxPower := 0.0
	for i := 1; i < len(ps); i++ {
		// bins below this are rounding residue of a flat series
		if ps[i] > maxPower && ps[i] > 1e-9 {
			maxPower = ps[i]
			maxIdx = i
		}
	}
	if maxIdx == 0 {
		return 0, false
	}
	return float64(len(values)) / float64(maxIdx), true
}
