package metrics

import (
	"fmt"

	"github.com/san-kum/tslab/internal/analysis"
	"github.com/san-kum/tslab/internal/stochastic"
)

// Autocorrelation reports the sample autocorrelation at a fixed lag,
// normalized by the lag-0 autocovariance.
type Autocorrelation struct {
	name   string
	lag    int
	values []float64
}

func NewAutocorrelation(lag int) *Autocorrelation {
	return &Autocorrelation{name: fmt.Sprintf("acf%d", lag), lag: lag}
}

func (a *Autocorrelation) Name() string { return a.name }

func (a *Autocorrelation) Observe(p stochastic.SamplePoint) {
	a.values = append(a.values, p.Value)
}

func (a *Autocorrelation) Value() float64 {
	if a.lag < 0 {
		return 0
	}
	acf := analysis.ACF(a.values, a.lag)
	if len(acf) <= a.lag {
		return 0
	}
	return acf[a.lag]
}

func (a *Autocorrelation) Reset() {
	a.values = a.values[:0]
}
