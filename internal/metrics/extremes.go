package metrics

import (
	"math"

	"github.com/san-kum/tslab/internal/stochastic"
)

type Extreme struct {
	name    string
	less    func(a, b float64) bool
	value   float64
	samples int
}

func NewMin() *Extreme {
	return &Extreme{name: "min", less: func(a, b float64) bool { return a < b }}
}

func NewMax() *Extreme {
	return &Extreme{name: "max", less: func(a, b float64) bool { return a > b }}
}

func (e *Extreme) Name() string { return e.name }

func (e *Extreme) Observe(p stochastic.SamplePoint) {
	if e.samples == 0 || e.less(p.Value, e.value) {
		e.value = p.Value
	}
	e.samples++
}

func (e *Extreme) Value() float64 {
	if e.samples == 0 {
		return math.NaN()
	}
	return e.value
}

func (e *Extreme) Reset() {
	e.value = 0
	e.samples = 0
}
