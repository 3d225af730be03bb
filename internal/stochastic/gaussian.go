package stochastic

import "math"

// maxRedraws bounds the number of rejected u1 draws before clamping.
const maxRedraws = 16

// Gaussian turns a uniform source into Normal(0, sigma²) samples using the
// cosine branch of the Box-Muller transform. The paired sine output is
// discarded, so each sample costs two uniforms.
type Gaussian struct {
	src UniformSource
}

func NewGaussian(src UniformSource) *Gaussian {
	return &Gaussian{src: src}
}

func (g *Gaussian) Sample(sigma float64) float64 {
	u1 := g.radial()
	u2 := g.src.Float64()
	if !(u2 >= 0 && u2 <= 1) {
		u2 = 0
	}
	z := math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
	return z * sigma
}

func (g *Gaussian) SampleMany(n int, sigma float64) []float64 {
	if n <= 0 {
		return []float64{}
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = g.Sample(sigma)
	}
	return out
}

// radial draws u1 in (0, 1]. ln(0) is undefined, so zero (and any value a
// misbehaving source returns outside the unit interval) is redrawn; a
// source stuck on bad values is clamped to the smallest positive float.
func (g *Gaussian) radial() float64 {
	for i := 0; i < maxRedraws; i++ {
		u := g.src.Float64()
		if u > 0 && u <= 1 {
			return u
		}
	}
	return math.SmallestNonzeroFloat64
}
