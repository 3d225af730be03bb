package stochastic_test

import (
	"context"
	"math"
	"strconv"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/tslab/internal/stochastic"
)

func decimals(v float64) int {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return len(s) - i - 1
	}
	return 0
}

func expectContiguous(s stochastic.Series, n int) {
	Expect(s).To(HaveLen(n))
	for i, p := range s {
		Expect(p.Time).To(Equal(i))
	}
}

var _ = Describe("Generators", func() {
	const seed = 1234

	DescribeTable("return exactly n time-ordered points",
		func(gen stochastic.Generator, n int) {
			expectContiguous(gen.Generate(stochastic.NewSource(seed), n), n)
		},
		Entry("AR(1), n=1", stochastic.ARParams{Phi: []float64{0.7}, Sigma: 1}, 1),
		Entry("AR(3), n=200", stochastic.ARParams{Phi: []float64{0.3, 0.2, 0.1}, Sigma: 1}, 200),
		Entry("MA(1), n=1", stochastic.MAParams{Theta: []float64{0.5}, Sigma: 1}, 1),
		Entry("MA(3), n=200", stochastic.MAParams{Theta: []float64{0.5, 0.2, 0.1}, Sigma: 1}, 200),
		Entry("ARIMA(1,2,0)", stochastic.ARIMAParams{P: 1, D: 2, Phi: []float64{0.5}, Sigma: 1}, 150),
		Entry("ARIMA(0,1,2)", stochastic.ARIMAParams{Q: 2, D: 1, Theta: []float64{0.5, 0.1}, Sigma: 1}, 150),
		Entry("trend", stochastic.TrendParams{Slope: 0.1, Noise: 1}, 100),
		Entry("seasonal", stochastic.SeasonalParams{Amplitude: 2, Period: 12, Noise: 0.5}, 100),
		Entry("white noise", stochastic.NoiseParams{Sigma: 1}, 100),
	)

	DescribeTable("emit at most 3 decimal places",
		func(gen stochastic.Generator) {
			for _, p := range gen.Generate(stochastic.NewSource(seed), 500) {
				Expect(decimals(p.Value)).To(BeNumerically("<=", 3), "value %v", p.Value)
			}
		},
		Entry("AR", stochastic.ARParams{Phi: []float64{0.9}, Sigma: 2.3}),
		Entry("MA", stochastic.MAParams{Theta: []float64{0.33, -0.21}, Sigma: 0.7}),
		Entry("differenced ARIMA", stochastic.ARIMAParams{P: 2, D: 2, Phi: []float64{0.4, 0.2}, Sigma: 1.1}),
		Entry("seasonal", stochastic.SeasonalParams{Amplitude: 3.3, Period: 7, Noise: 0.9}),
	)

	Describe("MA generator", func() {
		It("reduces to white noise when theta is zero", func() {
			const n = 100
			s := stochastic.GenerateMA(stochastic.NewSource(seed), n, stochastic.MAParams{Theta: []float64{0, 0, 0}, Sigma: 1})
			noise := stochastic.NewGaussian(stochastic.NewSource(seed)).SampleMany(n+3, 1)
			for i, p := range s {
				Expect(p.Value).To(BeNumerically("~", noise[i+3], 0.0005))
			}
		})

		It("yields exact zeros for a zero-variance source", func() {
			s := stochastic.GenerateMA(stochastic.NewSource(seed), 5, stochastic.MAParams{Theta: []float64{0, 0, 0}, Sigma: 0})
			want := stochastic.Series{}
			for i := 0; i < 5; i++ {
				want = append(want, stochastic.SamplePoint{Time: i, Value: 0})
			}
			Expect(s).To(Equal(want))
		})
	})

	Describe("AR generator", func() {
		It("reduces to white noise after the zero seed when phi is zero", func() {
			const n = 100
			s := stochastic.GenerateAR(stochastic.NewSource(seed), n, stochastic.ARParams{Phi: []float64{0, 0, 0}, Sigma: 1})
			noise := stochastic.NewGaussian(stochastic.NewSource(seed)).SampleMany(n, 1)
			for i, p := range s {
				if i < 3 {
					Expect(p.Value).To(BeZero())
					continue
				}
				Expect(p.Value).To(BeNumerically("~", noise[i], 0.0005))
			}
		})

		It("accepts explosive coefficients without validation", func() {
			s := stochastic.GenerateAR(stochastic.NewSource(seed), 60, stochastic.ARParams{Phi: []float64{1.2}, Sigma: 1})
			Expect(s).To(HaveLen(60))
			Expect(math.Abs(s[59].Value)).To(BeNumerically(">", math.Abs(s[10].Value)))
		})
	})

	Describe("ARIMA generator", func() {
		const n = 200

		It("matches the AR generator for ARIMA(1,0,0)", func() {
			got := stochastic.GenerateARIMA(stochastic.NewSource(seed), n,
				stochastic.ARIMAParams{P: 1, Phi: []float64{0.7}, Sigma: 1})
			want := stochastic.GenerateAR(stochastic.NewSource(seed), n,
				stochastic.ARParams{Phi: []float64{0.7}, Sigma: 1})
			Expect(got).To(Equal(want))
		})

		// d first-differences the generated AR series instead of integrating
		// it. Kept on purpose: existing series depend on it.
		It("differences rather than integrates for ARIMA(1,1,0)", func() {
			got := stochastic.GenerateARIMA(stochastic.NewSource(seed), n,
				stochastic.ARIMAParams{P: 1, D: 1, Phi: []float64{0.7}, Sigma: 1})
			base := stochastic.GenerateAR(stochastic.NewSource(seed), n+1,
				stochastic.ARParams{Phi: []float64{0.7}, Sigma: 1})

			expectContiguous(got, n)
			for j, p := range got {
				Expect(p.Value).To(BeNumerically("~", base[j+1].Value-base[j].Value, 1e-9))
			}
		})

		It("delegates to the MA generator for ARIMA(0,d,1) and ignores d", func() {
			got := stochastic.GenerateARIMA(stochastic.NewSource(seed), n,
				stochastic.ARIMAParams{D: 2, Q: 1, Theta: []float64{0.4}, Sigma: 1})
			want := stochastic.GenerateMA(stochastic.NewSource(seed), n,
				stochastic.MAParams{Theta: []float64{0.4}, Sigma: 1})
			Expect(got).To(Equal(want))
		})

		It("falls back to AR(1) with phi 0.7 for mixed ARIMA(1,1,1)", func() {
			got := stochastic.GenerateARIMA(stochastic.NewSource(seed), n,
				stochastic.ARIMAParams{P: 1, D: 1, Q: 1, Phi: []float64{-0.5}, Theta: []float64{0.9}, Sigma: 1})
			want := stochastic.GenerateAR(stochastic.NewSource(seed), n,
				stochastic.ARParams{Phi: []float64{stochastic.FallbackPhi}, Sigma: 1})
			Expect(got).To(Equal(want))
		})

		It("tolerates coefficient slices shorter than the declared order", func() {
			got := stochastic.GenerateARIMA(stochastic.NewSource(seed), n,
				stochastic.ARIMAParams{P: 3, Phi: []float64{0.5}, Sigma: 1})
			want := stochastic.GenerateAR(stochastic.NewSource(seed), n,
				stochastic.ARParams{Phi: []float64{0.5, 0, 0}, Sigma: 1})
			Expect(got).To(Equal(want))
		})
	})

	Describe("Ensemble", func() {
		gen := stochastic.ARParams{Phi: []float64{0.5}, Sigma: 1}

		It("is reproducible per seed", func() {
			a, err := stochastic.NewEnsemble(gen, 8, 100).Run(context.Background(), 50)
			Expect(err).NotTo(HaveOccurred())
			b, err := stochastic.NewEnsemble(gen, 8, 100).Run(context.Background(), 50)
			Expect(err).NotTo(HaveOccurred())
			Expect(a).To(Equal(b))
			Expect(a[0]).To(Equal(gen.Generate(stochastic.NewSource(100), 50)))
			Expect(a[0]).NotTo(Equal(a[1]))
		})

		It("stops on a canceled context", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			_, err := stochastic.NewEnsemble(gen, 4, 1).Run(ctx, 10)
			Expect(err).To(MatchError(context.Canceled))
		})
	})
})
