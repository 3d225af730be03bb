package stochastic

// Default lengths of the case-study series.
const (
	StockDays   = 250
	SalesMonths = 48
	GDPQuarters = 40
)

// GenerateStockPrice models a price path as the running sum of AR(1)
// increments (φ = 0.95, σ = 2) starting at 100.
func GenerateStockPrice(src UniformSource, n int) Series {
	steps := GenerateAR(src, n, ARParams{Phi: []float64{0.95}, Sigma: 2})
	return Cumulate(steps, 100, pricePlaces)
}

// GenerateRetailSales overlays a yearly cycle (amplitude 20, period 12,
// noise 5) on a 0.5/month trend around a base of 100.
func GenerateRetailSales(src UniformSource, n int) Series {
	seasonal := GenerateSeasonal(src, n, 20, 12, 5)
	trend := GenerateTrend(src, n, 0.5, 0)
	values := make([]float64, len(seasonal))
	for i := range values {
		values[i] = seasonal[i].Value + trend[i].Value + 100
	}
	return toSeries(values, pricePlaces)
}

// GenerateGDP adds AR(1) fluctuations (φ = 0.8, σ = 0.5) to a linear path
// growing 0.3 per period from 1000.
func GenerateGDP(src UniformSource, n int) Series {
	cycle := GenerateAR(src, n, ARParams{Phi: []float64{0.8}, Sigma: 0.5})
	values := make([]float64, len(cycle))
	for i, p := range cycle {
		values[i] = p.Value + float64(i)*0.3 + 1000
	}
	return toSeries(values, pricePlaces)
}
