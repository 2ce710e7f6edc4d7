package calculator

import (
	"math"

	"RiskSentinel/internal/model"
)

// MaxDrawdown scans the series and returns the largest peak-to-trough loss
// as a positive fraction. Nil for fewer than two prices.
func MaxDrawdown(prices []float64) *float64 {
	if len(prices) < 2 {
		return nil
	}
	peak := math.Inf(-1)
	maxDD := 0.0
	for _, p := range prices {
		if p > peak {
			peak = p
		}
		if peak > 0 {
			if dd := (peak - p) / peak; dd > maxDD {
				maxDD = dd
			}
		}
	}
	return &maxDD
}

// ValueAtRisk is the historical one-period loss not exceeded with the given
// confidence, as a positive fraction. Nil for fewer than two returns.
func ValueAtRisk(returns []float64, confidence float64) *float64 {
	if len(returns) < 2 || confidence <= 0 || confidence >= 1 {
		return nil
	}
	return ptr(-Quantile(1-confidence, returns))
}

// CAGR is the compound annual growth rate between the first and last price,
// annualized over calendar time.
func CAGR(series model.PriceSeries) *float64 {
	if len(series.Points) < 2 {
		return nil
	}
	first, last := series.Points[0], series.Points[len(series.Points)-1]
	if first.Price <= 0 || last.Price < 0 {
		return nil
	}
	years := last.Time.Sub(first.Time).Hours() / 24 / 365.25
	if years <= 0 {
		return nil
	}
	return ptr(math.Pow(last.Price/first.Price, 1/years) - 1)
}
