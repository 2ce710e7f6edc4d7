package calculator

import "RiskSentinel/internal/model"

// CorrelateInflation resamples prices to month-end closes, derives monthly
// returns and correlates them with inflation over the months both share.
// Nil when fewer than two months align or either side is constant.
func CorrelateInflation(prices model.PriceSeries, inflation model.InflationSeries) *float64 {
	monthly := DeriveReturns(MonthlyCloses(prices))
	var rets, rates []float64
	for _, p := range monthly.Points {
		rate, ok := inflation[model.MonthOf(p.Time)]
		if !ok {
			continue
		}
		rets = append(rets, p.Return)
		rates = append(rates, rate)
	}
	if len(rets) < 2 {
		return nil
	}
	return Correlation(rets, rates)
}
