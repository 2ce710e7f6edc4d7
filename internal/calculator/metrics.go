package calculator

import (
	"RiskSentinel/internal/model"
)

// Names of metrics derived from price history. They match the catalog keys
// so derived values can be classified like spreadsheet values.
const (
	MetricVolatility       = "Volatility"
	MetricAnnualVolPercent = "Annualized Volatility (%)"
	MetricBeta             = "Beta"
	MetricMaxDrawdown      = "Maximum Drawdown"
	MetricSharpe           = "Sharpe Ratio"
	MetricSortino          = "Sortino Ratio"
	MetricTreynor          = "Treynor Ratio"
	MetricVaR95            = "VaR (95%)"
	MetricCAGR             = "CAGR"
)

// CorrelationMetric names the benchmark correlation metric, e.g.
// "Correlation with ^NSEI".
func CorrelationMetric(benchmark string) string {
	return "Correlation with " + benchmark
}

// DeriveMetrics computes the price-based risk metrics of one security.
// Undefined metrics are left out so they assess as unavailable.
// Drawdown, VaR, CAGR and the percent volatility are in percent.
func (e Engine) DeriveMetrics(series, benchmark model.PriceSeries) model.MetricRecord {
	record := model.MetricRecord{}
	returns := DeriveReturns(series)
	values := returns.Values()
	bench := DeriveReturns(benchmark)

	if len(values) >= 2 {
		vol := StdDev(values) * e.annualizer()
		record[MetricVolatility] = vol
		record[MetricAnnualVolPercent] = vol * 100
	}
	setIfDefined(record, MetricBeta, e.Beta(returns, bench), 1)
	setIfDefined(record, CorrelationMetric(benchmark.Symbol), Correlation(alignReturns(returns, bench)), 1)
	setIfDefined(record, MetricMaxDrawdown, MaxDrawdown(series.Prices()), 100)
	setIfDefined(record, MetricSharpe, e.Sharpe(values), 1)
	setIfDefined(record, MetricSortino, e.Sortino(values), 1)
	setIfDefined(record, MetricTreynor, e.Treynor(returns, bench), 1)
	setIfDefined(record, MetricVaR95, ValueAtRisk(values, 0.95), 100)
	setIfDefined(record, MetricCAGR, CAGR(series), 100)
	return record
}

// MergeRecords overlays derived on top of base without replacing values that
// base already holds.
func MergeRecords(base, derived model.MetricRecord) model.MetricRecord {
	out := make(model.MetricRecord, len(base)+len(derived))
	for k, v := range derived {
		out[k] = v
	}
	for k, v := range base {
		if v != nil {
			out[k] = v
		}
	}
	return out
}

func setIfDefined(record model.MetricRecord, name string, v *float64, scale float64) {
	if v == nil {
		return
	}
	record[name] = *v * scale
}
