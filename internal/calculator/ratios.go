package calculator

import (
	"math"

	"RiskSentinel/internal/model"
)

const (
	// DefaultPeriodsPerYear assumes daily sampling on trading days.
	DefaultPeriodsPerYear = 252
	// DefaultRiskFreeRate is an annual fraction.
	DefaultRiskFreeRate = 0.05
)

// Engine computes portfolio performance ratios. PeriodsPerYear must match
// the sampling frequency of the return series it is given.
// Every ratio returns nil when it is undefined for the input.
type Engine struct {
	PeriodsPerYear int
	RiskFreeRate   float64
}

// NewEngine creates an Engine, falling back to daily sampling for a
// non-positive periodsPerYear.
func NewEngine(periodsPerYear int, riskFreeRate float64) Engine {
	if periodsPerYear <= 0 {
		periodsPerYear = DefaultPeriodsPerYear
	}
	return Engine{PeriodsPerYear: periodsPerYear, RiskFreeRate: riskFreeRate}
}

func (e Engine) periodicRiskFree() float64 {
	return e.RiskFreeRate / float64(e.PeriodsPerYear)
}

func (e Engine) annualizer() float64 {
	return math.Sqrt(float64(e.PeriodsPerYear))
}

func (e Engine) excess(returns []float64) []float64 {
	rf := e.periodicRiskFree()
	out := make([]float64, len(returns))
	for i, r := range returns {
		out[i] = r - rf
	}
	return out
}

// ROI is the fractional change of the summed cross-section of prices between
// the first and last timestamp shared by every series.
func (e Engine) ROI(prices []model.PriceSeries) *float64 {
	times := commonPriceTimes(prices)
	if len(times) == 0 {
		return nil
	}
	first, last := times[0], times[len(times)-1]
	var initial, final float64
	for _, s := range prices {
		idx := priceIndex(s)
		initial += idx[first]
		final += idx[last]
	}
	if initial == 0 {
		return nil
	}
	return ptr((final - initial) / initial)
}

// Sharpe is mean(r - rf/N) / (std(r) * sqrt(N)). The deviation is taken on
// the raw returns, not on the excess returns.
func (e Engine) Sharpe(returns []float64) *float64 {
	if len(returns) < 2 {
		return nil
	}
	sd := StdDev(returns)
	if nearZero(sd) {
		return nil
	}
	return ptr(Mean(e.excess(returns)) / (sd * e.annualizer()))
}

// Sortino uses the Sharpe numerator over the sample deviation of the strictly
// negative returns.
func (e Engine) Sortino(returns []float64) *float64 {
	if len(returns) < 2 {
		return nil
	}
	var downside []float64
	for _, r := range returns {
		if r < 0 {
			downside = append(downside, r)
		}
	}
	if len(downside) < 2 {
		return nil
	}
	sd := StdDev(downside)
	if nearZero(sd) {
		return nil
	}
	return ptr(Mean(e.excess(returns)) / (sd * e.annualizer()))
}

// Beta is cov(portfolio, market) / var(market) over the full aligned history.
func (e Engine) Beta(portfolio, market model.ReturnSeries) *float64 {
	p, m := alignReturns(portfolio, market)
	if len(p) < 2 {
		return nil
	}
	if flat(m) {
		return nil
	}
	return ptr(Covariance(p, m) / Variance(m))
}

// Treynor is (mean(portfolio) - rf/N) / beta.
func (e Engine) Treynor(portfolio, market model.ReturnSeries) *float64 {
	beta := e.Beta(portfolio, market)
	if beta == nil || nearZero(*beta) {
		return nil
	}
	p, _ := alignReturns(portfolio, market)
	return ptr((Mean(p) - e.periodicRiskFree()) / *beta)
}

// InformationRatio is mean(p - b) / (std(p - b) * sqrt(N)) over the
// timestamps both series share.
func (e Engine) InformationRatio(portfolio, benchmark model.ReturnSeries) *float64 {
	p, b := alignReturns(portfolio, benchmark)
	if len(p) < 2 {
		return nil
	}
	active := make([]float64, len(p))
	for i := range p {
		active[i] = p[i] - b[i]
	}
	sd := StdDev(active)
	if nearZero(sd) {
		return nil
	}
	return ptr(Mean(active) / (sd * e.annualizer()))
}

// Turnover approximates trading activity as the summed absolute return of
// every holding per period. It is a proxy, not an accounting figure.
func (e Engine) Turnover(returns []model.ReturnSeries) *float64 {
	if len(returns) == 0 {
		return nil
	}
	lookups := make([]map[int64]float64, len(returns))
	for i, s := range returns {
		lookups[i] = returnIndex(s)
	}
	var total float64
	periods := 0
	for _, p := range returns[0].Points {
		key := p.Time.UnixNano()
		sum := 0.0
		common := true
		for _, idx := range lookups {
			r, ok := idx[key]
			if !ok {
				common = false
				break
			}
			sum += math.Abs(r)
		}
		if common {
			total += sum
			periods++
		}
	}
	if periods == 0 {
		return nil
	}
	return ptr(total / float64(periods))
}

// Evaluate computes the full report for an equal-weighted portfolio of
// prices against one shared benchmark.
func (e Engine) Evaluate(prices []model.PriceSeries, benchmark model.PriceSeries) model.PerformanceReport {
	perSecurity := make([]model.ReturnSeries, len(prices))
	for i, s := range prices {
		perSecurity[i] = DeriveReturns(s)
	}
	portfolio := PortfolioReturns(perSecurity)
	bench := DeriveReturns(benchmark)
	values := portfolio.Values()

	return model.PerformanceReport{
		ROI:              e.ROI(prices),
		Sharpe:           e.Sharpe(values),
		Sortino:          e.Sortino(values),
		Treynor:          e.Treynor(portfolio, bench),
		InformationRatio: e.InformationRatio(portfolio, bench),
		Turnover:         e.Turnover(perSecurity),
	}
}

func commonPriceTimes(prices []model.PriceSeries) []int64 {
	if len(prices) == 0 {
		return nil
	}
	counts := make(map[int64]int)
	for _, s := range prices[1:] {
		for _, p := range s.Points {
			counts[p.Time.UnixNano()]++
		}
	}
	var times []int64
	for _, p := range prices[0].Points {
		key := p.Time.UnixNano()
		if counts[key] == len(prices)-1 {
			times = append(times, key)
		}
	}
	return times
}

func priceIndex(s model.PriceSeries) map[int64]float64 {
	idx := make(map[int64]float64, len(s.Points))
	for _, p := range s.Points {
		idx[p.Time.UnixNano()] = p.Price
	}
	return idx
}
