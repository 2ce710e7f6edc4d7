package calculator

import (
	"RiskSentinel/internal/model"
)

// DeriveReturns converts a price series into simple period returns:
// r[i] = p[i]/p[i-1] - 1, stamped at p[i]. Fewer than two prices give an
// empty series. A step from a zero price has no defined return and is dropped.
func DeriveReturns(series model.PriceSeries) model.ReturnSeries {
	out := model.ReturnSeries{Symbol: series.Symbol, Points: []model.ReturnPoint{}}
	if len(series.Points) < 2 {
		return out
	}
	out.Points = make([]model.ReturnPoint, 0, len(series.Points)-1)
	for i := 1; i < len(series.Points); i++ {
		prev := series.Points[i-1].Price
		if prev == 0 {
			continue
		}
		out.Points = append(out.Points, model.ReturnPoint{
			Time:   series.Points[i].Time,
			Return: series.Points[i].Price/prev - 1,
		})
	}
	return out
}

// PortfolioReturns is the equal-weighted mean of the per-security returns at
// each timestamp common to every series.
func PortfolioReturns(series []model.ReturnSeries) model.ReturnSeries {
	out := model.ReturnSeries{Symbol: "PORTFOLIO", Points: []model.ReturnPoint{}}
	if len(series) == 0 {
		return out
	}
	lookups := make([]map[int64]float64, len(series))
	for i, s := range series {
		lookups[i] = returnIndex(s)
	}
	for _, p := range series[0].Points {
		key := p.Time.UnixNano()
		sum := 0.0
		common := true
		for _, idx := range lookups {
			r, ok := idx[key]
			if !ok {
				common = false
				break
			}
			sum += r
		}
		if common {
			out.Points = append(out.Points, model.ReturnPoint{Time: p.Time, Return: sum / float64(len(series))})
		}
	}
	return out
}

// MonthlyCloses keeps the last observed price of each calendar month.
func MonthlyCloses(series model.PriceSeries) model.PriceSeries {
	out := model.PriceSeries{Symbol: series.Symbol}
	for i, p := range series.Points {
		last := i == len(series.Points)-1
		if last || model.MonthOf(series.Points[i+1].Time) != model.MonthOf(p.Time) {
			out.Points = append(out.Points, p)
		}
	}
	return out
}

// alignReturns inner-joins two return series on timestamp, keeping a's order.
func alignReturns(a, b model.ReturnSeries) (x, y []float64) {
	idx := returnIndex(b)
	for _, p := range a.Points {
		if r, ok := idx[p.Time.UnixNano()]; ok {
			x = append(x, p.Return)
			y = append(y, r)
		}
	}
	return x, y
}

func returnIndex(s model.ReturnSeries) map[int64]float64 {
	idx := make(map[int64]float64, len(s.Points))
	for _, p := range s.Points {
		idx[p.Time.UnixNano()] = p.Return
	}
	return idx
}
