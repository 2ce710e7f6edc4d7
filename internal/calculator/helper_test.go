package calculator

import (
	"time"

	"RiskSentinel/internal/model"
)

var day0 = time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

// daily builds a price series with one observation per day from day0+offset.
func daily(symbol string, offset int, prices ...float64) model.PriceSeries {
	s := model.PriceSeries{Symbol: symbol}
	for i, p := range prices {
		s.Points = append(s.Points, model.PricePoint{Time: day0.AddDate(0, 0, offset+i), Price: p})
	}
	return s
}

// returnsAt builds a return series with one return per day from day0+offset.
func returnsAt(symbol string, offset int, values ...float64) model.ReturnSeries {
	s := model.ReturnSeries{Symbol: symbol}
	for i, r := range values {
		s.Points = append(s.Points, model.ReturnPoint{Time: day0.AddDate(0, 0, offset+i), Return: r})
	}
	return s
}
