package model

import "time"

// OHLCV represents a single candlestick bar.
type OHLCV struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// PricePoint is one observation of a price series.
type PricePoint struct {
	Time  time.Time
	Price float64
}

// PriceSeries holds the ordered prices of one security or index.
// Times are strictly increasing.
type PriceSeries struct {
	Symbol string
	Points []PricePoint
}

// Len returns the number of observations.
func (s PriceSeries) Len() int { return len(s.Points) }

// Prices returns the bare price values in order.
func (s PriceSeries) Prices() []float64 {
	prices := make([]float64, len(s.Points))
	for i, p := range s.Points {
		prices[i] = p.Price
	}
	return prices
}

// SeriesFromBars builds a close-price series from candlestick bars.
func SeriesFromBars(symbol string, bars []OHLCV) PriceSeries {
	points := make([]PricePoint, 0, len(bars))
	for _, b := range bars {
		points = append(points, PricePoint{Time: b.Time, Price: b.Close})
	}
	return PriceSeries{Symbol: symbol, Points: points}
}

// ReturnPoint is the period-over-period return ending at Time.
type ReturnPoint struct {
	Time   time.Time
	Return float64
}

// ReturnSeries is derived 1:1 from consecutive price pairs.
type ReturnSeries struct {
	Symbol string
	Points []ReturnPoint
}

// Len returns the number of returns.
func (s ReturnSeries) Len() int { return len(s.Points) }

// Values returns the bare return values in order.
func (s ReturnSeries) Values() []float64 {
	values := make([]float64, len(s.Points))
	for i, p := range s.Points {
		values[i] = p.Return
	}
	return values
}

// MarketData is everything one recompute needs from the outside world.
type MarketData struct {
	Prices    map[string]PriceSeries
	Benchmark PriceSeries
	FetchedAt time.Time
}
