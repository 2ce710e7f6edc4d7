package collector

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"RiskSentinel/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Bars  map[string][]model.OHLCV
	Price float64 // base price for generated bars when Bars has no entry
	Err   map[string]error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchDailyBars(ctx context.Context, symbol string, days int) ([]model.OHLCV, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err, ok := m.Err[symbol]; ok {
		return nil, err
	}
	if bars, ok := m.Bars[symbol]; ok {
		return bars, nil
	}
	if m.Price == 0 {
		return nil, fmt.Errorf("mock %s: %w", symbol, ErrNoData)
	}
	return generateMockBars(m.Price, days), nil
}

func generateMockBars(basePrice float64, count int) []model.OHLCV {
	end := time.Now().UTC().Truncate(24 * time.Hour)
	bars := make([]model.OHLCV, count)
	for i := 0; i < count; i++ {
		// Zig-zag drift so generated series have dispersion.
		p := basePrice * (1 + float64(i-count/2)*0.001 + float64(i%3-1)*0.004)
		bars[i] = model.OHLCV{
			Time:   end.AddDate(0, 0, -(count - 1 - i)),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return bars
}

// Collector fetches every price series a recompute needs, up front.
type Collector struct {
	Fetcher     Fetcher
	HistoryDays int
	log         zerolog.Logger
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher, historyDays int, log zerolog.Logger) *Collector {
	return &Collector{
		Fetcher:     fetcher,
		HistoryDays: historyDays,
		log:         log.With().Str("component", "collector").Str("source", fetcher.Name()).Logger(),
	}
}

// Collect fetches the securities and the benchmark. A security that fails is
// logged and left out; a benchmark failure fails the whole collection.
func (c *Collector) Collect(ctx context.Context, securities []string, benchmark string) (*model.MarketData, error) {
	benchBars, err := c.Fetcher.FetchDailyBars(ctx, benchmark, c.HistoryDays)
	if err != nil {
		return nil, fmt.Errorf("fetch benchmark %s: %w", benchmark, err)
	}
	if len(benchBars) == 0 {
		return nil, fmt.Errorf("fetch benchmark %s: %w", benchmark, ErrNoData)
	}

	data := &model.MarketData{
		Prices:    make(map[string]model.PriceSeries, len(securities)),
		Benchmark: model.SeriesFromBars(benchmark, benchBars),
		FetchedAt: time.Now(),
	}
	for _, sym := range securities {
		bars, err := c.Fetcher.FetchDailyBars(ctx, sym, c.HistoryDays)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			c.log.Warn().Err(err).Str("symbol", sym).Msg("price fetch failed, skipping security")
			continue
		}
		if len(bars) == 0 {
			c.log.Warn().Str("symbol", sym).Msg("no price data, skipping security")
			continue
		}
		data.Prices[sym] = model.SeriesFromBars(sym, bars)
	}

	c.log.Info().
		Int("requested", len(securities)).
		Int("fetched", len(data.Prices)).
		Int("benchmark_points", data.Benchmark.Len()).
		Msg("market data collected")
	return data, nil
}
