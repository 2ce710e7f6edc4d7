package collector

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"RiskSentinel/internal/model"
)

func bars(closes ...float64) []model.OHLCV {
	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	out := make([]model.OHLCV, len(closes))
	for i, c := range closes {
		out[i] = model.OHLCV{Time: start.AddDate(0, 0, i), Close: c}
	}
	return out
}

func TestCollect(t *testing.T) {
	f := &MockFetcher{
		Bars: map[string][]model.OHLCV{
			"^NSEI": bars(100, 101, 102),
			"A":     bars(10, 11, 12),
		},
		Err: map[string]error{"B": errors.New("boom")},
	}
	c := NewCollector(f, 30, zerolog.Nop())

	data, err := c.Collect(context.Background(), []string{"A", "B", "C"}, "^NSEI")
	require.NoError(t, err)
	assert.Equal(t, "^NSEI", data.Benchmark.Symbol)
	assert.Equal(t, []float64{100, 101, 102}, data.Benchmark.Prices())
	require.Contains(t, data.Prices, "A")
	assert.Equal(t, []float64{10, 11, 12}, data.Prices["A"].Prices())
	assert.NotContains(t, data.Prices, "B")
	assert.NotContains(t, data.Prices, "C")
}

func TestCollect_BenchmarkFailure(t *testing.T) {
	f := &MockFetcher{Err: map[string]error{"^NSEI": errors.New("down")}}
	_, err := NewCollector(f, 30, zerolog.Nop()).Collect(context.Background(), []string{"A"}, "^NSEI")
	assert.ErrorContains(t, err, "fetch benchmark ^NSEI")
}

func TestCollect_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewCollector(&MockFetcher{Price: 100}, 30, zerolog.Nop()).Collect(ctx, []string{"A"}, "^NSEI")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMockFetcher_Generated(t *testing.T) {
	got, err := (&MockFetcher{Price: 100}).FetchDailyBars(context.Background(), "X", 40)
	require.NoError(t, err)
	require.Len(t, got, 40)
	for i := 1; i < len(got); i++ {
		assert.True(t, got[i].Time.After(got[i-1].Time))
	}

	_, err = (&MockFetcher{}).FetchDailyBars(context.Background(), "X", 40)
	assert.ErrorIs(t, err, ErrNoData)
}
