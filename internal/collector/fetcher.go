package collector

import (
	"context"
	"errors"

	"RiskSentinel/internal/model"
)

// ErrNoData is returned when a source has no bars for a symbol.
var ErrNoData = errors.New("no data returned")

// Fetcher defines the interface for fetching market data.
type Fetcher interface {
	FetchDailyBars(ctx context.Context, symbol string, days int) ([]model.OHLCV, error)
	Name() string
}
