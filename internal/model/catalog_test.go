package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetricDefinition_Bounds(t *testing.T) {
	tests := []struct {
		name    string
		lower   float64
		upper   float64
		wantErr bool
	}{
		{"ordered", 0.1, 0.2, false},
		{"equal", 1, 1, false},
		{"infinite upper", 1_000_000, math.Inf(1), false},
		{"infinite lower", math.Inf(-1), 0, false},
		{"inverted", 2, 1, true},
		{"nan", math.NaN(), 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewMetricDefinition("Market Risk", "Volatility", tt.lower, tt.upper)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidBounds)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCatalog_AddPreservesOrder(t *testing.T) {
	var c Catalog
	require.NoError(t, c.AddMetric("Market Risk", "Volatility", 0.1, 0.2))
	require.NoError(t, c.AddMetric("Market Risk", "Beta", 0.5, 1.5))
	require.NoError(t, c.AddMetric("Credit Risk", "totalDebt", 0, math.Inf(1)))
	require.NoError(t, c.AddMetric("Credit Risk", "debtToEquity", 0.5, 1.5))
	c.AddCategory("Market Risk")

	require.Len(t, c.Categories, 2)
	assert.Equal(t, "Market Risk", c.Categories[0].Name)
	assert.Equal(t, "Credit Risk", c.Categories[1].Name)
	assert.Equal(t, "Volatility", c.Categories[0].Metrics[0].Name)
	assert.Equal(t, "Beta", c.Categories[0].Metrics[1].Name)
	assert.Equal(t, 4, c.MetricCount())
}

func TestCatalog_AddMetricReplacesInPlace(t *testing.T) {
	var c Catalog
	require.NoError(t, c.AddMetric("Market Risk", "Volatility", 0.1, 0.2))
	require.NoError(t, c.AddMetric("Market Risk", "Beta", 0.5, 1.5))
	require.NoError(t, c.AddMetric("Market Risk", "Volatility", 0.2, 0.3))

	cat, ok := c.Category("Market Risk")
	require.True(t, ok)
	require.Len(t, cat.Metrics, 2)
	assert.Equal(t, "Volatility", cat.Metrics[0].Name)
	assert.Equal(t, 0.2, cat.Metrics[0].Lower)
}

func TestCatalog_AddMetricRejectsInvertedBand(t *testing.T) {
	var c Catalog
	err := c.AddMetric("Market Risk", "Volatility", 0.3, 0.2)
	assert.ErrorIs(t, err, ErrInvalidBounds)
	assert.Empty(t, c.Categories)
}

func TestMetricRecord_ZeroIsPresent(t *testing.T) {
	r := MetricRecord{"totalDebt": 0.0, "Beta": nil}

	v, ok := r.Lookup("totalDebt")
	assert.True(t, ok)
	assert.Equal(t, 0.0, v)

	_, ok = r.Lookup("Beta")
	assert.False(t, ok)
	_, ok = r.Lookup("Volume")
	assert.False(t, ok)
}

func TestParseMonth(t *testing.T) {
	m, err := ParseMonth("2024-03")
	require.NoError(t, err)
	assert.Equal(t, Month{Year: 2024, Month: 3}, m)
	assert.Equal(t, "2024-03", m.String())

	_, err = ParseMonth("March 2024")
	assert.Error(t, err)
}
