package risk

import (
	"math"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"RiskSentinel/internal/model"
)

func volatilityCatalog(t *testing.T) model.Catalog {
	t.Helper()
	var c model.Catalog
	require.NoError(t, c.AddMetric("Market Risk", "Volatility", 0.1, 0.2))
	return c
}

func TestAssess_VolatilityScenario(t *testing.T) {
	b := NewBuilder(nil, zerolog.Nop())
	catalog := volatilityCatalog(t)

	tests := []struct {
		value float64
		level model.Level
		color string
	}{
		{0.05, model.LevelGood, "green"},
		{0.15, model.LevelNeutral, "yellow"},
		{0.5, model.LevelBad, "red"},
	}
	for _, tt := range tests {
		got := b.Assess("RELIANCE.NS", catalog, model.MetricRecord{"Volatility": tt.value})
		require.Len(t, got, 1)
		assert.Equal(t, tt.level, got[0].Level)
		assert.Equal(t, tt.color, got[0].Color)
		assert.Equal(t, tt.value, got[0].RawValue)
		assert.Equal(t, "Market Risk", got[0].Category)
		assert.Equal(t, NoDescription, got[0].Explanation)
	}
}

func TestAssess_MissingMetric(t *testing.T) {
	var c model.Catalog
	require.NoError(t, c.AddMetric("Market Risk", "Beta", 0.5, 1.5))
	b := NewBuilder(nil, zerolog.Nop())

	got := b.Assess("TCS.NS", c, model.MetricRecord{"Volatility": 0.1})
	require.Len(t, got, 1)
	assert.Equal(t, model.RiskAssessment{
		Security: "TCS.NS",
		Category: "Market Risk",
		Metric:   "Beta",
		RawValue: model.UnavailableValue,
		Level:    model.LevelUnavailable,
		Color:    "black",
	}, got[0])
}

func TestAssess_ZeroIsProcessed(t *testing.T) {
	var c model.Catalog
	require.NoError(t, c.AddMetric("Credit Risk", "totalDebt", 0, math.Inf(1)))
	d := Descriptions{}
	d.Set("totalDebt", model.LevelNeutral, "Carries debt.")
	b := NewBuilder(d, zerolog.Nop())

	got := b.Assess("INFY.NS", c, model.MetricRecord{"totalDebt": 0})
	require.Len(t, got, 1)
	assert.Equal(t, model.LevelNeutral, got[0].Level)
	assert.Equal(t, "Carries debt.", got[0].Explanation)
	assert.Equal(t, "yellow", got[0].Color)
}

func TestAssess_UnparseableValue(t *testing.T) {
	b := NewBuilder(nil, zerolog.Nop())
	got := b.Assess("X", volatilityCatalog(t), model.MetricRecord{"Volatility": "n/a"})
	require.Len(t, got, 1)
	assert.Equal(t, model.LevelUnavailable, got[0].Level)
	assert.Equal(t, "n/a", got[0].RawValue)
	assert.Equal(t, "black", got[0].Color)
	assert.Equal(t, NoDescription, got[0].Explanation)
}

func TestAssess_CatalogOrder(t *testing.T) {
	var c model.Catalog
	require.NoError(t, c.AddMetric("Market Risk", "Volatility", 0.1, 0.2))
	require.NoError(t, c.AddMetric("Market Risk", "Beta", 0.5, 1.5))
	require.NoError(t, c.AddMetric("Credit Risk", "totalDebt", 0, math.Inf(1)))
	require.NoError(t, c.AddMetric("Credit Risk", "debtToEquity", 0.5, 1.5))
	require.NoError(t, c.AddMetric("Financial Risk", "debtToEquity", 0.5, 1.5))

	b := NewBuilder(nil, zerolog.Nop())
	got := b.Assess("X", c, model.MetricRecord{"debtToEquity": 2.0, "Beta": 1.0})

	var order []string
	for _, a := range got {
		order = append(order, a.Category+"/"+a.Metric)
	}
	assert.Equal(t, []string{
		"Market Risk/Volatility",
		"Market Risk/Beta",
		"Credit Risk/totalDebt",
		"Credit Risk/debtToEquity",
		"Financial Risk/debtToEquity",
	}, order)
	assert.Equal(t, model.LevelBad, got[3].Level)
	assert.Equal(t, model.LevelBad, got[4].Level)
}

func TestAssessAll_SkipsUnknownSecurities(t *testing.T) {
	b := NewBuilder(nil, zerolog.Nop())
	records := map[string]model.MetricRecord{
		"A": {"Volatility": 0.05},
		"C": {"Volatility": 0.5},
	}
	got, missing := b.AssessAll([]string{"A", "B", "C"}, volatilityCatalog(t), records)

	assert.Equal(t, []string{"B"}, missing)
	require.Len(t, got, 2)
	assert.Equal(t, "A", got[0].Security)
	assert.Equal(t, "C", got[1].Security)
}
