package collector

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadMetricRecords(t *testing.T) {
	csvData := `Stock Symbol,Volatility,Beta,totalDebt,Dividend Yield
RELIANCE.NS,0.15,1.1,0,
TCS.NS,0.05,,120000,n/a
RELIANCE.NS,0.99,0.1,1,1
,1,1,1,1
`
	records, err := ReadMetricRecords(strings.NewReader(csvData))
	require.NoError(t, err)
	require.Len(t, records, 2)

	rel := records["RELIANCE.NS"]
	assert.Equal(t, 0.15, rel["Volatility"])
	assert.Equal(t, 0.0, rel["totalDebt"])
	assert.NotContains(t, rel, "Dividend Yield")

	tcs := records["TCS.NS"]
	assert.NotContains(t, tcs, "Beta")
	assert.Equal(t, "n/a", tcs["Dividend Yield"])
	assert.Equal(t, 120000.0, tcs["totalDebt"])
}

func TestReadMetricRecords_MissingSymbolColumn(t *testing.T) {
	_, err := ReadMetricRecords(strings.NewReader("Ticker,Beta\nA,1\n"))
	assert.ErrorContains(t, err, SymbolColumn)

	_, err = ReadMetricRecords(strings.NewReader(""))
	assert.Error(t, err)
}

func TestLoadMetricRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "metrics.csv")
	require.NoError(t, os.WriteFile(path, []byte("\ufeffStock Symbol,Beta\nA,0.7\n"), 0o644))

	records, err := LoadMetricRecords(path)
	require.NoError(t, err)
	assert.Equal(t, 0.7, records["A"]["Beta"])

	_, err = LoadMetricRecords(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}
