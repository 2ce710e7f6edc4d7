package collector

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"RiskSentinel/internal/model"
)

// SymbolColumn is the header naming the security of each metrics row.
const SymbolColumn = "Stock Symbol"

// LoadMetricRecords reads per-security metric values from a CSV export of the
// metrics spreadsheet.
func LoadMetricRecords(path string) (map[string]model.MetricRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open metrics file: %w", err)
	}
	defer f.Close()
	return ReadMetricRecords(f)
}

// ReadMetricRecords parses metrics CSV. Empty cells are treated as missing,
// numeric cells become float64 and any other text is kept verbatim.
// When a symbol appears twice the first row wins.
func ReadMetricRecords(r io.Reader) (map[string]model.MetricRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("metrics csv: empty file")
		}
		return nil, fmt.Errorf("metrics csv header: %w", err)
	}
	symbolIdx := -1
	for i, h := range header {
		header[i] = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if header[i] == SymbolColumn {
			symbolIdx = i
		}
	}
	if symbolIdx < 0 {
		return nil, fmt.Errorf("metrics csv: missing %q column", SymbolColumn)
	}

	records := make(map[string]model.MetricRecord)
	for line := 2; ; line++ {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("metrics csv line %d: %w", line, err)
		}
		if symbolIdx >= len(row) {
			continue
		}
		symbol := strings.TrimSpace(row[symbolIdx])
		if symbol == "" {
			continue
		}
		if _, dup := records[symbol]; dup {
			continue
		}
		rec := model.MetricRecord{}
		for i, cell := range row {
			if i == symbolIdx || i >= len(header) {
				continue
			}
			cell = strings.TrimSpace(cell)
			if cell == "" {
				continue
			}
			if f, err := strconv.ParseFloat(cell, 64); err == nil {
				rec[header[i]] = f
			} else {
				rec[header[i]] = cell
			}
		}
		records[symbol] = rec
	}
	return records, nil
}
