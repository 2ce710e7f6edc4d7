package model

// Level is the qualitative band a metric value falls into.
type Level string

const (
	LevelGood        Level = "Good"
	LevelNeutral     Level = "Neutral"
	LevelBad         Level = "Bad"
	LevelUnavailable Level = "Data not available"
)

// UnavailableValue is the raw value reported for a metric missing from a record.
const UnavailableValue = "unavailable"

// MetricRecord holds one security's metric values keyed by metric name.
// A missing key or a nil value means the metric is absent.
type MetricRecord map[string]any

// Lookup returns the value for metric and whether it is present.
// A legitimate zero is present.
func (r MetricRecord) Lookup(metric string) (any, bool) {
	v, ok := r[metric]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// RiskAssessment is the classification of one metric for one security.
type RiskAssessment struct {
	Security    string `json:"security"`
	Category    string `json:"category"`
	Metric      string `json:"metric"`
	RawValue    any    `json:"raw_value"`
	Level       Level  `json:"level"`
	Explanation string `json:"explanation"`
	Color       string `json:"color"`
}
