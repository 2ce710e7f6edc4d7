package risk

import "RiskSentinel/internal/model"

// NoDescription is returned for metrics or levels without an explanation.
const NoDescription = "No description available."

// Descriptions maps metric name and level to a human-readable explanation.
type Descriptions map[string]map[model.Level]string

// Describe looks up the explanation for metric at level.
func (d Descriptions) Describe(metric string, level model.Level) string {
	if text, ok := d[metric][level]; ok {
		return text
	}
	return NoDescription
}

// Set registers an explanation, creating the metric entry if needed.
func (d Descriptions) Set(metric string, level model.Level, text string) {
	if d[metric] == nil {
		d[metric] = make(map[model.Level]string)
	}
	d[metric][level] = text
}
