package risk

import (
	"github.com/rs/zerolog"

	"RiskSentinel/internal/model"
)

// Builder turns metric records into risk assessments.
type Builder struct {
	descriptions Descriptions
	log          zerolog.Logger
}

// NewBuilder creates a Builder using the given explanation table.
func NewBuilder(descriptions Descriptions, log zerolog.Logger) *Builder {
	if descriptions == nil {
		descriptions = Descriptions{}
	}
	return &Builder{
		descriptions: descriptions,
		log:          log.With().Str("component", "risk_builder").Logger(),
	}
}

// Assess emits one assessment per metric in catalog order.
// The caller must not pass a security that has no record at all.
func (b *Builder) Assess(security string, catalog model.Catalog, record model.MetricRecord) []model.RiskAssessment {
	results := make([]model.RiskAssessment, 0, catalog.MetricCount())
	for _, cat := range catalog.Categories {
		for _, def := range cat.Metrics {
			value, ok := record.Lookup(def.Name)
			if !ok {
				results = append(results, model.RiskAssessment{
					Security: security,
					Category: cat.Name,
					Metric:   def.Name,
					RawValue: model.UnavailableValue,
					Level:    model.LevelUnavailable,
					Color:    "black",
				})
				continue
			}

			level := Classify(value, def.Lower, def.Upper)
			if level == model.LevelUnavailable {
				b.log.Debug().
					Str("security", security).
					Str("metric", def.Name).
					Interface("value", value).
					Msg("unparseable metric value")
			}
			results = append(results, model.RiskAssessment{
				Security:    security,
				Category:    cat.Name,
				Metric:      def.Name,
				RawValue:    value,
				Level:       level,
				Explanation: b.descriptions.Describe(def.Name, level),
				Color:       Color(level),
			})
		}
	}
	return results
}

// AssessAll assesses every security in order. Securities without a record
// are skipped and returned in missing.
func (b *Builder) AssessAll(securities []string, catalog model.Catalog, records map[string]model.MetricRecord) (assessments []model.RiskAssessment, missing []string) {
	for _, sec := range securities {
		record, ok := records[sec]
		if !ok {
			b.log.Warn().Str("security", sec).Msg("no data found for security")
			missing = append(missing, sec)
			continue
		}
		assessments = append(assessments, b.Assess(sec, catalog, record)...)
	}
	return assessments, missing
}
