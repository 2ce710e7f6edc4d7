package analyzer

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"RiskSentinel/internal/calculator"
	"RiskSentinel/internal/collector"
	"RiskSentinel/internal/model"
	"RiskSentinel/internal/risk"
)

// RecordSource supplies per-security metric records for one run.
type RecordSource func() (map[string]model.MetricRecord, error)

// FileRecords reads the metrics CSV at path on every call.
func FileRecords(path string) RecordSource {
	return func() (map[string]model.MetricRecord, error) {
		return collector.LoadMetricRecords(path)
	}
}

// Options describe what a run analyzes.
type Options struct {
	Securities    []string
	Benchmark     string
	Catalog       model.Catalog
	Records       RecordSource // nil means no spreadsheet data
	DeriveMetrics bool
	Inflation     model.InflationSeries
}

// Analyzer recomputes a full snapshot from scratch on every Run.
// It holds no state between runs.
type Analyzer struct {
	collector *collector.Collector
	builder   *risk.Builder
	engine    calculator.Engine
	opts      Options
	log       zerolog.Logger
}

// New creates an Analyzer.
func New(col *collector.Collector, builder *risk.Builder, engine calculator.Engine, opts Options, log zerolog.Logger) *Analyzer {
	return &Analyzer{
		collector: col,
		builder:   builder,
		engine:    engine,
		opts:      opts,
		log:       log.With().Str("component", "analyzer").Logger(),
	}
}

// Run fetches all inputs, then assesses and evaluates the portfolio.
func (a *Analyzer) Run(ctx context.Context) (*model.Snapshot, error) {
	runID := uuid.NewString()
	log := a.log.With().Str("run_id", runID).Logger()
	start := time.Now()

	data, err := a.collector.Collect(ctx, a.opts.Securities, a.opts.Benchmark)
	if err != nil {
		return nil, fmt.Errorf("collect market data: %w", err)
	}

	records := make(map[string]model.MetricRecord)
	if a.opts.Records != nil {
		loaded, err := a.opts.Records()
		if err != nil {
			return nil, fmt.Errorf("load metric records: %w", err)
		}
		// Merging below must not write into the source's map.
		for sym, rec := range loaded {
			records[sym] = rec
		}
	}

	var held []model.PriceSeries
	correlations := make(map[string]*float64)
	for _, sym := range a.opts.Securities {
		series, ok := data.Prices[sym]
		if !ok {
			continue
		}
		held = append(held, series)
		correlations[sym] = calculator.CorrelateInflation(series, a.opts.Inflation)
		if a.opts.DeriveMetrics {
			records[sym] = calculator.MergeRecords(records[sym], a.engine.DeriveMetrics(series, data.Benchmark))
		}
	}

	assessments, missing := a.builder.AssessAll(a.opts.Securities, a.opts.Catalog, records)
	snap := &model.Snapshot{
		RunID:                runID,
		GeneratedAt:          time.Now(),
		Securities:           a.opts.Securities,
		Assessments:          assessments,
		MissingSecurities:    missing,
		Performance:          a.engine.Evaluate(held, data.Benchmark),
		InflationCorrelation: correlations,
	}

	log.Info().
		Int("securities", len(a.opts.Securities)).
		Int("priced", len(held)).
		Int("assessments", len(assessments)).
		Strs("missing", missing).
		Dur("elapsed", time.Since(start)).
		Msg("analysis complete")
	return snap, nil
}
