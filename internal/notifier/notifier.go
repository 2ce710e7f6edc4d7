package notifier

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"RiskSentinel/internal/model"
)

// Notifier receives the snapshot of every completed run.
type Notifier interface {
	Notify(ctx context.Context, snap *model.Snapshot) error
}

// LogNotifier emits a snapshot as structured log entries, one per assessment.
type LogNotifier struct {
	log zerolog.Logger
}

// NewLogNotifier creates a LogNotifier.
func NewLogNotifier(log zerolog.Logger) *LogNotifier {
	return &LogNotifier{log: log.With().Str("component", "notifier").Logger()}
}

func (n *LogNotifier) Notify(ctx context.Context, snap *model.Snapshot) error {
	log := n.log.With().Str("run_id", snap.RunID).Logger()
	for _, a := range snap.Assessments {
		log.Info().
			Str("security", a.Security).
			Str("category", a.Category).
			Str("metric", a.Metric).
			Interface("value", a.RawValue).
			Str("level", string(a.Level)).
			Str("color", a.Color).
			Msg("risk assessment")
	}
	for _, sym := range snap.MissingSecurities {
		log.Warn().Str("security", sym).Msg("no data found for security")
	}

	p := snap.Performance
	ev := log.Info()
	addRatio(ev, "roi", p.ROI)
	addRatio(ev, "sharpe", p.Sharpe)
	addRatio(ev, "sortino", p.Sortino)
	addRatio(ev, "treynor", p.Treynor)
	addRatio(ev, "information_ratio", p.InformationRatio)
	addRatio(ev, "turnover", p.Turnover)
	ev.Msg("portfolio performance")

	for _, sym := range snap.Securities {
		corr, ok := snap.InflationCorrelation[sym]
		if !ok {
			continue
		}
		ev := log.Info().Str("security", sym)
		addRatio(ev, "correlation", corr)
		ev.Msg("inflation correlation")
	}
	return nil
}

func addRatio(ev *zerolog.Event, key string, v *float64) {
	if v == nil {
		ev.Str(key, "n/a")
		return
	}
	ev.Float64(key, *v)
}

// TextNotifier writes the plain-text report to Out.
type TextNotifier struct {
	Out io.Writer
}

func (n *TextNotifier) Notify(ctx context.Context, snap *model.Snapshot) error {
	if _, err := io.WriteString(n.Out, FormatSnapshot(snap)); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// Multi fans a snapshot out to several notifiers and returns the first error.
type Multi []Notifier

func (m Multi) Notify(ctx context.Context, snap *model.Snapshot) error {
	var firstErr error
	for _, n := range m {
		if err := n.Notify(ctx, snap); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
