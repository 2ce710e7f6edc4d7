package notifier

import (
	"fmt"
	"strings"

	"RiskSentinel/internal/model"
)

// FormatSnapshot renders a snapshot as a plain-text report.
func FormatSnapshot(snap *model.Snapshot) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("RiskSentinel report | %s | run %s\n\n",
		snap.GeneratedAt.Format("2006-01-02 15:04"), snap.RunID))

	// Per-security assessments, grouped as produced.
	security, category := "", ""
	for _, a := range snap.Assessments {
		if a.Security != security {
			security, category = a.Security, ""
			b.WriteString(fmt.Sprintf("== %s ==\n", security))
		}
		if a.Category != category {
			category = a.Category
			b.WriteString(fmt.Sprintf("  [%s]\n", category))
		}
		b.WriteString(fmt.Sprintf("    %s: %s -> %s (%s)\n", a.Metric, formatRaw(a.RawValue), a.Level, a.Color))
		if a.Explanation != "" {
			b.WriteString(fmt.Sprintf("      %s\n", a.Explanation))
		}
	}
	if len(snap.MissingSecurities) > 0 {
		b.WriteString(fmt.Sprintf("\nNo data found for: %s\n", strings.Join(snap.MissingSecurities, ", ")))
	}

	p := snap.Performance
	b.WriteString("\nPortfolio performance:\n")
	b.WriteString(fmt.Sprintf("  ROI: %s\n", formatPercent(p.ROI)))
	b.WriteString(fmt.Sprintf("  Sharpe: %s\n", formatRatio(p.Sharpe)))
	b.WriteString(fmt.Sprintf("  Sortino: %s\n", formatRatio(p.Sortino)))
	b.WriteString(fmt.Sprintf("  Treynor: %s\n", formatRatio(p.Treynor)))
	b.WriteString(fmt.Sprintf("  Information Ratio: %s\n", formatRatio(p.InformationRatio)))
	b.WriteString(fmt.Sprintf("  Turnover: %s\n", formatRatio(p.Turnover)))

	if len(snap.InflationCorrelation) > 0 {
		b.WriteString("\nCorrelation with inflation:\n")
		for _, sym := range snap.Securities {
			corr, ok := snap.InflationCorrelation[sym]
			if !ok {
				continue
			}
			b.WriteString(fmt.Sprintf("  %s: %s\n", sym, formatRatio(corr)))
		}
	}

	return b.String()
}

func formatRaw(v any) string {
	switch x := v.(type) {
	case float64:
		return fmt.Sprintf("%.4g", x)
	case nil:
		return model.UnavailableValue
	default:
		return fmt.Sprint(x)
	}
}

func formatRatio(v *float64) string {
	if v == nil {
		return "n/a"
	}
	return fmt.Sprintf("%.4f", *v)
}

func formatPercent(v *float64) string {
	if v == nil {
		return "n/a"
	}
	return fmt.Sprintf("%+.2f%%", *v*100)
}
