package model

import "time"

// PerformanceReport holds the portfolio ratios of one recompute.
// A nil field means the ratio is undefined for the given input.
type PerformanceReport struct {
	ROI              *float64 `json:"roi"`
	Sharpe           *float64 `json:"sharpe"`
	Sortino          *float64 `json:"sortino"`
	Treynor          *float64 `json:"treynor"`
	InformationRatio *float64 `json:"information_ratio"`
	Turnover         *float64 `json:"turnover"` // rough proxy, not trade accounting
}

// Snapshot is the full output of one analysis run.
type Snapshot struct {
	RunID                string
	GeneratedAt          time.Time
	Securities           []string
	Assessments          []RiskAssessment
	MissingSecurities    []string
	Performance          PerformanceReport
	InflationCorrelation map[string]*float64
}
