package calculator

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// zeroTolerance absorbs float noise when testing a dispersion for zero.
// A constant series such as repeated 0.1 returns does not yield an exact 0.
const zeroTolerance = 1e-12

func nearZero(x float64) bool {
	return math.Abs(x) < zeroTolerance
}

// flat reports whether data has no dispersion, judged on the standard deviation.
func flat(data []float64) bool {
	return nearZero(StdDev(data))
}

// Mean calculates the arithmetic mean; 0 for empty input.
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	return stat.Mean(data, nil)
}

// StdDev calculates the sample standard deviation; 0 for fewer than 2 values.
func StdDev(data []float64) float64 {
	if len(data) < 2 {
		return 0
	}
	return stat.StdDev(data, nil)
}

// Variance calculates the sample variance; 0 for fewer than 2 values.
func Variance(data []float64) float64 {
	if len(data) < 2 {
		return 0
	}
	return stat.Variance(data, nil)
}

// Covariance calculates the sample covariance of two equal-length datasets.
func Covariance(x, y []float64) float64 {
	if len(x) < 2 || len(x) != len(y) {
		return 0
	}
	return stat.Covariance(x, y, nil)
}

// Correlation returns the Pearson coefficient, or nil when either side has
// no variance or the lengths differ.
func Correlation(x, y []float64) *float64 {
	if len(x) < 2 || len(x) != len(y) {
		return nil
	}
	if flat(x) || flat(y) {
		return nil
	}
	c := stat.Correlation(x, y, nil)
	if math.IsNaN(c) {
		return nil
	}
	return &c
}

// Quantile returns the empirical p-quantile of data.
func Quantile(p float64, data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	sorted := make([]float64, len(data))
	copy(sorted, data)
	sort.Float64s(sorted)
	return stat.Quantile(p, stat.Empirical, sorted, nil)
}

func ptr(v float64) *float64 { return &v }
