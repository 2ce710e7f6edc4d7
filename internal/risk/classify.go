package risk

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"RiskSentinel/internal/model"
)

// ParseValue converts a raw metric value to a finite float.
// Numbers of any kind, numeric strings and json.Number are accepted.
func ParseValue(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int8:
		f = float64(n)
	case int16:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint:
		f = float64(n)
	case uint8:
		f = float64(n)
	case uint16:
		f = float64(n)
	case uint32:
		f = float64(n)
	case uint64:
		f = float64(n)
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// Classify maps value onto the band [lower, upper]. Both bounds are inclusive
// and resolve to Neutral. With upper = +Inf a value can never be Bad.
func Classify(value any, lower, upper float64) model.Level {
	v, ok := ParseValue(value)
	if !ok {
		return model.LevelUnavailable
	}
	switch {
	case v < lower:
		return model.LevelGood
	case v <= upper:
		return model.LevelNeutral
	default:
		return model.LevelBad
	}
}

// Color returns the display color for a level.
func Color(level model.Level) string {
	switch level {
	case model.LevelGood:
		return "green"
	case model.LevelNeutral:
		return "yellow"
	case model.LevelBad:
		return "red"
	default:
		return "black"
	}
}
