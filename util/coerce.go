package util

import (
	"math"
	"strconv"
	"strings"
)

// ToInt coerces a loosely formatted value into an int. Empty or invalid
// input yields def. "1,234" is 1234, "12.5%" rounds half up to 13 and
// "-12.5%" to -12, "12.7" truncates to 12.
func ToInt(value any, def int) int {
	switch v := value.(type) {
	case nil:
		return def
	case int:
		return v
	case int32:
		return int(v)
	case int64:
		return int(v)
	case float32:
		return floatToInt(float64(v), def)
	case float64:
		return floatToInt(v, def)
	case string:
		s := cleanNumber(v)
		if s == "" {
			return def
		}
		if strings.HasSuffix(s, "%") {
			f, ok := parseFloat(strings.TrimSuffix(s, "%"))
			if !ok {
				return def
			}
			return floatToInt(math.Floor(f+0.5), def)
		}
		if n, err := strconv.Atoi(s); err == nil {
			return n
		}
		f, ok := parseFloat(s)
		if !ok {
			return def
		}
		return floatToInt(f, def)
	}
	return def
}

// ToFloat coerces a loosely formatted value into a float64. A trailing
// percent sign is stripped but the value is not rescaled.
func ToFloat(value any, def float64) float64 {
	switch v := value.(type) {
	case nil:
		return def
	case int:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case float32:
		return finiteOr(float64(v), def)
	case float64:
		return finiteOr(v, def)
	case string:
		s := cleanNumber(v)
		if s == "" {
			return def
		}
		s = strings.TrimSuffix(s, "%")
		f, ok := parseFloat(s)
		if !ok {
			return def
		}
		return f
	}
	return def
}

func cleanNumber(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	return strings.ReplaceAll(s, ",", "")
}

func parseFloat(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func floatToInt(f float64, def int) int {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return def
	}
	return int(math.Trunc(f))
}

func finiteOr(f, def float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return def
	}
	return f
}
