package snapshot

import "math"

// Change maps a metric name to its period-over-period change in percent.
// A nil entry means the change could not be computed.
type Change map[string]*float64

// PercentChange is (current - previous) / previous * 100, or nil when the
// previous value is zero or the result is not finite.
func PercentChange(current, previous float64) *float64 {
	if previous == 0 || math.IsNaN(previous) || math.IsNaN(current) {
		return nil
	}
	v := (current - previous) / previous * 100
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// NewChange compares two metric sets key by key. Keys missing from
// previous produce nil entries.
func NewChange(current, previous map[string]float64) Change {
	out := make(Change, len(current))
	for k, cur := range current {
		prev, ok := previous[k]
		if !ok {
			out[k] = nil
			continue
		}
		out[k] = PercentChange(cur, prev)
	}
	return out
}

// Ratio is numerator / denominator * 100, or 0 when denominator is not
// positive.
func Ratio(numerator, denominator float64) float64 {
	if denominator <= 0 {
		return 0
	}
	v := numerator / denominator * 100
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
