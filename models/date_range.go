package models

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidRange is returned when a range or selection fails validation.
var ErrInvalidRange = errors.New("invalid date range")

const DAY_LAYOUT = "2006-01-02"

// DateRange is an inclusive span of whole UTC days. Start sits at the first
// instant of its day and End at the last instant of its day.
type DateRange struct {
	Start time.Time `json:"startDate"`
	End   time.Time `json:"endDate"`
}

// NewDateRange builds a range covering every day from start to end. A start
// after end is rejected, never swapped.
func NewDateRange(start, end time.Time) (DateRange, error) {
	if start.IsZero() || end.IsZero() {
		return DateRange{}, fmt.Errorf("%w: missing bound", ErrInvalidRange)
	}
	s := StartOfDay(start)
	e := StartOfDay(end)
	if s.After(e) {
		return DateRange{}, fmt.Errorf("%w: start %s is after end %s", ErrInvalidRange,
			s.Format(DAY_LAYOUT), e.Format(DAY_LAYOUT))
	}
	return DateRange{Start: s, End: EndOfDay(e)}, nil
}

// ParseDateRange builds a range from two YYYY-MM-DD strings.
func ParseDateRange(start, end string) (DateRange, error) {
	if start == "" || end == "" {
		return DateRange{}, fmt.Errorf("%w: missing bound", ErrInvalidRange)
	}
	s, err := time.Parse(DAY_LAYOUT, start)
	if err != nil {
		return DateRange{}, fmt.Errorf("%w: start %q: %v", ErrInvalidRange, start, err)
	}
	e, err := time.Parse(DAY_LAYOUT, end)
	if err != nil {
		return DateRange{}, fmt.Errorf("%w: end %q: %v", ErrInvalidRange, end, err)
	}
	return NewDateRange(s, e)
}

// Contains reports whether t falls inside the range, bounds included.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// Validate checks the ordering invariant of an already built range.
func (r DateRange) Validate() error {
	if r.Start.IsZero() || r.End.IsZero() {
		return fmt.Errorf("%w: missing bound", ErrInvalidRange)
	}
	if r.Start.After(r.End) {
		return fmt.Errorf("%w: start is after end", ErrInvalidRange)
	}
	return nil
}

// Key is a stable textual form used for cache keys.
func (r DateRange) Key() string {
	return r.Start.Format(DAY_LAYOUT) + "_" + r.End.Format(DAY_LAYOUT)
}

func (r DateRange) String() string {
	return fmt.Sprintf("[%s .. %s]", r.Start.Format(DAY_LAYOUT), r.End.Format(DAY_LAYOUT))
}

// StartOfDay truncates t to 00:00:00 UTC of its calendar day.
func StartOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// EndOfDay returns the last representable instant of t's UTC day.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// DateRangeSelection is the current reporting window plus an optional
// comparison window. Comparison is ignored unless ComparisonEnabled.
type DateRangeSelection struct {
	Current           DateRange  `json:"current"`
	Comparison        *DateRange `json:"comparison"`
	ComparisonEnabled bool       `json:"comparisonEnabled"`
}

// NewSelection builds a selection without a comparison window.
func NewSelection(current DateRange) DateRangeSelection {
	return DateRangeSelection{Current: current}
}

// NewComparisonSelection builds a selection with comparison enabled.
func NewComparisonSelection(current, comparison DateRange) DateRangeSelection {
	return DateRangeSelection{Current: current, Comparison: &comparison, ComparisonEnabled: true}
}

// Validate enforces the selection invariants before any filtering happens.
func (s DateRangeSelection) Validate() error {
	if err := s.Current.Validate(); err != nil {
		return fmt.Errorf("current: %w", err)
	}
	if !s.ComparisonEnabled {
		return nil
	}
	if s.Comparison == nil {
		return fmt.Errorf("%w: comparison enabled without a comparison range", ErrInvalidRange)
	}
	if err := s.Comparison.Validate(); err != nil {
		return fmt.Errorf("comparison: %w", err)
	}
	return nil
}

// Normalize validates the selection and snaps every range to whole UTC
// days, so selections that filter alike also share a Key.
func (s DateRangeSelection) Normalize() (DateRangeSelection, error) {
	if err := s.Validate(); err != nil {
		return DateRangeSelection{}, err
	}
	current, err := NewDateRange(s.Current.Start, s.Current.End)
	if err != nil {
		return DateRangeSelection{}, fmt.Errorf("current: %w", err)
	}
	c, ok := s.ComparisonRange()
	if !ok {
		return NewSelection(current), nil
	}
	comparison, err := NewDateRange(c.Start, c.End)
	if err != nil {
		return DateRangeSelection{}, fmt.Errorf("comparison: %w", err)
	}
	return NewComparisonSelection(current, comparison), nil
}

// ComparisonRange returns the comparison window when it is in effect.
func (s DateRangeSelection) ComparisonRange() (DateRange, bool) {
	if !s.ComparisonEnabled || s.Comparison == nil {
		return DateRange{}, false
	}
	return *s.Comparison, true
}

// Key is a stable textual form used for cache keys.
func (s DateRangeSelection) Key() string {
	if c, ok := s.ComparisonRange(); ok {
		return s.Current.Key() + "_vs_" + c.Key()
	}
	return s.Current.Key()
}

// AvailableDateBounds is the overall span of dates found across datasets.
type AvailableDateBounds struct {
	Earliest time.Time `json:"earliest"`
	Latest   time.Time `json:"latest"`
	Fallback bool      `json:"fallback"`
}
