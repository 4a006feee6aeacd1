package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDateRange_WholeDays(t *testing.T) {
	r, err := NewDateRange(
		time.Date(2024, 1, 1, 15, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 31, 1, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), r.Start)
	assert.True(t, r.Contains(time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC)))
	assert.False(t, r.Contains(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)))
	assert.False(t, r.Contains(time.Date(2023, 12, 31, 23, 59, 59, 0, time.UTC)))
	assert.Equal(t, "2024-01-01_2024-01-31", r.Key())
}

func TestNewDateRange_SingleDay(t *testing.T) {
	r, err := ParseDateRange("2024-03-10", "2024-03-10")
	require.NoError(t, err)

	assert.True(t, r.Contains(time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)))
}

func TestNewDateRange_Rejects(t *testing.T) {
	_, err := ParseDateRange("2024-02-01", "2024-01-01")
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = ParseDateRange("", "2024-01-01")
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = ParseDateRange("2024-13-01", "2024-12-01")
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = NewDateRange(time.Time{}, time.Now())
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestDateRangeSelection_Validate(t *testing.T) {
	cur, err := ParseDateRange("2024-02-01", "2024-02-29")
	require.NoError(t, err)
	prev, err := ParseDateRange("2024-01-01", "2024-01-31")
	require.NoError(t, err)

	assert.NoError(t, NewSelection(cur).Validate())
	assert.NoError(t, NewComparisonSelection(cur, prev).Validate())

	missing := DateRangeSelection{Current: cur, ComparisonEnabled: true}
	assert.ErrorIs(t, missing.Validate(), ErrInvalidRange)

	inverted := DateRange{Start: cur.End, End: cur.Start}
	assert.ErrorIs(t, NewSelection(inverted).Validate(), ErrInvalidRange)
	assert.ErrorIs(t, NewComparisonSelection(cur, inverted).Validate(), ErrInvalidRange)

	// A comparison range that is present but disabled is ignored.
	disabled := DateRangeSelection{Current: cur, Comparison: &inverted}
	assert.NoError(t, disabled.Validate())
	_, ok := disabled.ComparisonRange()
	assert.False(t, ok)
}

func TestDateRangeSelection_Key(t *testing.T) {
	cur, _ := ParseDateRange("2024-02-01", "2024-02-29")
	prev, _ := ParseDateRange("2024-01-01", "2024-01-31")

	assert.Equal(t, "2024-02-01_2024-02-29", NewSelection(cur).Key())
	assert.Equal(t, "2024-02-01_2024-02-29_vs_2024-01-01_2024-01-31", NewComparisonSelection(cur, prev).Key())
}

func TestDateRangeSelection_Normalize(t *testing.T) {
	raw := DateRangeSelection{
		Current: DateRange{
			Start: time.Date(2024, 1, 1, 9, 30, 0, 0, time.UTC),
			End:   time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
		},
		Comparison: &DateRange{
			Start: time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2023, 12, 31, 12, 0, 0, 0, time.UTC),
		},
		ComparisonEnabled: true,
	}
	cur, err := ParseDateRange("2024-01-01", "2024-01-31")
	require.NoError(t, err)
	prev, err := ParseDateRange("2023-12-01", "2023-12-31")
	require.NoError(t, err)

	got, err := raw.Normalize()

	require.NoError(t, err)
	assert.Equal(t, NewComparisonSelection(cur, prev), got)
	assert.True(t, got.Current.Contains(time.Date(2024, 1, 31, 18, 0, 0, 0, time.UTC)))
}

func TestDateRangeSelection_NormalizeDropsDisabledComparison(t *testing.T) {
	cur, _ := ParseDateRange("2024-01-01", "2024-01-31")
	inverted := DateRange{Start: cur.End, End: cur.Start}

	got, err := DateRangeSelection{Current: cur, Comparison: &inverted}.Normalize()

	require.NoError(t, err)
	assert.Nil(t, got.Comparison)
	assert.False(t, got.ComparisonEnabled)
}

func TestDateRangeSelection_NormalizeRejects(t *testing.T) {
	_, err := DateRangeSelection{ComparisonEnabled: true}.Normalize()
	assert.ErrorIs(t, err, ErrInvalidRange)
}
