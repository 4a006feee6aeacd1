package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketing-dashboard/util"
)

func TestFilterByRange_InclusiveBounds(t *testing.T) {
	set := csvSet(t, "FB_Posts.csv", "Publish time,Reach\n"+
		"2023-12-31T23:59:59Z,1\n"+
		"2024-01-01T00:00:00Z,2\n"+
		"01/31/2024 23:30,3\n"+
		"2024-02-01,4\n")

	got := FilterByRange(set, dateRange(t, "2024-01-01", "2024-01-31"), []string{"Publish time"}, nil)

	require.Equal(t, 2, got.Len())
	v, _ := got.Rows[0].Get("Reach")
	assert.Equal(t, "2", v)
	v, _ = got.Rows[1].Get("Reach")
	assert.Equal(t, "3", v)
	assert.Equal(t, set.Columns, got.Columns)
}

func TestFilterByRange_UnparseableRowsExcluded(t *testing.T) {
	set := csvSet(t, "GA_UTMs.csv", "Date,Sessions\n2024-01-05,1\nsoon,2\n,3\n")

	got := FilterByRange(set, dateRange(t, "2024-01-01", "2024-01-31"), []string{"Date"}, util.DefaultDateParser())

	assert.Equal(t, 1, got.Len())
}

func TestFilterByRange_CandidateFallbackAndCase(t *testing.T) {
	set := csvSet(t, "IG_Posts.csv", "publish TIME,Date,Reach\n,2024-01-10,1\nbad,bad,2\n")

	got := FilterByRange(set, dateRange(t, "2024-01-01", "2024-01-31"), []string{"Publish time", "Date"}, nil)

	require.Equal(t, 1, got.Len())
}

func TestFilterByRange_DayFirstParser(t *testing.T) {
	set := csvSet(t, "FB_Reach.csv", "Date,Primary\n03/04/2024,1\n")
	r := dateRange(t, "2024-04-01", "2024-04-30")

	assert.Equal(t, 0, FilterByRange(set, r, []string{"Date"}, util.NewDateParser(util.MonthFirst)).Len())
	assert.Equal(t, 1, FilterByRange(set, r, []string{"Date"}, util.NewDateParser(util.DayFirst)).Len())
}

func TestFilterDataset_PeriodAgnostic(t *testing.T) {
	set := csvSet(t, "YouTube_Age.csv", "Viewer age,Views (%)\n18-24,40\n25-34,60\n")

	got, dated := FilterDataset(set, dateRange(t, "2024-01-01", "2024-01-31"), []string{"Date"}, nil)

	assert.False(t, dated)
	assert.Equal(t, 2, got.Len())
}
