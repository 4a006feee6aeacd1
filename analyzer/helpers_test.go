package analyzer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"marketing-dashboard/models"
	"marketing-dashboard/util"
)

func csvSet(t *testing.T, name, data string) models.RawRowSet {
	t.Helper()
	set, err := util.ParseCSV(name, []byte(data))
	require.NoError(t, err)
	return set
}

func datasets(t *testing.T, files map[string]string) DatasetMap {
	t.Helper()
	out := DatasetMap{}
	for name, data := range files {
		out[name] = csvSet(t, name, data)
	}
	return out
}

func dateRange(t *testing.T, start, end string) models.DateRange {
	t.Helper()
	r, err := models.ParseDateRange(start, end)
	require.NoError(t, err)
	return r
}

func selection(t *testing.T, start, end string) models.DateRangeSelection {
	return models.NewSelection(dateRange(t, start, end))
}

func comparison(t *testing.T, start, end, cStart, cEnd string) models.DateRangeSelection {
	return models.NewComparisonSelection(dateRange(t, start, end), dateRange(t, cStart, cEnd))
}

func utcDay(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
