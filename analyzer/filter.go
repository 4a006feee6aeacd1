package analyzer

import (
	"time"

	"marketing-dashboard/models"
	"marketing-dashboard/util"
)

// DefaultDateFields are the date columns tried when a source has no more
// specific list.
var DefaultDateFields = []string{"Date", "Publish time", "Day", "Start date"}

// RowDate resolves the first candidate column of row that parses as a date.
// Exact column names are tried before case-insensitive ones.
func RowDate(row models.RawRow, candidates []string, parser *util.DateParser) (time.Time, bool) {
	for _, name := range candidates {
		raw, ok := row.GetFold(name)
		if !ok {
			continue
		}
		if t, ok := parser.Parse(raw); ok {
			return t, true
		}
	}
	return time.Time{}, false
}

// FilterByRange keeps the rows whose resolved date lies within r, bounds
// included. Rows without a resolvable date are always dropped.
func FilterByRange(rows models.RawRowSet, r models.DateRange, candidates []string, parser *util.DateParser) models.RawRowSet {
	if parser == nil {
		parser = util.DefaultDateParser()
	}
	kept := make([]models.RawRow, 0, len(rows.Rows))
	for _, row := range rows.Rows {
		t, ok := RowDate(row, candidates, parser)
		if !ok {
			continue
		}
		if r.Contains(t) {
			kept = append(kept, row)
		}
	}
	return rows.WithRows(kept)
}

// IsDated reports whether the set's header carries any of the candidate
// date columns.
func IsDated(rows models.RawRowSet, candidates []string) bool {
	for _, name := range candidates {
		if rows.HasColumnFold(name) {
			return true
		}
	}
	return false
}

// FilterDataset applies FilterByRange to dated exports. Exports without any
// date column are period-agnostic aggregates and come back whole, with
// dated set to false.
func FilterDataset(rows models.RawRowSet, r models.DateRange, candidates []string, parser *util.DateParser) (filtered models.RawRowSet, dated bool) {
	if !IsDated(rows, candidates) {
		return rows, false
	}
	return FilterByRange(rows, r, candidates, parser), true
}
