package analyzer

import (
	"math"
	"sort"
	"strings"
	"time"

	"marketing-dashboard/models"
	"marketing-dashboard/models/snapshot"
	"marketing-dashboard/util"
)

const (
	TOP_N      = 5
	TOP_N_WIDE = 10
)

// NOT_SET labels rows whose grouping column is blank, the way GA does.
const NOT_SET = "(not set)"

type metricSet interface {
	Metrics() map[string]float64
}

// comparePeriods returns the comparison totals and per-metric change, or
// nils when comparison is off.
func comparePeriods[T metricSet](sel models.DateRangeSelection, current T, totals func(models.DateRange) T) (*T, snapshot.Change) {
	r, ok := sel.ComparisonRange()
	if !ok {
		return nil, nil
	}
	previous := totals(r)
	return &previous, snapshot.NewChange(current.Metrics(), previous.Metrics())
}

// topN sorts items by key descending, keeping file order between ties,
// and truncates to n. The result is never nil.
func topN[T any](items []T, n int, key func(T) float64) []T {
	sorted := make([]T, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return key(sorted[i]) > key(sorted[j])
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

func roundInt(f float64) int {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return int(math.Round(f))
}

func dayKey(t time.Time) string {
	return t.UTC().Format(models.DAY_LAYOUT)
}

// isTotalRow spots the summary line some exports put above or below the data.
func isTotalRow(label string) bool {
	return strings.EqualFold(strings.TrimSpace(label), "total")
}

// filterSource filters one named dataset for a range using the source's
// configured date columns and parser.
func filterSource(ds Datasets, parsers ParserSet, name string, r models.DateRange) models.RawRowSet {
	set, _ := FilterDataset(ds.Dataset(name), r, DateFieldsFor(name), parsers.For(name))
	return set
}

// sumField adds up one resolved numeric field over every row.
func sumField(rows models.RawRowSet, candidates []string) float64 {
	var total float64
	for _, row := range rows.Rows {
		total += util.Resolve(row, candidates, 0)
	}
	return total
}

// groupTotals sums value per label and returns labels in first-seen order.
func groupTotals(rows models.RawRowSet, labelFields, valueFields []string) ([]string, map[string]float64) {
	order := []string{}
	totals := map[string]float64{}
	for _, row := range rows.Rows {
		label := util.ResolveString(row, labelFields, NOT_SET)
		if isTotalRow(label) {
			continue
		}
		if _, seen := totals[label]; !seen {
			order = append(order, label)
		}
		totals[label] += util.Resolve(row, valueFields, 0)
	}
	return order, totals
}
