package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"marketing-dashboard/config"
)

type ranked struct {
	name  string
	score float64
}

func TestTopN_StableOnTies(t *testing.T) {
	items := []ranked{{"a", 1}, {"b", 3}, {"c", 3}, {"d", 2}, {"e", 3}}

	got := topN(items, 3, func(r ranked) float64 { return r.score })

	assert.Equal(t, []ranked{{"b", 3}, {"c", 3}, {"e", 3}}, got)
	// input order is left alone
	assert.Equal(t, "a", items[0].name)
}

func TestTopN_NeverNil(t *testing.T) {
	got := topN([]ranked(nil), 5, func(r ranked) float64 { return r.score })

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestGroupTotals_SkipsTotalsAndLabelsBlanks(t *testing.T) {
	rows := csvSet(t, config.GA_TRAFFIC_ACQUISITION,
		"Session default channel group,Sessions\n"+
			"Organic Search,10\n"+
			",4\n"+
			"Direct,5\n"+
			"Organic Search,2\n"+
			"Total,21\n")

	order, totals := groupTotals(rows, gaChannelFields, gaSessionsFields)

	assert.Equal(t, []string{"Organic Search", NOT_SET, "Direct"}, order)
	assert.Equal(t, 12.0, totals["Organic Search"])
	assert.Equal(t, 4.0, totals[NOT_SET])
	assert.NotContains(t, totals, "Total")
}

func TestRoundInt(t *testing.T) {
	assert.Equal(t, 3, roundInt(2.5))
	assert.Equal(t, 2, roundInt(2.49))
	assert.Equal(t, 0, roundInt(0))
}
