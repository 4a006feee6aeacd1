package analyzer

import (
	"marketing-dashboard/config"
	"marketing-dashboard/models"
	"marketing-dashboard/models/snapshot"
	"marketing-dashboard/util"
)

// WebAnalyzer covers the Google Analytics acquisition, pages and
// demographics exports.
type WebAnalyzer struct {
	parsers ParserSet
}

func NewWebAnalyzer(parsers ParserSet) *WebAnalyzer {
	return &WebAnalyzer{parsers: parsers}
}

func (a *WebAnalyzer) Platform() string {
	return snapshot.PLATFORM_WEB
}

func (a *WebAnalyzer) Analyze(ds Datasets, sel models.DateRangeSelection) snapshot.WebSnapshot {
	totals := a.totals(ds, sel.Current)
	out := snapshot.WebSnapshot{
		Totals:       totals,
		Channels:     a.channels(ds, sel.Current),
		TopPages:     a.pages(ds, sel.Current),
		TopCountries: a.countries(ds, sel.Current),
	}
	out.Comparison, out.Change = comparePeriods(sel, totals, func(r models.DateRange) snapshot.WebTotals {
		return a.totals(ds, r)
	})
	return out
}

// totals uses engaged sessions over sessions for the engagement rate.
func (a *WebAnalyzer) totals(ds Datasets, r models.DateRange) snapshot.WebTotals {
	traffic := filterSource(ds, a.parsers, config.GA_TRAFFIC_ACQUISITION, r)
	demographics := filterSource(ds, a.parsers, config.GA_DEMOGRAPHICS, r)
	pages := filterSource(ds, a.parsers, config.GA_PAGES_AND_SCREENS, r)

	t := snapshot.WebTotals{
		Sessions:        roundInt(sumField(withoutTotals(traffic, gaChannelFields), gaSessionsFields)),
		EngagedSessions: roundInt(sumField(withoutTotals(traffic, gaChannelFields), gaEngagedFields)),
		Users:           roundInt(sumField(withoutTotals(demographics, gaCountryFields), gaUsersFields)),
		NewUsers:        roundInt(sumField(withoutTotals(demographics, gaCountryFields), gaNewUsersFields)),
		PageViews:       roundInt(sumField(withoutTotals(pages, gaPagePathFields), gaPageViewsFields)),
	}
	t.EngagementRate = snapshot.Ratio(float64(t.EngagedSessions), float64(t.Sessions))
	return t
}

func (a *WebAnalyzer) channels(ds Datasets, r models.DateRange) []snapshot.ChannelRow {
	rows := filterSource(ds, a.parsers, config.GA_TRAFFIC_ACQUISITION, r)
	order, sessions := groupTotals(rows, gaChannelFields, gaSessionsFields)
	_, engaged := groupTotals(rows, gaChannelFields, gaEngagedFields)

	var total float64
	for _, ch := range order {
		total += sessions[ch]
	}
	out := make([]snapshot.ChannelRow, 0, len(order))
	for _, ch := range order {
		out = append(out, snapshot.ChannelRow{
			Channel:         ch,
			Sessions:        roundInt(sessions[ch]),
			EngagedSessions: roundInt(engaged[ch]),
			EngagementRate:  snapshot.Ratio(engaged[ch], sessions[ch]),
			Share:           snapshot.Ratio(sessions[ch], total),
		})
	}
	return topN(out, len(out), func(c snapshot.ChannelRow) float64 { return float64(c.Sessions) })
}

func (a *WebAnalyzer) pages(ds Datasets, r models.DateRange) []snapshot.PageRow {
	rows := filterSource(ds, a.parsers, config.GA_PAGES_AND_SCREENS, r)
	index := map[string]int{}
	out := []snapshot.PageRow{}
	weighted := []float64{}
	for _, row := range rows.Rows {
		path := util.ResolveString(row, gaPagePathFields, NOT_SET)
		if isTotalRow(path) {
			continue
		}
		i, ok := index[path]
		if !ok {
			i = len(out)
			index[path] = i
			out = append(out, snapshot.PageRow{Path: path})
			weighted = append(weighted, 0)
		}
		users := util.ResolveInt(row, gaUsersFields, 0)
		out[i].Views += util.ResolveInt(row, gaPageViewsFields, 0)
		out[i].Users += users
		weighted[i] += util.Resolve(row, gaPageEngagementFields, 0) * float64(users)
	}
	for i := range out {
		if out[i].Users > 0 {
			out[i].AvgEngagementTime = weighted[i] / float64(out[i].Users)
		}
	}
	return topN(out, TOP_N_WIDE, func(p snapshot.PageRow) float64 { return float64(p.Views) })
}

func (a *WebAnalyzer) countries(ds Datasets, r models.DateRange) []snapshot.CountryRow {
	rows := filterSource(ds, a.parsers, config.GA_DEMOGRAPHICS, r)
	order, users := groupTotals(rows, gaCountryFields, gaUsersFields)
	_, newUsers := groupTotals(rows, gaCountryFields, gaNewUsersFields)

	var total float64
	for _, c := range order {
		total += users[c]
	}
	out := make([]snapshot.CountryRow, 0, len(order))
	for _, c := range order {
		out = append(out, snapshot.CountryRow{
			Country:  c,
			Users:    roundInt(users[c]),
			NewUsers: roundInt(newUsers[c]),
			Share:    snapshot.Ratio(users[c], total),
		})
	}
	return topN(out, TOP_N_WIDE, func(c snapshot.CountryRow) float64 { return float64(c.Users) })
}

// withoutTotals drops GA's grand-total line, identified by its label column.
func withoutTotals(rows models.RawRowSet, labelFields []string) models.RawRowSet {
	kept := make([]models.RawRow, 0, len(rows.Rows))
	for _, row := range rows.Rows {
		if isTotalRow(util.ResolveString(row, labelFields, "")) {
			continue
		}
		kept = append(kept, row)
	}
	return rows.WithRows(kept)
}
