package analyzer

import (
	"sort"

	"marketing-dashboard/config"
	"marketing-dashboard/models"
	"marketing-dashboard/models/snapshot"
	"marketing-dashboard/util"
)

// UTMAnalyzer rolls the GA UTM export up by campaign, source, platform and
// ad content.
type UTMAnalyzer struct {
	parsers ParserSet
}

func NewUTMAnalyzer(parsers ParserSet) *UTMAnalyzer {
	return &UTMAnalyzer{parsers: parsers}
}

func (a *UTMAnalyzer) Platform() string {
	return snapshot.PLATFORM_UTM
}

type utmRow struct {
	campaign string
	source   string
	platform string
	content  string
	sessions float64
	engaged  float64
	rate     float64
}

func (a *UTMAnalyzer) Analyze(ds Datasets, sel models.DateRangeSelection) snapshot.UTMSnapshot {
	rows := a.rows(ds, sel.Current)
	totals := utmTotals(rows)
	out := snapshot.UTMSnapshot{
		Totals:    totals,
		Campaigns: rollup(rows, func(r utmRow) string { return r.campaign }),
		Sources:   rollup(rows, func(r utmRow) string { return r.source }),
		Platforms: rollup(rows, func(r utmRow) string { return r.platform }),
		Contents:  rollup(rows, func(r utmRow) string { return r.content }),
	}
	out.Comparison, out.Change = comparePeriods(sel, totals, func(r models.DateRange) snapshot.UTMTotals {
		return utmTotals(a.rows(ds, r))
	})
	return out
}

func (a *UTMAnalyzer) rows(ds Datasets, r models.DateRange) []utmRow {
	set := filterSource(ds, a.parsers, config.GA_UTMS, r)
	out := make([]utmRow, 0, set.Len())
	for _, row := range set.Rows {
		u := utmRow{
			campaign: util.ResolveString(row, utmCampaignFields, NOT_SET),
			source:   util.ResolveString(row, utmSourceFields, NOT_SET),
			platform: util.ResolveString(row, utmPlatformFields, NOT_SET),
			content:  util.ResolveString(row, utmContentFields, NOT_SET),
			sessions: util.Resolve(row, gaSessionsFields, 0),
			engaged:  util.Resolve(row, gaEngagedFields, 0),
			rate:     util.Resolve(row, gaEngagementRateFields, 0),
		}
		if isTotalRow(u.campaign) {
			continue
		}
		out = append(out, u)
	}
	return out
}

// utmTotals keeps the per-row averaging of engagement rate used by the
// rollups.
func utmTotals(rows []utmRow) snapshot.UTMTotals {
	t := snapshot.UTMTotals{}
	campaigns := map[string]struct{}{}
	var rateSum, sessions, engaged float64
	for _, r := range rows {
		campaigns[r.campaign] = struct{}{}
		sessions += r.sessions
		engaged += r.engaged
		rateSum += r.rate
	}
	t.Campaigns = len(campaigns)
	t.Sessions = roundInt(sessions)
	t.EngagedSessions = roundInt(engaged)
	if len(rows) > 0 {
		t.AvgEngagementRate = rateSum / float64(len(rows))
	}
	return t
}

// rollup groups rows by key. Each group's engagement rate is
// sum(rate)/count over its rows. Groups come back by sessions descending,
// ties by key, capped at TOP_N_WIDE.
func rollup(rows []utmRow, key func(utmRow) string) []snapshot.UTMGroup {
	type acc struct {
		rows     int
		sessions float64
		engaged  float64
		rateSum  float64
	}
	groups := map[string]*acc{}
	for _, r := range rows {
		k := key(r)
		g, ok := groups[k]
		if !ok {
			g = &acc{}
			groups[k] = g
		}
		g.rows++
		g.sessions += r.sessions
		g.engaged += r.engaged
		g.rateSum += r.rate
	}

	out := make([]snapshot.UTMGroup, 0, len(groups))
	for k, g := range groups {
		out = append(out, snapshot.UTMGroup{
			Key:               k,
			Rows:              g.rows,
			Sessions:          roundInt(g.sessions),
			EngagedSessions:   roundInt(g.engaged),
			AvgEngagementRate: g.rateSum / float64(g.rows),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Sessions != out[j].Sessions {
			return out[i].Sessions > out[j].Sessions
		}
		return out[i].Key < out[j].Key
	})
	if len(out) > TOP_N_WIDE {
		out = out[:TOP_N_WIDE]
	}
	return out
}
