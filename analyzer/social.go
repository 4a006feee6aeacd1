package analyzer

import (
	"sort"

	"marketing-dashboard/models"
	"marketing-dashboard/models/snapshot"
	"marketing-dashboard/util"
)

// pageSources names the four daily page-metric exports of one account.
type pageSources struct {
	follows      string
	reach        string
	visits       string
	interactions string
}

type pageMetric struct {
	source string
	fields []string
	apply  func(*snapshot.DailyPoint, int)
}

func (p pageSources) metrics() []pageMetric {
	return []pageMetric{
		{p.follows, pageFollowsFields, func(d *snapshot.DailyPoint, v int) { d.Followers += v }},
		{p.reach, pageReachFields, func(d *snapshot.DailyPoint, v int) { d.Reach += v }},
		{p.visits, pageVisitsFields, func(d *snapshot.DailyPoint, v int) { d.Visits += v }},
		{p.interactions, pageInteractionsFields, func(d *snapshot.DailyPoint, v int) { d.Interactions += v }},
	}
}

// pageTotals sums the page exports over r. Engagement is interactions over
// reach in percent, 0 without reach.
func pageTotals(ds Datasets, parsers ParserSet, src pageSources, r models.DateRange) snapshot.PageTotals {
	var acc snapshot.DailyPoint
	for _, m := range src.metrics() {
		rows := filterSource(ds, parsers, m.source, r)
		m.apply(&acc, roundInt(sumField(rows, m.fields)))
	}
	return snapshot.PageTotals{
		Followers:    acc.Followers,
		Reach:        acc.Reach,
		Visits:       acc.Visits,
		Interactions: acc.Interactions,
		Engagement:   snapshot.Ratio(float64(acc.Interactions), float64(acc.Reach)),
	}
}

// pageDaily buckets the page exports by UTC day, oldest first. Rows of
// undated exports cannot be bucketed and are left out.
func pageDaily(ds Datasets, parsers ParserSet, src pageSources, r models.DateRange) []snapshot.DailyPoint {
	days := map[string]*snapshot.DailyPoint{}
	for _, m := range src.metrics() {
		fields := DateFieldsFor(m.source)
		parser := parsers.For(m.source)
		rows, dated := FilterDataset(ds.Dataset(m.source), r, fields, parser)
		if !dated {
			continue
		}
		for _, row := range rows.Rows {
			t, ok := RowDate(row, fields, parser)
			if !ok {
				continue
			}
			key := dayKey(t)
			point, ok := days[key]
			if !ok {
				point = &snapshot.DailyPoint{Date: key}
				days[key] = point
			}
			m.apply(point, roundInt(util.Resolve(row, m.fields, 0)))
		}
	}

	out := make([]snapshot.DailyPoint, 0, len(days))
	for _, p := range days {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// socialPosts reads a post or video export filtered to r, in file order.
func socialPosts(ds Datasets, parsers ParserSet, source string, r models.DateRange) []snapshot.SocialPost {
	rows := filterSource(ds, parsers, source, r)
	parser := parsers.For(source)

	out := make([]snapshot.SocialPost, 0, rows.Len())
	for _, row := range rows.Rows {
		p := snapshot.SocialPost{
			ID:        util.ResolveString(row, postIDFields, ""),
			Title:     util.ResolveString(row, postTitleFields, ""),
			Type:      util.ResolveString(row, postTypeFields, ""),
			Permalink: util.ResolveString(row, postPermalinkFields, ""),
			Reach:     util.ResolveInt(row, postReachFields, 0),
			Views:     roundInt(util.Resolve(row, postViewsFields, 0)),
			Reactions: util.ResolveInt(row, postReactionsFields, 0),
			Comments:  util.ResolveInt(row, postCommentsFields, 0),
			Shares:    util.ResolveInt(row, postSharesFields, 0),
		}
		if isTotalRow(p.Title) {
			continue
		}
		if t, ok := RowDate(row, DateFieldsFor(source), parser); ok {
			p.PublishTime = t.Format("2006-01-02T15:04:05Z07:00")
		}
		if _, ok := util.ResolveKey(row, postInteractionsFields); ok {
			p.Interactions = util.ResolveInt(row, postInteractionsFields, 0)
		} else {
			p.Interactions = p.Reactions + p.Comments + p.Shares + util.ResolveInt(row, postSavesFields, 0)
		}
		p.EngagementRate = snapshot.Ratio(float64(p.Interactions), float64(p.Reach))
		out = append(out, p)
	}
	return out
}

func byReach(p snapshot.SocialPost) float64 {
	return float64(p.Reach)
}
