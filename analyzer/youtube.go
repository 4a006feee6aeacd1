package analyzer

import (
	"strings"

	"marketing-dashboard/config"
	"marketing-dashboard/models"
	"marketing-dashboard/models/snapshot"
	"marketing-dashboard/util"
)

// YouTubeAnalyzer covers channel content and audience breakdowns.
type YouTubeAnalyzer struct {
	parsers ParserSet
}

func NewYouTubeAnalyzer(parsers ParserSet) *YouTubeAnalyzer {
	return &YouTubeAnalyzer{parsers: parsers}
}

func (a *YouTubeAnalyzer) Platform() string {
	return snapshot.PLATFORM_YOUTUBE
}

func (a *YouTubeAnalyzer) Analyze(ds Datasets, sel models.DateRangeSelection) snapshot.YouTubeSnapshot {
	videos := a.videos(ds, sel.Current)
	totals := youtubeTotals(videos)

	out := snapshot.YouTubeSnapshot{
		Totals: totals,
		TopVideos: topN(videos, TOP_N, func(v snapshot.YouTubeVideo) float64 {
			return float64(v.Views)
		}),
		Age:            a.buckets(ds, config.YOUTUBE_AGE, ytAgeLabelFields, sel.Current),
		Gender:         a.buckets(ds, config.YOUTUBE_GENDER, ytGenderLabelFields, sel.Current),
		TopGeographies: a.geographies(ds, sel.Current),
		Subscription:   a.subscription(ds, sel.Current),
	}
	out.Comparison, out.Change = comparePeriods(sel, totals, func(r models.DateRange) snapshot.YouTubeTotals {
		return youtubeTotals(a.videos(ds, r))
	})
	return out
}

func (a *YouTubeAnalyzer) videos(ds Datasets, r models.DateRange) []snapshot.YouTubeVideo {
	rows := filterSource(ds, a.parsers, config.YOUTUBE_CONTENT, r)
	parser := a.parsers.For(config.YOUTUBE_CONTENT)

	out := make([]snapshot.YouTubeVideo, 0, rows.Len())
	for _, row := range rows.Rows {
		if content, ok := row.GetFold("Content"); ok && isTotalRow(content) {
			continue
		}
		v := snapshot.YouTubeVideo{
			Title:          util.ResolveString(row, ytTitleFields, ""),
			Views:          util.ResolveInt(row, ytViewsFields, 0),
			WatchTimeHours: util.Resolve(row, ytWatchFields, 0),
			Subscribers:    util.ResolveInt(row, ytSubscribersFields, 0),
			Impressions:    util.ResolveInt(row, ytImpressionsFields, 0),
			CTR:            util.Resolve(row, ytCTRFields, 0),
		}
		if isTotalRow(v.Title) {
			continue
		}
		if t, ok := RowDate(row, ytDateFields, parser); ok {
			v.PublishTime = dayKey(t)
		}
		out = append(out, v)
	}
	return out
}

// youtubeTotals sums the videos. AvgCTR is weighted by impressions, which
// makes it total clicks over total impressions.
func youtubeTotals(videos []snapshot.YouTubeVideo) snapshot.YouTubeTotals {
	t := snapshot.YouTubeTotals{Videos: len(videos)}
	var weightedCTR float64
	for _, v := range videos {
		t.Views += v.Views
		t.WatchTimeHours += v.WatchTimeHours
		t.Subscribers += v.Subscribers
		t.Impressions += v.Impressions
		weightedCTR += v.CTR * float64(v.Impressions)
	}
	if t.Impressions > 0 {
		t.AvgCTR = weightedCTR / float64(t.Impressions)
	}
	return t
}

// buckets reads a label/share breakdown. Percent is each bucket's share of
// the summed values, so the buckets add up to 100 whatever the export
// reported.
func (a *YouTubeAnalyzer) buckets(ds Datasets, source string, labelFields []string, r models.DateRange) []snapshot.Bucket {
	rows := filterSource(ds, a.parsers, source, r)
	order, values := groupTotals(rows, labelFields, ytShareValueFields)
	return toBuckets(order, values)
}

func toBuckets(order []string, values map[string]float64) []snapshot.Bucket {
	var sum float64
	for _, label := range order {
		sum += values[label]
	}
	out := make([]snapshot.Bucket, 0, len(order))
	for _, label := range order {
		out = append(out, snapshot.Bucket{
			Label:   label,
			Value:   values[label],
			Percent: snapshot.Ratio(values[label], sum),
		})
	}
	return out
}

func (a *YouTubeAnalyzer) geographies(ds Datasets, r models.DateRange) []snapshot.Geography {
	rows := filterSource(ds, a.parsers, config.YOUTUBE_GEOGRAPHY, r)
	order, views := groupTotals(rows, ytGeoLabelFields, ytViewsFields)
	_, watch := groupTotals(rows, ytGeoLabelFields, ytWatchFields)

	var total float64
	for _, country := range order {
		total += views[country]
	}
	out := make([]snapshot.Geography, 0, len(order))
	for _, country := range order {
		out = append(out, snapshot.Geography{
			Country:        country,
			Views:          roundInt(views[country]),
			WatchTimeHours: watch[country],
			Percent:        snapshot.Ratio(views[country], total),
		})
	}
	return topN(out, TOP_N_WIDE, func(g snapshot.Geography) float64 { return float64(g.Views) })
}

// subscription splits views into subscribed and not subscribed.
func (a *YouTubeAnalyzer) subscription(ds Datasets, r models.DateRange) snapshot.SubscriptionShare {
	rows := filterSource(ds, a.parsers, config.YOUTUBE_SUBSCRIPTION_STATUS, r)
	order, views := groupTotals(rows, ytSubLabelFields, ytViewsFields)

	share := snapshot.SubscriptionShare{Buckets: toBuckets(order, views)}
	for _, label := range order {
		if isSubscribedLabel(label) {
			share.SubscribedViews += roundInt(views[label])
		} else {
			share.NonSubscribedViews += roundInt(views[label])
		}
	}
	total := float64(share.SubscribedViews + share.NonSubscribedViews)
	share.SubscribedPct = snapshot.Ratio(float64(share.SubscribedViews), total)
	share.NonSubscribedPct = snapshot.Ratio(float64(share.NonSubscribedViews), total)
	return share
}

func isSubscribedLabel(label string) bool {
	l := strings.ToLower(label)
	if strings.Contains(l, "not") || strings.Contains(l, "non") || strings.Contains(l, "unsub") {
		return false
	}
	return strings.Contains(l, "subscribed")
}
