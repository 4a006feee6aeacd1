package analyzer

import (
	"marketing-dashboard/config"
	"marketing-dashboard/models"
	"marketing-dashboard/models/snapshot"
)

var facebookPages = pageSources{
	follows:      config.FB_FOLLOWS,
	reach:        config.FB_REACH,
	visits:       config.FB_VISITS,
	interactions: config.FB_INTERACTIONS,
}

// FacebookAnalyzer covers page metrics, posts and videos of a Facebook page.
type FacebookAnalyzer struct {
	parsers ParserSet
}

func NewFacebookAnalyzer(parsers ParserSet) *FacebookAnalyzer {
	return &FacebookAnalyzer{parsers: parsers}
}

func (a *FacebookAnalyzer) Platform() string {
	return snapshot.PLATFORM_FACEBOOK
}

func (a *FacebookAnalyzer) Analyze(ds Datasets, sel models.DateRangeSelection) snapshot.FacebookSnapshot {
	totals := pageTotals(ds, a.parsers, facebookPages, sel.Current)
	out := snapshot.FacebookSnapshot{
		PageTotals: totals,
		TopVideos:  topN(socialPosts(ds, a.parsers, config.FB_VIDEOS, sel.Current), TOP_N, byReach),
		TopPosts:   topN(socialPosts(ds, a.parsers, config.FB_POSTS, sel.Current), TOP_N, byReach),
		Daily:      pageDaily(ds, a.parsers, facebookPages, sel.Current),
	}
	out.Comparison, out.Change = comparePeriods(sel, totals, func(r models.DateRange) snapshot.PageTotals {
		return pageTotals(ds, a.parsers, facebookPages, r)
	})
	return out
}
