package analyzer

import (
	"marketing-dashboard/config"
	"marketing-dashboard/models"
	"marketing-dashboard/models/snapshot"
)

var instagramPages = pageSources{
	follows:      config.IG_FOLLOWS,
	reach:        config.IG_REACH,
	visits:       config.IG_VISITS,
	interactions: config.IG_INTERACTIONS,
}

// InstagramAnalyzer covers account metrics and posts of an Instagram account.
type InstagramAnalyzer struct {
	parsers ParserSet
}

func NewInstagramAnalyzer(parsers ParserSet) *InstagramAnalyzer {
	return &InstagramAnalyzer{parsers: parsers}
}

func (a *InstagramAnalyzer) Platform() string {
	return snapshot.PLATFORM_INSTAGRAM
}

func (a *InstagramAnalyzer) Analyze(ds Datasets, sel models.DateRangeSelection) snapshot.InstagramSnapshot {
	totals := pageTotals(ds, a.parsers, instagramPages, sel.Current)
	posts := socialPosts(ds, a.parsers, config.IG_POSTS, sel.Current)
	out := snapshot.InstagramSnapshot{
		PageTotals: totals,
		TopPosts:   topN(posts, TOP_N, byReach),
		PostTypes:  postTypes(posts),
		Daily:      pageDaily(ds, a.parsers, instagramPages, sel.Current),
	}
	out.Comparison, out.Change = comparePeriods(sel, totals, func(r models.DateRange) snapshot.PageTotals {
		return pageTotals(ds, a.parsers, instagramPages, r)
	})
	return out
}

// postTypes counts posts and reach per post type, most posts first.
func postTypes(posts []snapshot.SocialPost) []snapshot.TypeBreakdown {
	index := map[string]int{}
	out := []snapshot.TypeBreakdown{}
	for _, p := range posts {
		kind := p.Type
		if kind == "" {
			kind = NOT_SET
		}
		i, ok := index[kind]
		if !ok {
			i = len(out)
			index[kind] = i
			out = append(out, snapshot.TypeBreakdown{Type: kind})
		}
		out[i].Posts++
		out[i].Reach += p.Reach
	}
	return topN(out, len(out), func(t snapshot.TypeBreakdown) float64 { return float64(t.Posts) })
}
