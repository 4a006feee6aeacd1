package snapshot

type YouTubeTotals struct {
	Videos         int     `json:"videos"`
	Views          int     `json:"views"`
	WatchTimeHours float64 `json:"watchTimeHours"`
	Subscribers    int     `json:"subscribers"`
	Impressions    int     `json:"impressions"`
	AvgCTR         float64 `json:"avgCtr"`
}

func (t YouTubeTotals) Metrics() map[string]float64 {
	return map[string]float64{
		"videos":         float64(t.Videos),
		"views":          float64(t.Views),
		"watchTimeHours": t.WatchTimeHours,
		"subscribers":    float64(t.Subscribers),
		"impressions":    float64(t.Impressions),
		"avgCtr":         t.AvgCTR,
	}
}

type YouTubeVideo struct {
	Title          string  `json:"title"`
	PublishTime    string  `json:"publishTime"`
	Views          int     `json:"views"`
	WatchTimeHours float64 `json:"watchTimeHours"`
	Subscribers    int     `json:"subscribers"`
	Impressions    int     `json:"impressions"`
	CTR            float64 `json:"ctr"`
}

// Bucket is one labelled slice of a breakdown. Value is what the export
// reported; Percent is the bucket's share of the breakdown total.
type Bucket struct {
	Label   string  `json:"label"`
	Value   float64 `json:"value"`
	Percent float64 `json:"percent"`
}

type Geography struct {
	Country        string  `json:"country"`
	Views          int     `json:"views"`
	WatchTimeHours float64 `json:"watchTimeHours"`
	Percent        float64 `json:"percent"`
}

// SubscriptionShare splits views between subscribers and everyone else.
type SubscriptionShare struct {
	SubscribedViews    int      `json:"subscribedViews"`
	NonSubscribedViews int      `json:"nonSubscribedViews"`
	SubscribedPct      float64  `json:"subscribedPct"`
	NonSubscribedPct   float64  `json:"nonSubscribedPct"`
	Buckets            []Bucket `json:"buckets"`
}

type YouTubeSnapshot struct {
	Totals         YouTubeTotals     `json:"totals"`
	TopVideos      []YouTubeVideo    `json:"topVideos"`
	Age            []Bucket          `json:"age"`
	Gender         []Bucket          `json:"gender"`
	TopGeographies []Geography       `json:"topGeographies"`
	Subscription   SubscriptionShare `json:"subscription"`
	Comparison     *YouTubeTotals    `json:"comparison"`
	Change         Change            `json:"change"`
}
