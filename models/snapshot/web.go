package snapshot

type WebTotals struct {
	Sessions        int     `json:"sessions"`
	EngagedSessions int     `json:"engagedSessions"`
	EngagementRate  float64 `json:"engagementRate"`
	Users           int     `json:"users"`
	NewUsers        int     `json:"newUsers"`
	PageViews       int     `json:"pageViews"`
}

func (t WebTotals) Metrics() map[string]float64 {
	return map[string]float64{
		"sessions":        float64(t.Sessions),
		"engagedSessions": float64(t.EngagedSessions),
		"engagementRate":  t.EngagementRate,
		"users":           float64(t.Users),
		"newUsers":        float64(t.NewUsers),
		"pageViews":       float64(t.PageViews),
	}
}

type ChannelRow struct {
	Channel         string  `json:"channel"`
	Sessions        int     `json:"sessions"`
	EngagedSessions int     `json:"engagedSessions"`
	EngagementRate  float64 `json:"engagementRate"`
	Share           float64 `json:"share"`
}

type PageRow struct {
	Path              string  `json:"path"`
	Views             int     `json:"views"`
	Users             int     `json:"users"`
	AvgEngagementTime float64 `json:"avgEngagementTime"`
}

type CountryRow struct {
	Country  string  `json:"country"`
	Users    int     `json:"users"`
	NewUsers int     `json:"newUsers"`
	Share    float64 `json:"share"`
}

type WebSnapshot struct {
	Totals       WebTotals    `json:"totals"`
	Channels     []ChannelRow `json:"channels"`
	TopPages     []PageRow    `json:"topPages"`
	TopCountries []CountryRow `json:"topCountries"`
	Comparison   *WebTotals   `json:"comparison"`
	Change       Change       `json:"change"`
}
