package snapshot

// UTMGroup is one campaign, source, platform or content value rolled up.
// AvgEngagementRate is the plain mean of the per-row rates, not
// engaged sessions over sessions.
type UTMGroup struct {
	Key               string  `json:"key"`
	Rows              int     `json:"rows"`
	Sessions          int     `json:"sessions"`
	EngagedSessions   int     `json:"engagedSessions"`
	AvgEngagementRate float64 `json:"avgEngagementRate"`
}

type UTMTotals struct {
	Campaigns         int     `json:"campaigns"`
	Sessions          int     `json:"sessions"`
	EngagedSessions   int     `json:"engagedSessions"`
	AvgEngagementRate float64 `json:"avgEngagementRate"`
}

func (t UTMTotals) Metrics() map[string]float64 {
	return map[string]float64{
		"campaigns":         float64(t.Campaigns),
		"sessions":          float64(t.Sessions),
		"engagedSessions":   float64(t.EngagedSessions),
		"avgEngagementRate": t.AvgEngagementRate,
	}
}

type UTMSnapshot struct {
	Totals     UTMTotals  `json:"totals"`
	Campaigns  []UTMGroup `json:"campaigns"`
	Sources    []UTMGroup `json:"sources"`
	Platforms  []UTMGroup `json:"platforms"`
	Contents   []UTMGroup `json:"contents"`
	Comparison *UTMTotals `json:"comparison"`
	Change     Change     `json:"change"`
}
