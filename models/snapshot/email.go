package snapshot

// EmailTotals are the summed campaign counters for one period.
type EmailTotals struct {
	Campaigns       int     `json:"campaigns"`
	Sent            int     `json:"sent"`
	Opened          int     `json:"opened"`
	Clicked         int     `json:"clicked"`
	OpenRate        float64 `json:"openRate"`
	ClickRate       float64 `json:"clickRate"`
	ClickToOpenRate float64 `json:"clickToOpenRate"`
}

func (t EmailTotals) Metrics() map[string]float64 {
	return map[string]float64{
		"campaigns":       float64(t.Campaigns),
		"sent":            float64(t.Sent),
		"opened":          float64(t.Opened),
		"clicked":         float64(t.Clicked),
		"openRate":        t.OpenRate,
		"clickRate":       t.ClickRate,
		"clickToOpenRate": t.ClickToOpenRate,
	}
}

type EmailCampaign struct {
	Name      string  `json:"name"`
	SendDate  string  `json:"sendDate"`
	Sent      int     `json:"sent"`
	Opened    int     `json:"opened"`
	Clicked   int     `json:"clicked"`
	OpenRate  float64 `json:"openRate"`
	ClickRate float64 `json:"clickRate"`
}

// EngagementSegments splits every sent email into exactly one of three
// buckets, so the counts always add up to the number sent.
type EngagementSegments struct {
	NotOpened           int     `json:"notOpened"`
	OpenedNotClicked    int     `json:"openedNotClicked"`
	Clicked             int     `json:"clicked"`
	NotOpenedPct        float64 `json:"notOpenedPct"`
	OpenedNotClickedPct float64 `json:"openedNotClickedPct"`
	ClickedPct          float64 `json:"clickedPct"`
}

type EmailSnapshot struct {
	Totals       EmailTotals        `json:"totals"`
	TopCampaigns []EmailCampaign    `json:"topCampaigns"`
	Engagement   EngagementSegments `json:"engagement"`
	Comparison   *EmailTotals       `json:"comparison"`
	Change       Change             `json:"change"`
}
