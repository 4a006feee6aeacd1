package snapshot

// PageTotals are the account level ("page rank") metrics of a social page.
type PageTotals struct {
	Followers    int     `json:"followers"`
	Reach        int     `json:"reach"`
	Visits       int     `json:"visits"`
	Interactions int     `json:"interactions"`
	Engagement   float64 `json:"engagement"`
}

func (t PageTotals) Metrics() map[string]float64 {
	return map[string]float64{
		"followers":    float64(t.Followers),
		"reach":        float64(t.Reach),
		"visits":       float64(t.Visits),
		"interactions": float64(t.Interactions),
		"engagement":   t.Engagement,
	}
}

// SocialPost is one ranked piece of content (post, reel or video).
type SocialPost struct {
	ID             string  `json:"id"`
	Title          string  `json:"title"`
	Type           string  `json:"type"`
	PublishTime    string  `json:"publishTime"`
	Permalink      string  `json:"permalink"`
	Reach          int     `json:"reach"`
	Views          int     `json:"views"`
	Reactions      int     `json:"reactions"`
	Comments       int     `json:"comments"`
	Shares         int     `json:"shares"`
	Interactions   int     `json:"interactions"`
	EngagementRate float64 `json:"engagementRate"`
}

// DailyPoint is one UTC day of page metrics.
type DailyPoint struct {
	Date         string `json:"date"`
	Followers    int    `json:"followers"`
	Reach        int    `json:"reach"`
	Visits       int    `json:"visits"`
	Interactions int    `json:"interactions"`
}

type TypeBreakdown struct {
	Type  string `json:"type"`
	Posts int    `json:"posts"`
	Reach int    `json:"reach"`
}

type FacebookSnapshot struct {
	PageTotals PageTotals   `json:"pageTotals"`
	TopVideos  []SocialPost `json:"topVideos"`
	TopPosts   []SocialPost `json:"topPosts"`
	Daily      []DailyPoint `json:"daily"`
	Comparison *PageTotals  `json:"comparison"`
	Change     Change       `json:"change"`
}

type InstagramSnapshot struct {
	PageTotals PageTotals      `json:"pageTotals"`
	TopPosts   []SocialPost    `json:"topPosts"`
	PostTypes  []TypeBreakdown `json:"postTypes"`
	Daily      []DailyPoint    `json:"daily"`
	Comparison *PageTotals     `json:"comparison"`
	Change     Change          `json:"change"`
}
