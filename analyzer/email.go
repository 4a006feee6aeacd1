package analyzer

import (
	"marketing-dashboard/config"
	"marketing-dashboard/models"
	"marketing-dashboard/models/snapshot"
	"marketing-dashboard/util"
)

// EmailAnalyzer summarizes the campaign performance export.
type EmailAnalyzer struct {
	parsers ParserSet
}

func NewEmailAnalyzer(parsers ParserSet) *EmailAnalyzer {
	return &EmailAnalyzer{parsers: parsers}
}

func (a *EmailAnalyzer) Platform() string {
	return snapshot.PLATFORM_EMAIL
}

func (a *EmailAnalyzer) Analyze(ds Datasets, sel models.DateRangeSelection) snapshot.EmailSnapshot {
	campaigns := a.campaigns(ds, sel.Current)
	totals := emailTotals(campaigns)

	out := snapshot.EmailSnapshot{
		Totals: totals,
		TopCampaigns: topN(campaigns, TOP_N, func(c snapshot.EmailCampaign) float64 {
			return c.OpenRate
		}),
		Engagement: EngagementFunnel(totals.Sent, totals.Opened, totals.Clicked),
	}
	out.Comparison, out.Change = comparePeriods(sel, totals, func(r models.DateRange) snapshot.EmailTotals {
		return emailTotals(a.campaigns(ds, r))
	})
	return out
}

func (a *EmailAnalyzer) campaigns(ds Datasets, r models.DateRange) []snapshot.EmailCampaign {
	rows := filterSource(ds, a.parsers, config.EMAIL_CAMPAIGN_PERFORMANCE, r)
	parser := a.parsers.For(config.EMAIL_CAMPAIGN_PERFORMANCE)

	out := make([]snapshot.EmailCampaign, 0, rows.Len())
	for _, row := range rows.Rows {
		name := util.ResolveString(row, emailCampaignFields, "")
		if isTotalRow(name) {
			continue
		}
		c := snapshot.EmailCampaign{
			Name:    name,
			Sent:    util.ResolveInt(row, emailSentFields, 0),
			Opened:  util.ResolveInt(row, emailOpenedFields, 0),
			Clicked: util.ResolveInt(row, emailClickedFields, 0),
		}
		if t, ok := RowDate(row, emailDateFields, parser); ok {
			c.SendDate = dayKey(t)
		}
		c.OpenRate = snapshot.Ratio(float64(c.Opened), float64(c.Sent))
		c.ClickRate = snapshot.Ratio(float64(c.Clicked), float64(c.Sent))
		out = append(out, c)
	}
	return out
}

func emailTotals(campaigns []snapshot.EmailCampaign) snapshot.EmailTotals {
	t := snapshot.EmailTotals{Campaigns: len(campaigns)}
	for _, c := range campaigns {
		t.Sent += c.Sent
		t.Opened += c.Opened
		t.Clicked += c.Clicked
	}
	t.OpenRate = snapshot.Ratio(float64(t.Opened), float64(t.Sent))
	t.ClickRate = snapshot.Ratio(float64(t.Clicked), float64(t.Sent))
	t.ClickToOpenRate = snapshot.Ratio(float64(t.Clicked), float64(t.Opened))
	return t
}

// EngagementFunnel splits sent into not opened, opened without a click and
// clicked. The three counts always sum to sent.
func EngagementFunnel(sent, opened, clicked int) snapshot.EngagementSegments {
	seg := snapshot.EngagementSegments{
		NotOpened:        sent - opened,
		OpenedNotClicked: opened - clicked,
		Clicked:          clicked,
	}
	seg.NotOpenedPct = snapshot.Ratio(float64(seg.NotOpened), float64(sent))
	seg.OpenedNotClickedPct = snapshot.Ratio(float64(seg.OpenedNotClicked), float64(sent))
	seg.ClickedPct = snapshot.Ratio(float64(seg.Clicked), float64(sent))
	return seg
}
