package util

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"marketing-dashboard/models/snapshot"
)

const CHART_WIDTH = "900px"
const CHART_HEIGHT = "420px"

// RenderDashboardCharts writes an HTML page with one chart per platform
// section of the snapshots.
func RenderDashboardCharts(w io.Writer, snaps snapshot.PlatformSnapshots) error {
	page := components.NewPage()
	page.PageTitle = "Marketing Dashboard " + snaps.Selection.Current.Key()

	page.AddCharts(
		emailFunnelChart(snaps.Email),
		socialDailyChart("Facebook daily reach", snaps.Facebook.Daily),
		socialDailyChart("Instagram daily reach", snaps.Instagram.Daily),
		youtubeAgeChart(snaps.YouTube),
		webChannelChart(snaps.Web),
		utmCampaignChart(snaps.UTM),
	)

	if err := page.Render(w); err != nil {
		return fmt.Errorf("failed to render dashboard charts: %w", err)
	}
	return nil
}

func chartOpts(title, subtitle string) []charts.GlobalOpts {
	return []charts.GlobalOpts{
		charts.WithInitializationOpts(opts.Initialization{
			Width:  CHART_WIDTH,
			Height: CHART_HEIGHT,
		}),
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: subtitle}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "bottom"}),
	}
}

func emailFunnelChart(s snapshot.EmailSnapshot) *charts.Pie {
	pie := charts.NewPie()
	pie.SetGlobalOptions(chartOpts("Email engagement",
		fmt.Sprintf("%d sent, %.1f%% opened", s.Totals.Sent, s.Totals.OpenRate))...)
	pie.AddSeries("Engagement", []opts.PieData{
		{Name: "Not opened", Value: s.Engagement.NotOpened},
		{Name: "Opened, not clicked", Value: s.Engagement.OpenedNotClicked},
		{Name: "Clicked", Value: s.Engagement.Clicked},
	}, charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Formatter: "{b}: {d}%"}))
	return pie
}

func socialDailyChart(title string, daily []snapshot.DailyPoint) *charts.Line {
	days := make([]string, 0, len(daily))
	reach := make([]opts.LineData, 0, len(daily))
	interactions := make([]opts.LineData, 0, len(daily))
	for _, p := range daily {
		days = append(days, p.Date)
		reach = append(reach, opts.LineData{Value: p.Reach})
		interactions = append(interactions, opts.LineData{Value: p.Interactions})
	}

	line := charts.NewLine()
	line.SetGlobalOptions(chartOpts(title, "")...)
	line.SetXAxis(days).
		AddSeries("Reach", reach).
		AddSeries("Interactions", interactions)
	return line
}

func youtubeAgeChart(s snapshot.YouTubeSnapshot) *charts.Bar {
	labels := make([]string, 0, len(s.Age))
	values := make([]opts.BarData, 0, len(s.Age))
	for _, b := range s.Age {
		labels = append(labels, b.Label)
		values = append(values, opts.BarData{Value: b.Percent})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(chartOpts("YouTube viewers by age",
		fmt.Sprintf("%d views, %.1f watch hours", s.Totals.Views, s.Totals.WatchTimeHours))...)
	bar.SetXAxis(labels).AddSeries("Share of views (%)", values)
	return bar
}

func webChannelChart(s snapshot.WebSnapshot) *charts.Bar {
	labels := make([]string, 0, len(s.Channels))
	sessions := make([]opts.BarData, 0, len(s.Channels))
	engaged := make([]opts.BarData, 0, len(s.Channels))
	for _, c := range s.Channels {
		labels = append(labels, c.Channel)
		sessions = append(sessions, opts.BarData{Value: c.Sessions})
		engaged = append(engaged, opts.BarData{Value: c.EngagedSessions})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(chartOpts("Web sessions by channel",
		fmt.Sprintf("%d sessions, %.1f%% engaged", s.Totals.Sessions, s.Totals.EngagementRate))...)
	bar.SetXAxis(labels).
		AddSeries("Sessions", sessions).
		AddSeries("Engaged sessions", engaged)
	return bar
}

func utmCampaignChart(s snapshot.UTMSnapshot) *charts.Bar {
	labels := make([]string, 0, len(s.Campaigns))
	sessions := make([]opts.BarData, 0, len(s.Campaigns))
	for _, g := range s.Campaigns {
		labels = append(labels, g.Key)
		sessions = append(sessions, opts.BarData{Value: g.Sessions})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(chartOpts("UTM campaigns", "Top campaigns by sessions")...)
	bar.SetXAxis(labels).AddSeries("Sessions", sessions)
	return bar
}
