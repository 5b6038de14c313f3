package ui

import (
	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"
	"github.com/pulselog/internal/client"
)

const (
	chartWidth  = 60
	chartHeight = 12
)

// RenderWellnessChart draws the wellness trend: one bar group per day,
// sleep hours and energy level per group, oldest day leftmost. The chart
// model is rebuilt from scratch on every call; no render holds on to a
// previous one.
func RenderWellnessChart(entries []client.Wellness) string {
	if len(entries) == 0 {
		return mutedStyle.Render("No wellness entries yet.")
	}

	dates, sleep, energy := client.ChartSeries(entries)

	chart := barchart.New(chartWidth, chartHeight)

	bars := make([]barchart.BarData, 0, len(dates))
	for i, date := range dates {
		bars = append(bars, barchart.BarData{
			Label: shortDate(date),
			Values: []barchart.BarValue{
				{Name: "sleep", Value: sleep[i], Style: sleepStyle},
				{Name: "energy", Value: energy[i], Style: energyStyle},
			},
		})
	}

	chart.PushAll(bars)
	chart.Draw()

	legend := lipgloss.JoinHorizontal(lipgloss.Top,
		sleepStyle.Render("■ sleep hours"), "   ",
		energyStyle.Render("■ energy level"),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Wellness Trend"),
		"",
		chart.View(),
		"",
		legend,
	)
}

// shortDate trims "2006-01-02" to "01-02" for bar labels.
func shortDate(date string) string {
	if len(date) == 10 {
		return date[5:]
	}
	return date
}
