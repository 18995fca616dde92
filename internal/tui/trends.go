package tui

import (
	"fmt"
	"strings"

	"steeper/internal/session"

	"github.com/NimbleMarkets/ntcharts/sparkline"
)

const sparkHeight = 5

// renderTrends renders the aggregate stats block and the steep-length
// trend chart over the whole log.
func (m Model) renderTrends() string {
	var b strings.Builder

	sessions := m.store.All()
	stats := session.Summarize(sessions)

	rows := []struct {
		label string
		value string
	}{
		{"Sessions", fmt.Sprintf("%d", stats.Count)},
		{"Average", fmt.Sprintf("%.2f min", stats.Average)},
		{"Shortest", fmt.Sprintf("%.2f min", stats.Shortest)},
		{"Longest", fmt.Sprintf("%.2f min", stats.Longest)},
		{"Total", fmt.Sprintf("%.2f min", stats.TotalMinutes)},
	}

	b.WriteString("\n")
	for _, row := range rows {
		b.WriteString("  ")
		b.WriteString(m.styles.StatLabel.Render(padRight(row.label, 10)))
		b.WriteString(m.styles.StatValue.Render(padLeft(row.value, 12)))
		b.WriteString("\n")
	}

	points := session.Series(sessions)
	if len(points) < 2 {
		b.WriteString("\n  ")
		b.WriteString(m.styles.Muted.Render("steep at least twice to see a trend"))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString("\n  ")
	b.WriteString(m.styles.StatLabel.Render("minutes per steep"))
	b.WriteString("\n")
	b.WriteString(m.renderSparkline(points))
	b.WriteString("\n")

	// Date range under the chart
	first := points[0].Date
	last := points[len(points)-1].Date
	gap := m.sparkWidth() - len(first) - len(last)
	if gap < 1 {
		gap = 1
	}
	b.WriteString("  ")
	b.WriteString(m.styles.Muted.Render(first + strings.Repeat(" ", gap) + last))
	b.WriteString("\n")

	return b.String()
}

func (m Model) sparkWidth() int {
	width := m.width - 6
	if width < 10 {
		width = 10
	}
	return width
}

// renderSparkline charts the series, one column per session in save
// order with the most recent at the right edge.
func (m Model) renderSparkline(points []session.Point) string {
	spark := sparkline.New(m.sparkWidth(), sparkHeight)
	for _, p := range points {
		spark.Push(p.Minutes)
	}
	spark.Draw()

	// Indent each chart line to match the stats block
	lines := strings.Split(m.styles.Spark.Render(spark.View()), "\n")
	for i, line := range lines {
		lines[i] = "  " + line
	}
	return strings.Join(lines, "\n")
}
