package tui

import (
	"fmt"
	"strings"

	"github.com/bodhisathwik/finsaver/internal/analysis"
	"github.com/bodhisathwik/finsaver/internal/tui/components"
	"github.com/bodhisathwik/finsaver/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func trendArrow(dir analysis.TrendDirection) string {
	switch dir {
	case analysis.TrendUp:
		return "↑"
	case analysis.TrendDown:
		return "↓"
	default:
		return "→"
	}
}

func (a App) renderKPIsTab(cw int) string {
	t := theme.Active
	var b strings.Builder

	if len(a.kpis) == 0 {
		b.WriteString(components.ContentCard("Key Performance Indicators",
			lipgloss.NewStyle().Foreground(t.TextDim).
				Render("No KPIs tracked. Seed sample data with `finsaver sample`."),
			cw))
		return b.String()
	}

	// Summary cards: counts per performance band
	var excellent, good, needsWork int
	for _, k := range a.kpis {
		switch analysis.KPIStatus(k) {
		case analysis.PerfExcellent:
			excellent++
		case analysis.PerfGood:
			good++
		default:
			needsWork++
		}
	}

	cards := []components.Metric{
		{Label: "On Target", Value: fmt.Sprintf("%d", excellent), Color: t.Green},
		{Label: "Close", Value: fmt.Sprintf("%d", good), Color: t.Yellow},
		{Label: "Needs Work", Value: fmt.Sprintf("%d", needsWork), Color: t.Red},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	// Progress toward target per KPI
	innerW := components.CardInnerWidth(cw)
	labelW := 22
	barW := innerW - labelW - 8
	if barW > 50 {
		barW = 50
	}
	if barW < 10 {
		barW = 10
	}

	var bars strings.Builder
	for _, k := range a.kpis {
		pct := analysis.KPIProgress(k) / 100
		bars.WriteString(components.TargetBar(truncStr(k.Name, labelW), pct, labelW, barW))
		bars.WriteString("\n")
	}
	b.WriteString(components.ContentCard("Progress to Target", strings.TrimRight(bars.String(), "\n"), cw))
	b.WriteString("\n")

	// Detail table with trend arrows
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	var rows strings.Builder
	fmt.Fprintf(&rows, "%s\n", labelStyle.Render(
		fmt.Sprintf("%-22s %12s %12s %8s  %s", "KPI", "Value", "Target", "Change", "Trend")))

	for _, k := range a.kpis {
		trend := analysis.KPITrend(k)
		arrowStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
		switch trend.Direction {
		case analysis.TrendUp:
			arrowStyle = lipgloss.NewStyle().Foreground(t.Green)
		case analysis.TrendDown:
			arrowStyle = lipgloss.NewStyle().Foreground(t.Red)
		}

		fmt.Fprintf(&rows, "%s %s %s %s  %s\n",
			valueStyle.Render(fmt.Sprintf("%-22s", truncStr(k.Name, 22))),
			valueStyle.Render(fmt.Sprintf("%12s", formatKPIValue(k.Value, k.Unit))),
			labelStyle.Render(fmt.Sprintf("%12s", formatKPIValue(k.Target, k.Unit))),
			arrowStyle.Render(fmt.Sprintf("%+7.1f%%", trend.ChangePct)),
			arrowStyle.Render(trendArrow(trend.Direction)))
	}
	b.WriteString(components.ContentCard("Details", strings.TrimRight(rows.String(), "\n"), cw))

	return b.String()
}

func formatKPIValue(v float64, unit string) string {
	switch unit {
	case "%":
		return fmt.Sprintf("%.1f%%", v)
	case "":
		return fmt.Sprintf("%.0f", v)
	default:
		return fmt.Sprintf("%.0f %s", v, unit)
	}
}
