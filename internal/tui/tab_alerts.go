package tui

import (
	"fmt"
	"strings"

	"github.com/bodhisathwik/finsaver/internal/model"
	"github.com/bodhisathwik/finsaver/internal/tui/components"
	"github.com/bodhisathwik/finsaver/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// alertsState tracks the alerts tab list cursor.
type alertsState struct {
	cursor int
}

func severityColor(s model.Severity) lipgloss.Color {
	t := theme.Active
	switch s {
	case model.SeverityCritical:
		return t.Red
	case model.SeverityHigh:
		return t.Orange
	case model.SeverityMedium:
		return t.Yellow
	default:
		return t.TextMuted
	}
}

func (a App) renderAlertsTab(cw int) string {
	t := theme.Active
	summary := a.alerts.Summarize()
	var b strings.Builder

	activeColor := t.Green
	if summary.ActiveEvents > 0 {
		activeColor = t.Orange
	}
	if summary.BySeverity[model.SeverityCritical] > 0 {
		activeColor = t.Red
	}

	cards := []components.Metric{
		{Label: "Active Alerts", Value: fmt.Sprintf("%d", summary.ActiveEvents), Color: activeColor},
		{Label: "Rules Enabled", Value: fmt.Sprintf("%d/%d", summary.EnabledRules, summary.TotalRules), Color: t.TextPrimary},
		{Label: "Resolved", Value: fmt.Sprintf("%d", summary.Resolved), Color: t.Green},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	b.WriteString(components.ContentCard("Active Alerts", a.renderActiveAlerts(), cw))
	b.WriteString("\n")
	b.WriteString(components.ContentCard("Rules", a.renderAlertRules(), cw))

	return b.String()
}

func (a App) renderActiveAlerts() string {
	t := theme.Active
	events := a.alerts.ActiveEvents()

	if len(events) == 0 {
		return lipgloss.NewStyle().Foreground(t.Green).Render("All clear. No active alerts.")
	}

	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder
	for i, ev := range events {
		sevStyle := lipgloss.NewStyle().Foreground(severityColor(ev.Severity)).Bold(true)
		ack := " "
		if ev.Acknowledged {
			ack = "✓"
		}

		line := fmt.Sprintf("%s %s  %s",
			sevStyle.Render(fmt.Sprintf("%-8s", strings.ToUpper(string(ev.Severity)))),
			dimStyle.Render(ev.TriggeredAt.Format("Jan 2 15:04")),
			truncStr(ev.Message, 70))

		if i == a.alState.cursor {
			b.WriteString(markerStyle.Render("▸ "))
			b.WriteString(selectedStyle.Render(line))
		} else {
			b.WriteString("  ")
			b.WriteString(line)
		}
		b.WriteString(" ")
		b.WriteString(dimStyle.Render(ack))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("[j/k] select  [m] acknowledge  [u] resolve"))

	return b.String()
}

func (a App) renderAlertRules() string {
	t := theme.Active

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", labelStyle.Render(
		fmt.Sprintf("%-26s %-20s %-8s %12s  %s", "Rule", "Metric", "Cond", "Threshold", "Severity")))

	for _, r := range a.alerts.Rules() {
		sevStyle := lipgloss.NewStyle().Foreground(severityColor(r.Severity))
		nameStyle := valueStyle
		if !r.Enabled {
			nameStyle = dimStyle
			sevStyle = dimStyle
		}

		fmt.Fprintf(&b, "%s %s %s %s  %s\n",
			nameStyle.Render(fmt.Sprintf("%-26s", truncStr(r.Name, 26))),
			labelStyle.Render(fmt.Sprintf("%-20s", r.Metric)),
			labelStyle.Render(fmt.Sprintf("%-8s", r.Condition)),
			labelStyle.Render(fmt.Sprintf("%12.0f", r.Threshold)),
			sevStyle.Render(string(r.Severity)))
	}

	return strings.TrimRight(b.String(), "\n")
}
