package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bodhisathwik/finsaver/internal/analysis"
	"github.com/bodhisathwik/finsaver/internal/cli"
	"github.com/bodhisathwik/finsaver/internal/tui/components"
	"github.com/bodhisathwik/finsaver/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderBudgetTab(cw int) string {
	t := theme.Active
	currency := a.cfg.General.Currency
	summary := analysis.AnalyzeBudget(a.budget)
	var b strings.Builder

	varianceColor := t.Green
	if summary.TotalVariance > 0 {
		varianceColor = t.Orange
	}
	if summary.TotalVariance > 10 {
		varianceColor = t.Red
	}

	cards := []components.Metric{
		{Label: "Budgeted", Value: cli.FormatMoney(currency, summary.TotalBudgeted), Color: t.TextPrimary},
		{Label: "Actual", Value: cli.FormatMoney(currency, summary.TotalActual), Color: t.Blue},
		{Label: "Variance", Value: cli.FormatSignedPercent(summary.TotalVariance), Color: varianceColor},
		{Label: "Categories", Value: strconv.Itoa(len(summary.Categories)), Color: t.TextPrimary},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	if len(a.budget) == 0 {
		b.WriteString(components.ContentCard("Budget vs Actual",
			lipgloss.NewStyle().Foreground(t.TextDim).
				Render("No budget items. Seed sample data with `finsaver sample`."),
			cw))
		return b.String()
	}

	// Utilization bars per category
	innerW := components.CardInnerWidth(cw)
	labelW := 18
	barW := innerW - labelW - 8
	if barW > 50 {
		barW = 50
	}
	if barW < 10 {
		barW = 10
	}

	var bars strings.Builder
	for _, cat := range summary.Categories {
		pct := analysis.Progress(cat.Budgeted, cat.Actual) / 100
		bars.WriteString(components.TargetBar(truncStr(cat.Category, labelW), pct, labelW, barW))
		bars.WriteString("\n")
	}
	b.WriteString(components.ContentCard("Utilization", strings.TrimRight(bars.String(), "\n"), cw))
	b.WriteString("\n")

	// Variance detail table
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	var rows strings.Builder
	fmt.Fprintf(&rows, "%s\n", labelStyle.Render(
		fmt.Sprintf("%-18s %14s %14s %10s  %s", "Category", "Budgeted", "Actual", "Variance", "Status")))

	for _, cat := range summary.Categories {
		statusStyle := lipgloss.NewStyle().Foreground(t.Green)
		switch cat.Status {
		case analysis.StatusOverBudget:
			statusStyle = lipgloss.NewStyle().Foreground(t.Red)
		case analysis.StatusUnderBudget:
			statusStyle = lipgloss.NewStyle().Foreground(t.Blue)
		}

		fmt.Fprintf(&rows, "%s %s %s %s  %s\n",
			lipgloss.NewStyle().Foreground(t.TextPrimary).Render(fmt.Sprintf("%-18s", truncStr(cat.Category, 18))),
			labelStyle.Render(fmt.Sprintf("%14s", cli.FormatMoneyExact(currency, cat.Budgeted))),
			labelStyle.Render(fmt.Sprintf("%14s", cli.FormatMoneyExact(currency, cat.Actual))),
			statusStyle.Render(fmt.Sprintf("%10s", cli.FormatSignedPercent(cat.Variance))),
			statusStyle.Render(string(cat.Status)))
	}
	b.WriteString(components.ContentCard("Variance by Category", strings.TrimRight(rows.String(), "\n"), cw))

	return b.String()
}
