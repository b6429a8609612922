package tui

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/bodhisathwik/finsaver/internal/analysis"
	"github.com/bodhisathwik/finsaver/internal/cli"
	"github.com/bodhisathwik/finsaver/internal/model"
	"github.com/bodhisathwik/finsaver/internal/tui/components"
	"github.com/bodhisathwik/finsaver/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderCashFlowTab(cw int) string {
	t := theme.Active
	currency := a.cfg.General.Currency
	summary := analysis.SummarizeCashFlow(a.cashflow)
	var b strings.Builder

	netColor := t.Green
	if summary.NetFlow < 0 {
		netColor = t.Red
	}

	cards := []components.Metric{
		{Label: "Inflows", Value: cli.FormatMoney(currency, summary.TotalInflow), Color: t.Green},
		{Label: "Outflows", Value: cli.FormatMoney(currency, summary.TotalOutflow), Color: t.Red},
		{Label: "Net Flow", Value: cli.FormatMoney(currency, summary.NetFlow), Color: netColor},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	if len(a.cashflow) == 0 {
		b.WriteString(components.ContentCard("Cash Movements",
			lipgloss.NewStyle().Foreground(t.TextDim).
				Render("No cash-flow items. Seed sample data with `finsaver sample`."),
			cw))
		return b.String()
	}

	// Row 2: Category totals as horizontal bars + recent movements
	halves := components.LayoutRow(cw, 2)
	b.WriteString(components.CardRow([]string{
		components.ContentCard("By Category", a.renderCashFlowCategories(summary, halves[0]), halves[0]),
		components.ContentCard("Recent Movements", a.renderCashFlowItems(currency), halves[1]),
	}))

	return b.String()
}

func (a App) renderCashFlowCategories(summary analysis.CashFlowSummary, outerW int) string {
	t := theme.Active
	currency := a.cfg.General.Currency

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	greenStyle := lipgloss.NewStyle().Foreground(t.Green)
	redStyle := lipgloss.NewStyle().Foreground(t.Red)

	var maxAbs float64
	for _, cat := range summary.Categories {
		if abs := math.Abs(cat.Total); abs > maxAbs {
			maxAbs = abs
		}
	}

	innerW := components.CardInnerWidth(outerW)
	barW := innerW - 32
	if barW < 8 {
		barW = 8
	}

	var b strings.Builder
	for _, cat := range summary.Categories {
		bar := cli.RenderHorizontalBar(math.Abs(cat.Total), maxAbs, barW)
		barStyle := greenStyle
		if cat.Total < 0 {
			barStyle = redStyle
		}
		fmt.Fprintf(&b, "%s %s %s\n",
			labelStyle.Render(fmt.Sprintf("%-14s", truncStr(cat.Category, 14))),
			barStyle.Render(bar),
			barStyle.Render(fmt.Sprintf("%12s", cli.FormatMoney(currency, cat.Total))))
	}

	return strings.TrimRight(b.String(), "\n")
}

func (a App) renderCashFlowItems(currency string) string {
	t := theme.Active

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	greenStyle := lipgloss.NewStyle().Foreground(t.Green)
	redStyle := lipgloss.NewStyle().Foreground(t.Red)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	items := make([]model.CashFlowItem, len(a.cashflow))
	copy(items, a.cashflow)
	sort.Slice(items, func(i, j int) bool { return items[i].Date > items[j].Date })
	if len(items) > 10 {
		items = items[:10]
	}

	var b strings.Builder
	for _, item := range items {
		signed := analysis.SignedAmount(item)
		amountStyle := greenStyle
		if signed < 0 {
			amountStyle = redStyle
		}
		recurring := " "
		if item.Recurring {
			recurring = "↻"
		}
		fmt.Fprintf(&b, "%s %s %s %s\n",
			dimStyle.Render(item.Date),
			labelStyle.Render(fmt.Sprintf("%-22s", truncStr(item.Description, 22))),
			amountStyle.Render(fmt.Sprintf("%12s", cli.FormatMoney(currency, signed))),
			dimStyle.Render(recurring))
	}

	return strings.TrimRight(b.String(), "\n")
}
