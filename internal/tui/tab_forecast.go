package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/bodhisathwik/finsaver/internal/cli"
	"github.com/bodhisathwik/finsaver/internal/model"
	"github.com/bodhisathwik/finsaver/internal/tui/components"
	"github.com/bodhisathwik/finsaver/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
)

// scenarioSaveState tracks the inline scenario-naming prompt.
type scenarioSaveState struct {
	naming bool
	input  textinput.Model
	flash  string // brief confirmation after save/delete
}

func (a App) startScenarioName() (tea.Model, tea.Cmd) {
	ti := textinput.New()
	ti.Placeholder = "e.g. Hire 2 engineers in Q2"
	ti.CharLimit = 64
	ti.Width = 40
	ti.Focus()

	a.saveState.naming = true
	a.saveState.flash = ""
	a.saveState.input = ti
	return a, ti.Cursor.BlinkCmd()
}

func (a App) updateScenarioName(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		name := strings.TrimSpace(a.saveState.input.Value())
		if name == "" {
			name = fmt.Sprintf("Scenario %d", len(a.scenarios)+1)
		}
		a.saveScenario(name)
		a.saveState.naming = false
		return a, nil
	case "esc":
		a.saveState.naming = false
		return a, nil
	}

	var cmd tea.Cmd
	a.saveState.input, cmd = a.saveState.input.Update(msg)
	return a, cmd
}

// saveScenario snapshots the current inputs, headcount, and results under
// the given name. The headcount copy keeps the snapshot stable when roles
// are edited later.
func (a *App) saveScenario(name string) {
	hc := make([]model.HeadcountRole, len(a.headcount))
	copy(hc, a.headcount)

	s := model.Scenario{
		ID:        uuid.NewString(),
		Name:      name,
		Inputs:    a.inputs,
		Headcount: hc,
		Runway:    a.result.Runway,
		Burn:      a.result.Burn,
		SavedAt:   time.Now(),
	}

	if a.ws != nil {
		if err := a.ws.SaveScenario(s); err != nil {
			a.saveState.flash = "save failed: " + err.Error()
			return
		}
	}
	a.scenarios = append([]model.Scenario{s}, a.scenarios...)
	a.saveState.flash = fmt.Sprintf("Saved %q", name)
}

func (a App) deleteNewestScenario() (bool, tea.Model, tea.Cmd) {
	if len(a.scenarios) == 0 {
		return true, a, nil
	}
	s := a.scenarios[0]
	if a.ws != nil {
		if err := a.ws.DeleteScenario(s.ID); err != nil {
			a.saveState.flash = "delete failed: " + err.Error()
			return true, a, nil
		}
	}
	a.scenarios = a.scenarios[1:]
	a.saveState.flash = fmt.Sprintf("Deleted %q", s.Name)
	return true, a, nil
}

func (a App) renderForecastTab(cw int) string {
	t := theme.Active
	currency := a.cfg.General.Currency
	var b strings.Builder

	// Row 1: Metric cards
	runwayColor := t.Green
	switch {
	case a.result.Runway < 3:
		runwayColor = t.Red
	case a.result.Runway < 6:
		runwayColor = t.Orange
	}

	burnValue := cli.FormatMoney(currency, a.result.Burn)
	burnColor := t.Orange
	if a.result.Burn <= 0 {
		burnValue = "cash-positive"
		burnColor = t.Green
	}

	cards := []components.Metric{
		{Label: "Runway", Value: cli.FormatMonths(a.result.Runway),
			Delta: "base " + cli.FormatMonths(a.baseResult.Runway), Color: runwayColor},
		{Label: "Monthly Burn", Value: burnValue,
			Delta: cli.FormatDelta(currency, a.result.Burn, a.baseResult.Burn) + " vs base", Color: burnColor},
		{Label: "Bank Balance", Value: cli.FormatMoney(currency, a.baseline.BankBalance),
			Delta: "", Color: t.TextPrimary},
		{Label: "Revenue", Value: cli.FormatMoney(currency, a.baseline.MonthlyRevenue) + "/mo",
			Delta: cli.FormatSignedPercent(a.inputs.PriceChange) + " price", Color: t.Blue},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	// Row 2: Projection chart
	chartH := 10
	if a.isCompactLayout() {
		chartH = 8
	}
	b.WriteString(components.ContentCard(
		"Balance Projection (24 months)",
		components.ForecastChart(a.result.ForecastData, components.CardInnerWidth(cw), chartH),
		cw,
	))
	b.WriteString("\n")

	// Row 3: Scenario inputs + comparison vs base case
	halves := components.LayoutRow(cw, 2)
	b.WriteString(components.CardRow([]string{
		components.ContentCard("Scenario Inputs", a.renderScenarioInputs(), halves[0]),
		components.ContentCard("Current vs Base Case", a.renderBaseComparison(currency), halves[1]),
	}))
	b.WriteString("\n")

	// Row 4: Saved scenarios
	b.WriteString(components.ContentCard("Saved Scenarios", a.renderSavedScenarios(currency), cw))

	return b.String()
}

func (a App) renderScenarioInputs() string {
	t := theme.Active
	currency := a.cfg.General.Currency

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder
	rows := []struct{ label, value, keys string }{
		{"Extra monthly spend", cli.FormatMoneyExact(currency, a.inputs.MonthlySpend), "[+/-]"},
		{"One-time spend", cli.FormatMoneyExact(currency, a.inputs.OneTimeSpend), "[o/O]"},
		{"Price change", cli.FormatSignedPercent(a.inputs.PriceChange), "[p/P]"},
	}
	for _, r := range rows {
		fmt.Fprintf(&b, "%s %s %s\n",
			labelStyle.Render(fmt.Sprintf("%-20s", r.label)),
			valueStyle.Render(fmt.Sprintf("%14s", r.value)),
			keyStyle.Render(r.keys))
	}

	b.WriteString("\n")
	if a.saveState.naming {
		b.WriteString(labelStyle.Render("Name: "))
		b.WriteString(a.saveState.input.View())
	} else {
		b.WriteString(keyStyle.Render("[0] reset  [s] save scenario"))
		if a.saveState.flash != "" {
			b.WriteString("\n")
			b.WriteString(lipgloss.NewStyle().Foreground(t.Green).Render(a.saveState.flash))
		}
	}

	return b.String()
}

func (a App) renderBaseComparison(currency string) string {
	t := theme.Active

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	var b strings.Builder
	rows := []struct{ label, base, current string }{
		{"", "Base", "Current"},
		{"Runway", cli.FormatMonths(a.baseResult.Runway), cli.FormatMonths(a.result.Runway)},
		{"Burn", cli.FormatMoney(currency, a.baseResult.Burn), cli.FormatMoney(currency, a.result.Burn)},
		{"Final balance",
			cli.FormatMoney(currency, lastValue(a.baseResult.ForecastData)),
			cli.FormatMoney(currency, lastValue(a.result.ForecastData))},
	}
	for i, r := range rows {
		style := valueStyle
		if i == 0 {
			style = labelStyle
		}
		fmt.Fprintf(&b, "%s %s %s\n",
			labelStyle.Render(fmt.Sprintf("%-14s", r.label)),
			style.Render(fmt.Sprintf("%12s", r.base)),
			style.Render(fmt.Sprintf("%12s", r.current)))
	}

	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Sparkline "))
	b.WriteString(components.Sparkline(a.result.ForecastData, t.Accent))

	return b.String()
}

func (a App) renderSavedScenarios(currency string) string {
	t := theme.Active

	if len(a.scenarios) == 0 {
		return lipgloss.NewStyle().Foreground(t.TextDim).
			Render("No scenarios saved yet. Adjust inputs and press [s].")
	}

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	shown := a.scenarios
	if len(shown) > 6 {
		shown = shown[:6]
	}

	var b strings.Builder
	for _, s := range shown {
		runwayStyle := lipgloss.NewStyle().Foreground(t.Green)
		if s.Runway < 6 {
			runwayStyle = lipgloss.NewStyle().Foreground(t.Orange)
		}
		fmt.Fprintf(&b, "%s  %s  %s  %s\n",
			valueStyle.Render(fmt.Sprintf("%-28s", truncStr(s.Name, 28))),
			runwayStyle.Render(fmt.Sprintf("%10s", cli.FormatMonths(s.Runway))),
			labelStyle.Render(fmt.Sprintf("%12s burn", cli.FormatMoney(currency, s.Burn))),
			dimStyle.Render(s.SavedAt.Format("Jan 2 15:04")))
	}
	if len(a.scenarios) > len(shown) {
		fmt.Fprintf(&b, "%s\n", dimStyle.Render(fmt.Sprintf("... and %d more", len(a.scenarios)-len(shown))))
	}
	b.WriteString(dimStyle.Render("[D] delete newest"))

	return b.String()
}

func lastValue(series []float64) float64 {
	if len(series) == 0 {
		return 0
	}
	return series[len(series)-1]
}
