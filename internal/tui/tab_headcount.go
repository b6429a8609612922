package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bodhisathwik/finsaver/internal/cli"
	"github.com/bodhisathwik/finsaver/internal/model"
	"github.com/bodhisathwik/finsaver/internal/tui/components"
	"github.com/bodhisathwik/finsaver/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
)

// headcountState tracks the headcount tab: list cursor plus the add-role
// form when one is open.
type headcountState struct {
	cursor int
	form   *huh.Form
	vals   roleValues
}

// roleValues holds raw answers from the add-role form.
type roleValues struct {
	role       string
	salary     string
	startMonth string
}

func newRoleForm(vals *roleValues) *huh.Form {
	*vals = roleValues{startMonth: "1"}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Role").
				Placeholder("e.g. Senior Engineer").
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("role name is required")
					}
					return nil
				}).
				Value(&vals.role),
			huh.NewInput().
				Title("Monthly salary").
				Validate(func(s string) error {
					v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
					if err != nil || v <= 0 {
						return fmt.Errorf("enter a positive number")
					}
					return nil
				}).
				Value(&vals.salary),
			huh.NewInput().
				Title("Start month").
				Description("1 = next month, 2 = month after, ...").
				Validate(func(s string) error {
					v, err := strconv.Atoi(strings.TrimSpace(s))
					if err != nil || v < 0 {
						return fmt.Errorf("enter a whole number >= 0")
					}
					return nil
				}).
				Value(&vals.startMonth),
		),
	).WithTheme(huh.ThemeBase16())
}

func (a App) startRoleForm() (tea.Model, tea.Cmd) {
	a.hcState.form = newRoleForm(&a.hcState.vals)
	if a.width > 0 {
		a.hcState.form = a.hcState.form.WithWidth(a.width).WithHeight(a.height)
	}
	return a, a.hcState.form.Init()
}

func (a App) updateRoleForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.hcState.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.hcState.form = f
	}

	if a.hcState.form.State == huh.StateCompleted {
		salary, _ := strconv.ParseFloat(strings.TrimSpace(a.hcState.vals.salary), 64)
		start, _ := strconv.Atoi(strings.TrimSpace(a.hcState.vals.startMonth))
		role := model.HeadcountRole{
			ID:         uuid.NewString(),
			Role:       strings.TrimSpace(a.hcState.vals.role),
			Salary:     salary,
			StartMonth: start,
		}
		if a.ws != nil {
			_ = a.ws.SaveRole(role)
		}
		a.headcount = append(a.headcount, role)
		a.hcState.form = nil
		a.recompute()
		return a, nil
	}

	if a.hcState.form.State == huh.StateAborted {
		a.hcState.form = nil
		return a, nil
	}

	return a, cmd
}

func (a App) deleteSelectedRole() (bool, tea.Model, tea.Cmd) {
	if len(a.headcount) == 0 || a.hcState.cursor >= len(a.headcount) {
		return true, a, nil
	}
	role := a.headcount[a.hcState.cursor]
	if a.ws != nil {
		_ = a.ws.DeleteRole(role.ID)
	}
	a.headcount = append(a.headcount[:a.hcState.cursor], a.headcount[a.hcState.cursor+1:]...)
	a.recompute()
	return true, a, nil
}

func (a App) renderHeadcountTab(cw int) string {
	t := theme.Active
	currency := a.cfg.General.Currency
	var b strings.Builder

	// Row 1: Totals
	var totalSalary float64
	for _, r := range a.headcount {
		totalSalary += r.Salary
	}

	cards := []components.Metric{
		{Label: "Planned Roles", Value: strconv.Itoa(len(a.headcount)), Color: t.TextPrimary},
		{Label: "Added Payroll", Value: cli.FormatMoney(currency, totalSalary) + "/mo", Color: t.Orange},
		{Label: "Runway Impact", Value: cli.FormatMonths(a.result.Runway),
			Delta: "base " + cli.FormatMonths(a.baseResult.Runway), Color: t.Accent},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	// Row 2: Role list
	b.WriteString(components.ContentCard("Planned Hires", a.renderRoleList(currency), cw))

	return b.String()
}

func (a App) renderRoleList(currency string) string {
	t := theme.Active

	if len(a.headcount) == 0 {
		return lipgloss.NewStyle().Foreground(t.TextDim).
			Render("No roles planned. Press [n] to add one.")
	}

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", labelStyle.Render(
		fmt.Sprintf("  %-28s %14s %12s", "Role", "Salary/mo", "Starts")))

	for i, r := range a.headcount {
		line := fmt.Sprintf("%-28s %14s %12s",
			truncStr(r.Role, 28),
			cli.FormatMoneyExact(currency, r.Salary),
			fmt.Sprintf("M%d", r.StartMonth))

		if i == a.hcState.cursor {
			b.WriteString(markerStyle.Render("▸ "))
			b.WriteString(selectedStyle.Render(line))
		} else {
			b.WriteString("  ")
			b.WriteString(valueStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("[j/k] select  [n] new role  [d] delete"))

	return b.String()
}
