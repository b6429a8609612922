package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bodhisathwik/finsaver/internal/config"
	"github.com/bodhisathwik/finsaver/internal/model"
	"github.com/bodhisathwik/finsaver/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// setupValues holds the raw form answers from the first-run wizard.
type setupValues struct {
	bankBalance    string
	monthlyRevenue string
	monthlyCosts   string
	currency       string
	themeName      string
}

func validateMoney(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil // blank keeps the default
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("enter a number")
	}
	if v < 0 {
		return fmt.Errorf("must not be negative")
	}
	return nil
}

// newSetupForm builds the first-run wizard. Defaults come from the
// provided baseline so blank answers keep sensible values.
func newSetupForm(vals *setupValues, defaults model.Baseline) *huh.Form {
	vals.bankBalance = fmt.Sprintf("%.0f", defaults.BankBalance)
	vals.monthlyRevenue = fmt.Sprintf("%.0f", defaults.MonthlyRevenue)
	vals.monthlyCosts = fmt.Sprintf("%.0f", defaults.MonthlyCosts)
	vals.currency = "₹"
	vals.themeName = theme.Active.Name

	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, t := range theme.All {
		themeOpts = append(themeOpts, huh.NewOption(t.Name, t.Name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to finsaver").
				Description("Set your financial baseline. Everything can be changed later\nin the Settings tab or with `finsaver setup`."),
			huh.NewInput().
				Title("Bank balance").
				Description("Cash in the bank today").
				Validate(validateMoney).
				Value(&vals.bankBalance),
			huh.NewInput().
				Title("Monthly revenue").
				Validate(validateMoney).
				Value(&vals.monthlyRevenue),
			huh.NewInput().
				Title("Monthly costs").
				Description("Recurring costs before any scenario adjustments").
				Validate(validateMoney).
				Value(&vals.monthlyCosts),
			huh.NewInput().
				Title("Currency symbol").
				Value(&vals.currency),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&vals.themeName),
		),
	).WithTheme(huh.ThemeBase16())
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	if a.setupForm.State == huh.StateCompleted {
		a.applySetup()
		a.recompute()
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	if a.setupForm.State == huh.StateAborted {
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	return a, cmd
}

func parseMoneyOr(s string, fallback float64) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fallback
	}
	return v
}

// applySetup persists the wizard answers to config and workspace.
// Save errors are non-fatal; the session keeps the in-memory values.
func (a *App) applySetup() {
	a.baseline = model.Baseline{
		BankBalance:    parseMoneyOr(a.setupVals.bankBalance, a.baseline.BankBalance),
		MonthlyRevenue: parseMoneyOr(a.setupVals.monthlyRevenue, a.baseline.MonthlyRevenue),
		MonthlyCosts:   parseMoneyOr(a.setupVals.monthlyCosts, a.baseline.MonthlyCosts),
	}

	cfg := loadConfigOrDefault()
	if cur := strings.TrimSpace(a.setupVals.currency); cur != "" {
		cfg.General.Currency = cur
	}
	cfg.Baseline.BankBalance = a.baseline.BankBalance
	cfg.Baseline.MonthlyRevenue = a.baseline.MonthlyRevenue
	cfg.Baseline.MonthlyCosts = a.baseline.MonthlyCosts
	if a.setupVals.themeName != "" {
		cfg.Appearance.Theme = a.setupVals.themeName
		theme.SetActive(a.setupVals.themeName)
	}
	_ = config.Save(cfg)
	a.cfg = cfg

	if a.ws != nil {
		_ = a.ws.SaveBaseline(a.baseline)
	}
}
