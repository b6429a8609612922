package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bodhisathwik/finsaver/internal/cli"
	"github.com/bodhisathwik/finsaver/internal/config"
	"github.com/bodhisathwik/finsaver/internal/tui/components"
	"github.com/bodhisathwik/finsaver/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	settingsFieldCurrency = iota
	settingsFieldTheme
	settingsFieldBankBalance
	settingsFieldMonthlyRevenue
	settingsFieldMonthlyCosts
	settingsFieldWatchAddr
	settingsFieldCount // sentinel
)

// settingsState tracks the settings tab state.
type settingsState struct {
	cursor  int
	editing bool
	input   textinput.Model
	saved   bool  // flash "saved" message briefly
	saveErr error // non-nil if last save failed
}

func newSettingsInput() textinput.Model {
	ti := textinput.New()
	ti.CharLimit = 256
	ti.Width = 50
	return ti
}

func (a App) settingsStartEdit() (tea.Model, tea.Cmd) {
	cfg := loadConfigOrDefault()
	a.settings.editing = true
	a.settings.saved = false

	ti := newSettingsInput()

	switch a.settings.cursor {
	case settingsFieldCurrency:
		ti.Placeholder = "₹, $, €, ..."
		ti.SetValue(cfg.General.Currency)
	case settingsFieldTheme:
		names := make([]string, len(theme.All))
		for i, t := range theme.All {
			names[i] = t.Name
		}
		ti.Placeholder = strings.Join(names, ", ")
		ti.SetValue(cfg.Appearance.Theme)
	case settingsFieldBankBalance:
		ti.Placeholder = "5000000"
		ti.SetValue(fmt.Sprintf("%.0f", a.baseline.BankBalance))
	case settingsFieldMonthlyRevenue:
		ti.Placeholder = "800000"
		ti.SetValue(fmt.Sprintf("%.0f", a.baseline.MonthlyRevenue))
	case settingsFieldMonthlyCosts:
		ti.Placeholder = "1200000"
		ti.SetValue(fmt.Sprintf("%.0f", a.baseline.MonthlyCosts))
	case settingsFieldWatchAddr:
		ti.Placeholder = "127.0.0.1:7468"
		ti.SetValue(cfg.Watch.Addr)
	}

	ti.Focus()
	a.settings.input = ti
	return a, ti.Cursor.BlinkCmd()
}

func (a App) updateSettingsInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch key {
	case "enter":
		a.settingsSave()
		a.settings.editing = false
		a.settings.saved = a.settings.saveErr == nil
		return a, nil
	case "esc":
		a.settings.editing = false
		return a, nil
	}

	var cmd tea.Cmd
	a.settings.input, cmd = a.settings.input.Update(msg)
	return a, cmd
}

func (a *App) settingsSave() {
	cfg := loadConfigOrDefault()
	val := strings.TrimSpace(a.settings.input.Value())
	baselineChanged := false

	switch a.settings.cursor {
	case settingsFieldCurrency:
		if val != "" {
			cfg.General.Currency = val
		}
	case settingsFieldTheme:
		// Validate theme name
		found := false
		for _, t := range theme.All {
			if t.Name == val {
				found = true
				break
			}
		}
		if found {
			cfg.Appearance.Theme = val
			theme.SetActive(val)
		}
	case settingsFieldBankBalance:
		if v, err := strconv.ParseFloat(val, 64); err == nil && v >= 0 {
			a.baseline.BankBalance = v
			baselineChanged = true
		}
	case settingsFieldMonthlyRevenue:
		if v, err := strconv.ParseFloat(val, 64); err == nil && v >= 0 {
			a.baseline.MonthlyRevenue = v
			baselineChanged = true
		}
	case settingsFieldMonthlyCosts:
		if v, err := strconv.ParseFloat(val, 64); err == nil && v >= 0 {
			a.baseline.MonthlyCosts = v
			baselineChanged = true
		}
	case settingsFieldWatchAddr:
		if val != "" {
			cfg.Watch.Addr = val
		}
	}

	if baselineChanged {
		cfg.Baseline.BankBalance = a.baseline.BankBalance
		cfg.Baseline.MonthlyRevenue = a.baseline.MonthlyRevenue
		cfg.Baseline.MonthlyCosts = a.baseline.MonthlyCosts
		if a.ws != nil {
			_ = a.ws.SaveBaseline(a.baseline)
		}
		a.recompute()
	}

	a.settings.saveErr = config.Save(cfg)
	if a.settings.saveErr == nil {
		a.cfg = cfg
	}
}

func (a App) renderSettingsTab(cw int) string {
	t := theme.Active
	cfg := loadConfigOrDefault()
	currency := cfg.General.Currency

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)
	selectedLabelStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.SurfaceBright).Bold(true)
	accentStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface)
	greenStyle := lipgloss.NewStyle().Foreground(t.GreenBright).Background(t.Surface)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceBright)

	type field struct {
		label string
		value string
	}

	fields := []field{
		{"Currency", cfg.General.Currency},
		{"Theme", cfg.Appearance.Theme},
		{"Bank Balance", cli.FormatMoneyExact(currency, a.baseline.BankBalance)},
		{"Monthly Revenue", cli.FormatMoneyExact(currency, a.baseline.MonthlyRevenue)},
		{"Monthly Costs", cli.FormatMoneyExact(currency, a.baseline.MonthlyCosts)},
		{"Watch Address", cfg.Watch.Addr},
	}

	var formBody strings.Builder
	for i, f := range fields {
		// Show text input if currently editing this field
		if a.settings.editing && i == a.settings.cursor {
			formBody.WriteString(markerStyle.Render("▸ "))
			formBody.WriteString(accentStyle.Render(fmt.Sprintf("%-18s ", f.label)))
			formBody.WriteString(a.settings.input.View())
			formBody.WriteString("\n")
			continue
		}

		if i == a.settings.cursor {
			// Selected row with marker and highlight
			marker := markerStyle.Render("▸ ")
			label := selectedLabelStyle.Render(fmt.Sprintf("%-18s ", f.label+":"))
			value := selectedStyle.Render(f.value)
			formBody.WriteString(marker)
			formBody.WriteString(label)
			formBody.WriteString(value)
			// Use lipgloss.Width() for correct visual width calculation
			usedWidth := lipgloss.Width(marker) + lipgloss.Width(label) + lipgloss.Width(value)
			innerW := components.CardInnerWidth(cw)
			padLen := innerW - usedWidth
			if padLen > 0 {
				formBody.WriteString(lipgloss.NewStyle().Background(t.SurfaceBright).Render(strings.Repeat(" ", padLen)))
			}
		} else {
			// Normal row
			formBody.WriteString(lipgloss.NewStyle().Background(t.Surface).Render("  "))
			formBody.WriteString(labelStyle.Render(fmt.Sprintf("%-18s ", f.label+":")))
			formBody.WriteString(valueStyle.Render(f.value))
		}
		formBody.WriteString("\n")
	}

	if a.settings.saveErr != nil {
		warnStyle := lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface)
		formBody.WriteString("\n")
		formBody.WriteString(warnStyle.Render(fmt.Sprintf("Save failed: %s", a.settings.saveErr)))
	} else if a.settings.saved {
		formBody.WriteString("\n")
		formBody.WriteString(greenStyle.Render("Saved!"))
	}

	formBody.WriteString("\n")
	formBody.WriteString(labelStyle.Render("[j/k] navigate  [Enter] edit  [Esc] cancel"))

	// General info card
	var infoBody strings.Builder
	infoBody.WriteString(labelStyle.Render("Workspace:       ") + valueStyle.Render(config.DataDir(cfg)) + "\n")
	infoBody.WriteString(labelStyle.Render("Saved scenarios: ") + valueStyle.Render(cli.FormatNumber(int64(len(a.scenarios)))) + "\n")
	infoBody.WriteString(labelStyle.Render("Planned roles:   ") + valueStyle.Render(cli.FormatNumber(int64(len(a.headcount)))) + "\n")
	infoBody.WriteString(labelStyle.Render("Config file:     ") + valueStyle.Render(config.ConfigPath()))

	var b strings.Builder
	b.WriteString(components.ContentCard("Settings", formBody.String(), cw))
	b.WriteString("\n")
	b.WriteString(components.ContentCard("Workspace", infoBody.String(), cw))

	return b.String()
}
