// Package tui provides the interactive Bubble Tea dashboard for finsaver.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/bodhisathwik/finsaver/internal/alert"
	"github.com/bodhisathwik/finsaver/internal/cli"
	"github.com/bodhisathwik/finsaver/internal/config"
	"github.com/bodhisathwik/finsaver/internal/forecast"
	"github.com/bodhisathwik/finsaver/internal/model"
	"github.com/bodhisathwik/finsaver/internal/sim"
	"github.com/bodhisathwik/finsaver/internal/store"
	"github.com/bodhisathwik/finsaver/internal/tui/components"
	"github.com/bodhisathwik/finsaver/internal/tui/theme"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// DataLoadedMsg is sent when the workspace finishes loading.
type DataLoadedMsg struct {
	Baseline    model.Baseline
	HasBaseline bool
	Headcount   []model.HeadcountRole
	Budget      []model.BudgetItem
	CashFlow    []model.CashFlowItem
	KPIs        []model.KPI
	Scenarios   []model.Scenario
	Rules       []model.AlertRule
	Err         error
}

// App is the root Bubble Tea model.
type App struct {
	ws  *store.Workspace
	cfg config.Config

	// Planning state
	baseline  model.Baseline
	inputs    model.ScenarioInputs
	headcount []model.HeadcountRole
	budget    []model.BudgetItem
	cashflow  []model.CashFlowItem
	kpis      []model.KPI
	scenarios []model.Scenario

	// Derived per recompute
	result     model.ForecastResult
	baseResult model.ForecastResult

	alerts   *alert.Engine
	insights *sim.InsightRotator
	insight  string

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool
	loaded    bool
	loadErr   error

	// Per-tab state
	hcState   headcountState
	alState   alertsState
	settings  settingsState
	saveState scenarioSaveState

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals setupValues
	needSetup bool

	spinner spinner.Model
	ticks   int
}

const (
	minTerminalWidth = 80
	compactWidth     = 120
	maxContentWidth  = 180

	minContentHeight = 5 // minimum content area height

	spendStep   = 10_000
	oneTimeStep = 50_000
	priceStep   = 1
)

const (
	tabForecast = iota
	tabHeadcount
	tabBudget
	tabCashFlow
	tabKPIs
	tabAlerts
	tabSettings
)

// loadConfigOrDefault loads config, returning defaults on error so the TUI
// can always start even if the file is corrupted.
func loadConfigOrDefault() config.Config {
	cfg, err := config.Load()
	if err != nil {
		return config.DefaultConfig()
	}
	return cfg
}

// NewApp creates a new TUI app model. The workspace may be nil, in which
// case edits are kept in memory only.
func NewApp(ws *store.Workspace, cfg config.Config) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent).Background(theme.Active.Surface)

	return App{
		ws:       ws,
		cfg:      cfg,
		alerts:   alert.New(),
		insights: sim.NewInsightRotator(nil),
		spinner:  sp,
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnableMouseCellMotion,
		loadDataCmd(a.ws, a.cfg),
		a.spinner.Tick,
		tickCmd(),
	)
}

func (a *App) recompute() {
	a.result = forecast.Project(a.baseline, a.inputs, a.headcount)
	a.baseResult = forecast.Project(a.baseline, model.ScenarioInputs{}, nil)

	if a.hcState.cursor >= len(a.headcount) {
		a.hcState.cursor = len(a.headcount) - 1
	}
	if a.hcState.cursor < 0 {
		a.hcState.cursor = 0
	}
}

func (a App) currentMetrics() map[string]float64 {
	overspend := 0.0
	var budgeted, actual float64
	for _, b := range a.budget {
		budgeted += b.Budgeted
		actual += b.Actual
	}
	if budgeted > 0 {
		overspend = (actual - budgeted) / budgeted * 100
	}
	return map[string]float64{
		"runway_months":       a.result.Runway,
		"monthly_burn":        a.result.Burn,
		"cash_balance":        a.baseline.BankBalance,
		"budget_variance_pct": overspend,
	}
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		if a.hcState.form != nil {
			a.hcState.form = a.hcState.form.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.MouseMsg:
		if !a.loaded || a.showHelp || a.inModal() {
			return a, nil
		}
		if msg.Button == tea.MouseButtonLeft && msg.Y <= 1 {
			if tab := a.tabAt(msg.X, msg.Y); tab >= 0 && tab < len(components.Tabs) {
				a.activeTab = tab
			}
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		// Global: quit
		if key == "ctrl+c" {
			return a, tea.Quit
		}

		if !a.loaded {
			return a, nil
		}

		// First-run setup wizard intercepts all keys
		if a.needSetup && a.setupForm != nil {
			return a.updateSetupForm(msg)
		}

		// Role entry form intercepts all keys
		if a.hcState.form != nil {
			return a.updateRoleForm(msg)
		}

		// Scenario naming intercepts all keys
		if a.saveState.naming {
			return a.updateScenarioName(msg)
		}

		// Settings tab has its own keybindings (text input)
		if a.activeTab == tabSettings && a.settings.editing {
			return a.updateSettingsInput(msg)
		}

		// Help toggle
		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		if handled, m, cmd := a.updateTabKeys(key); handled {
			return m, cmd
		}

		// Global quit
		if key == "q" {
			return a, tea.Quit
		}

		// Tab navigation
		switch key {
		case "left":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
		case "right":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		default:
			if len(key) == 1 {
				if idx := components.TabIdxByKey(rune(key[0])); idx >= 0 {
					a.activeTab = idx
				}
			}
		}
		return a, nil

	case DataLoadedMsg:
		a.loaded = true
		a.loadErr = msg.Err
		a.baseline = msg.Baseline
		a.headcount = msg.Headcount
		a.budget = msg.Budget
		a.cashflow = msg.CashFlow
		a.kpis = msg.KPIs
		a.scenarios = msg.Scenarios
		for _, r := range msg.Rules {
			a.alerts.AddRule(r)
		}
		if !msg.HasBaseline {
			a.baseline = model.Baseline{
				BankBalance:    a.cfg.Baseline.BankBalance,
				MonthlyRevenue: a.cfg.Baseline.MonthlyRevenue,
				MonthlyCosts:   a.cfg.Baseline.MonthlyCosts,
			}
		}
		a.recompute()
		a.insight = a.insights.Next()

		// First-run setup when nothing is saved yet
		if !msg.HasBaseline && !config.Exists() {
			a.needSetup = true
			a.setupForm = newSetupForm(&a.setupVals, a.baseline)
			if a.width > 0 {
				a.setupForm = a.setupForm.WithWidth(a.width).WithHeight(a.height)
			}
			return a, a.setupForm.Init()
		}
		return a, nil

	case spinner.TickMsg:
		if !a.loaded {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil

	case tickMsg:
		a.ticks++
		if a.loaded {
			a.alerts.Check(a.currentMetrics())
			// Insights rotate on every third alert tick (15s vs 5s).
			if a.ticks%3 == 0 {
				a.insight = a.insights.Next()
			}
		}
		return a, tickCmd()
	}

	// Forward unhandled messages to the setup form (cursor blinks, etc.)
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}
	if a.hcState.form != nil {
		return a.updateRoleForm(msg)
	}

	return a, nil
}

// inModal reports whether a form or text input currently owns the keyboard.
func (a App) inModal() bool {
	return (a.needSetup && a.setupForm != nil) ||
		a.hcState.form != nil ||
		a.saveState.naming ||
		(a.activeTab == tabSettings && a.settings.editing)
}

// updateTabKeys dispatches tab-specific keybindings. Returns handled=false
// for keys that should fall through to global handling.
func (a App) updateTabKeys(key string) (bool, tea.Model, tea.Cmd) {
	switch a.activeTab {
	case tabForecast:
		switch key {
		case "+", "=":
			a.inputs.MonthlySpend += spendStep
		case "-":
			a.inputs.MonthlySpend -= spendStep
		case "o":
			a.inputs.OneTimeSpend += oneTimeStep
		case "O":
			a.inputs.OneTimeSpend -= oneTimeStep
		case "p":
			a.inputs.PriceChange += priceStep
		case "P":
			a.inputs.PriceChange -= priceStep
		case "0":
			a.inputs = model.ScenarioInputs{}
		case "s":
			m, cmd := a.startScenarioName()
			return true, m, cmd
		case "D":
			return a.deleteNewestScenario()
		default:
			return false, a, nil
		}
		a.recompute()
		return true, a, nil

	case tabHeadcount:
		switch key {
		case "j", "down":
			if a.hcState.cursor < len(a.headcount)-1 {
				a.hcState.cursor++
			}
			return true, a, nil
		case "k", "up":
			if a.hcState.cursor > 0 {
				a.hcState.cursor--
			}
			return true, a, nil
		case "n":
			m, cmd := a.startRoleForm()
			return true, m, cmd
		case "d":
			return a.deleteSelectedRole()
		}

	case tabAlerts:
		events := a.alerts.ActiveEvents()
		switch key {
		case "j", "down":
			if a.alState.cursor < len(events)-1 {
				a.alState.cursor++
			}
			return true, a, nil
		case "k", "up":
			if a.alState.cursor > 0 {
				a.alState.cursor--
			}
			return true, a, nil
		case "m":
			if a.alState.cursor < len(events) {
				a.alerts.Acknowledge(events[a.alState.cursor].ID)
			}
			return true, a, nil
		case "u":
			if a.alState.cursor < len(events) {
				a.alerts.Resolve(events[a.alState.cursor].ID)
				if a.alState.cursor > 0 {
					a.alState.cursor--
				}
			}
			return true, a, nil
		}

	case tabSettings:
		switch key {
		case "j", "down":
			if a.settings.cursor < settingsFieldCount-1 {
				a.settings.cursor++
			}
			return true, a, nil
		case "k", "up":
			if a.settings.cursor > 0 {
				a.settings.cursor--
			}
			return true, a, nil
		case "enter":
			m, cmd := a.settingsStartEdit()
			return true, m, cmd
		}
	}
	return false, a, nil
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

func (a App) isCompactLayout() bool {
	return a.contentWidth() < compactWidth
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if !a.loaded {
		return a.viewLoading()
	}

	if a.needSetup && a.setupForm != nil {
		return a.setupForm.View()
	}
	if a.hcState.form != nil {
		return a.hcState.form.View()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  finsaver needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewLoading() string {
	t := theme.Active
	w := a.width
	h := a.height

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(2, 4)

	logoStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	subtitleStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(logoStyle.Render("◈ finsaver"))
	b.WriteString(subtitleStyle.Render(" · Runway & Planning"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Render(a.spinner.View()))
	b.WriteString(subtitleStyle.Render(" Opening workspace..."))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewHelp() string {
	t := theme.Active
	h := a.height
	w := a.width

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	sectionStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Cyan).
		Background(t.Surface).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Navigation"))
	b.WriteString("\n")
	navBindings := []struct{ key, desc string }{
		{"f h b c k a x", "Jump to tab"},
		{"← →", "Previous / Next tab"},
		{"j k", "Navigate lists"},
	}
	for _, bind := range navBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-14s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Forecast"))
	b.WriteString("\n")
	fcBindings := []struct{ key, desc string }{
		{"+ -", "Adjust monthly spend"},
		{"o O", "Adjust one-time spend"},
		{"p P", "Adjust price change"},
		{"0", "Reset scenario inputs"},
		{"s", "Save scenario"},
		{"D", "Delete newest scenario"},
	}
	for _, bind := range fcBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-14s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Actions"))
	b.WriteString("\n")
	actionBindings := []struct{ key, desc string }{
		{"n / d", "New / Delete role (Headcount)"},
		{"m / u", "Acknowledge / Resolve alert"},
		{"Enter", "Edit setting"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}
	for _, bind := range actionBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-14s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := components.RenderTabBar(a.activeTab, w)

	statusBar := components.RenderStatusBar(w, cli.FormatMonths(a.result.Runway), a.insight)

	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch a.activeTab {
	case tabForecast:
		content = a.renderForecastTab(cw)
	case tabHeadcount:
		content = a.renderHeadcountTab(cw)
	case tabBudget:
		content = a.renderBudgetTab(cw)
	case tabCashFlow:
		content = a.renderCashFlowTab(cw)
	case tabKPIs:
		content = a.renderKPIsTab(cw)
	case tabAlerts:
		content = a.renderAlertsTab(cw)
	case tabSettings:
		content = a.renderSettingsTab(cw)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// ─── Helpers ────────────────────────────────────────────────────

type tickMsg struct{}

func tickCmd() tea.Cmd {
	return tea.Tick(5*time.Second, func(time.Time) tea.Msg {
		return tickMsg{}
	})
}

// loadDataCmd reads the full workspace in a background goroutine.
func loadDataCmd(ws *store.Workspace, cfg config.Config) tea.Cmd {
	return func() tea.Msg {
		if ws == nil {
			return DataLoadedMsg{}
		}

		var msg DataLoadedMsg
		var err error

		msg.Baseline, msg.HasBaseline, err = ws.Baseline()
		if err != nil {
			return DataLoadedMsg{Err: err}
		}
		if msg.Headcount, err = ws.Headcount(); err != nil {
			return DataLoadedMsg{Err: err}
		}
		if msg.Budget, err = ws.BudgetItems(); err != nil {
			return DataLoadedMsg{Err: err}
		}
		if msg.CashFlow, err = ws.CashFlowItems(); err != nil {
			return DataLoadedMsg{Err: err}
		}
		if msg.KPIs, err = ws.KPIs(); err != nil {
			return DataLoadedMsg{Err: err}
		}
		if msg.Scenarios, err = ws.Scenarios(); err != nil {
			return DataLoadedMsg{Err: err}
		}
		if msg.Rules, err = ws.AlertRules(); err != nil {
			return DataLoadedMsg{Err: err}
		}
		return msg
	}
}

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	padding := strings.Repeat("\n", h-len(lines))
	return s + padding
}

// fillLinesWithBackground pads each line to width w with background color
// so gaps between cards and empty lines render with proper fill.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		placed := lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
		result.WriteString(placed)
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}

// ─── Mouse Support ──────────────────────────────────────────────

// tabAt returns the tab index at the given coordinate, or -1 if none.
// Hitboxes are derived from the same layout rules used by RenderTabBar,
// which places tabs 0-3 on the first row and the rest on the second.
func (a App) tabAt(x, y int) int {
	start, end := 0, components.TabBarRowSplit
	if y == 1 {
		start, end = components.TabBarRowSplit, len(components.Tabs)
	} else if y != 0 {
		return -1
	}

	pos := 1 // leading space
	for i := start; i < end; i++ {
		tabW := components.TabVisualWidth(components.Tabs[i], i == a.activeTab)

		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW + 2 // two-space separator
	}
	return -1
}
