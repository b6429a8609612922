package tui

import (
	"strings"
	"testing"

	"github.com/bodhisathwik/finsaver/internal/config"
	"github.com/bodhisathwik/finsaver/internal/model"
	"github.com/bodhisathwik/finsaver/internal/tui/components"

	tea "github.com/charmbracelet/bubbletea"
)

func testApp() App {
	a := NewApp(nil, config.DefaultConfig())
	a.loaded = true
	a.width = 120
	a.height = 40
	a.baseline = model.Baseline{
		BankBalance:    5_000_000,
		MonthlyRevenue: 800_000,
		MonthlyCosts:   1_200_000,
	}
	a.recompute()
	return a
}

func TestTabAtMatchesTabWidths(t *testing.T) {
	for active := 0; active < len(components.Tabs); active++ {
		a := App{activeTab: active}

		for row, bounds := range [][2]int{
			{0, components.TabBarRowSplit},
			{components.TabBarRowSplit, len(components.Tabs)},
		} {
			pos := 1 // leading space
			for i := bounds[0]; i < bounds[1]; i++ {
				w := components.TabVisualWidth(components.Tabs[i], i == active)
				x := pos + w/2 // midpoint inside this tab
				if got := a.tabAt(x, row); got != i {
					t.Fatalf("active=%d row=%d x=%d -> tab=%d, want %d", active, row, x, got, i)
				}
				pos += w + 2 // separator
			}
		}
	}
}

func TestForecastKeysAdjustInputs(t *testing.T) {
	a := testApp()
	before := a.result.Runway

	m, _ := a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'+'}})
	a = m.(App)

	if a.inputs.MonthlySpend != spendStep {
		t.Fatalf("MonthlySpend = %v, want %v", a.inputs.MonthlySpend, spendStep)
	}
	if a.result.Runway >= before {
		t.Fatalf("runway should shrink after adding spend: %v -> %v", before, a.result.Runway)
	}

	m, _ = a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'0'}})
	a = m.(App)
	if a.inputs != (model.ScenarioInputs{}) {
		t.Fatalf("inputs not reset: %+v", a.inputs)
	}
}

func TestTabNavigationKeys(t *testing.T) {
	a := testApp()

	m, _ := a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	a = m.(App)
	if a.activeTab != tabAlerts {
		t.Fatalf("activeTab = %d, want %d", a.activeTab, tabAlerts)
	}

	m, _ = a.Update(tea.KeyMsg{Type: tea.KeyRight})
	a = m.(App)
	if a.activeTab != tabSettings {
		t.Fatalf("activeTab = %d, want %d", a.activeTab, tabSettings)
	}

	m, _ = a.Update(tea.KeyMsg{Type: tea.KeyRight})
	a = m.(App)
	if a.activeTab != tabForecast {
		t.Fatalf("right arrow should wrap to first tab, got %d", a.activeTab)
	}

	// Settings is the one tab whose key is not in its name.
	m, _ = a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	a = m.(App)
	if a.activeTab != tabSettings {
		t.Fatalf("activeTab = %d, want %d", a.activeTab, tabSettings)
	}
}

func TestSaveScenarioSnapshotsState(t *testing.T) {
	a := testApp()
	a.inputs.MonthlySpend = 50_000
	a.headcount = []model.HeadcountRole{{ID: "r1", Role: "Engineer", Salary: 100_000, StartMonth: 1}}
	a.recompute()

	a.saveScenario("test plan")

	if len(a.scenarios) != 1 {
		t.Fatalf("scenarios = %d, want 1", len(a.scenarios))
	}
	s := a.scenarios[0]
	if s.Name != "test plan" {
		t.Fatalf("Name = %q", s.Name)
	}
	if s.Inputs.MonthlySpend != 50_000 {
		t.Fatalf("Inputs.MonthlySpend = %v", s.Inputs.MonthlySpend)
	}
	if len(s.Headcount) != 1 || s.Headcount[0].Role != "Engineer" {
		t.Fatalf("headcount snapshot missing: %+v", s.Headcount)
	}
	if s.Runway != a.result.Runway {
		t.Fatalf("Runway = %v, want %v", s.Runway, a.result.Runway)
	}
}

func TestDataLoadedFallsBackToConfigBaseline(t *testing.T) {
	a := NewApp(nil, config.DefaultConfig())
	a.width = 120
	a.height = 40

	m, _ := a.Update(DataLoadedMsg{HasBaseline: false})
	a = m.(App)

	if !a.loaded {
		t.Fatal("app should be loaded")
	}
	if a.baseline.BankBalance != 5_000_000 {
		t.Fatalf("BankBalance = %v, want config default", a.baseline.BankBalance)
	}
	if len(a.result.ForecastData) != model.ForecastMonths {
		t.Fatalf("forecast length = %d, want %d", len(a.result.ForecastData), model.ForecastMonths)
	}
}

func TestKPITabDerivesTrend(t *testing.T) {
	a := testApp()
	a.kpis = []model.KPI{
		{ID: "k1", Name: "MRR", Value: 110, Target: 100, PrevValue: 100},
	}

	out := a.renderKPIsTab(100)
	if !strings.Contains(out, "↑") {
		t.Fatal("rising KPI should render an up arrow")
	}
	if !strings.Contains(out, "+10.0%") {
		t.Fatalf("change should be derived from the prior reading, got:\n%s", out)
	}
}
