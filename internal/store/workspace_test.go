package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/bodhisathwik/finsaver/internal/model"
)

func openTestWorkspace(t *testing.T) *Workspace {
	t.Helper()
	w, err := Open(filepath.Join(t.TempDir(), "finsaver.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = w.Close() })
	return w
}

func TestBaselineRoundTrip(t *testing.T) {
	w := openTestWorkspace(t)

	if _, ok, err := w.Baseline(); err != nil || ok {
		t.Fatalf("empty workspace: ok=%v err=%v", ok, err)
	}

	b := model.Baseline{BankBalance: 5000000, MonthlyRevenue: 800000, MonthlyCosts: 1200000}
	if err := w.SaveBaseline(b); err != nil {
		t.Fatalf("SaveBaseline: %v", err)
	}

	got, ok, err := w.Baseline()
	if err != nil || !ok {
		t.Fatalf("Baseline: ok=%v err=%v", ok, err)
	}
	if got != b {
		t.Fatalf("got %+v, want %+v", got, b)
	}

	// Replacing keeps a single row.
	b.BankBalance = 6000000
	if err := w.SaveBaseline(b); err != nil {
		t.Fatalf("SaveBaseline replace: %v", err)
	}
	got, _, _ = w.Baseline()
	if got.BankBalance != 6000000 {
		t.Fatalf("replace: bank balance = %v", got.BankBalance)
	}
}

func TestHeadcountCRUD(t *testing.T) {
	w := openTestWorkspace(t)

	roles := []model.HeadcountRole{
		{ID: "r2", Role: "Designer", Salary: 90000, StartMonth: 3},
		{ID: "r1", Role: "Engineer", Salary: 150000, StartMonth: 1},
	}
	for _, r := range roles {
		if err := w.SaveRole(r); err != nil {
			t.Fatalf("SaveRole: %v", err)
		}
	}

	got, err := w.Headcount()
	if err != nil {
		t.Fatalf("Headcount: %v", err)
	}
	if len(got) != 2 || got[0].ID != "r1" || got[1].ID != "r2" {
		t.Fatalf("order = %+v", got)
	}

	if err := w.DeleteRole("r1"); err != nil {
		t.Fatalf("DeleteRole: %v", err)
	}
	got, _ = w.Headcount()
	if len(got) != 1 || got[0].ID != "r2" {
		t.Fatalf("after delete = %+v", got)
	}
}

func TestScenarioRoundTrip(t *testing.T) {
	w := openTestWorkspace(t)

	s := model.Scenario{
		ID:   "s1",
		Name: "Hiring freeze",
		Inputs: model.ScenarioInputs{
			MonthlySpend: 50000,
			OneTimeSpend: 100000,
			PriceChange:  5,
		},
		Headcount: []model.HeadcountRole{
			{ID: "r1", Role: "Engineer", Salary: 150000, StartMonth: 1},
		},
		Runway:  12.5,
		Burn:    400000,
		SavedAt: time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
	}
	if err := w.SaveScenario(s); err != nil {
		t.Fatalf("SaveScenario: %v", err)
	}

	later := s
	later.ID = "s2"
	later.Name = "Aggressive growth"
	later.SavedAt = s.SavedAt.Add(time.Hour)
	if err := w.SaveScenario(later); err != nil {
		t.Fatalf("SaveScenario: %v", err)
	}

	got, err := w.Scenarios()
	if err != nil {
		t.Fatalf("Scenarios: %v", err)
	}
	if len(got) != 2 || got[0].ID != "s2" || got[1].ID != "s1" {
		t.Fatalf("order = %v, %v", got[0].ID, got[1].ID)
	}
	if got[1].Inputs != s.Inputs || got[1].Runway != 12.5 {
		t.Fatalf("scenario fields = %+v", got[1])
	}
	if len(got[1].Headcount) != 1 || got[1].Headcount[0].Role != "Engineer" {
		t.Fatalf("headcount snapshot = %+v", got[1].Headcount)
	}

	if err := w.DeleteScenario("s1"); err != nil {
		t.Fatalf("DeleteScenario: %v", err)
	}
	got, _ = w.Scenarios()
	if len(got) != 1 || got[0].ID != "s2" {
		t.Fatalf("after delete = %+v", got)
	}
}

func TestBudgetAndCashFlowItems(t *testing.T) {
	w := openTestWorkspace(t)

	items := []model.BudgetItem{
		{ID: "b1", Category: "Marketing", Budgeted: 30000, Actual: 28000, Month: "2026-08"},
		{ID: "b2", Category: "Personnel", Budgeted: 120000, Actual: 125000, Month: "2026-08"},
	}
	for _, b := range items {
		if err := w.SaveBudgetItem(b); err != nil {
			t.Fatalf("SaveBudgetItem: %v", err)
		}
	}
	got, err := w.BudgetItems()
	if err != nil {
		t.Fatalf("BudgetItems: %v", err)
	}
	if len(got) != 2 || got[0].Category != "Personnel" {
		t.Fatalf("budget order = %+v", got)
	}

	cf := model.CashFlowItem{
		ID: "c1", Description: "Client invoice", Amount: 85000,
		Category: "Sales", Type: model.FlowInflow, Date: "2026-08-15", Recurring: true,
	}
	if err := w.SaveCashFlowItem(cf); err != nil {
		t.Fatalf("SaveCashFlowItem: %v", err)
	}
	cfs, err := w.CashFlowItems()
	if err != nil {
		t.Fatalf("CashFlowItems: %v", err)
	}
	if len(cfs) != 1 || cfs[0].Type != model.FlowInflow || !cfs[0].Recurring {
		t.Fatalf("cashflow = %+v", cfs)
	}
}

func TestAlertRulesRoundTrip(t *testing.T) {
	w := openTestWorkspace(t)

	r := model.AlertRule{
		ID:        "runway_critical",
		Name:      "Runway critical",
		Metric:    "runway",
		Condition: model.CondBelow,
		Threshold: 3,
		Severity:  model.SeverityCritical,
		Enabled:   true,
		Cooldown:  30 * time.Minute,
	}
	if err := w.SaveAlertRule(r); err != nil {
		t.Fatalf("SaveAlertRule: %v", err)
	}

	rules, err := w.AlertRules()
	if err != nil {
		t.Fatalf("AlertRules: %v", err)
	}
	if len(rules) != 1 {
		t.Fatalf("rules = %+v", rules)
	}
	got := rules[0]
	if got.Condition != model.CondBelow || got.Cooldown != 30*time.Minute || !got.Enabled {
		t.Fatalf("rule = %+v", got)
	}
	if !got.LastTriggered.IsZero() {
		t.Fatalf("last triggered should be zero, got %v", got.LastTriggered)
	}

	got.LastTriggered = time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	got.Enabled = false
	if err := w.SaveAlertRule(got); err != nil {
		t.Fatalf("SaveAlertRule update: %v", err)
	}
	rules, _ = w.AlertRules()
	if rules[0].Enabled || !rules[0].LastTriggered.Equal(got.LastTriggered) {
		t.Fatalf("updated rule = %+v", rules[0])
	}
}

func TestKPIRoundTrip(t *testing.T) {
	w := openTestWorkspace(t)

	k := model.KPI{ID: "k1", Name: "MRR", Value: 800000, Target: 1000000, Unit: "₹", PrevValue: 760000}
	if err := w.SaveKPI(k); err != nil {
		t.Fatalf("SaveKPI: %v", err)
	}
	got, err := w.KPIs()
	if err != nil {
		t.Fatalf("KPIs: %v", err)
	}
	if len(got) != 1 || got[0] != k {
		t.Fatalf("kpis = %+v", got)
	}

	if err := w.DeleteKPI("k1"); err != nil {
		t.Fatalf("DeleteKPI: %v", err)
	}
	got, _ = w.KPIs()
	if len(got) != 0 {
		t.Fatalf("after delete = %+v", got)
	}
}
