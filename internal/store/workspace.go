// Package store provides the SQLite-backed workspace holding the baseline,
// headcount plan, saved scenarios, budget and cash-flow items, KPIs, and
// alert rules.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bodhisathwik/finsaver/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Workspace is the on-disk planning state.
type Workspace struct {
	db *sql.DB
}

// Open opens or creates the workspace database at the given path.
func Open(dbPath string) (*Workspace, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening workspace db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Workspace{db: db}, nil
}

// Close closes the workspace database.
func (w *Workspace) Close() error {
	return w.db.Close()
}

// Baseline returns the saved baseline, or ok=false when none is stored.
func (w *Workspace) Baseline() (model.Baseline, bool, error) {
	var b model.Baseline
	err := w.db.QueryRow("SELECT bank_balance, monthly_revenue, monthly_costs FROM baseline WHERE id = 1").
		Scan(&b.BankBalance, &b.MonthlyRevenue, &b.MonthlyCosts)
	if err == sql.ErrNoRows {
		return b, false, nil
	}
	if err != nil {
		return b, false, err
	}
	return b, true, nil
}

// SaveBaseline stores the baseline, replacing any previous one.
func (w *Workspace) SaveBaseline(b model.Baseline) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := w.db.Exec(`INSERT OR REPLACE INTO baseline
		(id, bank_balance, monthly_revenue, monthly_costs, updated_at)
		VALUES (1, ?, ?, ?, ?)`,
		b.BankBalance, b.MonthlyRevenue, b.MonthlyCosts, now)
	return err
}

// Headcount returns the current headcount plan ordered by start month.
func (w *Workspace) Headcount() ([]model.HeadcountRole, error) {
	rows, err := w.db.Query("SELECT id, role, salary, start_month FROM headcount ORDER BY start_month, role")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var roles []model.HeadcountRole
	for rows.Next() {
		var r model.HeadcountRole
		if err := rows.Scan(&r.ID, &r.Role, &r.Salary, &r.StartMonth); err != nil {
			return nil, err
		}
		roles = append(roles, r)
	}
	return roles, rows.Err()
}

// SaveRole inserts or updates a headcount role.
func (w *Workspace) SaveRole(r model.HeadcountRole) error {
	_, err := w.db.Exec(`INSERT OR REPLACE INTO headcount (id, role, salary, start_month)
		VALUES (?, ?, ?, ?)`, r.ID, r.Role, r.Salary, r.StartMonth)
	return err
}

// DeleteRole removes a headcount role.
func (w *Workspace) DeleteRole(id string) error {
	_, err := w.db.Exec("DELETE FROM headcount WHERE id = ?", id)
	return err
}

// SaveScenario stores a named scenario and its headcount snapshot.
func (w *Workspace) SaveScenario(s model.Scenario) error {
	tx, err := w.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.Exec(`INSERT OR REPLACE INTO scenarios
		(id, name, monthly_spend, one_time_spend, price_change, runway, burn, saved_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		s.ID, s.Name, s.Inputs.MonthlySpend, s.Inputs.OneTimeSpend, s.Inputs.PriceChange,
		s.Runway, s.Burn, s.SavedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return err
	}

	if _, err := tx.Exec("DELETE FROM scenario_headcount WHERE scenario_id = ?", s.ID); err != nil {
		return err
	}
	for _, r := range s.Headcount {
		_, err := tx.Exec(`INSERT INTO scenario_headcount
			(scenario_id, role_id, role, salary, start_month)
			VALUES (?, ?, ?, ?, ?)`, s.ID, r.ID, r.Role, r.Salary, r.StartMonth)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// Scenarios returns all saved scenarios, most recent first.
func (w *Workspace) Scenarios() ([]model.Scenario, error) {
	rows, err := w.db.Query(`SELECT id, name, monthly_spend, one_time_spend, price_change,
		runway, burn, saved_at FROM scenarios ORDER BY saved_at DESC`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var scenarios []model.Scenario
	for rows.Next() {
		var s model.Scenario
		var savedAt string
		err := rows.Scan(&s.ID, &s.Name, &s.Inputs.MonthlySpend, &s.Inputs.OneTimeSpend,
			&s.Inputs.PriceChange, &s.Runway, &s.Burn, &savedAt)
		if err != nil {
			return nil, err
		}
		s.SavedAt, _ = time.Parse(time.RFC3339, savedAt)
		scenarios = append(scenarios, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	idx := make(map[string]int)
	for i, s := range scenarios {
		idx[s.ID] = i
	}

	hcRows, err := w.db.Query("SELECT scenario_id, role_id, role, salary, start_month FROM scenario_headcount")
	if err != nil {
		return nil, err
	}
	defer func() { _ = hcRows.Close() }()

	for hcRows.Next() {
		var sid string
		var r model.HeadcountRole
		if err := hcRows.Scan(&sid, &r.ID, &r.Role, &r.Salary, &r.StartMonth); err != nil {
			return nil, err
		}
		if i, ok := idx[sid]; ok {
			scenarios[i].Headcount = append(scenarios[i].Headcount, r)
		}
	}

	return scenarios, hcRows.Err()
}

// DeleteScenario removes a scenario and its headcount snapshot.
func (w *Workspace) DeleteScenario(id string) error {
	_, err := w.db.Exec("DELETE FROM scenarios WHERE id = ?", id)
	return err
}

// BudgetItems returns all budget items, largest budget first.
func (w *Workspace) BudgetItems() ([]model.BudgetItem, error) {
	rows, err := w.db.Query("SELECT id, category, budgeted, actual, month FROM budget_items ORDER BY budgeted DESC")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var items []model.BudgetItem
	for rows.Next() {
		var b model.BudgetItem
		if err := rows.Scan(&b.ID, &b.Category, &b.Budgeted, &b.Actual, &b.Month); err != nil {
			return nil, err
		}
		items = append(items, b)
	}
	return items, rows.Err()
}

// SaveBudgetItem inserts or updates a budget item.
func (w *Workspace) SaveBudgetItem(b model.BudgetItem) error {
	_, err := w.db.Exec(`INSERT OR REPLACE INTO budget_items (id, category, budgeted, actual, month)
		VALUES (?, ?, ?, ?, ?)`, b.ID, b.Category, b.Budgeted, b.Actual, b.Month)
	return err
}

// DeleteBudgetItem removes a budget item.
func (w *Workspace) DeleteBudgetItem(id string) error {
	_, err := w.db.Exec("DELETE FROM budget_items WHERE id = ?", id)
	return err
}

// CashFlowItems returns all cash-flow items, newest date first.
func (w *Workspace) CashFlowItems() ([]model.CashFlowItem, error) {
	rows, err := w.db.Query(`SELECT id, description, amount, category, flow_type, flow_date, recurring
		FROM cashflow_items ORDER BY flow_date DESC`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var items []model.CashFlowItem
	for rows.Next() {
		var c model.CashFlowItem
		var flowType string
		var recurring int
		if err := rows.Scan(&c.ID, &c.Description, &c.Amount, &c.Category, &flowType, &c.Date, &recurring); err != nil {
			return nil, err
		}
		c.Type = model.FlowType(flowType)
		c.Recurring = recurring != 0
		items = append(items, c)
	}
	return items, rows.Err()
}

// SaveCashFlowItem inserts or updates a cash-flow item.
func (w *Workspace) SaveCashFlowItem(c model.CashFlowItem) error {
	recurring := 0
	if c.Recurring {
		recurring = 1
	}
	_, err := w.db.Exec(`INSERT OR REPLACE INTO cashflow_items
		(id, description, amount, category, flow_type, flow_date, recurring)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.Description, c.Amount, c.Category, string(c.Type), c.Date, recurring)
	return err
}

// DeleteCashFlowItem removes a cash-flow item.
func (w *Workspace) DeleteCashFlowItem(id string) error {
	_, err := w.db.Exec("DELETE FROM cashflow_items WHERE id = ?", id)
	return err
}

// KPIs returns all tracked KPIs ordered by name.
func (w *Workspace) KPIs() ([]model.KPI, error) {
	rows, err := w.db.Query("SELECT id, name, value, target, unit, prev_value FROM kpis ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var kpis []model.KPI
	for rows.Next() {
		var k model.KPI
		var unit sql.NullString
		if err := rows.Scan(&k.ID, &k.Name, &k.Value, &k.Target, &unit, &k.PrevValue); err != nil {
			return nil, err
		}
		k.Unit = unit.String
		kpis = append(kpis, k)
	}
	return kpis, rows.Err()
}

// SaveKPI inserts or updates a KPI.
func (w *Workspace) SaveKPI(k model.KPI) error {
	_, err := w.db.Exec(`INSERT OR REPLACE INTO kpis (id, name, value, target, unit, prev_value)
		VALUES (?, ?, ?, ?, ?, ?)`, k.ID, k.Name, k.Value, k.Target, k.Unit, k.PrevValue)
	return err
}

// DeleteKPI removes a KPI.
func (w *Workspace) DeleteKPI(id string) error {
	_, err := w.db.Exec("DELETE FROM kpis WHERE id = ?", id)
	return err
}

// AlertRules returns all stored alert rules.
func (w *Workspace) AlertRules() ([]model.AlertRule, error) {
	rows, err := w.db.Query(`SELECT id, name, metric, condition, threshold, severity,
		enabled, cooldown_secs, last_triggered FROM alert_rules ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var rules []model.AlertRule
	for rows.Next() {
		var r model.AlertRule
		var condition, severity string
		var enabled, cooldownSecs int64
		var lastTriggered sql.NullString
		err := rows.Scan(&r.ID, &r.Name, &r.Metric, &condition, &r.Threshold, &severity,
			&enabled, &cooldownSecs, &lastTriggered)
		if err != nil {
			return nil, err
		}
		r.Condition = model.Condition(condition)
		r.Severity = model.Severity(severity)
		r.Enabled = enabled != 0
		r.Cooldown = time.Duration(cooldownSecs) * time.Second
		if lastTriggered.Valid && lastTriggered.String != "" {
			r.LastTriggered, _ = time.Parse(time.RFC3339, lastTriggered.String)
		}
		rules = append(rules, r)
	}
	return rules, rows.Err()
}

// SaveAlertRule inserts or updates an alert rule.
func (w *Workspace) SaveAlertRule(r model.AlertRule) error {
	enabled := 0
	if r.Enabled {
		enabled = 1
	}
	lastTriggered := ""
	if !r.LastTriggered.IsZero() {
		lastTriggered = r.LastTriggered.UTC().Format(time.RFC3339)
	}
	_, err := w.db.Exec(`INSERT OR REPLACE INTO alert_rules
		(id, name, metric, condition, threshold, severity, enabled, cooldown_secs, last_triggered)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Name, r.Metric, string(r.Condition), r.Threshold, string(r.Severity),
		enabled, int64(r.Cooldown/time.Second), lastTriggered)
	return err
}

// DeleteAlertRule removes an alert rule.
func (w *Workspace) DeleteAlertRule(id string) error {
	_, err := w.db.Exec("DELETE FROM alert_rules WHERE id = ?", id)
	return err
}
