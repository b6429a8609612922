package cmd

import (
	"fmt"

	"github.com/bodhisathwik/finsaver/internal/alert"
	"github.com/bodhisathwik/finsaver/internal/analysis"
	"github.com/bodhisathwik/finsaver/internal/cli"
	"github.com/bodhisathwik/finsaver/internal/forecast"

	"github.com/spf13/cobra"
)

var alertsCmd = &cobra.Command{
	Use:   "alerts",
	Short: "Evaluate alert rules against current metrics",
	RunE:  runAlerts,
}

var alertsRulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List alert rules",
	RunE:  runAlertRules,
}

func init() {
	alertsCmd.AddCommand(alertsRulesCmd)
	rootCmd.AddCommand(alertsCmd)
}

func runAlerts(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	ws, err := openWorkspace(cfg)
	if err != nil {
		return err
	}
	defer ws.Close()

	engine := alert.New()
	stored, err := ws.AlertRules()
	if err != nil {
		return err
	}
	for _, r := range stored {
		engine.AddRule(r)
	}

	baseline, err := loadBaseline(ws, cfg)
	if err != nil {
		return err
	}
	headcount, err := ws.Headcount()
	if err != nil {
		return err
	}
	budget, err := ws.BudgetItems()
	if err != nil {
		return err
	}

	result := forecast.Project(baseline, scenarioInputs(), headcount)
	budgetSummary := analysis.AnalyzeBudget(budget)

	metrics := map[string]float64{
		"runway_months":       result.Runway,
		"monthly_burn":        result.Burn,
		"cash_balance":        baseline.BankBalance,
		"budget_variance_pct": budgetSummary.TotalVariance,
	}

	fired := engine.Check(metrics)

	// Persist updated LastTriggered so cooldowns hold across runs.
	for _, r := range engine.Rules() {
		if err := ws.SaveAlertRule(r); err != nil {
			return err
		}
	}

	fmt.Println()
	if len(fired) == 0 {
		fmt.Println("  No alerts fired. All metrics within thresholds.")
	} else {
		for _, ev := range fired {
			tag := cli.SeverityStyle(ev.Severity).Render("[" + string(ev.Severity) + "]")
			fmt.Printf("  %s %s\n", tag, ev.Message)
		}
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Current Metrics",
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"runway_months", cli.FormatMonths(result.Runway)},
			{"monthly_burn", cli.FormatMoneyExact(cfg.General.Currency, result.Burn)},
			{"cash_balance", cli.FormatMoneyExact(cfg.General.Currency, baseline.BankBalance)},
			{"budget_variance_pct", cli.FormatSignedPercent(budgetSummary.TotalVariance)},
		},
	}))
	return nil
}

func runAlertRules(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	ws, err := openWorkspace(cfg)
	if err != nil {
		return err
	}
	defer ws.Close()

	engine := alert.New()
	stored, err := ws.AlertRules()
	if err != nil {
		return err
	}
	for _, r := range stored {
		engine.AddRule(r)
	}

	rows := [][]string{}
	for _, r := range engine.Rules() {
		enabled := "yes"
		if !r.Enabled {
			enabled = "no"
		}
		last := "never"
		if !r.LastTriggered.IsZero() {
			last = r.LastTriggered.Local().Format("2006-01-02 15:04")
		}
		rows = append(rows, []string{
			r.Name,
			r.Metric,
			fmt.Sprintf("%s %.0f", r.Condition, r.Threshold),
			string(r.Severity),
			r.Cooldown.String(),
			enabled,
			last,
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Alert Rules",
		Headers: []string{"Rule", "Metric", "Condition", "Severity", "Cooldown", "Enabled", "Last Fired"},
		Rows:    rows,
	}))
	return nil
}
