package cmd

import (
	"fmt"

	"github.com/bodhisathwik/finsaver/internal/analysis"
	"github.com/bodhisathwik/finsaver/internal/model"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Seed the workspace with sample planning data",
	RunE:  runSample,
}

func init() {
	rootCmd.AddCommand(sampleCmd)
}

func sampleBudget() []model.BudgetItem {
	return []model.BudgetItem{
		{ID: uuid.NewString(), Category: "Personnel", Budgeted: 50000, Actual: 52000, Month: "2025-01"},
		{ID: uuid.NewString(), Category: "Marketing", Budgeted: 15000, Actual: 12000, Month: "2025-01"},
		{ID: uuid.NewString(), Category: "Operations", Budgeted: 8000, Actual: 8500, Month: "2025-01"},
		{ID: uuid.NewString(), Category: "R&D", Budgeted: 20000, Actual: 18000, Month: "2025-01"},
	}
}

func sampleCashFlow() []model.CashFlowItem {
	return []model.CashFlowItem{
		{ID: uuid.NewString(), Description: "Monthly Subscriptions", Amount: 75000, Category: "Revenue", Type: model.FlowInflow, Date: "2025-01-01", Recurring: true},
		{ID: uuid.NewString(), Description: "Salaries", Amount: 50000, Category: "Personnel", Type: model.FlowOutflow, Date: "2025-01-01", Recurring: true},
		{ID: uuid.NewString(), Description: "Office Rent", Amount: 5000, Category: "Operations", Type: model.FlowOutflow, Date: "2025-01-01", Recurring: true},
		{ID: uuid.NewString(), Description: "Marketing Campaign", Amount: 12000, Category: "Marketing", Type: model.FlowOutflow, Date: "2025-01-15", Recurring: false},
	}
}

func sampleKPIs() []model.KPI {
	return []model.KPI{
		{ID: uuid.NewString(), Name: "Monthly Recurring Revenue", Value: 75000, Target: 80000, Unit: "", PrevValue: 71300},
		{ID: uuid.NewString(), Name: "Customer Acquisition Cost", Value: 150, Target: 120, Unit: "", PrevValue: 163},
		{ID: uuid.NewString(), Name: "Gross Margin", Value: 68.5, Target: 70, Unit: "%", PrevValue: 68.3},
		{ID: uuid.NewString(), Name: "Cash Runway", Value: 14.2, Target: 18, Unit: "months", PrevValue: 14.5},
	}
}

func runSample(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	ws, err := openWorkspace(cfg)
	if err != nil {
		return err
	}
	defer ws.Close()

	budget := sampleBudget()
	cashflow := sampleCashFlow()
	kpis := sampleKPIs()

	if result := analysis.ValidateData(budget, cashflow, kpis); !result.OK() {
		return fmt.Errorf("sample data invalid: %v", result.Errors)
	}

	for _, b := range budget {
		if err := ws.SaveBudgetItem(b); err != nil {
			return err
		}
	}
	for _, c := range cashflow {
		if err := ws.SaveCashFlowItem(c); err != nil {
			return err
		}
	}
	for _, k := range kpis {
		if err := ws.SaveKPI(k); err != nil {
			return err
		}
	}

	// Only set a baseline when none is saved yet
	if _, ok, err := ws.Baseline(); err != nil {
		return err
	} else if !ok {
		baseline := model.Baseline{
			BankBalance:    cfg.Baseline.BankBalance,
			MonthlyRevenue: cfg.Baseline.MonthlyRevenue,
			MonthlyCosts:   cfg.Baseline.MonthlyCosts,
		}
		if err := ws.SaveBaseline(baseline); err != nil {
			return err
		}
	}

	fmt.Printf("  Seeded %d budget items, %d cash movements, %d KPIs\n",
		len(budget), len(cashflow), len(kpis))
	fmt.Println("  Explore them with `finsaver budget`, `finsaver cashflow`, `finsaver kpis`, or `finsaver tui`.")
	return nil
}
