package cmd

import (
	"fmt"

	"github.com/bodhisathwik/finsaver/internal/analysis"
	"github.com/bodhisathwik/finsaver/internal/cli"

	"github.com/spf13/cobra"
)

var budgetCmd = &cobra.Command{
	Use:   "budget",
	Short: "Budget vs actual variance by category",
	RunE:  runBudget,
}

func init() {
	rootCmd.AddCommand(budgetCmd)
}

func runBudget(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	ws, err := openWorkspace(cfg)
	if err != nil {
		return err
	}
	defer ws.Close()

	items, err := ws.BudgetItems()
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Println("\n  No budget items. Seed sample data with `finsaver sample`.")
		return nil
	}

	summary := analysis.AnalyzeBudget(items)
	currency := cfg.General.Currency

	rows := make([][]string, 0, len(summary.Categories)+2)
	for _, cat := range summary.Categories {
		rows = append(rows, []string{
			cat.Category,
			cli.FormatMoneyExact(currency, cat.Budgeted),
			cli.FormatMoneyExact(currency, cat.Actual),
			cli.FormatSignedPercent(cat.Variance),
			string(cat.Status),
		})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{
		"Total",
		cli.FormatMoneyExact(currency, summary.TotalBudgeted),
		cli.FormatMoneyExact(currency, summary.TotalActual),
		cli.FormatSignedPercent(summary.TotalVariance),
		string(analysis.ClassifyVariance(summary.TotalVariance)),
	})

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Budget vs Actual",
		Headers: []string{"Category", "Budgeted", "Actual", "Variance", "Status"},
		Rows:    rows,
	}))

	fmt.Println()
	for _, cat := range summary.Categories {
		fmt.Printf("  %-16s %s\n", cat.Category, cli.RenderProgressBar(cat.Actual, cat.Budgeted, 30))
	}
	return nil
}
