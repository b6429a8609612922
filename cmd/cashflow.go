package cmd

import (
	"fmt"
	"math"
	"sort"

	"github.com/bodhisathwik/finsaver/internal/analysis"
	"github.com/bodhisathwik/finsaver/internal/cli"

	"github.com/spf13/cobra"
)

var cashflowCmd = &cobra.Command{
	Use:   "cashflow",
	Short: "Cash movements by category",
	RunE:  runCashflow,
}

func init() {
	rootCmd.AddCommand(cashflowCmd)
}

func runCashflow(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	ws, err := openWorkspace(cfg)
	if err != nil {
		return err
	}
	defer ws.Close()

	items, err := ws.CashFlowItems()
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Println("\n  No cash-flow items. Seed sample data with `finsaver sample`.")
		return nil
	}

	summary := analysis.SummarizeCashFlow(items)
	currency := cfg.General.Currency

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Cash Flow",
		Headers: []string{"Metric", "Amount"},
		Rows: [][]string{
			{"Inflows", cli.FormatMoneyExact(currency, summary.TotalInflow)},
			{"Outflows", cli.FormatMoneyExact(currency, summary.TotalOutflow)},
			{"---"},
			{"Net Flow", cli.FormatMoneyExact(currency, summary.NetFlow)},
		},
	}))

	var maxAbs float64
	for _, cat := range summary.Categories {
		if abs := math.Abs(cat.Total); abs > maxAbs {
			maxAbs = abs
		}
	}

	fmt.Println()
	for _, cat := range summary.Categories {
		fmt.Printf("  %-16s %-24s %14s (%d items)\n",
			cat.Category,
			cli.RenderHorizontalBar(math.Abs(cat.Total), maxAbs, 24),
			cli.FormatMoneyExact(currency, cat.Total),
			cat.Items)
	}

	// Most recent movements, newest first
	sort.Slice(items, func(i, j int) bool { return items[i].Date > items[j].Date })
	if len(items) > 10 {
		items = items[:10]
	}

	rows := make([][]string, 0, len(items))
	for _, item := range items {
		recurring := ""
		if item.Recurring {
			recurring = "recurring"
		}
		rows = append(rows, []string{
			item.Date,
			item.Description,
			cli.FormatMoneyExact(currency, analysis.SignedAmount(item)),
			recurring,
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Recent Movements",
		Headers: []string{"Date", "Description", "Amount", ""},
		Rows:    rows,
	}))
	return nil
}
