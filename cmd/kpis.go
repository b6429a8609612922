package cmd

import (
	"fmt"
	"math"

	"github.com/bodhisathwik/finsaver/internal/analysis"
	"github.com/bodhisathwik/finsaver/internal/cli"
	"github.com/bodhisathwik/finsaver/internal/forecast"

	"github.com/spf13/cobra"
)

var flagNewCustomers int

var kpisCmd = &cobra.Command{
	Use:   "kpis",
	Short: "Key performance indicators against targets",
	RunE:  runKPIs,
}

func init() {
	kpisCmd.Flags().IntVar(&flagNewCustomers, "new-customers", 0, "Customers acquired this period, used to derive CAC")
	rootCmd.AddCommand(kpisCmd)
}

func runKPIs(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	ws, err := openWorkspace(cfg)
	if err != nil {
		return err
	}
	defer ws.Close()

	kpis, err := ws.KPIs()
	if err != nil {
		return err
	}
	cashflow, err := ws.CashFlowItems()
	if err != nil {
		return err
	}
	if len(kpis) == 0 && len(cashflow) == 0 {
		fmt.Println("\n  No KPIs tracked. Seed sample data with `finsaver sample`.")
		return nil
	}

	currency := cfg.General.Currency

	if len(kpis) > 0 {
		rows := make([][]string, 0, len(kpis))
		for _, k := range kpis {
			trend := analysis.KPITrend(k)
			arrow := "→"
			switch trend.Direction {
			case analysis.TrendUp:
				arrow = "↑"
			case analysis.TrendDown:
				arrow = "↓"
			}
			rows = append(rows, []string{
				k.Name,
				fmt.Sprintf("%.1f %s", k.Value, k.Unit),
				fmt.Sprintf("%.1f %s", k.Target, k.Unit),
				fmt.Sprintf("%.0f%%", analysis.KPIProgress(k)),
				fmt.Sprintf("%s %+.1f%%", arrow, trend.ChangePct),
				string(analysis.KPIStatus(k)),
			})
		}

		fmt.Println()
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   "KPIs",
			Headers: []string{"KPI", "Value", "Target", "Progress", "Trend", "Status"},
			Rows:    rows,
		}))

		fmt.Println()
		for _, k := range kpis {
			fmt.Printf("  %-22s %s\n", k.Name, cli.RenderProgressBar(k.Value, k.Target, 30))
		}
	}

	if len(cashflow) == 0 {
		return nil
	}

	baseline, err := loadBaseline(ws, cfg)
	if err != nil {
		return err
	}
	derived := forecast.AnalyzeCashFlow(baseline.BankBalance, cashflow, flagNewCustomers)

	runway := cli.FormatMonths(derived.ImpliedRunway)
	if math.IsInf(derived.ImpliedRunway, 1) {
		runway = "∞ (cash-positive)"
	}
	cac := "n/a (pass --new-customers)"
	if flagNewCustomers > 0 {
		cac = cli.FormatMoneyExact(currency, derived.CAC)
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("Derived from Cash Flow (%d months)", derived.Months),
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"MRR", cli.FormatMoneyExact(currency, derived.MRR)},
			{"Avg Burn Rate", cli.FormatMoneyExact(currency, derived.AvgBurn)},
			{"Net Burn", cli.FormatMoneyExact(currency, derived.NetBurn)},
			{"Implied Runway", runway},
			{"CAC", cac},
		},
	}))
	return nil
}
