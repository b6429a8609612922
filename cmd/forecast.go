package cmd

import (
	"fmt"

	"github.com/bodhisathwik/finsaver/internal/cli"
	"github.com/bodhisathwik/finsaver/internal/forecast"
	"github.com/bodhisathwik/finsaver/internal/model"

	"github.com/spf13/cobra"
)

var flagForecastMonths bool

var forecastCmd = &cobra.Command{
	Use:   "forecast",
	Short: "Project cash runway for the current scenario",
	RunE:  runForecast,
}

func init() {
	forecastCmd.Flags().BoolVar(&flagForecastMonths, "months", false, "Print the full month-by-month series")
	rootCmd.AddCommand(forecastCmd)
}

func runForecast(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	ws, err := openWorkspace(cfg)
	if err != nil {
		return err
	}
	defer ws.Close()

	baseline, err := loadBaseline(ws, cfg)
	if err != nil {
		return err
	}
	headcount, err := ws.Headcount()
	if err != nil {
		return err
	}

	inputs := scenarioInputs()
	current := forecast.Project(baseline, inputs, headcount)
	base := forecast.Project(baseline, model.ScenarioInputs{}, nil)
	currency := cfg.General.Currency

	fmt.Println()
	fmt.Println(cli.RenderTitle("RUNWAY FORECAST"))
	fmt.Println()

	rows := [][]string{
		{"Bank Balance", cli.FormatMoneyExact(currency, baseline.BankBalance), ""},
		{"Monthly Revenue", cli.FormatMoneyExact(currency, baseline.MonthlyRevenue), ""},
		{"Monthly Costs", cli.FormatMoneyExact(currency, baseline.MonthlyCosts), ""},
		{"---"},
		{"Runway", cli.FormatMonths(base.Runway), cli.FormatMonths(current.Runway)},
		{"Monthly Burn", cli.FormatMoneyExact(currency, base.Burn), cli.FormatMoneyExact(currency, current.Burn)},
		{"---"},
		{"Extra Monthly Spend", "", cli.FormatMoneyExact(currency, inputs.MonthlySpend)},
		{"One-time Spend", "", cli.FormatMoneyExact(currency, inputs.OneTimeSpend)},
		{"Price Change", "", cli.FormatSignedPercent(inputs.PriceChange)},
	}

	table := cli.Table{
		Headers: []string{"Metric", "Base Case", "Current Scenario"},
		Rows:    rows,
	}
	fmt.Print(cli.RenderTable(table))

	fmt.Println()
	fmt.Printf("  Runway   %s\n", cli.RunwayStyle(current.Runway).Render(cli.FormatMonths(current.Runway)))
	fmt.Printf("  Balance  %s\n", cli.RenderSparkline(current.ForecastData))

	if len(headcount) > 0 {
		fmt.Printf("  Includes %d planned hires\n", len(headcount))
	}

	if flagForecastMonths {
		fmt.Println()
		monthRows := make([][]string, 0, model.ForecastMonths)
		for m := 0; m < model.ForecastMonths; m++ {
			monthRows = append(monthRows, []string{
				fmt.Sprintf("M%d", m),
				cli.FormatMoneyExact(currency, base.ForecastData[m]),
				cli.FormatMoneyExact(currency, current.ForecastData[m]),
			})
		}
		fmt.Print(cli.RenderTable(cli.Table{
			Headers: []string{"Month", "Base Forecast", "Current Forecast"},
			Rows:    monthRows,
		}))
	}

	return nil
}
