package cmd

import (
	"fmt"
	"math"
	"time"

	"github.com/bodhisathwik/finsaver/internal/cli"
	"github.com/bodhisathwik/finsaver/internal/forecast"
	"github.com/bodhisathwik/finsaver/internal/model"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	flagOptimistic  float64
	flagPessimistic float64
)

var scenarioCmd = &cobra.Command{
	Use:   "scenario",
	Short: "List saved scenarios",
	RunE:  runScenarioList,
}

var scenarioSaveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: "Save the current scenario under a name",
	Args:  cobra.ExactArgs(1),
	RunE:  runScenarioSave,
}

var scenarioRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a saved scenario",
	Args:  cobra.ExactArgs(1),
	RunE:  runScenarioRm,
}

var scenarioAnalyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Compare base, optimistic, and pessimistic cases",
	RunE:  runScenarioAnalyze,
}

func init() {
	scenarioAnalyzeCmd.Flags().Float64Var(&flagOptimistic, "optimistic", 1.2, "Optimistic baseline multiplier")
	scenarioAnalyzeCmd.Flags().Float64Var(&flagPessimistic, "pessimistic", 0.8, "Pessimistic baseline multiplier")

	scenarioCmd.AddCommand(scenarioSaveCmd)
	scenarioCmd.AddCommand(scenarioRmCmd)
	scenarioCmd.AddCommand(scenarioAnalyzeCmd)
	rootCmd.AddCommand(scenarioCmd)
}

func runScenarioList(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	ws, err := openWorkspace(cfg)
	if err != nil {
		return err
	}
	defer ws.Close()

	scenarios, err := ws.Scenarios()
	if err != nil {
		return err
	}
	if len(scenarios) == 0 {
		fmt.Println("\n  No scenarios saved. Save one with `finsaver scenario save <name>`.")
		return nil
	}

	currency := cfg.General.Currency
	rows := make([][]string, 0, len(scenarios))
	for _, s := range scenarios {
		rows = append(rows, []string{
			s.ID[:8],
			s.Name,
			cli.FormatMonths(s.Runway),
			cli.FormatMoneyExact(currency, s.Burn),
			fmt.Sprintf("%d", len(s.Headcount)),
			s.SavedAt.Local().Format("2006-01-02 15:04"),
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Saved Scenarios",
		Headers: []string{"ID", "Name", "Runway", "Burn", "Hires", "Saved"},
		Rows:    rows,
	}))
	return nil
}

func runScenarioSave(_ *cobra.Command, args []string) error {
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
	result := forecast.Project(baseline, inputs, headcount)

	s := model.Scenario{
		ID:        uuid.NewString(),
		Name:      args[0],
		Inputs:    inputs,
		Headcount: headcount,
		Runway:    result.Runway,
		Burn:      result.Burn,
		SavedAt:   time.Now(),
	}
	if err := ws.SaveScenario(s); err != nil {
		return err
	}

	fmt.Printf("  Saved %q: runway %s, burn %s (id %s)\n",
		s.Name, cli.FormatMonths(s.Runway),
		cli.FormatMoneyExact(cfg.General.Currency, s.Burn), s.ID[:8])
	return nil
}

func runScenarioRm(_ *cobra.Command, args []string) error {
	cfg := loadConfig()
	ws, err := openWorkspace(cfg)
	if err != nil {
		return err
	}
	defer ws.Close()

	scenarios, err := ws.Scenarios()
	if err != nil {
		return err
	}
	for _, s := range scenarios {
		if s.ID == args[0] || (len(args[0]) >= 8 && s.ID[:8] == args[0][:8]) {
			if err := ws.DeleteScenario(s.ID); err != nil {
				return err
			}
			fmt.Printf("  Deleted %q\n", s.Name)
			return nil
		}
	}
	return fmt.Errorf("no scenario with id %q", args[0])
}

func runScenarioAnalyze(_ *cobra.Command, _ []string) error {
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

	analysis := forecast.Analyze(baseline, scenarioInputs(), headcount, flagOptimistic, flagPessimistic)
	currency := cfg.General.Currency

	row := func(c forecast.ScenarioCase, label string) []string {
		burnMult := "n/a"
		if !math.IsInf(c.BurnMultiple, 1) {
			burnMult = fmt.Sprintf("%.2fx", c.BurnMultiple)
		}
		return []string{
			label,
			cli.FormatMoneyExact(currency, c.Baseline.MonthlyRevenue),
			cli.FormatMoneyExact(currency, c.Result.Burn),
			cli.FormatMonths(c.RunwayMonths),
			cli.FormatSignedPercent(c.GrossMarginPct),
			burnMult,
		}
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("SCENARIO ANALYSIS"))
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Case", "Revenue", "Burn", "Runway", "Margin", "Burn Mult"},
		Rows: [][]string{
			row(analysis.Pessimistic, fmt.Sprintf("Pessimistic (x%.1f)", flagPessimistic)),
			row(analysis.Base, "Base"),
			row(analysis.Optimistic, fmt.Sprintf("Optimistic (x%.1f)", flagOptimistic)),
		},
	}))
	return nil
}
