package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bodhisathwik/finsaver/internal/config"
	"github.com/bodhisathwik/finsaver/internal/model"
	"github.com/bodhisathwik/finsaver/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagSpend    float64
	flagOneTime  float64
	flagPrice    float64
	flagCurrency string
	flagDataDir  string
)

var rootCmd = &cobra.Command{
	Use:   "finsaver",
	Short: "CFO planning and runway forecasting CLI",
	Long:  "Project cash runway, plan headcount, track budgets and KPIs, and watch for threshold alerts.",
	RunE:  runForecast,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().Float64VarP(&flagSpend, "spend", "s", 0, "Extra monthly spend layered on the baseline")
	rootCmd.PersistentFlags().Float64VarP(&flagOneTime, "one-time", "o", 0, "One-time spend deducted at month 0")
	rootCmd.PersistentFlags().Float64VarP(&flagPrice, "price", "p", 0, "Price change in percent applied to revenue")
	rootCmd.PersistentFlags().StringVar(&flagCurrency, "currency", "", "Currency symbol (overrides config)")
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Workspace directory (overrides config)")
}

// loadConfig reads the config file, applying command-line overrides.
func loadConfig() config.Config {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "  Config unreadable, using defaults: %v\n", err)
		cfg = config.DefaultConfig()
	}
	if flagCurrency != "" {
		cfg.General.Currency = flagCurrency
	}
	if flagDataDir != "" {
		cfg.General.DataDir = flagDataDir
	}
	return cfg
}

// openWorkspace opens the SQLite workspace under the configured data dir.
func openWorkspace(cfg config.Config) (*store.Workspace, error) {
	dir := config.DataDir(cfg)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating workspace dir: %w", err)
	}
	return store.Open(filepath.Join(dir, "workspace.db"))
}

// scenarioInputs builds the scenario from command-line flags.
func scenarioInputs() model.ScenarioInputs {
	return model.ScenarioInputs{
		MonthlySpend: flagSpend,
		OneTimeSpend: flagOneTime,
		PriceChange:  flagPrice,
	}
}

// loadBaseline returns the saved baseline, falling back to config defaults
// when the workspace has none.
func loadBaseline(ws *store.Workspace, cfg config.Config) (model.Baseline, error) {
	b, ok, err := ws.Baseline()
	if err != nil {
		return model.Baseline{}, err
	}
	if !ok {
		b = model.Baseline{
			BankBalance:    cfg.Baseline.BankBalance,
			MonthlyRevenue: cfg.Baseline.MonthlyRevenue,
			MonthlyCosts:   cfg.Baseline.MonthlyCosts,
		}
	}
	return b, nil
}
