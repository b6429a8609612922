// Package cmd implements the finsaver CLI commands.
package cmd

import (
	"fmt"

	"github.com/bodhisathwik/finsaver/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Currency:   %s\n", cfg.General.Currency)
	fmt.Printf("    Workspace:  %s\n", config.DataDir(cfg))
	if cfg.General.ExportDir != "" {
		fmt.Printf("    Export dir: %s\n", cfg.General.ExportDir)
	}
	fmt.Println()

	fmt.Println("  [Baseline]")
	fmt.Printf("    Bank balance:    %.0f\n", cfg.Baseline.BankBalance)
	fmt.Printf("    Monthly revenue: %.0f\n", cfg.Baseline.MonthlyRevenue)
	fmt.Printf("    Monthly costs:   %.0f\n", cfg.Baseline.MonthlyCosts)
	fmt.Println()

	fmt.Println("  [Watch]")
	fmt.Printf("    Address:          %s\n", cfg.Watch.Addr)
	fmt.Printf("    Alert interval:   %ds\n", cfg.Watch.AlertSeconds)
	fmt.Printf("    Insight interval: %ds\n", cfg.Watch.InsightSeconds)
	if cfg.Watch.JitterAmplitude > 0 {
		fmt.Printf("    Jitter amplitude: %.2f\n", cfg.Watch.JitterAmplitude)
	}
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  Run `finsaver setup` to reconfigure.")
	return nil
}
