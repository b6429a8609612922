package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/bodhisathwik/finsaver/internal/config"
	"github.com/bodhisathwik/finsaver/internal/model"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func promptMoney(reader *bufio.Reader, label string, current float64) float64 {
	fmt.Printf("     %s [%.0f]\n", label, current)
	fmt.Print("     > ")
	line, _ := reader.ReadString('\n')
	line = strings.TrimSpace(line)
	if line == "" {
		return current
	}
	v, err := strconv.ParseFloat(line, 64)
	if err != nil || v < 0 {
		fmt.Println("     (invalid, keeping current)")
		return current
	}
	return v
}

func runSetup(_ *cobra.Command, _ []string) error {
	reader := bufio.NewReader(os.Stdin)

	// Load existing config or defaults
	cfg, _ := config.Load()

	fmt.Println()
	fmt.Println("  Welcome to finsaver!")
	fmt.Println()

	// 1. Baseline
	fmt.Println("  1. Financial baseline")
	fmt.Println("     Press Enter to keep the value in brackets.")
	cfg.Baseline.BankBalance = promptMoney(reader, "Bank balance", cfg.Baseline.BankBalance)
	cfg.Baseline.MonthlyRevenue = promptMoney(reader, "Monthly revenue", cfg.Baseline.MonthlyRevenue)
	cfg.Baseline.MonthlyCosts = promptMoney(reader, "Monthly costs", cfg.Baseline.MonthlyCosts)
	fmt.Println()

	// 2. Currency
	fmt.Printf("  2. Currency symbol [%s]\n", cfg.General.Currency)
	fmt.Print("     > ")
	currency, _ := reader.ReadString('\n')
	currency = strings.TrimSpace(currency)
	if currency != "" {
		cfg.General.Currency = currency
	}
	fmt.Println()

	// 3. Theme
	fmt.Println("  3. Color theme")
	fmt.Println("     (1) Flexoki Dark [default]")
	fmt.Println("     (2) Flexoki Light")
	fmt.Println("     (3) Catppuccin Mocha")
	fmt.Println("     (4) Terminal (ANSI 16)")
	fmt.Print("     > ")
	themeChoice, _ := reader.ReadString('\n')
	themeChoice = strings.TrimSpace(themeChoice)
	switch themeChoice {
	case "2":
		cfg.Appearance.Theme = "flexoki-light"
	case "3":
		cfg.Appearance.Theme = "catppuccin-mocha"
	case "4":
		cfg.Appearance.Theme = "terminal"
	default:
		cfg.Appearance.Theme = "flexoki-dark"
	}

	// Save config
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	// Persist the baseline to the workspace too
	ws, err := openWorkspace(cfg)
	if err != nil {
		return err
	}
	defer ws.Close()

	baseline := model.Baseline{
		BankBalance:    cfg.Baseline.BankBalance,
		MonthlyRevenue: cfg.Baseline.MonthlyRevenue,
		MonthlyCosts:   cfg.Baseline.MonthlyCosts,
	}
	if err := ws.SaveBaseline(baseline); err != nil {
		return fmt.Errorf("saving baseline: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Println("  Run `finsaver setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}
