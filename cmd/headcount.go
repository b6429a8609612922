package cmd

import (
	"fmt"

	"github.com/bodhisathwik/finsaver/internal/cli"
	"github.com/bodhisathwik/finsaver/internal/forecast"
	"github.com/bodhisathwik/finsaver/internal/model"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	flagRoleName   string
	flagRoleSalary float64
	flagRoleStart  int
)

var headcountCmd = &cobra.Command{
	Use:   "headcount",
	Short: "List planned hires and their runway impact",
	RunE:  runHeadcountList,
}

var headcountAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Plan a new hire",
	RunE:  runHeadcountAdd,
}

var headcountRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Remove a planned hire",
	Args:  cobra.ExactArgs(1),
	RunE:  runHeadcountRm,
}

func init() {
	headcountAddCmd.Flags().StringVar(&flagRoleName, "role", "", "Role title")
	headcountAddCmd.Flags().Float64Var(&flagRoleSalary, "salary", 0, "Monthly salary")
	headcountAddCmd.Flags().IntVar(&flagRoleStart, "start", 1, "Start month (1 = next month)")
	_ = headcountAddCmd.MarkFlagRequired("role")
	_ = headcountAddCmd.MarkFlagRequired("salary")

	headcountCmd.AddCommand(headcountAddCmd)
	headcountCmd.AddCommand(headcountRmCmd)
	rootCmd.AddCommand(headcountCmd)
}

func runHeadcountList(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	ws, err := openWorkspace(cfg)
	if err != nil {
		return err
	}
	defer ws.Close()

	roles, err := ws.Headcount()
	if err != nil {
		return err
	}
	if len(roles) == 0 {
		fmt.Println("\n  No roles planned. Add one with `finsaver headcount add`.")
		return nil
	}

	baseline, err := loadBaseline(ws, cfg)
	if err != nil {
		return err
	}
	currency := cfg.General.Currency

	withHires := forecast.Project(baseline, scenarioInputs(), roles)
	withoutHires := forecast.Project(baseline, scenarioInputs(), nil)

	var total float64
	rows := make([][]string, 0, len(roles))
	for _, r := range roles {
		total += r.Salary
		rows = append(rows, []string{
			r.ID[:8],
			r.Role,
			cli.FormatMoneyExact(currency, r.Salary),
			fmt.Sprintf("M%d", r.StartMonth),
		})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{"", "Total", cli.FormatMoneyExact(currency, total), ""})

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Planned Hires",
		Headers: []string{"ID", "Role", "Salary/mo", "Starts"},
		Rows:    rows,
	}))

	fmt.Printf("\n  Runway %s with hires, %s without\n",
		cli.FormatMonths(withHires.Runway), cli.FormatMonths(withoutHires.Runway))
	return nil
}

func runHeadcountAdd(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	ws, err := openWorkspace(cfg)
	if err != nil {
		return err
	}
	defer ws.Close()

	if flagRoleSalary <= 0 {
		return fmt.Errorf("salary must be positive")
	}
	if flagRoleStart < 0 {
		return fmt.Errorf("start month must not be negative")
	}

	role := model.HeadcountRole{
		ID:         uuid.NewString(),
		Role:       flagRoleName,
		Salary:     flagRoleSalary,
		StartMonth: flagRoleStart,
	}
	if err := ws.SaveRole(role); err != nil {
		return err
	}

	fmt.Printf("  Added %q at %s/mo starting M%d (id %s)\n",
		role.Role, cli.FormatMoneyExact(cfg.General.Currency, role.Salary), role.StartMonth, role.ID[:8])
	return nil
}

func runHeadcountRm(_ *cobra.Command, args []string) error {
	cfg := loadConfig()
	ws, err := openWorkspace(cfg)
	if err != nil {
		return err
	}
	defer ws.Close()

	roles, err := ws.Headcount()
	if err != nil {
		return err
	}
	for _, r := range roles {
		if r.ID == args[0] || (len(args[0]) >= 8 && r.ID[:8] == args[0][:8]) {
			if err := ws.DeleteRole(r.ID); err != nil {
				return err
			}
			fmt.Printf("  Removed %q\n", r.Role)
			return nil
		}
	}
	return fmt.Errorf("no role with id %q", args[0])
}
