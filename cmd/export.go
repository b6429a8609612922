package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bodhisathwik/finsaver/internal/config"
	"github.com/bodhisathwik/finsaver/internal/export"
	"github.com/bodhisathwik/finsaver/internal/forecast"
	"github.com/bodhisathwik/finsaver/internal/model"

	"github.com/spf13/cobra"
)

var flagExportOut string

var exportCmd = &cobra.Command{
	Use:       "export [csv|html|json]",
	Short:     "Export the current forecast as CSV, HTML, or JSON",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"csv", "html", "json"},
	RunE:      runExport,
}

func init() {
	exportCmd.Flags().StringVar(&flagExportOut, "out", "", "Output path (default: export dir with generated name)")
	rootCmd.AddCommand(exportCmd)
}

func exportPath(cfg config.Config, format string, now time.Time) string {
	if flagExportOut != "" {
		return flagExportOut
	}

	name := export.Filename(now)
	switch format {
	case "html":
		name = "runway-report-" + now.Format("2006-01-02") + ".html"
	case "json":
		name = "runway-report-" + now.Format("2006-01-02") + ".json"
	}

	dir := cfg.General.ExportDir
	if dir == "" {
		dir = "."
	}
	return filepath.Join(dir, name)
}

func runExport(_ *cobra.Command, args []string) error {
	format := args[0]
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
	scenarios, err := ws.Scenarios()
	if err != nil {
		return err
	}

	inputs := scenarioInputs()
	current := forecast.Project(baseline, inputs, headcount)
	base := forecast.Project(baseline, model.ScenarioInputs{}, nil)

	now := time.Now()
	path := exportPath(cfg, format, now)

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating export dir: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	defer f.Close()

	data := export.ReportData{
		GeneratedAt: now,
		Currency:    cfg.General.Currency,
		Baseline:    baseline,
		Inputs:      inputs,
		Base:        base,
		Current:     current,
		Scenarios:   scenarios,
	}

	switch format {
	case "csv":
		err = export.WriteCSV(f, base, current, inputs, cfg.General.Currency)
	case "html":
		err = export.WriteHTML(f, data)
	case "json":
		err = export.WriteJSON(f, data)
	}
	if err != nil {
		return fmt.Errorf("writing %s export: %w", format, err)
	}

	fmt.Printf("  Exported %s\n", path)
	return nil
}
