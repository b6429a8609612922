// Package export renders forecast results to CSV, HTML and JSON files.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"time"

	"github.com/bodhisathwik/finsaver/internal/model"
)

// Filename returns the dated export name, e.g. runway-forecast-2026-08-29.csv.
func Filename(now time.Time) string {
	return fmt.Sprintf("runway-forecast-%s.csv", now.Format("2006-01-02"))
}

// num renders a float without trailing zeros; infinite runway prints as
// Infinity to match the dashboard cards.
func num(v float64) string {
	if math.IsInf(v, 1) {
		return "Infinity"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// WriteCSV writes the scenario comparison: a summary block contrasting the
// base case with the current inputs, a blank separator row, then the two
// 25-month forecast series labeled M0 through M24.
func WriteCSV(w io.Writer, base, current model.ForecastResult, inputs model.ScenarioInputs, currency string) error {
	cw := csv.NewWriter(w)

	summary := [][]string{
		{"Metric", "Base Case", "Current Scenario"},
		{"Runway (months)", num(base.Runway), num(current.Runway)},
		{fmt.Sprintf("Monthly Burn (%s)", currency), num(base.Burn), num(current.Burn)},
		{fmt.Sprintf("Monthly Spend (%s)", currency), "0", num(inputs.MonthlySpend)},
		{fmt.Sprintf("One-time Spend (%s)", currency), "0", num(inputs.OneTimeSpend)},
		{"Price Change (%)", "0", num(inputs.PriceChange)},
	}
	for _, rec := range summary {
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	if err := cw.Write([]string{"", "", ""}); err != nil {
		return err
	}
	if err := cw.Write([]string{"Month", "Base Forecast", "Current Forecast"}); err != nil {
		return err
	}
	for i := 0; i < model.ForecastMonths; i++ {
		var b, c string
		if i < len(base.ForecastData) {
			b = num(base.ForecastData[i])
		}
		if i < len(current.ForecastData) {
			c = num(current.ForecastData[i])
		}
		if err := cw.Write([]string{fmt.Sprintf("M%d", i), b, c}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
