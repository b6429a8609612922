package export

import (
	"bytes"
	"encoding/csv"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/bodhisathwik/finsaver/internal/model"
)

func sampleResults() (model.ForecastResult, model.ForecastResult) {
	base := model.ForecastResult{Runway: 12.5, Burn: 400000, ForecastData: make([]float64, model.ForecastMonths)}
	cur := model.ForecastResult{Runway: 10, Burn: 450000, ForecastData: make([]float64, model.ForecastMonths)}
	for i := range base.ForecastData {
		base.ForecastData[i] = 5000000 - float64(i)*400000
		cur.ForecastData[i] = 4500000 - float64(i)*450000
	}
	return base, cur
}

func TestFilename(t *testing.T) {
	ts := time.Date(2026, 8, 29, 14, 30, 0, 0, time.UTC)
	if got := Filename(ts); got != "runway-forecast-2026-08-29.csv" {
		t.Fatalf("Filename = %q", got)
	}
}

func TestWriteCSVLayout(t *testing.T) {
	base, cur := sampleResults()
	inputs := model.ScenarioInputs{MonthlySpend: 50000, OneTimeSpend: 100000, PriceChange: 5}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, base, cur, inputs, "₹"); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	recs, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	if err != nil {
		t.Fatalf("parse back: %v", err)
	}
	// 6 summary rows + separator + month header + 25 month rows.
	if len(recs) != 33 {
		t.Fatalf("rows = %d, want 33", len(recs))
	}
	if got := strings.Join(recs[0], ","); got != "Metric,Base Case,Current Scenario" {
		t.Fatalf("header = %q", got)
	}
	if recs[1][0] != "Runway (months)" || recs[1][1] != "12.5" || recs[1][2] != "10" {
		t.Fatalf("runway row = %v", recs[1])
	}
	if recs[2][0] != "Monthly Burn (₹)" || recs[2][2] != "450000" {
		t.Fatalf("burn row = %v", recs[2])
	}
	if recs[3][2] != "50000" || recs[4][2] != "100000" || recs[5][0] != "Price Change (%)" || recs[5][2] != "5" {
		t.Fatalf("input rows = %v %v %v", recs[3], recs[4], recs[5])
	}
	if strings.Join(recs[6], "") != "" {
		t.Fatalf("separator row not blank: %v", recs[6])
	}
	if got := strings.Join(recs[7], ","); got != "Month,Base Forecast,Current Forecast" {
		t.Fatalf("month header = %q", got)
	}
	if recs[8][0] != "M0" || recs[32][0] != "M24" {
		t.Fatalf("month labels = %q..%q", recs[8][0], recs[32][0])
	}
	if recs[8][1] != "5000000" || recs[9][2] != "4050000" {
		t.Fatalf("month values = %v %v", recs[8], recs[9])
	}
}

func TestWriteCSVInfiniteRunway(t *testing.T) {
	base, cur := sampleResults()
	cur.Runway = math.Inf(1)

	var buf bytes.Buffer
	if err := WriteCSV(&buf, base, cur, model.ScenarioInputs{}, "₹"); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	if !strings.Contains(buf.String(), "Runway (months),12.5,Infinity") {
		t.Fatalf("infinite runway not rendered:\n%s", buf.String())
	}
}
