package export

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/bodhisathwik/finsaver/internal/model"
)

func TestWriteHTML(t *testing.T) {
	base, cur := sampleResults()
	data := ReportData{
		GeneratedAt: time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC),
		Currency:    "₹",
		Baseline:    model.Baseline{BankBalance: 5000000, MonthlyRevenue: 800000, MonthlyCosts: 1200000},
		Inputs:      model.ScenarioInputs{MonthlySpend: 50000},
		Base:        base,
		Current:     cur,
		Scenarios: []model.Scenario{
			{Name: "Hiring freeze", Runway: 18.2, Burn: 275000},
		},
	}

	var buf bytes.Buffer
	if err := WriteHTML(&buf, data); err != nil {
		t.Fatalf("WriteHTML: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"Runway Forecast Report",
		"12.5",
		"Monthly Burn (₹)",
		"Hiring freeze",
		"18.2",
		"2026-08-29 09:00",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("report missing %q:\n%s", want, out)
		}
	}
}

func TestWriteHTMLInfiniteRunway(t *testing.T) {
	base, cur := sampleResults()
	cur.Runway = math.Inf(1)

	var buf bytes.Buffer
	if err := WriteHTML(&buf, ReportData{Currency: "₹", Base: base, Current: cur, GeneratedAt: time.Now()}); err != nil {
		t.Fatalf("WriteHTML: %v", err)
	}
	if !strings.Contains(buf.String(), "∞") {
		t.Fatal("infinite runway not rendered as ∞")
	}
}

func TestWriteJSON(t *testing.T) {
	base, cur := sampleResults()
	cur.Runway = math.Inf(1)

	var buf bytes.Buffer
	err := WriteJSON(&buf, ReportData{
		GeneratedAt: time.Now(),
		Currency:    "₹",
		Base:        base,
		Current:     cur,
		Scenarios:   []model.Scenario{{Name: "A", Runway: math.Inf(1)}},
	})
	if err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	var out struct {
		Currency string `json:"currency"`
		Current  struct {
			Runway float64 `json:"runway"`
		} `json:"current"`
	}
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.Currency != "₹" {
		t.Fatalf("currency = %q", out.Currency)
	}
	if out.Current.Runway != -1 {
		t.Fatalf("infinite runway = %v, want -1", out.Current.Runway)
	}
}
