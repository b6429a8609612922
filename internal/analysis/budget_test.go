package analysis

import (
	"math"
	"testing"

	"github.com/bodhisathwik/finsaver/internal/model"
)

func TestVariance(t *testing.T) {
	cases := []struct {
		name     string
		budgeted float64
		actual   float64
		want     float64
	}{
		{"over", 50_000, 52_000, 4},
		{"under", 15_000, 12_000, -20},
		{"exact", 8_000, 8_000, 0},
		{"zero budget", 0, 5_000, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Variance(tc.budgeted, tc.actual)
			if math.Abs(got-tc.want) > 1e-9 {
				t.Fatalf("Variance(%.0f, %.0f) = %.2f, want %.2f", tc.budgeted, tc.actual, got, tc.want)
			}
		})
	}
}

func TestClassifyVariance(t *testing.T) {
	cases := []struct {
		variance float64
		want     VarianceStatus
	}{
		{15, StatusOverBudget},
		{10.01, StatusOverBudget},
		{10, StatusOnTrack},
		{0, StatusOnTrack},
		{-10, StatusOnTrack},
		{-10.01, StatusUnderBudget},
		{-25, StatusUnderBudget},
	}
	for _, tc := range cases {
		if got := ClassifyVariance(tc.variance); got != tc.want {
			t.Fatalf("ClassifyVariance(%.2f) = %s, want %s", tc.variance, got, tc.want)
		}
	}
}

func TestAnalyzeBudget(t *testing.T) {
	items := []model.BudgetItem{
		{ID: "1", Category: "Personnel", Budgeted: 50_000, Actual: 52_000},
		{ID: "2", Category: "Marketing", Budgeted: 15_000, Actual: 12_000},
		{ID: "3", Category: "Operations", Budgeted: 8_000, Actual: 8_500},
		{ID: "4", Category: "Personnel", Budgeted: 10_000, Actual: 14_000},
	}

	summary := AnalyzeBudget(items)

	if summary.TotalBudgeted != 83_000 {
		t.Fatalf("TotalBudgeted = %.2f, want 83000", summary.TotalBudgeted)
	}
	if summary.TotalActual != 86_500 {
		t.Fatalf("TotalActual = %.2f, want 86500", summary.TotalActual)
	}
	if len(summary.Categories) != 3 {
		t.Fatalf("category count = %d, want 3", len(summary.Categories))
	}

	// Sorted by budgeted descending: Personnel first.
	top := summary.Categories[0]
	if top.Category != "Personnel" {
		t.Fatalf("top category = %s, want Personnel", top.Category)
	}
	if top.Budgeted != 60_000 || top.Actual != 66_000 {
		t.Fatalf("Personnel totals = %.0f/%.0f, want 60000/66000", top.Budgeted, top.Actual)
	}
	if top.Items != 2 {
		t.Fatalf("Personnel item count = %d, want 2", top.Items)
	}
	if top.Variance != 10 {
		t.Fatalf("Personnel variance = %.2f, want 10", top.Variance)
	}
	if top.Status != StatusOnTrack {
		t.Fatalf("Personnel status = %s, want on-track", top.Status)
	}

	for _, cv := range summary.Categories {
		if cv.Category == "Marketing" && cv.Status != StatusUnderBudget {
			t.Fatalf("Marketing status = %s, want under-budget", cv.Status)
		}
	}
}

func TestAnalyzeBudgetEmpty(t *testing.T) {
	summary := AnalyzeBudget(nil)
	if summary.TotalBudgeted != 0 || summary.TotalVariance != 0 || len(summary.Categories) != 0 {
		t.Fatalf("empty analysis not zero-valued: %+v", summary)
	}
}
