package analysis

import (
	"math"
	"testing"

	"github.com/bodhisathwik/finsaver/internal/model"
)

func TestSignedAmount(t *testing.T) {
	inflow := model.CashFlowItem{Amount: 75_000, Type: model.FlowInflow}
	if got := SignedAmount(inflow); got != 75_000 {
		t.Fatalf("inflow signed = %.2f, want 75000", got)
	}

	outflow := model.CashFlowItem{Amount: 50_000, Type: model.FlowOutflow}
	if got := SignedAmount(outflow); got != -50_000 {
		t.Fatalf("outflow signed = %.2f, want -50000", got)
	}

	// Outflows stored with a negative amount still come out negative.
	negStored := model.CashFlowItem{Amount: -5_000, Type: model.FlowOutflow}
	if got := SignedAmount(negStored); got != -5_000 {
		t.Fatalf("negative-stored outflow signed = %.2f, want -5000", got)
	}
}

func TestSummarizeCashFlow(t *testing.T) {
	items := []model.CashFlowItem{
		{ID: "1", Category: "Revenue", Amount: 75_000, Type: model.FlowInflow},
		{ID: "2", Category: "Personnel", Amount: 50_000, Type: model.FlowOutflow},
		{ID: "3", Category: "Operations", Amount: 5_000, Type: model.FlowOutflow},
		{ID: "4", Category: "Revenue", Amount: 10_000, Type: model.FlowInflow},
	}

	summary := SummarizeCashFlow(items)

	if summary.TotalInflow != 85_000 {
		t.Fatalf("TotalInflow = %.2f, want 85000", summary.TotalInflow)
	}
	if summary.TotalOutflow != 55_000 {
		t.Fatalf("TotalOutflow = %.2f, want 55000", summary.TotalOutflow)
	}
	if math.Abs(summary.NetFlow-30_000) > 1e-9 {
		t.Fatalf("NetFlow = %.2f, want 30000", summary.NetFlow)
	}

	if len(summary.Categories) != 3 {
		t.Fatalf("category count = %d, want 3", len(summary.Categories))
	}
	if summary.Categories[0].Category != "Revenue" || summary.Categories[0].Total != 85_000 {
		t.Fatalf("top category = %+v, want Revenue/85000", summary.Categories[0])
	}
	if summary.Categories[1].Category != "Personnel" || summary.Categories[1].Total != -50_000 {
		t.Fatalf("second category = %+v, want Personnel/-50000", summary.Categories[1])
	}
}

func TestComputeTrend(t *testing.T) {
	cases := []struct {
		name    string
		history []float64
		wantDir TrendDirection
		wantPct float64
	}{
		{"rising", []float64{100, 110}, TrendUp, 10},
		{"falling", []float64{100, 90}, TrendDown, -10},
		{"flat within 1pct", []float64{100, 100.5}, TrendStable, 0.5},
		{"too short", []float64{100}, TrendStable, 0},
		{"zero previous", []float64{0, 50}, TrendStable, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			trend := ComputeTrend(tc.history)
			if trend.Direction != tc.wantDir {
				t.Fatalf("direction = %s, want %s", trend.Direction, tc.wantDir)
			}
			if math.Abs(trend.ChangePct-tc.wantPct) > 1e-9 {
				t.Fatalf("change = %.2f, want %.2f", trend.ChangePct, tc.wantPct)
			}
		})
	}
}

func TestKPIStatus(t *testing.T) {
	cases := []struct {
		name string
		kpi  model.KPI
		want PerformanceStatus
	}{
		{"excellent", model.KPI{Value: 95, Target: 100}, PerfExcellent},
		{"good", model.KPI{Value: 75, Target: 100}, PerfGood},
		{"needs improvement", model.KPI{Value: 40, Target: 100}, PerfNeedsImprovement},
		{"zero target", model.KPI{Value: 40, Target: 0}, PerfNeedsImprovement},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := KPIStatus(tc.kpi); got != tc.want {
				t.Fatalf("KPIStatus = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestKPITrend(t *testing.T) {
	cases := []struct {
		name    string
		kpi     model.KPI
		wantDir TrendDirection
		wantPct float64
	}{
		{"rising", model.KPI{PrevValue: 71_300, Value: 75_000}, TrendUp, 5.19},
		{"falling", model.KPI{PrevValue: 163, Value: 150}, TrendDown, -7.98},
		{"stable under 1pct", model.KPI{PrevValue: 68.3, Value: 68.5}, TrendStable, 0.29},
		{"no prior reading", model.KPI{PrevValue: 0, Value: 50}, TrendStable, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			trend := KPITrend(tc.kpi)
			if trend.Direction != tc.wantDir {
				t.Fatalf("direction = %s, want %s", trend.Direction, tc.wantDir)
			}
			if math.Abs(trend.ChangePct-tc.wantPct) > 1e-9 {
				t.Fatalf("change = %.2f, want %.2f", trend.ChangePct, tc.wantPct)
			}
		})
	}
}

func TestValidateData(t *testing.T) {
	budget := []model.BudgetItem{
		{ID: "b1", Category: "", Budgeted: 100},       // error: no category
		{ID: "b2", Category: "Ops", Budgeted: -5_000}, // warning: negative
	}
	cashflow := []model.CashFlowItem{
		{ID: "c1", Type: "sideways", Amount: 100}, // error: bad type
		{ID: "c2", Type: model.FlowInflow, Amount: 0},
	}
	kpis := []model.KPI{
		{ID: "k1", Name: "", Target: 10}, // error: no name
	}

	result := ValidateData(budget, cashflow, kpis)
	if result.OK() {
		t.Fatal("result.OK() = true, want false")
	}
	if len(result.Errors) != 3 {
		t.Fatalf("errors = %d, want 3: %v", len(result.Errors), result.Errors)
	}
	if len(result.Warnings) != 2 {
		t.Fatalf("warnings = %d, want 2: %v", len(result.Warnings), result.Warnings)
	}

	clean := ValidateData(nil, nil, nil)
	if !clean.OK() {
		t.Fatal("empty data should validate clean")
	}
}
