package forecast

import (
	"math"
	"testing"

	"github.com/bodhisathwik/finsaver/internal/model"
)

func defaultBaseline() model.Baseline {
	return model.Baseline{
		BankBalance:    5_000_000,
		MonthlyRevenue: 800_000,
		MonthlyCosts:   1_200_000,
	}
}

func TestProjectWorkedExample(t *testing.T) {
	result := Project(defaultBaseline(), model.ScenarioInputs{}, nil)

	if math.Abs(result.Burn-400_000) > 1e-9 {
		t.Fatalf("Burn = %.2f, want 400000", result.Burn)
	}
	if math.Abs(result.Runway-12.5) > 1e-9 {
		t.Fatalf("Runway = %.2f, want 12.5", result.Runway)
	}
	if math.Abs(result.ForecastData[1]-4_600_000) > 1e-9 {
		t.Fatalf("ForecastData[1] = %.2f, want 4600000", result.ForecastData[1])
	}
}

func TestProjectSeriesLengthAndFloor(t *testing.T) {
	cases := []struct {
		name      string
		inputs    model.ScenarioInputs
		headcount []model.HeadcountRole
	}{
		{"defaults", model.ScenarioInputs{}, nil},
		{"heavy one-time spend", model.ScenarioInputs{OneTimeSpend: 20_000_000}, nil},
		{"negative spend", model.ScenarioInputs{MonthlySpend: -500_000}, nil},
		{"large price increase", model.ScenarioInputs{PriceChange: 200}, nil},
		{"with headcount", model.ScenarioInputs{}, []model.HeadcountRole{
			{ID: "a", Salary: 300_000, StartMonth: 0},
			{ID: "b", Salary: 150_000, StartMonth: 6},
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := Project(defaultBaseline(), tc.inputs, tc.headcount)
			if len(result.ForecastData) != model.ForecastMonths {
				t.Fatalf("series length = %d, want %d", len(result.ForecastData), model.ForecastMonths)
			}
			for i, v := range result.ForecastData {
				if v < 0 {
					t.Fatalf("ForecastData[%d] = %.2f, want >= 0", i, v)
				}
			}
		})
	}
}

func TestProjectMonthZeroIsFlooredBalance(t *testing.T) {
	inputs := model.ScenarioInputs{OneTimeSpend: 1_000_000}
	result := Project(defaultBaseline(), inputs, nil)
	if result.ForecastData[0] != 4_000_000 {
		t.Fatalf("ForecastData[0] = %.2f, want 4000000", result.ForecastData[0])
	}

	// A one-time spend exceeding the bank balance floors month 0 at zero.
	inputs.OneTimeSpend = 9_000_000
	result = Project(defaultBaseline(), inputs, nil)
	if result.ForecastData[0] != 0 {
		t.Fatalf("ForecastData[0] = %.2f, want 0", result.ForecastData[0])
	}
}

func TestProjectMonotonicDecreaseUntilFloor(t *testing.T) {
	// Costs exceed revenue, no adjustments: the series must never rise,
	// and once it hits zero it stays there.
	result := Project(defaultBaseline(), model.ScenarioInputs{}, nil)

	flooring := false
	for i := 1; i < len(result.ForecastData); i++ {
		prev, curr := result.ForecastData[i-1], result.ForecastData[i]
		if curr > prev {
			t.Fatalf("series rose at month %d: %.2f -> %.2f", i, prev, curr)
		}
		if flooring && curr != 0 {
			t.Fatalf("series left the floor at month %d: %.2f", i, curr)
		}
		if curr == 0 {
			flooring = true
		}
	}
	if !flooring {
		t.Fatal("series never reached the floor; expected cash-out within 25 months")
	}
}

func TestProjectInfiniteRunwayWhenRevenueCoversCosts(t *testing.T) {
	// +100% price change lifts revenue to 1.6M against 1.2M costs.
	inputs := model.ScenarioInputs{PriceChange: 100}
	result := Project(defaultBaseline(), inputs, nil)

	if !math.IsInf(result.Runway, 1) {
		t.Fatalf("Runway = %.2f, want +Inf", result.Runway)
	}
	if result.Burn >= 0 {
		t.Fatalf("Burn = %.2f, want negative", result.Burn)
	}
	// Balance grows without an upper cap.
	last := result.ForecastData[len(result.ForecastData)-1]
	if last <= result.ForecastData[0] {
		t.Fatalf("series did not grow: first %.2f, last %.2f", result.ForecastData[0], last)
	}
}

func TestProjectHeadcountStartMonthTieBreak(t *testing.T) {
	// A role starting in month 3 must not contribute to month 3's burn but
	// must contribute to month 4's.
	role := model.HeadcountRole{ID: "eng", Role: "Engineer", Salary: 250_000, StartMonth: 3}

	without := Project(defaultBaseline(), model.ScenarioInputs{}, nil)
	with := Project(defaultBaseline(), model.ScenarioInputs{}, []model.HeadcountRole{role})

	for m := 0; m <= 3; m++ {
		if with.ForecastData[m] != without.ForecastData[m] {
			t.Fatalf("month %d affected by role starting at month 3: %.2f vs %.2f",
				m, with.ForecastData[m], without.ForecastData[m])
		}
	}
	wantMonth4 := without.ForecastData[4] - role.Salary
	if math.Abs(with.ForecastData[4]-wantMonth4) > 1e-9 {
		t.Fatalf("ForecastData[4] = %.2f, want %.2f", with.ForecastData[4], wantMonth4)
	}
}

func TestProjectDisplayBurnCountsAllHeadcount(t *testing.T) {
	// The headline burn counts every role regardless of start month, even
	// ones the per-month loop hasn't started charging yet.
	roles := []model.HeadcountRole{
		{ID: "a", Salary: 100_000, StartMonth: 0},
		{ID: "b", Salary: 200_000, StartMonth: 12},
	}
	result := Project(defaultBaseline(), model.ScenarioInputs{}, roles)

	want := 1_200_000.0 + 100_000 + 200_000 - 800_000
	if math.Abs(result.Burn-want) > 1e-9 {
		t.Fatalf("Burn = %.2f, want %.2f", result.Burn, want)
	}
}

func TestProjectIdempotent(t *testing.T) {
	inputs := model.ScenarioInputs{MonthlySpend: 50_000, OneTimeSpend: 200_000, PriceChange: 5}
	roles := []model.HeadcountRole{{ID: "a", Salary: 120_000, StartMonth: 2}}

	first := Project(defaultBaseline(), inputs, roles)
	second := Project(defaultBaseline(), inputs, roles)

	if first.Runway != second.Runway || first.Burn != second.Burn {
		t.Fatalf("repeated projection diverged: %+v vs %+v", first, second)
	}
	for i := range first.ForecastData {
		if first.ForecastData[i] != second.ForecastData[i] {
			t.Fatalf("ForecastData[%d] diverged: %.2f vs %.2f",
				i, first.ForecastData[i], second.ForecastData[i])
		}
	}
}

func TestProjectZeroBurnYieldsInfiniteRunway(t *testing.T) {
	baseline := model.Baseline{BankBalance: 1_000_000, MonthlyRevenue: 500_000, MonthlyCosts: 500_000}
	result := Project(baseline, model.ScenarioInputs{}, nil)
	if !math.IsInf(result.Runway, 1) {
		t.Fatalf("Runway = %.2f, want +Inf when burn is zero", result.Runway)
	}
}
