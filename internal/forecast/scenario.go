package forecast

import "github.com/bodhisathwik/finsaver/internal/model"

// ScenarioCase is one of the three cases produced by Analyze.
type ScenarioCase struct {
	Name         string
	Baseline     model.Baseline
	Result       model.ForecastResult
	RunwayMonths float64

	// GrossMarginPct is revenue over costs for the scaled baseline.
	// BurnMultiple is annualized net burn over annualized net new ARR
	// relative to the base case; +Inf for the base case itself.
	GrossMarginPct float64
	BurnMultiple   float64
}

// ScenarioAnalysis holds base, optimistic, and pessimistic projections.
type ScenarioAnalysis struct {
	Base        ScenarioCase
	Optimistic  ScenarioCase
	Pessimistic ScenarioCase
}

// Analyze projects the same inputs against the base case and two scaled
// variants of it. Multipliers scale every baseline figure uniformly.
func Analyze(base model.Baseline, inputs model.ScenarioInputs, headcount []model.HeadcountRole,
	optimisticMult, pessimisticMult float64) ScenarioAnalysis {

	project := func(name string, mult float64) ScenarioCase {
		scaled := model.Baseline{
			BankBalance:    base.BankBalance * mult,
			MonthlyRevenue: base.MonthlyRevenue * mult,
			MonthlyCosts:   base.MonthlyCosts * mult,
		}
		result := Project(scaled, inputs, headcount)
		netNewARR := (scaled.MonthlyRevenue - base.MonthlyRevenue) * 12
		return ScenarioCase{
			Name:           name,
			Baseline:       scaled,
			Result:         result,
			RunwayMonths:   result.Runway,
			GrossMarginPct: GrossMargin(scaled.MonthlyRevenue, scaled.MonthlyCosts),
			BurnMultiple:   BurnMultiple(result.Burn*12, netNewARR),
		}
	}

	return ScenarioAnalysis{
		Base:        project("base_case", 1),
		Optimistic:  project("optimistic", optimisticMult),
		Pessimistic: project("pessimistic", pessimisticMult),
	}
}
