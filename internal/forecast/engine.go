// Package forecast implements the runway projection engine and the
// supporting financial calculators. Everything here is pure: callers own
// all state and pass it in per invocation.
package forecast

import (
	"math"

	"github.com/bodhisathwik/finsaver/internal/model"
)

// Project computes a month-by-month cash balance series plus the headline
// runway and burn figures for a scenario.
//
// The series covers months 0..24 and is floored at zero. The headline burn
// deliberately counts every headcount role regardless of start month, while
// the per-month loop only counts roles whose StartMonth is strictly below
// the month being computed; a role starting in month 3 first hits month 4's
// burn.
func Project(baseline model.Baseline, inputs model.ScenarioInputs, headcount []model.HeadcountRole) model.ForecastResult {
	effectiveRevenue := baseline.MonthlyRevenue * (1 + inputs.PriceChange/100)

	series := make([]float64, 0, model.ForecastMonths)
	balance := baseline.BankBalance - inputs.OneTimeSpend
	series = append(series, math.Max(0, balance))

	for m := 1; m < model.ForecastMonths; m++ {
		var headcountCost float64
		for _, role := range headcount {
			if role.StartMonth < m {
				headcountCost += role.Salary
			}
		}

		burn := baseline.MonthlyCosts + inputs.MonthlySpend + headcountCost - effectiveRevenue
		balance -= burn
		series = append(series, math.Max(0, balance))
	}

	var allSalaries float64
	for _, role := range headcount {
		allSalaries += role.Salary
	}
	displayBurn := baseline.MonthlyCosts + inputs.MonthlySpend + allSalaries - effectiveRevenue

	runway := math.Inf(1)
	if displayBurn > 0 {
		runway = (baseline.BankBalance - inputs.OneTimeSpend) / displayBurn
	}

	return model.ForecastResult{
		Runway:       runway,
		Burn:         displayBurn,
		ForecastData: series,
	}
}
