// Package analysis computes derived figures from planning data: budget
// variance, cash-flow categorization, KPI status, and trends.
package analysis

import (
	"sort"

	"github.com/bodhisathwik/finsaver/internal/model"
)

// VarianceStatus classifies a budget line's variance.
type VarianceStatus string

const (
	StatusOverBudget  VarianceStatus = "over-budget"
	StatusUnderBudget VarianceStatus = "under-budget"
	StatusOnTrack     VarianceStatus = "on-track"
)

// Variance returns the percentage deviation of actual from budgeted spend.
// A zero budget yields 0 rather than dividing by zero.
func Variance(budgeted, actual float64) float64 {
	if budgeted == 0 {
		return 0
	}
	return (actual - budgeted) / budgeted * 100
}

// ClassifyVariance maps a variance percentage to a status. More than 10%
// over is over-budget, more than 10% under is under-budget.
func ClassifyVariance(variance float64) VarianceStatus {
	switch {
	case variance > 10:
		return StatusOverBudget
	case variance < -10:
		return StatusUnderBudget
	default:
		return StatusOnTrack
	}
}

// Progress returns actual spend as a percentage of budget, 0 when unbudgeted.
func Progress(budgeted, actual float64) float64 {
	if budgeted == 0 {
		return 0
	}
	return actual / budgeted * 100
}

// CategoryVariance holds aggregated budget figures for one category.
type CategoryVariance struct {
	Category string
	Budgeted float64
	Actual   float64
	Variance float64
	Status   VarianceStatus
	Items    int
}

// BudgetSummary is the full variance analysis across all budget items.
type BudgetSummary struct {
	TotalBudgeted float64
	TotalActual   float64
	TotalVariance float64
	Categories    []CategoryVariance
}

// AnalyzeBudget aggregates budget items per category and computes variance
// for each plus the overall totals. Categories are sorted by budgeted
// amount descending.
func AnalyzeBudget(items []model.BudgetItem) BudgetSummary {
	var summary BudgetSummary
	catMap := make(map[string]*CategoryVariance)

	for _, item := range items {
		summary.TotalBudgeted += item.Budgeted
		summary.TotalActual += item.Actual

		cv, ok := catMap[item.Category]
		if !ok {
			cv = &CategoryVariance{Category: item.Category}
			catMap[item.Category] = cv
		}
		cv.Budgeted += item.Budgeted
		cv.Actual += item.Actual
		cv.Items++
	}

	summary.TotalVariance = Variance(summary.TotalBudgeted, summary.TotalActual)

	categories := make([]CategoryVariance, 0, len(catMap))
	for _, cv := range catMap {
		cv.Variance = Variance(cv.Budgeted, cv.Actual)
		cv.Status = ClassifyVariance(cv.Variance)
		categories = append(categories, *cv)
	}
	sort.Slice(categories, func(i, j int) bool {
		return categories[i].Budgeted > categories[j].Budgeted
	})
	summary.Categories = categories

	return summary
}
