package analysis

import (
	"fmt"

	"github.com/bodhisathwik/finsaver/internal/model"
)

// ValidationResult separates hard errors from advisory warnings.
type ValidationResult struct {
	Errors   []string
	Warnings []string
}

// OK reports whether validation found no hard errors.
func (v ValidationResult) OK() bool {
	return len(v.Errors) == 0
}

// ValidateData checks planning data for consistency. Missing identity
// fields are errors; suspicious amounts are warnings.
func ValidateData(budget []model.BudgetItem, cashflow []model.CashFlowItem, kpis []model.KPI) ValidationResult {
	var result ValidationResult

	for _, item := range budget {
		if item.Category == "" {
			result.Errors = append(result.Errors,
				fmt.Sprintf("budget item %s missing category", itemID(item.ID)))
		}
		if item.Budgeted < 0 {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("budget item %s has negative budgeted amount", itemID(item.ID)))
		}
	}

	for _, item := range cashflow {
		if item.Type != model.FlowInflow && item.Type != model.FlowOutflow {
			result.Errors = append(result.Errors,
				fmt.Sprintf("cash flow item %s has invalid type %q", itemID(item.ID), item.Type))
		}
		if item.Amount <= 0 {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("cash flow item %s has zero or negative amount", itemID(item.ID)))
		}
	}

	for _, kpi := range kpis {
		if kpi.Name == "" {
			result.Errors = append(result.Errors,
				fmt.Sprintf("KPI %s missing name", itemID(kpi.ID)))
		}
		if kpi.Target <= 0 {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("KPI %s has zero or negative target", itemID(kpi.ID)))
		}
	}

	return result
}

func itemID(id string) string {
	if id == "" {
		return "unknown"
	}
	return id
}
