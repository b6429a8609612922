package analysis

import (
	"math"
	"sort"

	"github.com/bodhisathwik/finsaver/internal/model"
)

// SignedAmount returns the item amount with the sign convention applied:
// inflows positive, outflows negative magnitudes.
func SignedAmount(item model.CashFlowItem) float64 {
	if item.Type == model.FlowOutflow {
		return -math.Abs(item.Amount)
	}
	return math.Abs(item.Amount)
}

// CategoryTotal holds the signed sum for one cash-flow category.
type CategoryTotal struct {
	Category string
	Total    float64
	Items    int
}

// CashFlowSummary aggregates all cash movements.
type CashFlowSummary struct {
	TotalInflow  float64
	TotalOutflow float64 // positive magnitude
	NetFlow      float64
	Categories   []CategoryTotal
}

// SummarizeCashFlow totals signed amounts per category and overall.
// Categories are sorted by absolute total descending.
func SummarizeCashFlow(items []model.CashFlowItem) CashFlowSummary {
	var summary CashFlowSummary
	catMap := make(map[string]*CategoryTotal)

	for _, item := range items {
		signed := SignedAmount(item)
		summary.NetFlow += signed
		if item.Type == model.FlowOutflow {
			summary.TotalOutflow += -signed
		} else {
			summary.TotalInflow += signed
		}

		ct, ok := catMap[item.Category]
		if !ok {
			ct = &CategoryTotal{Category: item.Category}
			catMap[item.Category] = ct
		}
		ct.Total += signed
		ct.Items++
	}

	categories := make([]CategoryTotal, 0, len(catMap))
	for _, ct := range catMap {
		categories = append(categories, *ct)
	}
	sort.Slice(categories, func(i, j int) bool {
		return math.Abs(categories[i].Total) > math.Abs(categories[j].Total)
	})
	summary.Categories = categories

	return summary
}
