package forecast

import (
	"math"

	"github.com/bodhisathwik/finsaver/internal/model"
)

// Runway returns months of cash left at the given burn rate, +Inf when
// burn is zero or negative.
func Runway(cashBalance, monthlyBurn float64) float64 {
	if monthlyBurn <= 0 {
		return math.Inf(1)
	}
	return cashBalance / monthlyBurn
}

// BurnRate averages total outflow across the given number of months.
func BurnRate(items []model.CashFlowItem, months int) float64 {
	if months <= 0 {
		return 0
	}
	var outflow float64
	for _, item := range items {
		if item.Type == model.FlowOutflow {
			outflow += math.Abs(item.Amount)
		}
	}
	return outflow / float64(months)
}

// MRR sums recurring inflows (monthly recurring revenue).
func MRR(items []model.CashFlowItem) float64 {
	var total float64
	for _, item := range items {
		if item.Type == model.FlowInflow && item.Recurring {
			total += math.Abs(item.Amount)
		}
	}
	return total
}

// GrossMargin returns the gross margin percentage, 0 when revenue is zero.
func GrossMargin(revenue, cogs float64) float64 {
	if revenue == 0 {
		return 0
	}
	return (revenue - cogs) / revenue * 100
}

// CAC returns cost per acquired customer, 0 when there are no new customers.
func CAC(marketingSpend float64, newCustomers int) float64 {
	if newCustomers == 0 {
		return 0
	}
	return marketingSpend / float64(newCustomers)
}

// BurnMultiple returns net burn over net new ARR, +Inf when ARR is zero.
func BurnMultiple(netBurn, netNewARR float64) float64 {
	if netNewARR == 0 {
		return math.Inf(1)
	}
	return netBurn / netNewARR
}

// CashFlowMetrics holds figures derived from recorded cash movements.
type CashFlowMetrics struct {
	Months         int // distinct calendar months in the data
	MRR            float64
	AvgBurn        float64 // average monthly outflow
	NetBurn        float64 // average outflow minus recurring revenue
	ImpliedRunway  float64
	MarketingSpend float64
	CAC            float64
}

// AnalyzeCashFlow derives MRR, burn rate, implied runway, and CAC from the
// recorded cash movements. The averaging window is the number of distinct
// months the items span. newCustomers may be zero, yielding a zero CAC.
func AnalyzeCashFlow(bankBalance float64, items []model.CashFlowItem, newCustomers int) CashFlowMetrics {
	months := map[string]struct{}{}
	var marketing float64
	for _, item := range items {
		if len(item.Date) >= 7 {
			months[item.Date[:7]] = struct{}{}
		}
		if item.Type == model.FlowOutflow && item.Category == "Marketing" {
			marketing += math.Abs(item.Amount)
		}
	}

	m := CashFlowMetrics{
		Months:         len(months),
		MRR:            MRR(items),
		MarketingSpend: marketing,
		CAC:            CAC(marketing, newCustomers),
	}
	if m.Months == 0 && len(items) > 0 {
		m.Months = 1
	}
	m.AvgBurn = BurnRate(items, m.Months)
	m.NetBurn = m.AvgBurn - m.MRR
	m.ImpliedRunway = Runway(bankBalance, m.NetBurn)
	return m
}
