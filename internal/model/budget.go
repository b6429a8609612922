package model

// FlowType distinguishes cash inflows from outflows.
type FlowType string

const (
	FlowInflow  FlowType = "inflow"
	FlowOutflow FlowType = "outflow"
)

// BudgetItem tracks budgeted versus actual spend for a category in one month.
type BudgetItem struct {
	ID       string  `json:"id"`
	Category string  `json:"category"`
	Budgeted float64 `json:"budgeted"`
	Actual   float64 `json:"actual"`
	Month    string  `json:"month"` // "2006-01"
}

// CashFlowItem is a single dated cash movement.
type CashFlowItem struct {
	ID          string   `json:"id"`
	Description string   `json:"description"`
	Amount      float64  `json:"amount"` // stored as a positive magnitude; Type carries the sign
	Category    string   `json:"category"`
	Type        FlowType `json:"type"`
	Date        string   `json:"date"` // "2006-01-02"
	Recurring   bool     `json:"recurring"`
}

// KPI is a tracked metric with a target. PrevValue is the reading from the
// prior period; trend and change are derived from it, never stored.
type KPI struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Value     float64 `json:"value"`
	Target    float64 `json:"target"`
	Unit      string  `json:"unit"`
	PrevValue float64 `json:"prevValue"`
}
