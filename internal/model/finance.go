// Package model defines domain types for finsaver forecasts and planning data.
package model

import "time"

// ForecastMonths is the number of entries in a forecast series (months 0..24).
const ForecastMonths = 25

// Baseline is the fixed financial reference point a scenario is projected from.
type Baseline struct {
	BankBalance    float64 `json:"bankBalance"`
	MonthlyRevenue float64 `json:"monthlyRevenue"`
	MonthlyCosts   float64 `json:"monthlyCosts"`
}

// ScenarioInputs holds the user-adjustable assumptions layered on a baseline.
type ScenarioInputs struct {
	MonthlySpend float64 `json:"monthlySpend"` // additional recurring spend, positive = extra cost
	OneTimeSpend float64 `json:"oneTimeSpend"` // deducted once at month 0
	PriceChange  float64 `json:"priceChange"`  // percent adjustment applied to monthly revenue
}

// HeadcountRole is a planned hire: a recurring salary cost from StartMonth onward.
type HeadcountRole struct {
	ID         string  `json:"id"`
	Role       string  `json:"role"`
	Salary     float64 `json:"salary"` // monthly
	StartMonth int     `json:"startMonth"`
}

// ForecastResult is the output of projecting a scenario.
type ForecastResult struct {
	Runway       float64   `json:"runway"` // months until cash-out; +Inf when burn <= 0
	Burn         float64   `json:"burn"`   // net monthly outflow; negative means cash-positive
	ForecastData []float64 `json:"forecastData"`
}

// Scenario is a named snapshot of inputs, headcount, and the resulting forecast.
type Scenario struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Inputs    ScenarioInputs  `json:"inputs"`
	Headcount []HeadcountRole `json:"headcount,omitempty"`
	Runway    float64         `json:"runway"`
	Burn      float64         `json:"burn"`
	SavedAt   time.Time       `json:"savedAt"`
}
