package model

import "time"

// Condition is the comparison an alert rule applies to its metric.
type Condition string

const (
	CondBelow  Condition = "below"
	CondAbove  Condition = "above"
	CondEquals Condition = "equals"
)

// Severity orders alert rules by urgency.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// AlertRule watches one metric against a threshold.
type AlertRule struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Metric        string        `json:"metric"`
	Condition     Condition     `json:"condition"`
	Threshold     float64       `json:"threshold"`
	Severity      Severity      `json:"severity"`
	Enabled       bool          `json:"enabled"`
	Cooldown      time.Duration `json:"cooldown"` // minimum gap between firings
	LastTriggered time.Time     `json:"lastTriggered,omitempty"`
}

// Satisfied reports whether the rule's condition holds for the given value.
func (r AlertRule) Satisfied(value float64) bool {
	switch r.Condition {
	case CondBelow:
		return value < r.Threshold
	case CondAbove:
		return value > r.Threshold
	case CondEquals:
		return value-r.Threshold < 0.01 && r.Threshold-value < 0.01
	}
	return false
}

// AlertEvent records one firing of a rule.
type AlertEvent struct {
	ID           string    `json:"id"`
	RuleID       string    `json:"ruleId"`
	TriggeredAt  time.Time `json:"triggeredAt"`
	MetricValue  float64   `json:"metricValue"`
	Threshold    float64   `json:"threshold"`
	Severity     Severity  `json:"severity"`
	Message      string    `json:"message"`
	Acknowledged bool      `json:"acknowledged"`
	Resolved     bool      `json:"resolved"`
}
