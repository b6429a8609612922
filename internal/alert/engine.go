// Package alert implements threshold monitoring over planning metrics:
// rules, rising-edge triggering with cooldowns, and the event lifecycle.
package alert

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/bodhisathwik/finsaver/internal/model"
)

// Engine evaluates alert rules against metric snapshots. It remembers each
// rule's previous satisfaction state so alerts fire only when a condition
// transitions from unsatisfied to satisfied, not on every evaluation tick.
//
// The clock is injectable so tests can freeze time. Engine is not safe for
// concurrent use; the watch service serializes access.
type Engine struct {
	rules     []model.AlertRule
	events    []model.AlertEvent
	satisfied map[string]bool // rule ID -> condition held on last check
	now       func() time.Time
}

// New returns an engine with the default CFO rule set.
func New() *Engine {
	e := NewEmpty()
	e.rules = append(e.rules, DefaultRules()...)
	return e
}

// NewEmpty returns an engine with no rules.
func NewEmpty() *Engine {
	return &Engine{
		satisfied: make(map[string]bool),
		now:       time.Now,
	}
}

// SetClock replaces the engine's time source.
func (e *Engine) SetClock(now func() time.Time) {
	e.now = now
}

// DefaultRules is the built-in rule set covering runway, burn, cash
// balance, and budget variance.
func DefaultRules() []model.AlertRule {
	return []model.AlertRule{
		{
			ID: "runway_critical", Name: "Cash Runway Critical",
			Metric: "runway_months", Condition: model.CondBelow, Threshold: 3,
			Severity: model.SeverityCritical, Enabled: true, Cooldown: 30 * time.Minute,
		},
		{
			ID: "runway_warning", Name: "Cash Runway Warning",
			Metric: "runway_months", Condition: model.CondBelow, Threshold: 6,
			Severity: model.SeverityHigh, Enabled: true, Cooldown: time.Hour,
		},
		{
			ID: "burn_rate_high", Name: "High Burn Rate",
			Metric: "monthly_burn", Condition: model.CondAbove, Threshold: 100_000,
			Severity: model.SeverityMedium, Enabled: true, Cooldown: 2 * time.Hour,
		},
		{
			ID: "cash_balance_low", Name: "Low Cash Balance",
			Metric: "cash_balance", Condition: model.CondBelow, Threshold: 250_000,
			Severity: model.SeverityHigh, Enabled: true, Cooldown: 2 * time.Hour,
		},
		{
			ID: "budget_overspend", Name: "Budget Overspend",
			Metric: "budget_variance_pct", Condition: model.CondAbove, Threshold: 15,
			Severity: model.SeverityMedium, Enabled: true, Cooldown: 3 * time.Hour,
		},
	}
}

// AddRule installs a rule, replacing any existing rule with the same ID.
func (e *Engine) AddRule(rule model.AlertRule) {
	for i, r := range e.rules {
		if r.ID == rule.ID {
			e.rules[i] = rule
			delete(e.satisfied, rule.ID)
			return
		}
	}
	e.rules = append(e.rules, rule)
}

// RemoveRule deletes a rule by ID, reporting whether it existed.
func (e *Engine) RemoveRule(id string) bool {
	for i, r := range e.rules {
		if r.ID == id {
			e.rules = append(e.rules[:i], e.rules[i+1:]...)
			delete(e.satisfied, id)
			return true
		}
	}
	return false
}

// Rules returns a copy of the installed rules.
func (e *Engine) Rules() []model.AlertRule {
	out := make([]model.AlertRule, len(e.rules))
	copy(out, e.rules)
	return out
}

// Check evaluates all enabled rules against the metric snapshot and returns
// the events fired this round. A rule fires only on the rising edge of its
// condition and only outside its cooldown window.
func (e *Engine) Check(metrics map[string]float64) []model.AlertEvent {
	now := e.now()
	var fired []model.AlertEvent

	for i := range e.rules {
		rule := &e.rules[i]
		if !rule.Enabled {
			continue
		}
		value, ok := metrics[rule.Metric]
		if !ok {
			continue
		}

		held := rule.Satisfied(value)
		wasHeld := e.satisfied[rule.ID]
		e.satisfied[rule.ID] = held

		if !held || wasHeld {
			continue
		}
		if !rule.LastTriggered.IsZero() && now.Sub(rule.LastTriggered) < rule.Cooldown {
			continue
		}

		rule.LastTriggered = now
		ev := model.AlertEvent{
			ID:          uuid.NewString(),
			RuleID:      rule.ID,
			TriggeredAt: now,
			MetricValue: value,
			Threshold:   rule.Threshold,
			Severity:    rule.Severity,
			Message:     eventMessage(*rule, value),
		}
		fired = append(fired, ev)
		e.events = append(e.events, ev)
	}

	return fired
}

func eventMessage(rule model.AlertRule, value float64) string {
	switch rule.Condition {
	case model.CondBelow:
		return fmt.Sprintf("%s: %s is %.2f, below threshold of %.2f",
			rule.Name, rule.Metric, value, rule.Threshold)
	case model.CondAbove:
		return fmt.Sprintf("%s: %s is %.2f, above threshold of %.2f",
			rule.Name, rule.Metric, value, rule.Threshold)
	default:
		return fmt.Sprintf("%s: %s triggered at %.2f", rule.Name, rule.Metric, value)
	}
}

// Acknowledge marks an event as seen, reporting whether it was found.
func (e *Engine) Acknowledge(eventID string) bool {
	for i := range e.events {
		if e.events[i].ID == eventID {
			e.events[i].Acknowledged = true
			return true
		}
	}
	return false
}

// Resolve closes an event (and implies acknowledgement).
func (e *Engine) Resolve(eventID string) bool {
	for i := range e.events {
		if e.events[i].ID == eventID {
			e.events[i].Resolved = true
			e.events[i].Acknowledged = true
			return true
		}
	}
	return false
}

// ActiveEvents returns unresolved events, most recent first.
func (e *Engine) ActiveEvents() []model.AlertEvent {
	var active []model.AlertEvent
	for _, ev := range e.events {
		if !ev.Resolved {
			active = append(active, ev)
		}
	}
	sort.Slice(active, func(i, j int) bool {
		return active[i].TriggeredAt.After(active[j].TriggeredAt)
	})
	return active
}

// Summary is a headline view of the alert system state.
type Summary struct {
	TotalRules   int
	EnabledRules int
	TotalEvents  int
	ActiveEvents int
	Acknowledged int
	Resolved     int
	BySeverity   map[model.Severity]int
}

// Summarize counts rules and events by state and severity.
func (e *Engine) Summarize() Summary {
	s := Summary{
		TotalRules:  len(e.rules),
		TotalEvents: len(e.events),
		BySeverity:  make(map[model.Severity]int),
	}
	for _, r := range e.rules {
		if r.Enabled {
			s.EnabledRules++
		}
	}
	for _, ev := range e.events {
		switch {
		case ev.Resolved:
			s.Resolved++
		case ev.Acknowledged:
			s.Acknowledged++
		}
		if !ev.Resolved {
			s.ActiveEvents++
			s.BySeverity[ev.Severity]++
		}
	}
	return s
}
