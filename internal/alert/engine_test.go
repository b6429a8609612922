package alert

import (
	"testing"
	"time"

	"github.com/bodhisathwik/finsaver/internal/model"
)

// fakeClock advances only when told to.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestEngine(rules ...model.AlertRule) (*Engine, *fakeClock) {
	clock := &fakeClock{t: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)}
	e := NewEmpty()
	e.SetClock(clock.now)
	for _, r := range rules {
		e.AddRule(r)
	}
	return e, clock
}

func belowRule(threshold float64) model.AlertRule {
	return model.AlertRule{
		ID: "runway_low", Name: "Runway Low", Metric: "runway_months",
		Condition: model.CondBelow, Threshold: threshold,
		Severity: model.SeverityHigh, Enabled: true, Cooldown: time.Hour,
	}
}

func TestCheckFiresOnRisingEdgeOnly(t *testing.T) {
	e, clock := newTestEngine(belowRule(6))

	// Condition not satisfied: no event.
	if fired := e.Check(map[string]float64{"runway_months": 10}); len(fired) != 0 {
		t.Fatalf("fired %d events with condition unsatisfied", len(fired))
	}

	// Crosses the threshold: fires once.
	fired := e.Check(map[string]float64{"runway_months": 4})
	if len(fired) != 1 {
		t.Fatalf("fired %d events on rising edge, want 1", len(fired))
	}
	if fired[0].Severity != model.SeverityHigh || fired[0].MetricValue != 4 {
		t.Fatalf("unexpected event: %+v", fired[0])
	}

	// Still below threshold on later ticks: no re-fire even past cooldown.
	clock.advance(2 * time.Hour)
	if fired := e.Check(map[string]float64{"runway_months": 3}); len(fired) != 0 {
		t.Fatalf("re-fired %d events while condition stayed satisfied", len(fired))
	}

	// Recovers, then crosses again: fires again.
	e.Check(map[string]float64{"runway_months": 12})
	clock.advance(2 * time.Hour)
	if fired := e.Check(map[string]float64{"runway_months": 5}); len(fired) != 1 {
		t.Fatalf("fired %d events on second rising edge, want 1", len(fired))
	}
}

func TestCheckRespectsCooldown(t *testing.T) {
	e, clock := newTestEngine(belowRule(6))

	e.Check(map[string]float64{"runway_months": 4}) // fires
	e.Check(map[string]float64{"runway_months": 10})

	// Rising edge inside the cooldown window is suppressed.
	clock.advance(10 * time.Minute)
	if fired := e.Check(map[string]float64{"runway_months": 4}); len(fired) != 0 {
		t.Fatalf("fired %d events inside cooldown, want 0", len(fired))
	}

	// After cooldown, the same transition fires.
	e.Check(map[string]float64{"runway_months": 10})
	clock.advance(time.Hour)
	if fired := e.Check(map[string]float64{"runway_months": 4}); len(fired) != 1 {
		t.Fatalf("fired %d events after cooldown, want 1", len(fired))
	}
}

func TestCheckIgnoresDisabledAndMissingMetrics(t *testing.T) {
	disabled := belowRule(6)
	disabled.Enabled = false
	above := model.AlertRule{
		ID: "burn_high", Name: "Burn High", Metric: "monthly_burn",
		Condition: model.CondAbove, Threshold: 100_000,
		Severity: model.SeverityMedium, Enabled: true,
	}
	e, _ := newTestEngine(disabled, above)

	// runway_months satisfies the disabled rule, monthly_burn is absent.
	fired := e.Check(map[string]float64{"runway_months": 1})
	if len(fired) != 0 {
		t.Fatalf("fired %d events, want 0", len(fired))
	}
}

func TestConditionEquals(t *testing.T) {
	rule := model.AlertRule{
		ID: "exact", Metric: "m", Condition: model.CondEquals, Threshold: 100,
		Enabled: true,
	}
	if !rule.Satisfied(100.005) {
		t.Fatal("value within 0.01 of threshold should satisfy equals")
	}
	if rule.Satisfied(100.02) {
		t.Fatal("value beyond 0.01 of threshold should not satisfy equals")
	}
}

func TestAcknowledgeAndResolve(t *testing.T) {
	e, _ := newTestEngine(belowRule(6))
	fired := e.Check(map[string]float64{"runway_months": 4})
	if len(fired) != 1 {
		t.Fatalf("setup: fired %d, want 1", len(fired))
	}
	id := fired[0].ID

	if !e.Acknowledge(id) {
		t.Fatal("Acknowledge returned false for known event")
	}
	if e.Acknowledge("nope") {
		t.Fatal("Acknowledge returned true for unknown event")
	}

	s := e.Summarize()
	if s.ActiveEvents != 1 || s.Acknowledged != 1 {
		t.Fatalf("summary after ack = %+v", s)
	}

	if !e.Resolve(id) {
		t.Fatal("Resolve returned false for known event")
	}
	s = e.Summarize()
	if s.ActiveEvents != 0 || s.Resolved != 1 {
		t.Fatalf("summary after resolve = %+v", s)
	}
	if len(e.ActiveEvents()) != 0 {
		t.Fatal("resolved event still listed as active")
	}
}

func TestAddRuleReplacesByID(t *testing.T) {
	e, _ := newTestEngine(belowRule(6))
	replacement := belowRule(9)
	e.AddRule(replacement)

	rules := e.Rules()
	if len(rules) != 1 {
		t.Fatalf("rule count = %d, want 1", len(rules))
	}
	if rules[0].Threshold != 9 {
		t.Fatalf("threshold = %.0f, want 9", rules[0].Threshold)
	}
}

func TestRemoveRule(t *testing.T) {
	e, _ := newTestEngine(belowRule(6))
	if !e.RemoveRule("runway_low") {
		t.Fatal("RemoveRule returned false for existing rule")
	}
	if e.RemoveRule("runway_low") {
		t.Fatal("RemoveRule returned true for removed rule")
	}
	if len(e.Rules()) != 0 {
		t.Fatal("rules remain after removal")
	}
}

func TestDefaultRulesAllEnabled(t *testing.T) {
	e := New()
	s := e.Summarize()
	if s.TotalRules == 0 {
		t.Fatal("default engine has no rules")
	}
	if s.EnabledRules != s.TotalRules {
		t.Fatalf("enabled = %d of %d, want all enabled", s.EnabledRules, s.TotalRules)
	}
}
