package watch

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/bodhisathwik/finsaver/internal/model"
)

type fakeProvider struct {
	baseline  model.Baseline
	hasBase   bool
	headcount []model.HeadcountRole
	budget    []model.BudgetItem
}

func (f *fakeProvider) Baseline() (model.Baseline, bool, error) {
	return f.baseline, f.hasBase, nil
}

func (f *fakeProvider) Headcount() ([]model.HeadcountRole, error) {
	return f.headcount, nil
}

func (f *fakeProvider) BudgetItems() ([]model.BudgetItem, error) {
	return f.budget, nil
}

func TestTickAlertsBuildsSnapshot(t *testing.T) {
	p := &fakeProvider{
		baseline: model.Baseline{BankBalance: 5000000, MonthlyRevenue: 800000, MonthlyCosts: 1200000},
		hasBase:  true,
		headcount: []model.HeadcountRole{
			{ID: "r1", Role: "Engineer", Salary: 150000, StartMonth: 1},
		},
		budget: []model.BudgetItem{
			{ID: "b1", Category: "Marketing", Budgeted: 100000, Actual: 120000, Month: "2026-08"},
		},
	}
	s := New(Config{AlertInterval: 5 * time.Second, InsightInterval: 15 * time.Second}, p, nil)
	base := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	s.SetClock(func() time.Time { return base })

	s.TickAlerts()

	st := s.snapshotStatus()
	if st.TickCount != 1 {
		t.Fatalf("tick count = %d", st.TickCount)
	}
	if st.Summary.Burn != 550000 {
		t.Fatalf("burn = %v, want 550000", st.Summary.Burn)
	}
	if st.Summary.Headcount != 1 {
		t.Fatalf("headcount = %d", st.Summary.Headcount)
	}
	if math.Abs(st.Summary.OverspendPct-20) > 1e-9 {
		t.Fatalf("overspend = %v, want 20", st.Summary.OverspendPct)
	}
	if st.LastError != "" {
		t.Fatalf("unexpected error: %s", st.LastError)
	}
}

func TestTickAlertsNoBaseline(t *testing.T) {
	s := New(Config{}, &fakeProvider{}, nil)
	s.TickAlerts()

	st := s.snapshotStatus()
	if st.LastError == "" {
		t.Fatal("expected error without baseline")
	}
	if st.EventCount != 0 {
		t.Fatalf("events published on failed tick: %d", st.EventCount)
	}
}

func TestTickAlertsFiresAlertEvent(t *testing.T) {
	// High extra spend pushes runway under the 3-month critical threshold.
	p := &fakeProvider{
		baseline: model.Baseline{BankBalance: 1000000, MonthlyRevenue: 100000, MonthlyCosts: 400000},
		hasBase:  true,
	}
	s := New(Config{Inputs: model.ScenarioInputs{MonthlySpend: 100000}}, p, nil)
	base := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	s.SetClock(func() time.Time { return base })

	s.TickAlerts()

	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.events) != 1 {
		t.Fatalf("events = %d, want 1", len(s.events))
	}
	ev := s.events[0]
	if ev.Type != "alert" {
		t.Fatalf("event type = %q, want alert", ev.Type)
	}
	if len(ev.Alerts) == 0 {
		t.Fatal("no alert events attached")
	}
}

func TestTickInsightPublishes(t *testing.T) {
	p := &fakeProvider{
		baseline: model.Baseline{BankBalance: 5000000, MonthlyRevenue: 800000, MonthlyCosts: 1200000},
		hasBase:  true,
	}
	s := New(Config{}, p, nil)
	s.TickAlerts()
	s.TickInsight()

	s.mu.RLock()
	defer s.mu.RUnlock()
	last := s.events[len(s.events)-1]
	if last.Type != "insight" || last.Insight == "" {
		t.Fatalf("insight event = %+v", last)
	}
}

func TestPublishEventRingBuffer(t *testing.T) {
	s := New(Config{EventsBuffer: 2}, &fakeProvider{}, nil)

	s.publishEvent(Event{ID: 1})
	s.publishEvent(Event{ID: 2})
	s.publishEvent(Event{ID: 3})

	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.events) != 2 {
		t.Fatalf("events len = %d, want 2", len(s.events))
	}
	if s.events[0].ID != 2 || s.events[1].ID != 3 {
		t.Fatalf("events ring contains IDs [%d, %d], want [2, 3]", s.events[0].ID, s.events[1].ID)
	}
}

func TestSnapshotMarshalInfiniteRunway(t *testing.T) {
	data, err := json.Marshal(Snapshot{Runway: math.Inf(1), Burn: 0})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out["runway"].(float64) != -1 {
		t.Fatalf("runway = %v, want -1", out["runway"])
	}
}
