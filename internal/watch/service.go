// Package watch provides the long-running background monitor service. It
// periodically re-evaluates the forecast against the alert rules and serves
// live metrics over HTTP and SSE.
package watch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"net/http"
	"sync"
	"time"

	"github.com/bodhisathwik/finsaver/internal/alert"
	"github.com/bodhisathwik/finsaver/internal/analysis"
	"github.com/bodhisathwik/finsaver/internal/forecast"
	"github.com/bodhisathwik/finsaver/internal/model"
	"github.com/bodhisathwik/finsaver/internal/sim"
)

// Provider supplies the planning state the monitor evaluates. The sqlite
// workspace satisfies it.
type Provider interface {
	Baseline() (model.Baseline, bool, error)
	Headcount() ([]model.HeadcountRole, error)
	BudgetItems() ([]model.BudgetItem, error)
}

// Config controls the watch runtime behavior.
type Config struct {
	Addr            string
	AlertInterval   time.Duration
	InsightInterval time.Duration
	JitterAmplitude float64
	EventsBuffer    int
	Inputs          model.ScenarioInputs
}

// Snapshot is the compact metric state for status/event payloads.
type Snapshot struct {
	At           time.Time `json:"at"`
	Runway       float64   `json:"runway"`
	Burn         float64   `json:"burn"`
	BankBalance  float64   `json:"bankBalance"`
	OverspendPct float64   `json:"overspendPct"`
	Headcount    int       `json:"headcount"`
}

// MarshalJSON clamps infinite runway to -1; JSON has no Inf literal.
func (s Snapshot) MarshalJSON() ([]byte, error) {
	type plain Snapshot
	p := plain(s)
	if math.IsInf(p.Runway, 1) {
		p.Runway = -1
	}
	return json.Marshal(p)
}

// Event is emitted on each evaluation, alert firing, or insight rotation.
type Event struct {
	ID        int64              `json:"id"`
	Type      string             `json:"type"` // "metrics", "alert", "insight"
	Timestamp time.Time          `json:"timestamp"`
	Snapshot  Snapshot           `json:"snapshot"`
	Alerts    []model.AlertEvent `json:"alerts,omitempty"`
	Insight   string             `json:"insight,omitempty"`
}

// Status is served at /v1/status.
type Status struct {
	StartedAt          time.Time `json:"startedAt"`
	LastTickAt         time.Time `json:"lastTickAt"`
	AlertIntervalSec   int       `json:"alertIntervalSec"`
	InsightIntervalSec int       `json:"insightIntervalSec"`
	TickCount          int64     `json:"tickCount"`
	Summary            Snapshot  `json:"summary"`
	ActiveAlerts       int       `json:"activeAlerts"`
	LastError          string    `json:"lastError,omitempty"`
	EventCount         int       `json:"eventCount"`
	SubscriberCount    int       `json:"subscriberCount"`
}

// Service provides the watch runtime and HTTP API.
type Service struct {
	cfg      Config
	provider Provider
	alerts   *alert.Engine
	jitter   *sim.Jitterer
	insights *sim.InsightRotator
	now      func() time.Time

	mu          sync.RWMutex
	startedAt   time.Time
	lastTickAt  time.Time
	tickCount   int64
	lastError   string
	hasSnapshot bool
	snapshot    Snapshot
	nextEventID int64
	events      []Event

	nextSubID int
	subs      map[int]chan Event
}

// New returns a watch service over the given provider. A nil rng gets a
// time-seeded source; jitter is off unless an amplitude is configured.
func New(cfg Config, provider Provider, rng sim.Rand) *Service {
	if cfg.AlertInterval < time.Second {
		cfg.AlertInterval = 5 * time.Second
	}
	if cfg.InsightInterval < time.Second {
		cfg.InsightInterval = 15 * time.Second
	}
	if cfg.EventsBuffer < 1 {
		cfg.EventsBuffer = 200
	}
	if cfg.Addr == "" {
		cfg.Addr = "127.0.0.1:7468"
	}

	s := &Service{
		cfg:      cfg,
		provider: provider,
		alerts:   alert.New(),
		insights: sim.NewInsightRotator(rng),
		now:      time.Now,
		subs:     make(map[int]chan Event),
	}
	if cfg.JitterAmplitude > 0 {
		s.jitter = sim.NewJitterer(rng, cfg.JitterAmplitude)
	}
	s.startedAt = s.now()
	return s
}

// SetClock replaces the time source. Tests use this.
func (s *Service) SetClock(now func() time.Time) {
	s.now = now
	s.alerts.SetClock(now)
}

// Alerts exposes the alert engine so callers can install stored rules.
func (s *Service) Alerts() *alert.Engine {
	return s.alerts
}

// Run starts HTTP endpoints and the evaluation loops until ctx is canceled.
func (s *Service) Run(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/v1/status", s.handleStatus)
	mux.HandleFunc("/v1/events", s.handleEvents)
	mux.HandleFunc("/v1/stream", s.handleStream)

	server := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Seed initial snapshot so status is useful immediately.
	s.TickAlerts()

	alertTicker := time.NewTicker(s.cfg.AlertInterval)
	defer alertTicker.Stop()
	insightTicker := time.NewTicker(s.cfg.InsightInterval)
	defer insightTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		case <-alertTicker.C:
			s.TickAlerts()
		case <-insightTicker.C:
			s.TickInsight()
		case err := <-errCh:
			return fmt.Errorf("watch http server: %w", err)
		}
	}
}

// TickAlerts recomputes the forecast, applies jitter if configured, feeds
// the metrics to the alert engine, and publishes the resulting events.
func (s *Service) TickAlerts() {
	snap, err := s.evaluate()
	now := s.now()
	if err != nil {
		s.mu.Lock()
		s.lastError = err.Error()
		s.lastTickAt = now
		s.tickCount++
		s.mu.Unlock()
		log.Printf("finsaver watch tick error: %v", err)
		return
	}

	metrics := map[string]float64{
		"runway_months":       snap.Runway,
		"monthly_burn":        snap.Burn,
		"cash_balance":        snap.BankBalance,
		"budget_variance_pct": snap.OverspendPct,
	}
	if s.jitter != nil {
		metrics = s.jitter.ApplyAll(metrics)
	}
	fired := s.alerts.Check(metrics)

	s.mu.Lock()
	s.hasSnapshot = true
	s.snapshot = snap
	s.lastTickAt = now
	s.tickCount++
	s.lastError = ""

	s.nextEventID++
	ev := Event{
		ID:        s.nextEventID,
		Type:      "metrics",
		Timestamp: now,
		Snapshot:  snap,
	}
	if len(fired) > 0 {
		ev.Type = "alert"
		ev.Alerts = fired
	}
	s.mu.Unlock()

	s.publishEvent(ev)
}

// TickInsight publishes the next rotating insight.
func (s *Service) TickInsight() {
	now := s.now()

	s.mu.Lock()
	s.nextEventID++
	ev := Event{
		ID:        s.nextEventID,
		Type:      "insight",
		Timestamp: now,
		Snapshot:  s.snapshot,
		Insight:   s.insights.Next(),
	}
	s.mu.Unlock()

	s.publishEvent(ev)
}

func (s *Service) evaluate() (Snapshot, error) {
	baseline, ok, err := s.provider.Baseline()
	if err != nil {
		return Snapshot{}, fmt.Errorf("loading baseline: %w", err)
	}
	if !ok {
		return Snapshot{}, errors.New("no baseline saved; run setup first")
	}
	headcount, err := s.provider.Headcount()
	if err != nil {
		return Snapshot{}, fmt.Errorf("loading headcount: %w", err)
	}
	budget, err := s.provider.BudgetItems()
	if err != nil {
		return Snapshot{}, fmt.Errorf("loading budget: %w", err)
	}

	result := forecast.Project(baseline, s.cfg.Inputs, headcount)
	summary := analysis.AnalyzeBudget(budget)

	var overspend float64
	if summary.TotalBudgeted > 0 {
		overspend = analysis.Variance(summary.TotalBudgeted, summary.TotalActual)
	}

	return Snapshot{
		At:           s.now(),
		Runway:       result.Runway,
		Burn:         result.Burn,
		BankBalance:  baseline.BankBalance,
		OverspendPct: overspend,
		Headcount:    len(headcount),
	}, nil
}

func (s *Service) publishEvent(ev Event) {
	s.mu.Lock()
	s.events = append(s.events, ev)
	if len(s.events) > s.cfg.EventsBuffer {
		s.events = s.events[len(s.events)-s.cfg.EventsBuffer:]
	}

	for _, ch := range s.subs {
		select {
		case ch <- ev:
		default:
		}
	}
	s.mu.Unlock()
}

func (s *Service) snapshotStatus() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Status{
		StartedAt:          s.startedAt,
		LastTickAt:         s.lastTickAt,
		AlertIntervalSec:   int(s.cfg.AlertInterval.Seconds()),
		InsightIntervalSec: int(s.cfg.InsightInterval.Seconds()),
		TickCount:          s.tickCount,
		Summary:            s.snapshot,
		ActiveAlerts:       len(s.alerts.ActiveEvents()),
		LastError:          s.lastError,
		EventCount:         len(s.events),
		SubscriberCount:    len(s.subs),
	}
}

func (s *Service) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

func (s *Service) handleStatus(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(s.snapshotStatus())
}

func (s *Service) handleEvents(w http.ResponseWriter, _ *http.Request) {
	s.mu.RLock()
	events := make([]Event, len(s.events))
	copy(events, s.events)
	s.mu.RUnlock()

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(events)
}

func (s *Service) handleStream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	ch := make(chan Event, 16)
	id := s.addSubscriber(ch)
	defer s.removeSubscriber(id)

	// Send current snapshot immediately.
	current := Event{
		Type:      "metrics",
		Timestamp: s.now(),
		Snapshot:  s.snapshotStatus().Summary,
	}
	writeSSE(w, current)
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case ev := <-ch:
			writeSSE(w, ev)
			flusher.Flush()
		}
	}
}

func writeSSE(w http.ResponseWriter, ev Event) {
	data, err := json.Marshal(ev)
	if err != nil {
		return
	}
	_, _ = fmt.Fprintf(w, "event: %s\n", ev.Type)
	_, _ = fmt.Fprintf(w, "data: %s\n\n", data)
}

func (s *Service) addSubscriber(ch chan Event) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextSubID++
	id := s.nextSubID
	s.subs[id] = ch
	return id
}

func (s *Service) removeSubscriber(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.subs, id)
}
