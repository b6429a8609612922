// Package sim provides the simulated live-data sources: metric jitter for
// alert demos and rotating insight text. Randomness and time are injected
// so tests run deterministically.
package sim

import (
	"math/rand"
	"time"
)

// Rand is the subset of math/rand the simulators use.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// Jitterer perturbs metric values around their current levels.
type Jitterer struct {
	rng       Rand
	amplitude float64 // max relative swing per tick, e.g. 0.05 = ±5%
}

// NewJitterer returns a jitterer with the given relative amplitude.
// A nil rng falls back to a time-seeded source.
func NewJitterer(rng Rand, amplitude float64) *Jitterer {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if amplitude <= 0 {
		amplitude = 0.05
	}
	return &Jitterer{rng: rng, amplitude: amplitude}
}

// Apply returns the value shifted by a uniform random factor within
// ±amplitude. Zero stays zero so dead metrics don't spring to life.
func (j *Jitterer) Apply(value float64) float64 {
	if value == 0 {
		return 0
	}
	swing := (j.rng.Float64()*2 - 1) * j.amplitude
	return value * (1 + swing)
}

// ApplyAll jitters every metric in the snapshot, returning a new map.
func (j *Jitterer) ApplyAll(metrics map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(metrics))
	for k, v := range metrics {
		out[k] = j.Apply(v)
	}
	return out
}

// defaultInsights is the canned rotation; there is no model behind these.
var defaultInsights = []string{
	"Cutting discretionary spend by 10% extends runway by roughly one month.",
	"Headcount is the largest burn driver; stagger start months to smooth it.",
	"A 5% price increase typically outpaces the same cut in spend.",
	"Review recurring outflows quarterly; small subscriptions compound.",
	"Keep at least 6 months of runway before committing to new hires.",
	"Compare scenarios before locking a budget; the base case is rarely the plan.",
}

// InsightRotator cycles through insight strings in random order without
// immediate repeats.
type InsightRotator struct {
	rng      Rand
	insights []string
	last     int
}

// NewInsightRotator returns a rotator over the default insight set.
// A nil rng falls back to a time-seeded source.
func NewInsightRotator(rng Rand) *InsightRotator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &InsightRotator{rng: rng, insights: defaultInsights, last: -1}
}

// Next returns the next insight, never the same one twice in a row.
func (r *InsightRotator) Next() string {
	if len(r.insights) == 0 {
		return ""
	}
	if len(r.insights) == 1 {
		return r.insights[0]
	}
	idx := r.rng.Intn(len(r.insights))
	if idx == r.last {
		idx = (idx + 1) % len(r.insights)
	}
	r.last = idx
	return r.insights[idx]
}
