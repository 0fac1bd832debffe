// Package status holds lock-free gameplay counters shared between the tick goroutine and observers
package status

import (
	"fmt"
	"sort"
	"sync"
)

// Metric names written by the game and its systems
const (
	SpawnTotal      = "spawn.total"
	HitGood         = "hit.good"
	HitBad          = "hit.bad"
	HitMiss         = "hit.miss"
	ObjectsCulled   = "objects.culled"
	InputDropped    = "input.dropped"
	ParticlesActive = "particles.active"
	TickSeconds     = "tick.seconds"
)

// Registry maps metric names to counters and gauges
// Systems cache the metric pointers at construction, registration is the only locked path
type Registry struct {
	mu      sync.RWMutex
	metrics map[string]metric
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{metrics: make(map[string]metric)}
}

// Counter returns the counter named key, creating it on first use
// A nil registry yields a detached counter
func (r *Registry) Counter(key string) *Counter {
	if r == nil {
		return new(Counter)
	}
	return lookup(r, key, func() *Counter { return new(Counter) })
}

// Gauge returns the gauge named key, creating it on first use
// A nil registry yields a detached gauge
func (r *Registry) Gauge(key string) *Gauge {
	if r == nil {
		return new(Gauge)
	}
	return lookup(r, key, func() *Gauge { return new(Gauge) })
}

// lookup panics when key is already registered with another metric type
func lookup[M metric](r *Registry, key string, create func() M) M {
	r.mu.RLock()
	m, ok := r.metrics[key]
	r.mu.RUnlock()
	if !ok {
		r.mu.Lock()
		if m, ok = r.metrics[key]; !ok {
			m = create()
			r.metrics[key] = m
		}
		r.mu.Unlock()
	}
	typed, ok := m.(M)
	if !ok {
		panic(fmt.Sprintf("status: metric %s registered as %T", key, m))
	}
	return typed
}

// ResetSession zeroes per-session counts and gauges, lifetime totals are kept
func (r *Registry) ResetSession() {
	if r == nil {
		return
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, m := range r.metrics {
		m.resetSession()
	}
}

// Len returns the number of registered metrics
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.metrics)
}

// Snapshot formats every metric sorted by name
// Counters read "name session total", gauges read "name value"
func (r *Registry) Snapshot() []string {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]string, 0, len(r.metrics))
	for k := range r.metrics {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, k+" "+r.metrics[k].format())
	}
	return out
}
