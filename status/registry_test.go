package status

import (
	"sync"
	"testing"
)

func TestCounterCachedPointer(t *testing.T) {
	r := NewRegistry()
	a := r.Counter(HitGood)
	b := r.Counter(HitGood)
	if a != b {
		t.Fatal("expected the same pointer for repeated lookups")
	}
	a.Add(3)
	if b.Session() != 3 || b.Total() != 3 {
		t.Errorf("expected 3/3, got %d/%d", b.Session(), b.Total())
	}
	if r.Len() != 1 {
		t.Errorf("expected 1 metric, got %d", r.Len())
	}
}

func TestNilRegistryIsDetached(t *testing.T) {
	var r *Registry
	r.Counter(SpawnTotal).Inc()
	r.Gauge(TickSeconds).Set(1.5)
	r.ResetSession()
	if r.Counter(SpawnTotal).Total() != 0 || r.Snapshot() != nil {
		t.Error("nil registry metrics must not be shared")
	}
}

func TestResetSessionKeepsTotals(t *testing.T) {
	r := NewRegistry()
	hits := r.Counter(HitBad)
	particles := r.Gauge(ParticlesActive)
	hits.Add(2)
	particles.Set(40)

	r.ResetSession()
	hits.Inc()

	if hits.Session() != 1 || hits.Total() != 3 {
		t.Errorf("expected session 1 total 3, got %d/%d", hits.Session(), hits.Total())
	}
	if particles.Get() != 0 {
		t.Errorf("expected gauge zeroed by reset, got %v", particles.Get())
	}
}

func TestSnapshotSorted(t *testing.T) {
	r := NewRegistry()
	r.Counter(SpawnTotal).Add(4)
	r.Counter(HitBad).Inc()
	r.Gauge(TickSeconds).Set(0.25)
	r.ResetSession()
	r.Counter(SpawnTotal).Inc()

	got := r.Snapshot()
	want := []string{"hit.bad 0 1", "spawn.total 1 5", "tick.seconds 0"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestMetricTypeMismatchPanics(t *testing.T) {
	r := NewRegistry()
	r.Counter(TickSeconds)
	defer func() {
		if recover() == nil {
			t.Error("expected panic for a gauge lookup on a counter")
		}
	}()
	r.Gauge(TickSeconds)
}

func TestCounterConcurrentAdd(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c := r.Counter(HitMiss)
			for j := 0; j < 100; j++ {
				c.Inc()
			}
		}()
	}
	wg.Wait()
	if got := r.Counter(HitMiss).Total(); got != 800 {
		t.Errorf("expected 800, got %d", got)
	}
}
