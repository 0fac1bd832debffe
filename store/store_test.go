package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/lixenwraith/geometry-fighter/engine"
)

func result(id string, score int, end time.Time) engine.SessionResult {
	return engine.SessionResult{
		ID:        id,
		Score:     score,
		Lives:     0,
		StartedAt: end.Add(-time.Minute),
		EndedAt:   end,
	}
}

func TestScoresRoundTrip(t *testing.T) {
	ctx := context.Background()
	s, err := Open(ctx, filepath.Join(t.TempDir(), "nested", "scores.db"))
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	defer s.Close()

	if best, err := s.Best(ctx); err != nil || best != 0 {
		t.Fatalf("empty store: best=%d err=%v", best, err)
	}

	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	for i, r := range []engine.SessionResult{
		result("a", 3, base),
		result("b", 9, base.Add(time.Hour)),
		result("c", 9, base.Add(2*time.Hour)),
		result("d", 1, base.Add(3*time.Hour)),
	} {
		if err := s.Record(ctx, r); err != nil {
			t.Fatalf("record %d: %v", i, err)
		}
	}

	best, err := s.Best(ctx)
	if err != nil || best != 9 {
		t.Errorf("expected best 9, got %d (err=%v)", best, err)
	}

	top, err := s.Top(ctx, 3)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"b", "c", "a"}
	if len(top) != len(want) {
		t.Fatalf("expected %d results, got %d", len(want), len(top))
	}
	for i, id := range want {
		if top[i].ID != id {
			t.Errorf("rank %d: expected %s, got %s", i, id, top[i].ID)
		}
	}
	if !top[0].EndedAt.Equal(base.Add(time.Hour)) {
		t.Errorf("timestamps should round-trip, got %v", top[0].EndedAt)
	}
}

func TestScoresRecordReplaces(t *testing.T) {
	ctx := context.Background()
	s, err := Open(ctx, filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	now := time.Now()
	s.Record(ctx, result("x", 1, now))
	s.Record(ctx, result("x", 5, now))

	top, _ := s.Top(ctx, 10)
	if len(top) != 1 || top[0].Score != 5 {
		t.Errorf("expected single replaced row with score 5, got %+v", top)
	}
}

func TestServiceFlushesOnStop(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.db")
	svc := NewService(path)
	if err := svc.Init(); err != nil {
		t.Fatal(err)
	}
	if err := svc.Start(context.Background()); err != nil {
		t.Fatal(err)
	}

	svc.Submit(result("s1", 4, time.Now()))
	svc.Submit(result("s2", 6, time.Now()))
	if err := svc.Stop(); err != nil {
		t.Fatal(err)
	}
	if err := svc.Stop(); err != nil {
		t.Errorf("second stop: %v", err)
	}
	svc.Submit(result("late", 100, time.Now())) // dropped, must not panic

	again := NewService(path)
	if err := again.Init(); err != nil {
		t.Fatal(err)
	}
	defer again.Stop()
	if again.BestScore() != 6 {
		t.Errorf("expected best 6 after reopen, got %d", again.BestScore())
	}
}
