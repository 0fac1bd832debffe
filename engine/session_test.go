package engine

import (
	"testing"
	"time"
)

func TestSessionRewardTracksBest(t *testing.T) {
	s := NewSession(3, true, time.Unix(0, 0))
	s.Reward()
	s.Reward()
	if s.Score != 2 || s.Best != 2 {
		t.Fatalf("expected score 2 best 2, got %d/%d", s.Score, s.Best)
	}

	firstID := s.ID
	s.Reset(time.Unix(10, 0))
	if s.Score != 0 || s.Lives != 3 || s.Best != 2 {
		t.Errorf("reset should keep best only, got score=%d lives=%d best=%d", s.Score, s.Lives, s.Best)
	}
	if s.ID == firstID || s.ID == "" {
		t.Errorf("reset should allocate a new session id")
	}
}

func TestSessionPenalizeGameOver(t *testing.T) {
	s := NewSession(2, true, time.Unix(0, 0))
	if s.Penalize() {
		t.Fatal("first penalty should not end the session")
	}
	if !s.Penalize() {
		t.Fatal("second penalty should end the session")
	}
	if !s.Over || s.Lives != 0 {
		t.Errorf("expected over with 0 lives, got over=%v lives=%d", s.Over, s.Lives)
	}
	if s.Penalize() {
		t.Error("an ended session should not report ending again")
	}
}

func TestSessionNegativeLivesWithoutGameOver(t *testing.T) {
	s := NewSession(1, false, time.Unix(0, 0))
	s.Penalize()
	s.Penalize()
	if s.Over {
		t.Error("session should continue when game over is disabled")
	}
	if s.Lives != -1 {
		t.Errorf("expected -1 lives, got %d", s.Lives)
	}
}

func TestSessionResult(t *testing.T) {
	start := time.Unix(100, 0)
	s := NewSession(3, true, start)
	s.Reward()
	res := s.Result(start.Add(time.Minute))
	if res.ID != s.ID || res.Score != 1 || res.Lives != 3 {
		t.Errorf("unexpected result %+v", res)
	}
	if res.EndedAt.Sub(res.StartedAt) != time.Minute {
		t.Errorf("expected one minute session, got %v", res.EndedAt.Sub(res.StartedAt))
	}
}
