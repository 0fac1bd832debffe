package engine

import (
	"time"

	"github.com/google/uuid"
)

// HUD is an immutable snapshot of session state for displays
type HUD struct {
	SessionID string
	Score     int
	Lives     int
	Best      int
	Objects   int
	Frame     uint64
	Over      bool
	Paused    bool
}

// SessionResult is a finished session as recorded by the score store
type SessionResult struct {
	ID        string
	Score     int
	Lives     int
	StartedAt time.Time
	EndedAt   time.Time
}

// Session holds the mutable score and lives of one play session
// Mutated only by interaction resolution and lifecycle calls on the tick goroutine
type Session struct {
	ID        string
	Score     int
	Lives     int
	Best      int
	Over      bool
	StartedAt time.Time

	initialLives int
	gameOver     bool
}

// NewSession creates a session starting with lives
// When gameOver is set, the session ends as lives reach zero
func NewSession(lives int, gameOver bool, now time.Time) *Session {
	s := &Session{
		initialLives: lives,
		gameOver:     gameOver,
	}
	s.Reset(now)
	return s
}

// Reward adds one point and tracks the best score
func (s *Session) Reward() {
	s.Score++
	if s.Score > s.Best {
		s.Best = s.Score
	}
}

// Penalize removes one life, returns true if this ended the session
func (s *Session) Penalize() bool {
	s.Lives--
	if s.gameOver && !s.Over && s.Lives <= 0 {
		s.Over = true
		return true
	}
	return false
}

// Result snapshots the session for recording
func (s *Session) Result(now time.Time) SessionResult {
	return SessionResult{
		ID:        s.ID,
		Score:     s.Score,
		Lives:     s.Lives,
		StartedAt: s.StartedAt,
		EndedAt:   now,
	}
}

// Reset starts a new session, keeping the best score
func (s *Session) Reset(now time.Time) {
	s.ID = uuid.NewString()
	s.Score = 0
	s.Lives = s.initialLives
	s.Over = false
	s.StartedAt = now
}
