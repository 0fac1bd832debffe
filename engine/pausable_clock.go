package engine

import (
	"sync"
	"time"
)

// PausableClock provides simulation time as elapsed duration, frozen while paused
type PausableClock struct {
	mu sync.Mutex

	provider  TimeProvider
	startTime time.Time

	paused          bool
	pauseStartTime  time.Time
	totalPausedTime time.Duration
}

// NewPausableClock creates a clock starting at zero elapsed game time
func NewPausableClock(provider TimeProvider) *PausableClock {
	return &PausableClock{
		provider:  provider,
		startTime: provider.Now(),
	}
}

// Now returns elapsed game time: real elapsed minus total paused time
func (pc *PausableClock) Now() time.Duration {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if pc.paused {
		return pc.pauseStartTime.Sub(pc.startTime) - pc.totalPausedTime
	}
	return pc.provider.Now().Sub(pc.startTime) - pc.totalPausedTime
}

// WallTime returns the provider's wall-clock time, unaffected by pause
func (pc *PausableClock) WallTime() time.Time {
	return pc.provider.Now()
}

// Pause stops game time advancement, no-op if already paused
func (pc *PausableClock) Pause() {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if pc.paused {
		return
	}
	pc.paused = true
	pc.pauseStartTime = pc.provider.Now()
}

// Resume continues game time advancement, no-op if not paused
func (pc *PausableClock) Resume() {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if !pc.paused {
		return
	}
	pc.totalPausedTime += pc.provider.Now().Sub(pc.pauseStartTime)
	pc.pauseStartTime = time.Time{}
	pc.paused = false
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	return pc.paused
}
