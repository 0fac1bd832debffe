package engine

import (
	"time"

	"github.com/lixenwraith/geometry-fighter/event"
)

// Tick is the per-frame context handed to every system
type Tick struct {
	// Now is the simulation time, Delta the time since the previous tick
	Now   time.Duration
	Delta time.Duration
	Frame uint64

	Paused bool

	// Touches are this tick's touch events in arrival order
	Touches []event.GameEvent
}

// System is an interface that all systems must implement
type System interface {
	Update(t Tick)
	Priority() int // Lower values run first
}

// Resetter is implemented by systems holding per-session state
type Resetter interface {
	Reset()
}
