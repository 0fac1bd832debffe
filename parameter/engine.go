package parameter

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the tick/render interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxTickDelta caps simulation delta after stalls (debugger, suspended terminal)
	MaxTickDelta = 100 * time.Millisecond
)

// ECS & Resources Limits
const (
	// EventQueueSize is the fixed capacity of the input event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = 255
)

// System priorities, lower runs first
const (
	PriorityInteraction = 10
	PrioritySpawn       = 20
	PriorityMotion      = 30
	PriorityEffect      = 40
	PriorityCleanup     = 50
	PriorityHUD         = 60
)
