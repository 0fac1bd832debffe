package parameter

import "time"

// Spawn Schedule
const (
	// SpawnIntervalMin is the shortest delay between two spawns
	SpawnIntervalMin = 200 * time.Millisecond

	// SpawnIntervalMax is the longest delay between two spawns
	SpawnIntervalMax = 1500 * time.Millisecond
)

// Launch Impulse
const (
	// ImpulseLateralMax bounds the lateral component to [-max, max)
	ImpulseLateralMax = 2.0

	// ImpulseUpMin and ImpulseUpMax bound the upward component
	ImpulseUpMin = 10.0
	ImpulseUpMax = 18.0

	// ImpulseOffset is the application point offset on each axis, off-center to induce spin
	ImpulseOffset = 0.05
)

// Play Area
const (
	// CleanupFloorY removes objects whose vertical position falls below it
	CleanupFloorY = -2.0

	// Gravity is the vertical acceleration in world units per second squared
	Gravity = -9.8
)

// Session
const (
	// InitialLives is the lives counter at session start
	InitialLives = 3
)

// Shape Geometry
const (
	// ShapeSize is the base dimension all shape kinds derive from
	ShapeSize = 0.6
)
