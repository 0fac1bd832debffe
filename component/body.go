package component

import "github.com/lixenwraith/geometry-fighter/vmath"

// BodyComponent is the physics state of an entity
// Owned by the physics integrator, read by cleanup, hit-test and effects
type BodyComponent struct {
	Position vmath.Vec3F
	Velocity vmath.Vec3F

	// Orientation as angle around Axis, spin as AngularVelocity (rad/s) around the same axis
	Axis            vmath.Vec3F
	Angle           float64
	AngularVelocity float64

	// Static bodies are not integrated
	Static bool
}
