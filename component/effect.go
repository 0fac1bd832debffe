package component

import (
	"time"

	"github.com/lixenwraith/geometry-fighter/core"
	"github.com/lixenwraith/geometry-fighter/vmath"
)

// ParticleKind selects particle rendering
type ParticleKind uint8

const (
	ParticleTrail ParticleKind = iota
	ParticleSpark
)

// EmitterComponent is a continuous trail emitter attached to a game object
// Destroyed together with its owner
type EmitterComponent struct {
	Color core.RGB
	Kind  ShapeKind

	// Accumulated time since last emission
	Accumulator time.Duration
}

// ParticleComponent is a short-lived visual point, never a game object
type ParticleComponent struct {
	Kind     ParticleKind
	Position vmath.Vec3F
	Velocity vmath.Vec3F
	Color    core.RGB

	Age      time.Duration
	Lifetime time.Duration
}

// Progress returns the normalized age in [0,1]
func (p ParticleComponent) Progress() float64 {
	if p.Lifetime <= 0 {
		return 1
	}
	t := float64(p.Age) / float64(p.Lifetime)
	if t > 1 {
		return 1
	}
	return t
}

// Expired reports whether the particle reached its lifetime
func (p ParticleComponent) Expired() bool {
	return p.Age >= p.Lifetime
}
