package engine

import (
	"time"

	"github.com/lixenwraith/geometry-fighter/component"
	"github.com/lixenwraith/geometry-fighter/core"
	"github.com/lixenwraith/geometry-fighter/vmath"
)

// Transform is the live pose of a body as reported by physics
type Transform struct {
	Position vmath.Vec3F
	Axis     vmath.Vec3F
	Angle    float64
}

// Physics integrates bodies and accepts impulses
type Physics interface {
	// AddBody places a dynamic body for e at position
	AddBody(e core.Entity, position vmath.Vec3F)

	// ApplyImpulse applies force as an instantaneous impulse at offset from the body center
	ApplyImpulse(e core.Entity, force, at vmath.Vec3F)

	// Transform reports the current pose, false if e has no body
	Transform(e core.Entity) (Transform, bool)

	// Step advances all dynamic bodies by dt
	Step(dt time.Duration)
}

// HitTester resolves a screen coordinate to the front-most game object under it
type HitTester interface {
	HitTest(x, y int) (core.Entity, bool)
}

// Effects instantiates particle effects
type Effects interface {
	// Trail attaches a continuous trail emitter to e
	Trail(e core.Entity, color core.RGB, kind component.ShapeKind)

	// Explode spawns a one-shot burst shaped like shape at t
	Explode(shape component.ShapeComponent, t Transform)
}

// Display presents the HUD, called once per tick
type Display interface {
	UpdateHUD(h HUD)
}

// Cue names a sound effect
type Cue uint8

const (
	CueLaunch Cue = iota
	CuePop
	CueBuzz
	CueGameOver
)

// Sound plays cues, implementations must not block the tick
type Sound interface {
	Play(cue Cue)
}

// NoSound discards all cues
type NoSound struct{}

func (NoSound) Play(Cue) {}

// DisplayFunc adapts a function to Display
type DisplayFunc func(HUD)

func (f DisplayFunc) UpdateHUD(h HUD) { f(h) }
