package physics

import (
	"time"

	"github.com/lixenwraith/geometry-fighter/component"
	"github.com/lixenwraith/geometry-fighter/core"
	"github.com/lixenwraith/geometry-fighter/engine"
	"github.com/lixenwraith/geometry-fighter/vmath"
)

// Inertia is the scalar moment of inertia of every body, mass is 1
const Inertia = 0.2

// Integrator is the rigid body simulation behind engine.Physics
// Bodies live in the world's BodyComponent store so they are released with their entity
type Integrator struct {
	bodies  *engine.Store[component.BodyComponent]
	gravity float64
}

// NewIntegrator creates an integrator over the world's bodies with vertical gravity
func NewIntegrator(world *engine.World, gravity float64) *Integrator {
	return &Integrator{
		bodies:  world.Bodies,
		gravity: gravity,
	}
}

// AddBody places a resting dynamic body at position
func (p *Integrator) AddBody(e core.Entity, position vmath.Vec3F) {
	p.bodies.Set(e, component.BodyComponent{
		Position: position,
		Axis:     vmath.Vec3F{Y: 1},
	})
}

// ApplyImpulse adds force to velocity and (at × force) / Inertia to spin
// Unknown entities are ignored
func (p *Integrator) ApplyImpulse(e core.Entity, force, at vmath.Vec3F) {
	p.bodies.Update(e, func(b *component.BodyComponent) {
		ApplyImpulse(b, force, at)
	})
}

// Transform reports the pose of e
func (p *Integrator) Transform(e core.Entity) (engine.Transform, bool) {
	b, ok := p.bodies.Get(e)
	if !ok {
		return engine.Transform{}, false
	}
	return engine.Transform{Position: b.Position, Axis: b.Axis, Angle: b.Angle}, true
}

// Step advances every dynamic body by dt
func (p *Integrator) Step(dt time.Duration) {
	if dt <= 0 {
		return
	}
	sec := dt.Seconds()
	for _, e := range p.bodies.All() {
		p.bodies.Update(e, func(b *component.BodyComponent) {
			Integrate(b, p.gravity, sec)
		})
	}
}

// Integrate performs semi-implicit Euler: v = v + g*dt; p = p + v*dt; angle = angle + w*dt
func Integrate(b *component.BodyComponent, gravity, dt float64) {
	if b.Static {
		return
	}
	b.Velocity.Y += gravity * dt
	b.Position = vmath.V3FAdd(b.Position, vmath.V3FScale(b.Velocity, dt))
	b.Angle += b.AngularVelocity * dt
}

// ApplyImpulse adds linear and angular momentum to a unit mass body
func ApplyImpulse(b *component.BodyComponent, force, at vmath.Vec3F) {
	b.Velocity = vmath.V3FAdd(b.Velocity, force)

	torque := vmath.V3FScale(vmath.V3FCross(at, force), 1/Inertia)
	spin := vmath.V3FAdd(vmath.V3FScale(b.Axis, b.AngularVelocity), torque)
	speed := vmath.V3FMag(spin)
	if speed == 0 {
		b.AngularVelocity = 0
		return
	}
	b.Axis = vmath.V3FScale(spin, 1/speed)
	b.AngularVelocity = speed
}
