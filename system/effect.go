package system

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/lixenwraith/geometry-fighter/component"
	"github.com/lixenwraith/geometry-fighter/core"
	"github.com/lixenwraith/geometry-fighter/engine"
	"github.com/lixenwraith/geometry-fighter/parameter"
	"github.com/lixenwraith/geometry-fighter/status"
	"github.com/lixenwraith/geometry-fighter/vmath"
)

// EffectSystem owns trail emitters and particles, implementing engine.Effects
type EffectSystem struct {
	world   *engine.World
	physics engine.Physics
	rng     *rand.Rand
	active  *status.Gauge
}

// NewEffectSystem creates the particle effect system
func NewEffectSystem(world *engine.World, physics engine.Physics, rng *rand.Rand) *EffectSystem {
	return &EffectSystem{
		world:   world,
		physics: physics,
		rng:     rng,
		active:  new(status.Gauge),
	}
}

// SetStats routes the live particle gauge to r
func (s *EffectSystem) SetStats(r *status.Registry) {
	s.active = r.Gauge(status.ParticlesActive)
}

// Priority returns the system's priority
func (s *EffectSystem) Priority() int {
	return parameter.PriorityEffect
}

// Trail attaches an emitter to e, it is destroyed with e
func (s *EffectSystem) Trail(e core.Entity, color core.RGB, kind component.ShapeKind) {
	s.world.Emitters.Set(e, component.EmitterComponent{Color: color, Kind: kind})
}

// Explode spawns a burst on the shape's bounding sphere, moving outward
func (s *EffectSystem) Explode(shape component.ShapeComponent, t engine.Transform) {
	radius := shape.BoundingRadius()
	for i := 0; i < parameter.ExplosionParticleCount; i++ {
		if s.world.Particles.Count() >= parameter.MaxParticles {
			return
		}
		dir := vmath.RandUnitVector(s.rng)
		speed := vmath.RandRange(s.rng, parameter.ExplosionSpeedMin, parameter.ExplosionSpeedMax)
		s.spawnParticle(component.ParticleComponent{
			Kind:     component.ParticleSpark,
			Position: vmath.V3FAdd(t.Position, vmath.V3FScale(dir, radius)),
			Velocity: vmath.V3FScale(dir, speed),
			Color:    shape.Color,
			Lifetime: parameter.ExplosionLifetime,
		})
	}
}

// Update emits trail particles and ages existing ones
func (s *EffectSystem) Update(t engine.Tick) {
	if t.Delta <= 0 {
		return
	}
	s.emit(t.Delta)
	s.age(t.Delta)
	s.active.Set(float64(s.world.Particles.Count()))
}

func (s *EffectSystem) emit(dt time.Duration) {
	for _, e := range s.world.Emitters.All() {
		tr, ok := s.physics.Transform(e)
		if !ok {
			continue
		}
		em, _ := s.world.Emitters.Get(e)
		em.Accumulator += dt
		for em.Accumulator >= parameter.TrailEmitInterval {
			em.Accumulator -= parameter.TrailEmitInterval
			if s.world.Particles.Count() >= parameter.MaxParticles {
				continue
			}
			s.spawnParticle(component.ParticleComponent{
				Kind:     component.ParticleTrail,
				Position: tr.Position,
				Velocity: vmath.V3FScale(vmath.RandUnitVector(s.rng), parameter.TrailJitter),
				Color:    em.Color,
				Lifetime: parameter.TrailLifetime,
			})
		}
		s.world.Emitters.Set(e, em)
	}
}

func (s *EffectSystem) age(dt time.Duration) {
	sec := dt.Seconds()
	drag := math.Pow(parameter.ParticleDrag, sec)

	var expired []core.Entity
	for _, e := range s.world.Particles.All() {
		s.world.Particles.Update(e, func(p *component.ParticleComponent) {
			p.Age += dt
			p.Velocity = vmath.V3FScale(p.Velocity, drag)
			p.Position = vmath.V3FAdd(p.Position, vmath.V3FScale(p.Velocity, sec))
			if p.Expired() {
				expired = append(expired, e)
			}
		})
	}
	s.world.DestroyBatch(expired)
}

func (s *EffectSystem) spawnParticle(p component.ParticleComponent) {
	e := s.world.CreateEntity()
	s.world.Particles.Set(e, p)
}
