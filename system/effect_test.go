package system

import (
	"testing"
	"time"

	"github.com/lixenwraith/geometry-fighter/component"
	"github.com/lixenwraith/geometry-fighter/core"
	"github.com/lixenwraith/geometry-fighter/engine"
	"github.com/lixenwraith/geometry-fighter/parameter"
	"github.com/lixenwraith/geometry-fighter/vmath"
)

func TestTrailEmitsAndExpires(t *testing.T) {
	f := newFixture()
	f.place(core.RGBBlue, 1)

	f.effects.Update(engine.Tick{Delta: 100 * time.Millisecond})
	want := int(100 * time.Millisecond / parameter.TrailEmitInterval)
	if got := f.world.Particles.Count(); got != want {
		t.Fatalf("expected %d trail particles, got %d", want, got)
	}
	for _, e := range f.world.Particles.All() {
		p, _ := f.world.Particles.Get(e)
		if p.Kind != component.ParticleTrail || p.Color != core.RGBBlue {
			t.Errorf("unexpected particle %+v", p)
		}
	}

	// remove the owner so no new particles are emitted, then age everything out
	for _, e := range f.world.Objects() {
		f.world.DestroyEntity(e)
	}
	for i := 0; i < 10; i++ {
		f.effects.Update(engine.Tick{Delta: 50 * time.Millisecond})
	}
	if f.world.Particles.Count() != 0 {
		t.Errorf("expected all trail particles to expire, %d left", f.world.Particles.Count())
	}
	if f.world.ObjectCount() != 0 {
		t.Error("particles must not count as game objects")
	}
}

func TestExplosionBurst(t *testing.T) {
	f := newFixture()
	shape := component.ShapeComponent{Kind: component.ShapeBox, Color: core.RGBYellow}
	center := vmath.Vec3F{X: 1, Y: 2, Z: 0}
	f.effects.Explode(shape, engine.Transform{Position: center})

	if f.world.Particles.Count() != parameter.ExplosionParticleCount {
		t.Fatalf("expected %d particles, got %d", parameter.ExplosionParticleCount, f.world.Particles.Count())
	}
	r := shape.BoundingRadius()
	for _, e := range f.world.Particles.All() {
		p, _ := f.world.Particles.Get(e)
		d := vmath.V3FMag(vmath.V3FSub(p.Position, center))
		if d < r-1e-9 || d > r+1e-9 {
			t.Errorf("particle at distance %f, expected %f", d, r)
		}
		if p.Kind != component.ParticleSpark || p.Color != core.RGBYellow {
			t.Errorf("unexpected particle %+v", p)
		}
	}
}

func TestEffectsFrozenWhilePaused(t *testing.T) {
	f := newFixture()
	f.place(core.RGBBlue, 1)
	f.effects.Update(engine.Tick{Delta: 0, Paused: true})
	if f.world.Particles.Count() != 0 {
		t.Error("zero delta tick should not emit")
	}
}

func TestParticleCap(t *testing.T) {
	f := newFixture()
	shape := component.ShapeComponent{Kind: component.ShapeSphere, Color: core.RGBWhite}
	for i := 0; i < parameter.MaxParticles; i++ {
		f.effects.Explode(shape, engine.Transform{})
	}
	if f.world.Particles.Count() > parameter.MaxParticles {
		t.Errorf("particle count %d exceeds cap", f.world.Particles.Count())
	}
}
