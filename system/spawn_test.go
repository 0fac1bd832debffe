package system

import (
	"testing"
	"time"

	"github.com/lixenwraith/geometry-fighter/component"
	"github.com/lixenwraith/geometry-fighter/core"
	"github.com/lixenwraith/geometry-fighter/engine"
	"github.com/lixenwraith/geometry-fighter/parameter"
)

func TestSpawnOnePerDueTick(t *testing.T) {
	f := newFixture()
	s := NewSpawnSystem(f.world, f.session, f.services(), f.rng, DefaultSpawnConfig())

	now := time.Duration(0)
	for i := 0; i < 500; i++ {
		now += parameter.FrameUpdateInterval
		before := f.world.ObjectCount()
		prevNext := s.NextSpawn()
		due := now > prevNext

		s.Update(engine.Tick{Now: now})

		added := f.world.ObjectCount() - before
		if due {
			if added != 1 {
				t.Fatalf("tick %d: expected exactly one spawn, got %d", i, added)
			}
			if s.NextSpawn() <= prevNext {
				t.Fatalf("tick %d: next spawn did not increase (%v -> %v)", i, prevNext, s.NextSpawn())
			}
			gap := s.NextSpawn() - now
			if gap < parameter.SpawnIntervalMin || gap >= parameter.SpawnIntervalMax {
				t.Fatalf("tick %d: interval %v out of range", i, gap)
			}
		} else if added != 0 {
			t.Fatalf("tick %d: unexpected spawn before schedule", i)
		}
	}
}

func TestSpawnedObjectShape(t *testing.T) {
	f := newFixture()
	s := NewSpawnSystem(f.world, f.session, f.services(), f.rng, DefaultSpawnConfig())

	for i := 0; i < 200; i++ {
		e := s.Spawn(time.Duration(i) * time.Second)

		shape, ok := f.world.Shapes.Get(e)
		if !ok || shape.Kind >= component.ShapeKindCount {
			t.Fatalf("spawn %d: invalid shape %+v", i, shape)
		}
		oc, _ := f.world.Outcomes.Get(e)
		if want := component.OutcomeFor(shape.Color, core.RGBRed); oc.Outcome != want {
			t.Fatalf("spawn %d: outcome %s for color %v", i, oc.Outcome, shape.Color)
		}
		body, ok := f.world.Bodies.Get(e)
		if !ok {
			t.Fatalf("spawn %d: no body", i)
		}
		if body.Position.Y != 0 || body.Position.X != 0 {
			t.Fatalf("spawn %d: expected spawn at origin, got %v", i, body.Position)
		}
		v := body.Velocity
		if v.X < -parameter.ImpulseLateralMax || v.X >= parameter.ImpulseLateralMax ||
			v.Y < parameter.ImpulseUpMin || v.Y >= parameter.ImpulseUpMax || v.Z != 0 {
			t.Fatalf("spawn %d: impulse %v out of range", i, v)
		}
		if body.AngularVelocity == 0 {
			t.Fatalf("spawn %d: off-center impulse should induce spin", i)
		}
		if !f.world.Emitters.Has(e) {
			t.Fatalf("spawn %d: missing trail emitter", i)
		}
	}
	if f.sound.count(engine.CueLaunch) != 200 {
		t.Errorf("expected a launch cue per spawn, got %d", f.sound.count(engine.CueLaunch))
	}
}

func TestSpawnDeterministicWithSeed(t *testing.T) {
	kinds := func() []component.ShapeKind {
		f := newFixture()
		s := NewSpawnSystem(f.world, f.session, f.services(), f.rng, DefaultSpawnConfig())
		var out []component.ShapeKind
		for i := 0; i < 20; i++ {
			shape, _ := f.world.Shapes.Get(s.Spawn(time.Duration(i)))
			out = append(out, shape.Kind)
		}
		return out
	}
	a, b := kinds(), kinds()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed produced different kinds at %d: %v vs %v", i, a, b)
		}
	}
}

func TestSpawnStopsWhenOverOrPaused(t *testing.T) {
	f := newFixture()
	s := NewSpawnSystem(f.world, f.session, f.services(), f.rng, DefaultSpawnConfig())

	s.Update(engine.Tick{Now: time.Second, Paused: true})
	if f.world.ObjectCount() != 0 {
		t.Error("paused tick should not spawn")
	}

	f.session.Over = true
	s.Update(engine.Tick{Now: 2 * time.Second})
	if f.world.ObjectCount() != 0 {
		t.Error("no spawns after the session is over")
	}
}

func TestSpawnResetRewindsSchedule(t *testing.T) {
	f := newFixture()
	s := NewSpawnSystem(f.world, f.session, f.services(), f.rng, DefaultSpawnConfig())
	s.Spawn(time.Minute)
	s.Reset()
	if s.NextSpawn() != 0 {
		t.Errorf("expected schedule at 0 after reset, got %v", s.NextSpawn())
	}
}

func TestSpawnFirstTickSpawnsImmediately(t *testing.T) {
	f := newFixture()
	s := NewSpawnSystem(f.world, f.session, f.services(), f.rng, DefaultSpawnConfig())

	s.Update(engine.Tick{Now: 0, Paused: true})
	if f.world.ObjectCount() != 0 {
		t.Fatal("a paused first tick should not spawn")
	}
	s.Update(engine.Tick{Now: 0})
	if f.world.ObjectCount() != 1 {
		t.Fatalf("expected a spawn on the first tick, got %d objects", f.world.ObjectCount())
	}
	s.Update(engine.Tick{Now: 0})
	if f.world.ObjectCount() != 1 {
		t.Error("second tick at the same time should wait for the schedule")
	}

	s.Reset()
	s.Update(engine.Tick{Now: 0})
	if f.world.ObjectCount() != 2 {
		t.Error("reset should spawn again on the next tick")
	}
}

func TestSpawnFixedInterval(t *testing.T) {
	f := newFixture()
	cfg := DefaultSpawnConfig()
	cfg.IntervalMin = 500 * time.Millisecond
	cfg.IntervalMax = 500 * time.Millisecond
	s := NewSpawnSystem(f.world, f.session, f.services(), f.rng, cfg)

	s.Spawn(time.Second)
	if s.NextSpawn() != 1500*time.Millisecond {
		t.Errorf("expected fixed interval, got next=%v", s.NextSpawn())
	}
}
