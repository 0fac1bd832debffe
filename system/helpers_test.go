package system

import (
	"math/rand/v2"
	"time"

	"github.com/lixenwraith/geometry-fighter/component"
	"github.com/lixenwraith/geometry-fighter/core"
	"github.com/lixenwraith/geometry-fighter/engine"
	"github.com/lixenwraith/geometry-fighter/parameter"
	"github.com/lixenwraith/geometry-fighter/physics"
	"github.com/lixenwraith/geometry-fighter/vmath"
)

// fixture wires a world with real physics and effects and recording sound
type fixture struct {
	world   *engine.World
	session *engine.Session
	physics *physics.Integrator
	effects *EffectSystem
	sound   *recordingSound
	hits    *fakeHits
	rng     *rand.Rand
}

func newFixture() *fixture {
	w := engine.NewWorld()
	p := physics.NewIntegrator(w, parameter.Gravity)
	rng := rand.New(rand.NewPCG(1, 2))
	return &fixture{
		world:   w,
		session: engine.NewSession(parameter.InitialLives, true, time.Unix(0, 0)),
		physics: p,
		effects: NewEffectSystem(w, p, rng),
		sound:   &recordingSound{},
		hits:    &fakeHits{at: make(map[[2]int]core.Entity)},
		rng:     rng,
	}
}

func (f *fixture) services() Services {
	return Services{Physics: f.physics, Effects: f.effects, Sound: f.sound}
}

// place creates an object of the given color resting at height y
func (f *fixture) place(color core.RGB, y float64) core.Entity {
	e := f.world.CreateEntity()
	f.world.Shapes.Set(e, component.ShapeComponent{Kind: component.ShapeSphere, Color: color})
	f.world.Outcomes.Set(e, component.OutcomeComponent{Outcome: component.OutcomeFor(color, core.RGBRed)})
	f.physics.AddBody(e, vmath.Vec3F{Y: y})
	f.effects.Trail(e, color, component.ShapeSphere)
	return e
}

type recordingSound struct {
	cues []engine.Cue
}

func (r *recordingSound) Play(c engine.Cue) { r.cues = append(r.cues, c) }

func (r *recordingSound) count(c engine.Cue) int {
	n := 0
	for _, cue := range r.cues {
		if cue == c {
			n++
		}
	}
	return n
}

type fakeHits struct {
	at map[[2]int]core.Entity
}

func (h *fakeHits) HitTest(x, y int) (core.Entity, bool) {
	e, ok := h.at[[2]int{x, y}]
	return e, ok
}
