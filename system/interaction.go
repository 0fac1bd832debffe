package system

import (
	"github.com/lixenwraith/geometry-fighter/component"
	"github.com/lixenwraith/geometry-fighter/core"
	"github.com/lixenwraith/geometry-fighter/engine"
	"github.com/lixenwraith/geometry-fighter/parameter"
	"github.com/lixenwraith/geometry-fighter/status"
)

// InteractionSystem resolves touches to objects and applies their outcome to the session
type InteractionSystem struct {
	world    *engine.World
	session  *engine.Session
	hits     engine.HitTester
	services Services

	good, bad, miss *status.Counter
}

// NewInteractionSystem creates an interaction system resolving touches through hits
func NewInteractionSystem(world *engine.World, session *engine.Session, hits engine.HitTester, services Services) *InteractionSystem {
	return &InteractionSystem{
		world:    world,
		session:  session,
		hits:     hits,
		services: services,
		good:     services.Stats.Counter(status.HitGood),
		bad:      services.Stats.Counter(status.HitBad),
		miss:     services.Stats.Counter(status.HitMiss),
	}
}

// Priority returns the system's priority
func (s *InteractionSystem) Priority() int {
	return parameter.PriorityInteraction
}

// Update handles the tick's touches in arrival order
func (s *InteractionSystem) Update(t engine.Tick) {
	if t.Paused {
		return
	}
	for _, ev := range t.Touches {
		s.Resolve(ev.X, ev.Y)
	}
}

// Resolve hit-tests a screen point and handles the object under it
// Returns false when nothing was touched or the session is over
func (s *InteractionSystem) Resolve(x, y int) bool {
	if s.session.Over {
		return false
	}
	e, ok := s.hits.HitTest(x, y)
	if !ok {
		s.miss.Inc()
		return false
	}
	return s.Handle(e)
}

// Handle applies the outcome of touching e: GOOD scores, BAD costs a life
// Both explode and remove the object, anything else is ignored
func (s *InteractionSystem) Handle(e core.Entity) bool {
	if !s.world.Alive(e) {
		return false
	}
	oc, ok := s.world.Outcomes.Get(e)
	if !ok {
		return false
	}

	sound := s.services.sound()
	switch oc.Outcome {
	case component.OutcomeGood:
		s.session.Reward()
		s.good.Inc()
		sound.Play(engine.CuePop)
	case component.OutcomeBad:
		ended := s.session.Penalize()
		s.bad.Inc()
		sound.Play(engine.CueBuzz)
		if ended {
			sound.Play(engine.CueGameOver)
		}
	default:
		return false
	}

	if shape, ok := s.world.Shapes.Get(e); ok && s.services.Effects != nil {
		if tr, ok := s.services.Physics.Transform(e); ok {
			s.services.Effects.Explode(shape, tr)
		}
	}
	s.world.DestroyEntity(e)
	return true
}
