package system

import (
	"github.com/lixenwraith/geometry-fighter/engine"
	"github.com/lixenwraith/geometry-fighter/parameter"
)

// HUDSystem pushes a session snapshot to every display once per tick
type HUDSystem struct {
	world    *engine.World
	session  *engine.Session
	displays []engine.Display
	last     engine.HUD
}

func NewHUDSystem(world *engine.World, session *engine.Session) *HUDSystem {
	return &HUDSystem{world: world, session: session}
}

// AddDisplay registers a display, nil is ignored
func (s *HUDSystem) AddDisplay(d engine.Display) {
	if d != nil {
		s.displays = append(s.displays, d)
	}
}

func (s *HUDSystem) Priority() int {
	return parameter.PriorityHUD
}

func (s *HUDSystem) Update(t engine.Tick) {
	s.last = engine.HUD{
		SessionID: s.session.ID,
		Score:     s.session.Score,
		Lives:     s.session.Lives,
		Best:      s.session.Best,
		Objects:   s.world.ObjectCount(),
		Frame:     t.Frame,
		Over:      s.session.Over,
		Paused:    t.Paused,
	}
	for _, d := range s.displays {
		d.UpdateHUD(s.last)
	}
}

// Last returns the most recent snapshot
func (s *HUDSystem) Last() engine.HUD {
	return s.last
}
