package system

import (
	"github.com/lixenwraith/geometry-fighter/engine"
	"github.com/lixenwraith/geometry-fighter/status"
)

// Services groups the collaborators systems reach through interfaces
type Services struct {
	Physics engine.Physics
	Effects engine.Effects
	Sound   engine.Sound
	// Stats is optional, counters are detached without it
	Stats *status.Registry
}

func (s Services) sound() engine.Sound {
	if s.Sound == nil {
		return engine.NoSound{}
	}
	return s.Sound
}
