package system

import (
	"github.com/lixenwraith/geometry-fighter/engine"
	"github.com/lixenwraith/geometry-fighter/parameter"
)

// MotionSystem advances physics by the tick delta
type MotionSystem struct {
	physics engine.Physics
}

func NewMotionSystem(physics engine.Physics) *MotionSystem {
	return &MotionSystem{physics: physics}
}

func (s *MotionSystem) Priority() int {
	return parameter.PriorityMotion
}

// Update steps physics, a paused tick carries zero delta
func (s *MotionSystem) Update(t engine.Tick) {
	s.physics.Step(t.Delta)
}
