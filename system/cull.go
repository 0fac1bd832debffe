package system

import (
	"github.com/lixenwraith/geometry-fighter/core"
	"github.com/lixenwraith/geometry-fighter/engine"
	"github.com/lixenwraith/geometry-fighter/parameter"
	"github.com/lixenwraith/geometry-fighter/status"
)

// CullSystem removes game objects that fell below the floor
// Destroying the entity releases its trail emitter with it
type CullSystem struct {
	world   *engine.World
	physics engine.Physics
	floor   float64
	culled  *status.Counter
}

// NewCullSystem creates a cull system removing objects with y below floor
func NewCullSystem(world *engine.World, physics engine.Physics, floor float64) *CullSystem {
	return &CullSystem{
		world:   world,
		physics: physics,
		floor:   floor,
		culled:  new(status.Counter),
	}
}

// Priority returns the system's priority
func (s *CullSystem) Priority() int {
	return parameter.PriorityCleanup
}

// SetStats routes the culled counter to r
func (s *CullSystem) SetStats(r *status.Registry) {
	s.culled = r.Counter(status.ObjectsCulled)
}

// Update runs one sweep
func (s *CullSystem) Update(engine.Tick) {
	s.culled.Add(int64(s.Sweep()))
}

// Sweep removes every object strictly below the floor and returns how many were removed
// Objects without a body are left alone
func (s *CullSystem) Sweep() int {
	var below []core.Entity
	for _, e := range s.world.Objects() {
		if tr, ok := s.physics.Transform(e); ok && tr.Position.Y < s.floor {
			below = append(below, e)
		}
	}
	return s.world.DestroyBatch(below)
}
