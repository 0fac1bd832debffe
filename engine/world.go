package engine

import (
	"github.com/lixenwraith/geometry-fighter/component"
	"github.com/lixenwraith/geometry-fighter/core"
)

// World owns all entities and their components
// The set of live game objects is the set of entities holding a ShapeComponent
type World struct {
	nextEntityID core.Entity
	live         map[core.Entity]struct{}

	// Component Stores (public for direct system access)
	Shapes    *Store[component.ShapeComponent]
	Bodies    *Store[component.BodyComponent]
	Outcomes  *Store[component.OutcomeComponent]
	Emitters  *Store[component.EmitterComponent]
	Particles *Store[component.ParticleComponent]

	// All stores for uniform destruction
	allStores []AnyStore
}

// NewWorld creates a world with all component stores initialized
func NewWorld() *World {
	w := &World{
		nextEntityID: 1,
		live:         make(map[core.Entity]struct{}),
		Shapes:       NewStore[component.ShapeComponent](),
		Bodies:       NewStore[component.BodyComponent](),
		Outcomes:     NewStore[component.OutcomeComponent](),
		Emitters:     NewStore[component.EmitterComponent](),
		Particles:    NewStore[component.ParticleComponent](),
	}
	w.allStores = []AnyStore{
		w.Shapes,
		w.Bodies,
		w.Outcomes,
		w.Emitters,
		w.Particles,
	}
	return w
}

// CreateEntity reserves a new live entity ID without components
func (w *World) CreateEntity() core.Entity {
	id := w.nextEntityID
	w.nextEntityID++
	w.live[id] = struct{}{}
	return id
}

// DestroyEntity releases an entity and all its components
// Returns false without side effects if the entity is not live, so a second removal is a no-op
func (w *World) DestroyEntity(e core.Entity) bool {
	if _, ok := w.live[e]; !ok {
		return false
	}
	delete(w.live, e)
	for _, store := range w.allStores {
		store.Remove(e)
	}
	return true
}

// DestroyBatch releases every live entity in entities and returns how many were live
// Dead or repeated entities are skipped
func (w *World) DestroyBatch(entities []core.Entity) int {
	live := entities[:0:0]
	for _, e := range entities {
		if _, ok := w.live[e]; ok {
			delete(w.live, e)
			live = append(live, e)
		}
	}
	if len(live) == 0 {
		return 0
	}
	for _, store := range w.allStores {
		store.RemoveBatch(live)
	}
	return len(live)
}

// Alive reports whether the entity has been created and not destroyed
func (w *World) Alive(e core.Entity) bool {
	_, ok := w.live[e]
	return ok
}

// Objects returns the live game objects, order unspecified
func (w *World) Objects() []core.Entity {
	return w.Shapes.All()
}

// ObjectCount returns the number of live game objects
func (w *World) ObjectCount() int {
	return w.Shapes.Count()
}

// EntityCount returns the number of live entities, particles included
func (w *World) EntityCount() int {
	return len(w.live)
}

// Clear destroys every entity; IDs keep increasing so stale references never alias
func (w *World) Clear() {
	w.live = make(map[core.Entity]struct{})
	for _, store := range w.allStores {
		store.Clear()
	}
}
