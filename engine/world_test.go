package engine

import (
	"testing"

	"github.com/lixenwraith/geometry-fighter/component"
	"github.com/lixenwraith/geometry-fighter/core"
)

func TestWorldDestroyIsIdempotent(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()
	w.Shapes.Set(e, component.ShapeComponent{Kind: component.ShapeBox})
	w.Bodies.Set(e, component.BodyComponent{})
	w.Emitters.Set(e, component.EmitterComponent{})

	if !w.DestroyEntity(e) {
		t.Fatal("first destroy should succeed")
	}
	if w.DestroyEntity(e) {
		t.Error("second destroy should be a no-op")
	}
	if w.Shapes.Has(e) || w.Bodies.Has(e) || w.Emitters.Has(e) {
		t.Error("components should be released with the entity")
	}
	if w.Alive(e) {
		t.Error("destroyed entity should not be alive")
	}
}

func TestWorldObjectsAreShapes(t *testing.T) {
	w := NewWorld()
	obj := w.CreateEntity()
	w.Shapes.Set(obj, component.ShapeComponent{})
	particle := w.CreateEntity()
	w.Particles.Set(particle, component.ParticleComponent{})

	if w.ObjectCount() != 1 {
		t.Errorf("expected 1 object, got %d", w.ObjectCount())
	}
	if w.EntityCount() != 2 {
		t.Errorf("expected 2 entities, got %d", w.EntityCount())
	}
	if objs := w.Objects(); len(objs) != 1 || objs[0] != obj {
		t.Errorf("expected objects [%d], got %v", obj, objs)
	}
}

func TestWorldClearKeepsIDsUnique(t *testing.T) {
	w := NewWorld()
	first := w.CreateEntity()
	w.Shapes.Set(first, component.ShapeComponent{})

	w.Clear()

	if w.ObjectCount() != 0 || w.EntityCount() != 0 {
		t.Fatal("expected empty world after clear")
	}
	if w.DestroyEntity(first) {
		t.Error("stale entity should not be destroyable after clear")
	}
	if next := w.CreateEntity(); next == first {
		t.Errorf("entity id %d reused after clear", next)
	}
}

func TestWorldDestroyBatch(t *testing.T) {
	w := NewWorld()
	var es []core.Entity
	for i := 0; i < 5; i++ {
		e := w.CreateEntity()
		w.Shapes.Set(e, component.ShapeComponent{})
		w.Particles.Set(e, component.ParticleComponent{})
		es = append(es, e)
	}
	w.DestroyEntity(es[0])

	got := w.DestroyBatch([]core.Entity{es[0], es[1], es[3], es[3], 999})
	if got != 2 {
		t.Errorf("expected 2 live entities destroyed, got %d", got)
	}
	if w.Alive(es[1]) || w.Alive(es[3]) || !w.Alive(es[2]) || !w.Alive(es[4]) {
		t.Error("batch destroyed the wrong entities")
	}
	if w.ObjectCount() != 2 || w.Particles.Count() != 2 {
		t.Errorf("expected 2 shapes and particles left, got %d/%d", w.ObjectCount(), w.Particles.Count())
	}
	if w.DestroyBatch(nil) != 0 {
		t.Error("empty batch should destroy nothing")
	}
}
