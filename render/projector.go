package render

import (
	"math"
	"sort"

	"github.com/lixenwraith/geometry-fighter/component"
	"github.com/lixenwraith/geometry-fighter/core"
	"github.com/lixenwraith/geometry-fighter/engine"
)

// minSpriteRadius keeps distant objects at least one cell wide
const minSpriteRadius = 0.5

// Sprite is a game object projected to a screen ellipse
type Sprite struct {
	Entity core.Entity
	Shape  component.ShapeComponent
	X, Y   float64
	RX, RY float64
	Depth  float64
	Angle  float64
}

// Contains reports whether screen point (x, y) falls inside the ellipse
func (s Sprite) Contains(x, y float64) bool {
	nx := (x - s.X) / s.RX
	ny := (y - s.Y) / s.RY
	return nx*nx+ny*ny <= 1
}

// Projector projects game objects once per frame and resolves hit tests against that frame
// It implements engine.HitTester
type Projector struct {
	world   *engine.World
	physics engine.Physics
	camera  Camera

	viewport Viewport
	sprites  []Sprite
}

// NewProjector creates a projector over world using camera
func NewProjector(world *engine.World, physics engine.Physics, camera Camera) *Projector {
	return &Projector{
		world:   world,
		physics: physics,
		camera:  camera,
	}
}

// Camera returns the projection camera
func (p *Projector) Camera() Camera {
	return p.camera
}

// SetViewport sets the screen area of following refreshes
func (p *Projector) SetViewport(vp Viewport) {
	p.viewport = vp
}

// Viewport returns the current screen area
func (p *Projector) Viewport() Viewport {
	return p.viewport
}

// Refresh rebuilds sprites from the current world, ordered far to near
func (p *Projector) Refresh() []Sprite {
	p.sprites = p.sprites[:0]
	for _, e := range p.world.Objects() {
		shape, ok := p.world.Shapes.Get(e)
		if !ok {
			continue
		}
		tr, ok := p.physics.Transform(e)
		if !ok {
			continue
		}
		x, y, depth, ok := p.camera.Project(tr.Position, p.viewport)
		if !ok {
			continue
		}
		rx, ry := p.camera.ScaleRadius(shape.BoundingRadius(), depth, p.viewport)
		p.sprites = append(p.sprites, Sprite{
			Entity: e,
			Shape:  shape,
			X:      x,
			Y:      y,
			RX:     math.Max(rx, minSpriteRadius),
			RY:     math.Max(ry, minSpriteRadius),
			Depth:  depth,
			Angle:  tr.Angle,
		})
	}
	sort.SliceStable(p.sprites, func(i, j int) bool {
		return p.sprites[i].Depth > p.sprites[j].Depth
	})
	return p.sprites
}

// Sprites returns the sprites of the last refresh
func (p *Projector) Sprites() []Sprite {
	return p.sprites
}

// HitTest returns the nearest live object whose sprite contains the cell (x, y)
// Cells are sampled at their center
func (p *Projector) HitTest(x, y int) (core.Entity, bool) {
	cx, cy := float64(x)+0.5, float64(y)+0.5
	for i := len(p.sprites) - 1; i >= 0; i-- {
		s := p.sprites[i]
		if !p.world.Shapes.Has(s.Entity) {
			continue
		}
		if s.Contains(cx, cy) {
			return s.Entity, true
		}
	}
	return 0, false
}
