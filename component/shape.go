package component

import (
	"math"

	"github.com/lixenwraith/geometry-fighter/core"
	"github.com/lixenwraith/geometry-fighter/parameter"
	"github.com/lixenwraith/geometry-fighter/vmath"
)

// ShapeKind enumerates spawnable geometry
type ShapeKind uint8

const (
	ShapeBox ShapeKind = iota
	ShapeSphere
	ShapePyramid
	ShapeTorus
	ShapeCapsule
	ShapeCylinder
	ShapeCone
	ShapeTube

	// ShapeKindCount is the number of spawnable kinds, not a kind itself
	ShapeKindCount
)

var shapeNames = [ShapeKindCount]string{
	"box", "sphere", "pyramid", "torus", "capsule", "cylinder", "cone", "tube",
}

func (k ShapeKind) String() string {
	if k < ShapeKindCount {
		return shapeNames[k]
	}
	return "unknown"
}

// Dimensions returns the width, height and depth of the kind's bounding box
// Unknown kinds resolve to a unit box
func (k ShapeKind) Dimensions() vmath.Vec3F {
	const s = parameter.ShapeSize
	switch k {
	case ShapeBox:
		return vmath.Vec3F{X: s + 1, Y: s, Z: s}
	case ShapeSphere:
		return vmath.Vec3F{X: 2 * s, Y: 2 * s, Z: 2 * s}
	case ShapePyramid:
		return vmath.Vec3F{X: s, Y: s, Z: s}
	case ShapeTorus:
		// ring radius s+0.5, pipe radius s/2
		outer := 2 * (s + 0.5 + s/2)
		return vmath.Vec3F{X: outer, Y: s, Z: outer}
	case ShapeCapsule:
		return vmath.Vec3F{X: s, Y: s + 1, Z: s}
	case ShapeCylinder:
		return vmath.Vec3F{X: 2 * s, Y: s, Z: 2 * s}
	case ShapeCone:
		return vmath.Vec3F{X: 2 * s, Y: s, Z: 2 * s}
	case ShapeTube:
		outer := 2 * (s + 0.3)
		return vmath.Vec3F{X: outer, Y: s + 1, Z: outer}
	default:
		return vmath.Vec3F{X: 1, Y: 1, Z: 1}
	}
}

// ShapeComponent is the visual identity of a spawned game object
type ShapeComponent struct {
	Kind  ShapeKind
	Color core.RGB
}

// BoundingRadius returns the radius of the sphere enclosing the shape
func (s ShapeComponent) BoundingRadius() float64 {
	d := s.Kind.Dimensions()
	return 0.5 * math.Sqrt(d.X*d.X+d.Y*d.Y+d.Z*d.Z)
}
