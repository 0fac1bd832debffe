package render

import (
	"math"

	"github.com/lixenwraith/geometry-fighter/component"
)

// Point is a screen-space offset from a sprite center, y grows downward
type Point struct {
	X, Y float64
}

// IsRound reports whether kind is drawn as a circle rather than a polygon
func IsRound(kind component.ShapeKind) bool {
	switch kind {
	case component.ShapeSphere, component.ShapeTorus, component.ShapeTube:
		return true
	}
	return false
}

// Outline returns the silhouette polygon of shape scaled to fit radius and rotated by angle
// Round kinds return nil
func Outline(shape component.ShapeComponent, radius, angle float64) []Point {
	if IsRound(shape.Kind) {
		return nil
	}
	d := shape.Kind.Dimensions()
	scale := radius / shape.BoundingRadius()
	hw, hh := d.X/2*scale, d.Y/2*scale

	var pts []Point
	switch shape.Kind {
	case component.ShapePyramid, component.ShapeCone:
		pts = []Point{{0, -hh}, {hw, hh}, {-hw, hh}}
	default:
		pts = []Point{{-hw, -hh}, {hw, -hh}, {hw, hh}, {-hw, hh}}
	}

	cos, sin := math.Cos(angle), math.Sin(angle)
	for i, p := range pts {
		pts[i] = Point{X: p.X*cos - p.Y*sin, Y: p.X*sin + p.Y*cos}
	}
	return pts
}
