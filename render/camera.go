package render

import (
	"math"

	"github.com/lixenwraith/geometry-fighter/parameter"
	"github.com/lixenwraith/geometry-fighter/vmath"
)

// Camera is a pinhole camera at Eye looking down -z with +y up
type Camera struct {
	Eye vmath.Vec3F
	// FOV is the vertical field of view in radians
	FOV  float64
	Near float64
	// Aspect stretches horizontal screen distances, 2 for terminal cells, 1 for pixels
	Aspect float64
}

// DefaultCamera returns the stock camera for the given cell aspect
func DefaultCamera(aspect float64) Camera {
	return Camera{
		Eye:    vmath.Vec3F{X: parameter.CameraX, Y: parameter.CameraY, Z: parameter.CameraZ},
		FOV:    parameter.CameraFOVDegrees * math.Pi / 180,
		Near:   parameter.CameraNear,
		Aspect: aspect,
	}
}

// Viewport is the screen area the scene projects into, Top rows are reserved above it
type Viewport struct {
	Width  int
	Height int
	Top    int
}

// focal returns the distance in rows at which one world unit spans one row at depth one
func (c Camera) focal(vp Viewport) float64 {
	return float64(vp.Height) / 2 / math.Tan(c.FOV/2)
}

// Project maps a world point to screen coordinates and depth along the view axis
// ok is false for points behind the near plane
func (c Camera) Project(p vmath.Vec3F, vp Viewport) (sx, sy, depth float64, ok bool) {
	d := vmath.V3FSub(p, c.Eye)
	depth = -d.Z
	if depth < c.Near {
		return 0, 0, depth, false
	}
	f := c.focal(vp) / depth
	sx = float64(vp.Width)/2 + d.X*f*c.Aspect
	sy = float64(vp.Top) + float64(vp.Height)/2 - d.Y*f
	return sx, sy, depth, true
}

// ScaleRadius converts a world radius at depth into screen radii
func (c Camera) ScaleRadius(radius, depth float64, vp Viewport) (rx, ry float64) {
	if depth < c.Near {
		return 0, 0
	}
	ry = radius * c.focal(vp) / depth
	return ry * c.Aspect, ry
}
