package render

import (
	"math"
	"testing"

	"github.com/lixenwraith/geometry-fighter/vmath"
)

func TestCameraProjectCenter(t *testing.T) {
	cam := DefaultCamera(2)
	vp := Viewport{Width: 80, Height: 40, Top: 1}

	sx, sy, depth, ok := cam.Project(vmath.Vec3F{X: 0, Y: 5, Z: 0}, vp)
	if !ok {
		t.Fatal("point in front of camera should project")
	}
	if sx != 40 || sy != 21 || depth != 10 {
		t.Errorf("expected (40, 21, 10), got (%f, %f, %f)", sx, sy, depth)
	}
}

func TestCameraProjectDirections(t *testing.T) {
	cam := DefaultCamera(1)
	vp := Viewport{Width: 100, Height: 100}

	tests := []struct {
		name   string
		p      vmath.Vec3F
		check  func(sx, sy float64) bool
		expect string
	}{
		{"up", vmath.Vec3F{Y: 8}, func(sx, sy float64) bool { return sy < 50 }, "above center"},
		{"down", vmath.Vec3F{Y: 2}, func(sx, sy float64) bool { return sy > 50 }, "below center"},
		{"right", vmath.Vec3F{X: 2, Y: 5}, func(sx, sy float64) bool { return sx > 50 }, "right of center"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sx, sy, _, ok := cam.Project(tt.p, vp)
			if !ok || !tt.check(sx, sy) {
				t.Errorf("expected %s, got (%f, %f)", tt.expect, sx, sy)
			}
		})
	}
}

func TestCameraTopEdgeAtFOV(t *testing.T) {
	cam := DefaultCamera(1)
	vp := Viewport{Width: 100, Height: 100}
	// at depth 10 the top edge is tan(30deg)*10 above the eye
	top := 5 + 10*math.Tan(math.Pi/6)
	_, sy, _, _ := cam.Project(vmath.Vec3F{Y: top}, vp)
	if math.Abs(sy) > 1e-9 {
		t.Errorf("expected top edge at row 0, got %f", sy)
	}
}

func TestCameraBehindIsClipped(t *testing.T) {
	cam := DefaultCamera(1)
	if _, _, _, ok := cam.Project(vmath.Vec3F{Z: 20}, Viewport{Width: 10, Height: 10}); ok {
		t.Error("point behind the camera should not project")
	}
	if rx, ry := cam.ScaleRadius(1, 0, Viewport{Height: 10}); rx != 0 || ry != 0 {
		t.Error("radius at zero depth should be zero")
	}
}
