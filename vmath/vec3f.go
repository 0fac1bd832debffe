package vmath

import (
	"math"
)

// Vec3F is a float64 3D vector in world units
// Y is up, camera looks down -Z
type Vec3F struct {
	X, Y, Z float64
}

func V3FAdd(a, b Vec3F) Vec3F {
	return Vec3F{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func V3FSub(a, b Vec3F) Vec3F {
	return Vec3F{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func V3FScale(v Vec3F, s float64) Vec3F {
	return Vec3F{v.X * s, v.Y * s, v.Z * s}
}

func V3FDot(a, b Vec3F) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// V3FCross returns a × b
func V3FCross(a, b Vec3F) Vec3F {
	return Vec3F{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

func V3FMagSq(v Vec3F) float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func V3FMag(v Vec3F) float64 {
	return math.Sqrt(V3FMagSq(v))
}

func V3FNormalize(v Vec3F) Vec3F {
	mag := V3FMag(v)
	if mag == 0 {
		return Vec3F{}
	}
	inv := 1.0 / mag
	return Vec3F{v.X * inv, v.Y * inv, v.Z * inv}
}

// V3FRotate rotates v by angle radians around axis (Rodrigues)
// Zero axis returns v unchanged
func V3FRotate(v, axis Vec3F, angle float64) Vec3F {
	k := V3FNormalize(axis)
	if k == (Vec3F{}) || angle == 0 {
		return v
	}
	cos, sin := math.Cos(angle), math.Sin(angle)
	// v*cos + (k×v)*sin + k*(k·v)*(1-cos)
	return V3FAdd(
		V3FAdd(V3FScale(v, cos), V3FScale(V3FCross(k, v), sin)),
		V3FScale(k, V3FDot(k, v)*(1-cos)),
	)
}
