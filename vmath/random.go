package vmath

import (
	"math"
	"math/rand/v2"
)

// RandRange returns a uniform float in [min, max)
// Swapped bounds are tolerated, equal bounds return min
func RandRange(r *rand.Rand, min, max float64) float64 {
	if max < min {
		min, max = max, min
	}
	return min + r.Float64()*(max-min)
}

// RandUnitVector returns a uniformly distributed direction on the unit sphere
func RandUnitVector(r *rand.Rand) Vec3F {
	z := RandRange(r, -1, 1)
	theta := r.Float64() * 2 * math.Pi
	rad := math.Sqrt(1 - z*z)
	return Vec3F{X: rad * math.Cos(theta), Y: rad * math.Sin(theta), Z: z}
}
