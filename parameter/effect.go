package parameter

import "time"

// Trail Particles
const (
	// TrailEmitInterval is the time between two trail particles of one emitter
	TrailEmitInterval = 40 * time.Millisecond

	// TrailLifetime is how long a trail particle lives
	TrailLifetime = 350 * time.Millisecond

	// TrailJitter is the random spread of trail particle velocity
	TrailJitter = 0.4
)

// Explosion Particles
const (
	// ExplosionParticleCount is the number of particles per explosion burst
	ExplosionParticleCount = 24

	// ExplosionLifetime is how long an explosion particle lives
	ExplosionLifetime = 600 * time.Millisecond

	// ExplosionSpeedMin and ExplosionSpeedMax bound the outward particle speed
	ExplosionSpeedMin = 2.0
	ExplosionSpeedMax = 5.0

	// ParticleDrag is the fraction of velocity kept per second
	ParticleDrag = 0.35

	// MaxParticles caps live particles, trail emission pauses above it
	MaxParticles = 2048
)
