package system

import (
	"math/rand/v2"
	"time"

	"github.com/lixenwraith/geometry-fighter/component"
	"github.com/lixenwraith/geometry-fighter/core"
	"github.com/lixenwraith/geometry-fighter/engine"
	"github.com/lixenwraith/geometry-fighter/parameter"
	"github.com/lixenwraith/geometry-fighter/status"
	"github.com/lixenwraith/geometry-fighter/vmath"
)

// DefaultPalette is the spawn color set, red is the bad color
var DefaultPalette = []core.RGB{
	core.RGBRed,
	core.RGBGreen,
	core.RGBBlue,
	core.RGBYellow,
	core.RGBCyan,
	core.RGBMagenta,
	core.RGBOrange,
	core.RGBWhite,
}

// SpawnConfig tunes spawn timing, launch impulse and colors
type SpawnConfig struct {
	IntervalMin time.Duration
	IntervalMax time.Duration
	LateralMax  float64
	UpMin       float64
	UpMax       float64
	Palette     []core.RGB
	BadColor    core.RGB
}

// DefaultSpawnConfig returns the stock spawn tuning
func DefaultSpawnConfig() SpawnConfig {
	return SpawnConfig{
		IntervalMin: parameter.SpawnIntervalMin,
		IntervalMax: parameter.SpawnIntervalMax,
		LateralMax:  parameter.ImpulseLateralMax,
		UpMin:       parameter.ImpulseUpMin,
		UpMax:       parameter.ImpulseUpMax,
		Palette:     DefaultPalette,
		BadColor:    core.RGBRed,
	}
}

// impulseOffset is the off-center application point of the launch impulse
var impulseOffset = vmath.Vec3F{
	X: parameter.ImpulseOffset,
	Y: parameter.ImpulseOffset,
	Z: parameter.ImpulseOffset,
}

// SpawnSystem launches one random shape whenever simulation time passes the scheduled spawn time
type SpawnSystem struct {
	world    *engine.World
	session  *engine.Session
	services Services
	rng      *rand.Rand
	config   SpawnConfig

	next    time.Duration
	pending bool // Spawn on the next unpaused tick regardless of schedule
	spawned *status.Counter
}

// NewSpawnSystem creates a spawn system drawing all randomness from rng
func NewSpawnSystem(world *engine.World, session *engine.Session, services Services, rng *rand.Rand, config SpawnConfig) *SpawnSystem {
	if len(config.Palette) == 0 {
		config.Palette = DefaultPalette
	}
	return &SpawnSystem{
		world:    world,
		session:  session,
		services: services,
		rng:      rng,
		config:   config,
		spawned:  services.Stats.Counter(status.SpawnTotal),
		pending:  true,
	}
}

// Priority returns the system's priority
func (s *SpawnSystem) Priority() int {
	return parameter.PrioritySpawn
}

// Update spawns at most one object per tick
func (s *SpawnSystem) Update(t engine.Tick) {
	if t.Paused || s.session.Over {
		return
	}
	if s.pending || t.Now > s.next {
		s.Spawn(t.Now)
	}
}

// Reset rewinds the schedule so a new session opens with a spawn
func (s *SpawnSystem) Reset() {
	s.next = 0
	s.pending = true
}

// NextSpawn returns the scheduled spawn time
func (s *SpawnSystem) NextSpawn() time.Duration {
	return s.next
}

// Spawn creates one object at the origin, launches it and reschedules from now
func (s *SpawnSystem) Spawn(now time.Duration) core.Entity {
	kind := component.ShapeKind(s.rng.IntN(int(component.ShapeKindCount)))
	color := s.config.Palette[s.rng.IntN(len(s.config.Palette))]

	e := s.world.CreateEntity()
	s.world.Shapes.Set(e, component.ShapeComponent{Kind: kind, Color: color})
	s.world.Outcomes.Set(e, component.OutcomeComponent{
		Outcome: component.OutcomeFor(color, s.config.BadColor),
	})

	force := vmath.Vec3F{
		X: vmath.RandRange(s.rng, -s.config.LateralMax, s.config.LateralMax),
		Y: vmath.RandRange(s.rng, s.config.UpMin, s.config.UpMax),
	}
	s.services.Physics.AddBody(e, vmath.Vec3F{})
	s.services.Physics.ApplyImpulse(e, force, impulseOffset)

	if s.services.Effects != nil {
		s.services.Effects.Trail(e, color, kind)
	}
	s.services.sound().Play(engine.CueLaunch)
	s.spawned.Inc()

	s.next = now + s.interval()
	s.pending = false
	return e
}

func (s *SpawnSystem) interval() time.Duration {
	span := s.config.IntervalMax - s.config.IntervalMin
	if span <= 0 {
		return s.config.IntervalMin
	}
	return s.config.IntervalMin + time.Duration(s.rng.Int64N(int64(span)))
}
