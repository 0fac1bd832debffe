package engine

import (
	"log"
	"sort"
	"time"

	"github.com/lixenwraith/geometry-fighter/event"
	"github.com/lixenwraith/geometry-fighter/parameter"
	"github.com/lixenwraith/geometry-fighter/status"
)

// Game is the single mutator context: it owns the World and the Session
// and runs all systems once per Tick
type Game struct {
	World   *World
	Session *Session
	Events  *event.EventQueue

	// Clock is optional; without it Tick must be driven with explicit times
	Clock *PausableClock

	// OnSessionEnd receives every finished session (restart or quit)
	OnSessionEnd func(SessionResult)

	// OnMute handles the mute toggle, input is ignored without it
	OnMute func()

	systems []System

	stats        *status.Registry
	tickSeconds  *status.Gauge
	inputDropped *status.Counter

	lastNow time.Duration
	ticked  bool
	frame   uint64
	paused  bool
	done    bool
}

// NewGame creates a game over world and session
func NewGame(world *World, session *Session, clock *PausableClock) *Game {
	return &Game{
		World:   world,
		Session: session,
		Events:  event.NewEventQueue(),
		Clock:   clock,

		tickSeconds:  new(status.Gauge),
		inputDropped: new(status.Counter),
	}
}

// SetStats publishes tick duration and dropped input to r and resets its session counts on restart
func (g *Game) SetStats(r *status.Registry) {
	g.stats = r
	g.tickSeconds = r.Gauge(status.TickSeconds)
	g.inputDropped = r.Counter(status.InputDropped)
}

// AddSystem adds a system and keeps systems sorted by priority
func (g *Game) AddSystem(s System) {
	g.systems = append(g.systems, s)
	sort.SliceStable(g.systems, func(i, j int) bool {
		return g.systems[i].Priority() < g.systems[j].Priority()
	})
}

// Step runs one tick at the clock's current simulation time
func (g *Game) Step() {
	var now time.Duration
	if g.Clock != nil {
		now = g.Clock.Now()
	}
	g.Tick(now)
}

// Tick drains input events and runs every system once at simulation time now
func (g *Game) Tick(now time.Duration) {
	start := time.Now()
	defer func() { g.tickSeconds.Set(time.Since(start).Seconds()) }()

	g.inputDropped.Add(int64(g.Events.TakeDropped()))

	var touches []event.GameEvent
	for _, ev := range g.Events.Consume() {
		switch ev.Type {
		case event.EventTouch:
			touches = append(touches, ev)
		case event.EventPause:
			g.TogglePause()
		case event.EventRestart:
			// Touches aimed at the previous session's objects are stale
			touches = nil
			g.Restart()
		case event.EventQuit:
			g.Quit()
		case event.EventMute:
			if g.OnMute != nil {
				g.OnMute()
			}
		}
	}

	delta := now - g.lastNow
	if !g.ticked || delta < 0 {
		delta = 0
	}
	// Explicit-time drivers keep advancing now while paused
	if g.paused {
		delta = 0
	}
	if delta > parameter.MaxTickDelta {
		delta = parameter.MaxTickDelta
	}
	g.lastNow = now
	g.ticked = true
	g.frame++

	t := Tick{
		Now:     now,
		Delta:   delta,
		Frame:   g.frame,
		Paused:  g.paused,
		Touches: touches,
	}
	for _, s := range g.systems {
		s.Update(t)
	}
}

// Frame returns the number of ticks run
func (g *Game) Frame() uint64 {
	return g.frame
}

// TogglePause flips pause state and freezes the clock accordingly
func (g *Game) TogglePause() {
	g.paused = !g.paused
	if g.Clock == nil {
		return
	}
	if g.paused {
		g.Clock.Pause()
	} else {
		g.Clock.Resume()
	}
}

// Paused reports pause state
func (g *Game) Paused() bool {
	return g.paused
}

// Restart records the current session, clears the world and starts over
func (g *Game) Restart() {
	g.endSession()
	g.stats.ResetSession()
	g.World.Clear()
	g.Session.Reset(g.wallTime())
	for _, s := range g.systems {
		if r, ok := s.(Resetter); ok {
			r.Reset()
		}
	}
	log.Printf("game: session %s started", g.Session.ID)
}

// Quit records the current session and marks the game done, idempotent
func (g *Game) Quit() {
	if g.done {
		return
	}
	g.endSession()
	g.done = true
}

// Done reports whether Quit was called
func (g *Game) Done() bool {
	return g.done
}

func (g *Game) endSession() {
	res := g.Session.Result(g.wallTime())
	log.Printf("game: session %s ended score=%d lives=%d", res.ID, res.Score, res.Lives)
	if g.OnSessionEnd != nil {
		g.OnSessionEnd(res)
	}
}

func (g *Game) wallTime() time.Time {
	if g.Clock != nil {
		return g.Clock.WallTime()
	}
	return time.Now()
}
