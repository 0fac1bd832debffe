// Package app assembles the game from configuration, shared by the terminal and window frontends
package app

import (
	"context"
	"fmt"
	"log"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/lixenwraith/geometry-fighter/audio"
	"github.com/lixenwraith/geometry-fighter/config"
	"github.com/lixenwraith/geometry-fighter/engine"
	"github.com/lixenwraith/geometry-fighter/network"
	"github.com/lixenwraith/geometry-fighter/parameter"
	"github.com/lixenwraith/geometry-fighter/physics"
	"github.com/lixenwraith/geometry-fighter/render"
	"github.com/lixenwraith/geometry-fighter/service"
	"github.com/lixenwraith/geometry-fighter/status"
	"github.com/lixenwraith/geometry-fighter/store"
	"github.com/lixenwraith/geometry-fighter/system"
)

// App is a fully wired game with its infrastructure services
type App struct {
	Config    config.Config
	Game      *engine.Game
	Projector *render.Projector
	Spawner   *system.SpawnSystem
	Effects   *system.EffectSystem
	HUD       *system.HUDSystem
	Services  *service.Hub
	Stats     *status.Registry

	Sound  engine.Sound
	Scores *store.Service
	Feed   *network.Feed
}

// New builds the world, systems and services described by cfg
// Optional services that fail to initialize are left out and logged
func New(cfg config.Config, camera render.Camera, clock *engine.PausableClock) (*App, error) {
	a := &App{Config: cfg, Services: service.NewHub(), Stats: status.NewRegistry()}

	svcs := []service.Service{audio.NewSoundManager(cfg.Mute)}
	if cfg.ScoresPath != "" {
		svcs = append(svcs, store.NewService(cfg.ScoresPath))
	}
	if cfg.FeedAddr != "" {
		svcs = append(svcs, network.NewFeed(cfg.FeedAddr))
	}
	for _, svc := range svcs {
		if err := a.Services.Register(svc); err != nil {
			return nil, fmt.Errorf("services: %w", err)
		}
	}
	if err := a.Services.InitAll(); err != nil {
		return nil, fmt.Errorf("services: %w", err)
	}

	if sm, ok := service.Lookup[*audio.SoundManager](a.Services, audio.Name); ok {
		a.Sound = sm
	} else {
		a.Sound = &audio.Silent{}
	}
	a.Scores, _ = service.Lookup[*store.Service](a.Services, store.Name)
	a.Feed, _ = service.Lookup[*network.Feed](a.Services, network.Name)

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Printf("app: seed %d", seed)
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	now := time.Now()
	if clock != nil {
		now = clock.WallTime()
	}
	world := engine.NewWorld()
	session := engine.NewSession(cfg.Lives, cfg.GameOver, now)
	if a.Scores != nil {
		session.Best = a.Scores.BestScore()
	}

	integrator := physics.NewIntegrator(world, parameter.Gravity)
	a.Effects = system.NewEffectSystem(world, integrator, rng)
	a.Effects.SetStats(a.Stats)
	a.Projector = render.NewProjector(world, integrator, camera)
	services := system.Services{Physics: integrator, Effects: a.Effects, Sound: a.Sound, Stats: a.Stats}

	a.Game = engine.NewGame(world, session, clock)
	a.Game.SetStats(a.Stats)
	a.Spawner = system.NewSpawnSystem(world, session, services, rng, cfg.SpawnConfig())
	a.HUD = system.NewHUDSystem(world, session)
	if a.Feed != nil {
		a.Feed.SetStats(a.Stats)
		a.HUD.AddDisplay(a.Feed)
	}

	a.Game.AddSystem(system.NewInteractionSystem(world, session, a.Projector, services))
	a.Game.AddSystem(a.Spawner)
	a.Game.AddSystem(system.NewMotionSystem(integrator))
	a.Game.AddSystem(a.Effects)
	cull := system.NewCullSystem(world, integrator, cfg.Spawn.FloorY)
	cull.SetStats(a.Stats)
	a.Game.AddSystem(cull)
	a.Game.AddSystem(a.HUD)

	if sm, ok := a.Sound.(*audio.SoundManager); ok {
		a.Game.OnMute = func() {
			log.Printf("app: muted=%v", sm.ToggleMute())
		}
	}
	a.Game.OnSessionEnd = func(r engine.SessionResult) {
		log.Printf("stats: session %s: %s", r.ID, strings.Join(a.Stats.Snapshot(), ", "))
		if a.Scores != nil {
			a.Scores.Submit(r)
		}
	}
	return a, nil
}

// AddDisplay registers a frontend HUD display
func (a *App) AddDisplay(d engine.Display) {
	a.HUD.AddDisplay(d)
}

// Start starts the infrastructure services
func (a *App) Start(ctx context.Context) error {
	if err := a.Services.StartAll(ctx); err != nil {
		return fmt.Errorf("services: %w", err)
	}
	log.Printf("app: services %v", a.Services.Names())
	// Start may have dropped optional services
	if a.Feed != nil && !a.Services.Enabled(network.Name) {
		log.Printf("app: spectator feed unavailable")
	}
	if a.Scores != nil && !a.Services.Enabled(store.Name) {
		a.Scores = nil
	}
	return nil
}

// Close stops services in reverse order, flushing the score queue
func (a *App) Close() error {
	for _, line := range a.Stats.Snapshot() {
		log.Printf("stats: %s", line)
	}
	return a.Services.StopAll()
}
