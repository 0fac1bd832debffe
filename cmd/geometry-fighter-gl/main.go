package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/geometry-fighter/app"
	"github.com/lixenwraith/geometry-fighter/config"
	"github.com/lixenwraith/geometry-fighter/engine"
	"github.com/lixenwraith/geometry-fighter/event"
	"github.com/lixenwraith/geometry-fighter/render"
	"github.com/lixenwraith/geometry-fighter/render/window"
)

const (
	screenWidth  = 960
	screenHeight = 720
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "geometry-fighter-gl: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.FromArgs("geometry-fighter-gl", os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}
	if logFile := app.SetupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	clock := engine.NewPausableClock(engine.NewMonotonicTimeProvider())
	a, err := app.New(cfg, render.DefaultCamera(1), clock)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	w := window.New(a.Game, a.Projector, screenWidth, screenHeight)
	a.AddDisplay(w)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := a.Start(ctx); err != nil {
		return err
	}

	// Signals end the game from the input side, the window exits on its next update
	go func() {
		<-ctx.Done()
		a.Game.Events.Push(event.GameEvent{Type: event.EventQuit})
	}()

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Geometry Fighter")
	ebiten.SetTPS(ebiten.DefaultTPS)
	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	a.Game.Quit()
	return nil
}
