package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/geometry-fighter/app"
	"github.com/lixenwraith/geometry-fighter/config"
	"github.com/lixenwraith/geometry-fighter/core"
	"github.com/lixenwraith/geometry-fighter/engine"
	"github.com/lixenwraith/geometry-fighter/parameter"
	"github.com/lixenwraith/geometry-fighter/render"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "geometry-fighter: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.FromArgs("geometry-fighter", os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}

	if logFile := app.SetupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	// tcell reads the color override from the environment at screen creation
	switch cfg.ColorMode {
	case config.Color256:
		os.Setenv("TCELL_TRUECOLOR", "disable")
	case config.ColorTrueColor:
		os.Setenv("COLORTERM", "truecolor")
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	screen.EnableMouse()
	screen.HideCursor()

	var finiOnce sync.Once
	fini := func() { finiOnce.Do(screen.Fini) }
	defer fini()

	// Panic Recovery: restore the terminal before printing the stack
	core.SetCrashCleanup(fini)
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	clock := engine.NewPausableClock(engine.NewMonotonicTimeProvider())
	a, err := app.New(cfg, render.DefaultCamera(parameter.CellAspect), clock)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	renderer := render.NewTerminalRenderer(screen, a.Game.World, a.Projector)
	a.AddDisplay(renderer)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := a.Start(ctx); err != nil {
		return err
	}
	if a.Feed != nil {
		log.Printf("spectator feed on ws://%s/hud", a.Feed.Addr())
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	loopDone := make(chan struct{})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(core.Recover(func() error {
		defer close(loopDone)
		defer cancel()
		return engine.Run(gctx, a.Game, parameter.FrameUpdateInterval, renderer.Render)
	}))
	g.Go(core.Recover(func() error {
		return render.PollInput(gctx, screen, a.Game.Events)
	}))
	g.Go(func() error {
		// Finalizing the screen after the last render unblocks PollInput
		<-loopDone
		fini()
		return nil
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
