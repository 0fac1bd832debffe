package engine

import (
	"context"
	"time"
)

// Run drives the game at a fixed interval until ctx is canceled or the game quits
// after runs on the same goroutine right after each tick, typically to render
func Run(ctx context.Context, g *Game, interval time.Duration, after func()) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			g.Quit()
			return ctx.Err()
		case <-ticker.C:
			g.Step()
			if after != nil {
				after()
			}
			if g.Done() {
				return nil
			}
		}
	}
}
