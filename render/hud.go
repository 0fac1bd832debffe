package render

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/geometry-fighter/engine"
	"github.com/lixenwraith/geometry-fighter/parameter"
)

// FormatHUD renders the status line for h, fitted to width columns
func FormatHUD(h engine.HUD, width int) string {
	parts := []string{
		fmt.Sprintf("%s: %d", parameter.HUDScoreLabel, h.Score),
		fmt.Sprintf("%s: %d", parameter.HUDLivesLabel, h.Lives),
		fmt.Sprintf("%s: %d", parameter.HUDBestLabel, h.Best),
	}
	if h.Paused {
		parts = append(parts, parameter.HUDPausedText)
	}
	line := " " + strings.Join(parts, "   ")
	return FitWidth(line, width)
}

// FitWidth truncates s to width display columns and pads it with spaces to exactly width
func FitWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) > width {
		s = runewidth.Truncate(s, width, "…")
	}
	return runewidth.FillRight(s, width)
}

// Centered returns the column at which s starts when centered in width
func Centered(s string, width int) int {
	x := (width - runewidth.StringWidth(s)) / 2
	if x < 0 {
		return 0
	}
	return x
}
