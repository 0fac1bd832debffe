package core

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB stores explicit 8-bit color channels, decoupled from tcell and ebiten
type RGB struct {
	R, G, B uint8
}

// Predefined colors
var (
	RGBBlack   = RGB{0, 0, 0}
	RGBWhite   = RGB{255, 255, 255}
	RGBRed     = RGB{255, 0, 0}
	RGBGreen   = RGB{0, 255, 0}
	RGBBlue    = RGB{0, 0, 255}
	RGBYellow  = RGB{255, 255, 0}
	RGBCyan    = RGB{0, 255, 255}
	RGBMagenta = RGB{255, 0, 255}
	RGBOrange  = RGB{255, 165, 0}
)

// Fade blends toward dst in Lab space, t in [0,1]
// Used for particle fade-out where linear RGB blending muddies saturated colors
func (c RGB) Fade(dst RGB, t float64) RGB {
	if t <= 0 {
		return c
	}
	if t >= 1 {
		return dst
	}
	from := c.colorful()
	to := dst.colorful()
	r, g, b := from.BlendLab(to, t).Clamped().RGB255()
	return RGB{R: r, G: g, B: b}
}

// Scale multiplies each channel by factor (for fading effects)
func (c RGB) Scale(factor float64) RGB {
	if factor <= 0 {
		return RGBBlack
	}
	if factor >= 1 {
		return c
	}
	return RGB{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
	}
}

// Hex returns the #rrggbb form
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseHex parses #rrggbb into RGB
func ParseHex(s string) (RGB, error) {
	col, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	r, g, b := col.Clamped().RGB255()
	return RGB{R: r, G: g, B: b}, nil
}

func (c RGB) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}
