package render

import (
	"math"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/geometry-fighter/component"
	"github.com/lixenwraith/geometry-fighter/core"
	"github.com/lixenwraith/geometry-fighter/engine"
	"github.com/lixenwraith/geometry-fighter/parameter"
)

// Terminal palette
var (
	RgbBackground = core.RGB{R: 12, G: 12, B: 24}
	RgbHUDBar     = core.RGB{R: 40, G: 40, B: 70}
	RgbHUDText    = core.RGBWhite
	RgbGameOver   = core.RGBRed
)

// hudRows is the number of rows reserved for the status line
const hudRows = 1

// ringHole is the normalized inner radius left empty for ring shapes
const ringHole = 0.35

var shapeGlyphs = [component.ShapeKindCount]rune{
	component.ShapeBox:      '#',
	component.ShapeSphere:   'O',
	component.ShapePyramid:  '^',
	component.ShapeTorus:    'o',
	component.ShapeCapsule:  '0',
	component.ShapeCylinder: '=',
	component.ShapeCone:     'A',
	component.ShapeTube:     '@',
}

func glyphFor(k component.ShapeKind) rune {
	if k < component.ShapeKindCount {
		return shapeGlyphs[k]
	}
	return '#'
}

func isRing(k component.ShapeKind) bool {
	return k == component.ShapeTorus || k == component.ShapeTube
}

// Color converts to a tcell color
func Color(c core.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// TerminalRenderer draws the scene and HUD to a tcell screen
// UpdateHUD may be called from the tick goroutine, Render from the same goroutine after the tick
type TerminalRenderer struct {
	screen    tcell.Screen
	world     *engine.World
	projector *Projector

	mu  sync.Mutex
	hud engine.HUD
}

// NewTerminalRenderer creates a renderer over screen
func NewTerminalRenderer(screen tcell.Screen, world *engine.World, projector *Projector) *TerminalRenderer {
	return &TerminalRenderer{
		screen:    screen,
		world:     world,
		projector: projector,
	}
}

// UpdateHUD implements engine.Display
func (r *TerminalRenderer) UpdateHUD(h engine.HUD) {
	r.mu.Lock()
	r.hud = h
	r.mu.Unlock()
}

// Render draws one frame and refreshes the projector used for hit tests
func (r *TerminalRenderer) Render() {
	width, height := r.screen.Size()
	r.projector.SetViewport(Viewport{Width: width, Height: height - hudRows, Top: hudRows})
	sprites := r.projector.Refresh()

	bg := tcell.StyleDefault.Background(Color(RgbBackground))
	r.screen.SetStyle(bg)
	r.screen.Clear()

	r.drawParticles(width, height, bg)
	for _, s := range sprites {
		r.drawSprite(s, width, height, bg)
	}

	r.mu.Lock()
	hud := r.hud
	r.mu.Unlock()

	r.drawHUD(hud, width)
	if hud.Over {
		r.drawOverlay(parameter.HUDGameOverText, RgbGameOver, width, height, bg)
	} else if hud.Paused {
		r.drawOverlay(parameter.HUDPausedText, RgbHUDText, width, height, bg)
	}

	r.screen.Show()
}

func (r *TerminalRenderer) drawParticles(width, height int, bg tcell.Style) {
	cam := r.projector.Camera()
	vp := r.projector.Viewport()
	for _, e := range r.world.Particles.All() {
		p, ok := r.world.Particles.Get(e)
		if !ok {
			continue
		}
		sx, sy, _, ok := cam.Project(p.Position, vp)
		if !ok {
			continue
		}
		x, y := int(math.Floor(sx)), int(math.Floor(sy))
		if x < 0 || x >= width || y < hudRows || y >= height {
			continue
		}
		color := p.Color.Fade(RgbBackground, p.Progress())
		ch := '.'
		if p.Kind == component.ParticleSpark {
			ch = '*'
		}
		r.screen.SetContent(x, y, ch, nil, bg.Foreground(Color(color)))
	}
}

func (r *TerminalRenderer) drawSprite(s Sprite, width, height int, bg tcell.Style) {
	glyph := glyphFor(s.Shape.Kind)
	ring := isRing(s.Shape.Kind)
	// spin shows as a rotating highlight on the shape face
	hx, hy := math.Cos(s.Angle), math.Sin(s.Angle)

	x0 := int(math.Floor(s.X - s.RX))
	x1 := int(math.Ceil(s.X + s.RX))
	y0 := int(math.Floor(s.Y - s.RY))
	y1 := int(math.Ceil(s.Y + s.RY))
	for y := max(y0, hudRows); y <= y1 && y < height; y++ {
		for x := max(x0, 0); x <= x1 && x < width; x++ {
			nx := (float64(x) + 0.5 - s.X) / s.RX
			ny := (float64(y) + 0.5 - s.Y) / s.RY
			d := nx*nx + ny*ny
			if d > 1 || (ring && d < ringHole) {
				continue
			}
			light := 0.75 + 0.25*(nx*hx+ny*hy)
			color := s.Shape.Color.Scale(light)
			r.screen.SetContent(x, y, glyph, nil, bg.Foreground(Color(color)))
		}
	}
}

func (r *TerminalRenderer) drawHUD(h engine.HUD, width int) {
	style := tcell.StyleDefault.Background(Color(RgbHUDBar)).Foreground(Color(RgbHUDText))
	drawText(r.screen, 0, 0, FormatHUD(h, width), style)
}

func (r *TerminalRenderer) drawOverlay(text string, color core.RGB, width, height int, bg tcell.Style) {
	y := hudRows + (height-hudRows)/2
	text = FitWidth(text, min(width, runewidth.StringWidth(text)))
	drawText(r.screen, Centered(text, width), y, text, bg.Foreground(Color(color)).Bold(true))
}

func drawText(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	for _, ch := range s {
		screen.SetContent(x, y, ch, nil, style)
		x += runewidth.RuneWidth(ch)
	}
}
