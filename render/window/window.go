// Package window runs the game in a desktop or mobile window through ebiten
package window

import (
	"image"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/lixenwraith/geometry-fighter/component"
	"github.com/lixenwraith/geometry-fighter/core"
	"github.com/lixenwraith/geometry-fighter/engine"
	"github.com/lixenwraith/geometry-fighter/event"
	"github.com/lixenwraith/geometry-fighter/parameter"
	"github.com/lixenwraith/geometry-fighter/render"
)

var (
	rgbBackground = core.RGB{R: 10, G: 10, B: 30}
	ringWidth     = float32(4)
)

// Window implements ebiten.Game over an engine.Game
// Update drives one tick per frame, Draw renders the world the tick left behind
type Window struct {
	game      *engine.Game
	projector *render.Projector

	width, height int
	touchIDs      []ebiten.TouchID
	white         *ebiten.Image

	mu  sync.Mutex
	hud engine.HUD
}

// New creates a window with a logical size of width x height pixels
func New(game *engine.Game, projector *render.Projector, width, height int) *Window {
	w := &Window{
		game:      game,
		projector: projector,
		width:     width,
		height:    height,
	}
	projector.SetViewport(render.Viewport{Width: width, Height: height})
	return w
}

// UpdateHUD implements engine.Display
func (w *Window) UpdateHUD(h engine.HUD) {
	w.mu.Lock()
	w.hud = h
	w.mu.Unlock()
}

// Update implements ebiten.Game
func (w *Window) Update() error {
	w.pollInput()
	w.game.Step()
	if w.game.Done() {
		return ebiten.Termination
	}
	return nil
}

func (w *Window) pollInput() {
	q := w.game.Events

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		q.Push(event.Touch(x, y))
	}
	w.touchIDs = inpututil.AppendJustPressedTouchIDs(w.touchIDs[:0])
	for _, id := range w.touchIDs {
		x, y := ebiten.TouchPosition(id)
		q.Push(event.Touch(x, y))
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape), inpututil.IsKeyJustPressed(ebiten.KeyQ):
		q.Push(event.GameEvent{Type: event.EventQuit})
	case inpututil.IsKeyJustPressed(ebiten.KeyP), inpututil.IsKeyJustPressed(ebiten.KeySpace):
		q.Push(event.GameEvent{Type: event.EventPause})
	case inpututil.IsKeyJustPressed(ebiten.KeyR), inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight):
		q.Push(event.GameEvent{Type: event.EventRestart})
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		q.Push(event.GameEvent{Type: event.EventMute})
	}
}

// Draw implements ebiten.Game
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(toColor(rgbBackground))
	w.drawParticles(screen)
	for _, s := range w.projector.Refresh() {
		w.drawSprite(screen, s)
	}

	w.mu.Lock()
	hud := w.hud
	w.mu.Unlock()
	w.drawHUD(screen, hud)
}

// Layout implements ebiten.Game, the logical screen is fixed and scaled by ebiten
func (w *Window) Layout(int, int) (int, int) {
	return w.width, w.height
}

func (w *Window) drawParticles(screen *ebiten.Image) {
	world := w.game.World
	cam := w.projector.Camera()
	vp := w.projector.Viewport()
	for _, e := range world.Particles.All() {
		p, ok := world.Particles.Get(e)
		if !ok {
			continue
		}
		x, y, depth, ok := cam.Project(p.Position, vp)
		if !ok {
			continue
		}
		_, r := cam.ScaleRadius(0.05, depth, vp)
		c := p.Color.Fade(rgbBackground, p.Progress())
		vector.DrawFilledCircle(screen, float32(x), float32(y), float32(max(r, 1)), toColor(c), true)
	}
}

func (w *Window) drawSprite(screen *ebiten.Image, s render.Sprite) {
	clr := toColor(s.Shape.Color)
	x, y, r := float32(s.X), float32(s.Y), float32(s.RY)

	switch {
	case s.Shape.Kind == component.ShapeSphere:
		vector.DrawFilledCircle(screen, x, y, r, clr, true)
	case render.IsRound(s.Shape.Kind):
		vector.StrokeCircle(screen, x, y, r-ringWidth/2, ringWidth, clr, true)
	default:
		w.fillPolygon(screen, s.X, s.Y, render.Outline(s.Shape, s.RY, s.Angle), s.Shape.Color)
	}
}

func (w *Window) fillPolygon(screen *ebiten.Image, cx, cy float64, pts []render.Point, c core.RGB) {
	if len(pts) < 3 {
		return
	}
	var path vector.Path
	path.MoveTo(float32(cx+pts[0].X), float32(cy+pts[0].Y))
	for _, p := range pts[1:] {
		path.LineTo(float32(cx+p.X), float32(cy+p.Y))
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR = float32(c.R) / 255
		vs[i].ColorG = float32(c.G) / 255
		vs[i].ColorB = float32(c.B) / 255
		vs[i].ColorA = 1
	}
	screen.DrawTriangles(vs, is, w.whiteImage(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func (w *Window) whiteImage() *ebiten.Image {
	if w.white == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		w.white = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return w.white
}

func (w *Window) drawHUD(screen *ebiten.Image, h engine.HUD) {
	face := basicfont.Face7x13
	pad := parameter.WindowHUDPadding
	line := render.FormatHUD(h, w.width/face.Advance-2)
	text.Draw(screen, line, face, pad, pad+face.Ascent, color.White)

	var overlay string
	switch {
	case h.Over:
		overlay = parameter.HUDGameOverText
	case h.Paused:
		overlay = parameter.HUDPausedText
	}
	if overlay != "" {
		x := render.Centered(overlay, w.width/face.Advance) * face.Advance
		text.Draw(screen, overlay, face, x, w.height/2, toColor(render.RgbGameOver))
	}
}

func toColor(c core.RGB) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}
}
