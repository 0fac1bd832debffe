package render

import (
	"context"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/geometry-fighter/event"
)

// InputTranslator maps tcell events to game events
// Mouse touches fire on the button press edge only, drags do not repeat
type InputTranslator struct {
	buttonDown bool
}

// Translate returns the game event for ev, false if ev has no meaning to the game
func (t *InputTranslator) Translate(ev tcell.Event) (event.GameEvent, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return event.GameEvent{Type: event.EventQuit}, true
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return event.GameEvent{Type: event.EventQuit}, true
			case 'p', 'P', ' ':
				return event.GameEvent{Type: event.EventPause}, true
			case 'r', 'R':
				return event.GameEvent{Type: event.EventRestart}, true
			case 'm', 'M':
				return event.GameEvent{Type: event.EventMute}, true
			}
		}

	case *tcell.EventMouse:
		pressed := ev.Buttons()&tcell.Button1 != 0
		wasDown := t.buttonDown
		t.buttonDown = pressed
		if pressed && !wasDown {
			x, y := ev.Position()
			return event.Touch(x, y), true
		}
	}
	return event.GameEvent{}, false
}

// PollInput forwards screen input to events until ctx is done or the screen is finalized
// Runs on its own goroutine, it only pushes to the queue
func PollInput(ctx context.Context, screen tcell.Screen, events *event.EventQueue) error {
	var tr InputTranslator
	for {
		if ctx.Err() != nil {
			return nil
		}
		ev := screen.PollEvent()
		if ev == nil {
			// Fini was called
			return nil
		}
		if _, ok := ev.(*tcell.EventResize); ok {
			screen.Sync()
			continue
		}
		if gev, ok := tr.Translate(ev); ok {
			events.Push(gev)
		}
	}
}
