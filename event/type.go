package event

// EventType identifies an input event delivered to the game loop
type EventType uint8

const (
	// EventTouch is a press at screen coordinates (X, Y)
	EventTouch EventType = iota + 1

	// EventPause toggles simulation pause
	EventPause

	// EventRestart ends the session and starts a new one
	EventRestart

	// EventQuit ends the game
	EventQuit

	// EventMute toggles sound output
	EventMute
)

var typeNames = map[EventType]string{
	EventTouch:   "touch",
	EventPause:   "pause",
	EventRestart: "restart",
	EventQuit:    "quit",
	EventMute:    "mute",
}

func (t EventType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "unknown"
}

// GameEvent is a value-type input event, X and Y are used by EventTouch only
type GameEvent struct {
	Type EventType
	X, Y int
}

// Touch builds a touch event
func Touch(x, y int) GameEvent {
	return GameEvent{Type: EventTouch, X: x, Y: y}
}
