package audio

import (
	"sync/atomic"

	"github.com/lixenwraith/geometry-fighter/engine"
)

// Silent implements engine.Sound without output, counting cues for diagnostics
type Silent struct {
	plays atomic.Int64
}

func (s *Silent) Play(engine.Cue) {
	s.plays.Add(1)
}

// Plays returns the number of cues received
func (s *Silent) Plays() int64 {
	return s.plays.Load()
}
