package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// ToneGenerator renders a pitch sweep from start to end frequency over its duration
// with a short attack and exponential release
type ToneGenerator struct {
	sr        beep.SampleRate
	start     float64
	end       float64
	samples   int
	harmonics bool
	pos       int
	phase     float64
}

// NewPopGenerator creates the rising chirp played for a good touch
func NewPopGenerator(sr beep.SampleRate) *ToneGenerator {
	return &ToneGenerator{sr: sr, start: 520, end: 1240, samples: sr.N(90 * time.Millisecond)}
}

// NewLaunchGenerator creates the soft low whoosh played for a launch
func NewLaunchGenerator(sr beep.SampleRate) *ToneGenerator {
	return &ToneGenerator{sr: sr, start: 90, end: 190, samples: sr.N(220 * time.Millisecond)}
}

// NewGameOverGenerator creates the long falling tone played when the session ends
func NewGameOverGenerator(sr beep.SampleRate) *ToneGenerator {
	return &ToneGenerator{sr: sr, start: 440, end: 110, samples: sr.N(900 * time.Millisecond), harmonics: true}
}

// Stream implements beep.Streamer, it drains after the tone's duration
func (g *ToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.samples {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.samples {
			return i, true
		}
		progress := float64(g.pos) / float64(g.samples)
		freq := g.start + (g.end-g.start)*progress
		g.phase += 2 * math.Pi * freq / float64(g.sr)

		sample := math.Sin(g.phase)
		if g.harmonics {
			sample += 0.4 * math.Sin(2*g.phase)
		}

		attack := math.Min(progress/0.05, 1.0)
		release := math.Exp(-progress * 4)
		sample *= 0.2 * attack * release

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ToneGenerator) Err() error {
	return nil
}

// BuzzGenerator generates a low-pitch buzz sound
type BuzzGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewBuzzGenerator creates a buzz sound generator
func NewBuzzGenerator(sr beep.SampleRate, freq float64) *BuzzGenerator {
	return &BuzzGenerator{
		sr:   sr,
		freq: freq,
	}
}

func (g *BuzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Square-ish wave from odd harmonics for a harsh buzz
		sample := 0.3 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.1 * math.Sin(2*math.Pi*g.freq*3*t)
		sample += 0.06 * math.Sin(2*math.Pi*g.freq*5*t)

		// Fade in over 20ms
		envelope := math.Min(t/0.02, 1.0)
		sample *= envelope * 0.2

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BuzzGenerator) Err() error {
	return nil
}
