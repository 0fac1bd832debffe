// Package audio plays the game's sound cues through the beep speaker
package audio

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/geometry-fighter/engine"
)

const (
	sampleRate = beep.SampleRate(48000)

	// Name is the service name of the sound manager
	Name = "audio"
)

// SoundManager plays cues on a shared mixer
// It implements engine.Sound and service.Service, every method is safe without an audio device
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      *effects.Volume
	initialized bool // Speaker open
	ready       bool // Init ran, unmuting may open the speaker later
	muted       bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager(muted bool) *SoundManager {
	mixer := &beep.Mixer{}
	return &SoundManager{
		mixer:  mixer,
		volume: &effects.Volume{Streamer: mixer, Base: 2, Volume: 0, Silent: muted},
		muted:  muted,
	}
}

func (sm *SoundManager) Name() string           { return Name }
func (sm *SoundManager) Dependencies() []string { return nil }
func (sm *SoundManager) Optional() bool         { return true }

// Init sets up the speaker, a missing device is an error
func (sm *SoundManager) Init() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.ready = true
	if sm.initialized || sm.muted {
		return nil
	}
	return sm.openLocked()
}

func (sm *SoundManager) openLocked() error {
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	speaker.Play(sm.volume)
	sm.initialized = true
	log.Printf("audio: speaker ready at %d Hz", sampleRate)
	return nil
}

// Start implements service.Service, playback runs on the speaker goroutine
func (sm *SoundManager) Start(context.Context) error {
	return nil
}

// Stop silences and closes the speaker
func (sm *SoundManager) Stop() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.ready = false
	if !sm.initialized {
		return nil
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
	return nil
}

// SetMuted toggles output without dropping the device
// Unmuting a manager that started muted opens the speaker on first use
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.setMutedLocked(muted)
}

// ToggleMute flips mute state and returns the new state
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.setMutedLocked(!sm.muted)
	return sm.muted
}

func (sm *SoundManager) setMutedLocked(muted bool) {
	sm.muted = muted
	if !muted && sm.ready && !sm.initialized {
		if err := sm.openLocked(); err != nil {
			log.Printf("audio: %v", err)
		}
	}
	if sm.initialized {
		speaker.Lock()
		sm.volume.Silent = muted
		speaker.Unlock()
	} else {
		sm.volume.Silent = muted
	}
}

// IsMuted reports mute state
func (sm *SoundManager) IsMuted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// Play implements engine.Sound, it never blocks on the device
func (sm *SoundManager) Play(cue engine.Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}
	s := Streamer(cue)
	if s == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// Streamer returns a fresh finite streamer for cue, nil for unknown cues
func Streamer(cue engine.Cue) beep.Streamer {
	switch cue {
	case engine.CueLaunch:
		return NewLaunchGenerator(sampleRate)
	case engine.CuePop:
		return NewPopGenerator(sampleRate)
	case engine.CueBuzz:
		return beep.Take(sampleRate.N(150*time.Millisecond), NewBuzzGenerator(sampleRate, 120))
	case engine.CueGameOver:
		return NewGameOverGenerator(sampleRate)
	default:
		return nil
	}
}
