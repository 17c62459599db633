// Package audio synthesizes the game's music and sound effects with beep.
// No audio assets ship with the game; every sound is generated.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// Manager owns the speaker and mixes the background music with one-shot
// effects. It implements the game's Effects contract.
type Manager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	music       *beep.Ctrl
	initialized bool
}

// NewManager creates an uninitialized audio manager. Call Initialize
// before use; an uninitialized manager silently drops all playback, which
// keeps the game playable on machines without an audio device.
func NewManager() *Manager {
	return &Manager{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the mixer.
func (m *Manager) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// Cleanup pauses the music and clears the mixer. The speaker itself has
// no close operation in beep; an empty mixer is silent.
func (m *Manager) Cleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}

	if m.music != nil {
		m.music.Paused = true
	}
	m.mixer.Clear()
	m.initialized = false
}

// StartMusic starts the looping background track, or resumes it after a
// StopMusic. Called again while playing it does nothing.
func (m *Manager) StartMusic() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}

	if m.music != nil {
		m.music.Paused = false
		return
	}

	ctrl := &beep.Ctrl{Streamer: NewDrivingBeatGenerator(sampleRate), Paused: false}
	m.music = ctrl
	m.mixer.Add(ctrl)
}

// StopMusic pauses the background track.
func (m *Manager) StopMusic() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.music != nil {
		m.music.Paused = true
	}
}

// PlayImpact plays the short collision thud.
func (m *Manager) PlayImpact() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}

	streamer := beep.Take(sampleRate.N(time.Millisecond*200), NewImpactGenerator(sampleRate))
	m.mixer.Add(streamer)
}

// PlayGameOver plays the end-of-run jingle.
func (m *Manager) PlayGameOver() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}

	streamer := beep.Take(sampleRate.N(time.Millisecond*900), NewJingleGenerator(sampleRate))
	m.mixer.Add(streamer)
}
