package roadrush

// Effects receives the audio side effects the game triggers. The platform
// plugs in a real speaker-backed implementation; tests use a recorder.
type Effects interface {
	// StartMusic begins (or restarts) the looping background music.
	StartMusic()

	// StopMusic halts the background music. Fired once on game over.
	StopMusic()

	// PlayImpact plays the one-shot collision sound.
	PlayImpact()

	// PlayGameOver plays the one-shot end-of-run jingle.
	PlayGameOver()
}

// NopEffects discards all audio side effects. Used when no audio device is
// available and as the default sink before the platform attaches one.
type NopEffects struct{}

func (NopEffects) StartMusic()   {}
func (NopEffects) StopMusic()    {}
func (NopEffects) PlayImpact()   {}
func (NopEffects) PlayGameOver() {}
