package roadrush

// RunState is the mutable record owned exclusively by the per-tick update.
// It is created at Reset and never touched from outside the game.
type RunState struct {
	// PlayerName is the stage registry key of the player sprite.
	// Immutable after Reset.
	PlayerName string

	// Health counts remaining hit points. Never negative, never above its
	// initial value, monotonically non-increasing within a run.
	Health int

	// Lost is the terminal flag. Once true, no further per-tick mutation
	// of the run occurs.
	Lost bool
}
