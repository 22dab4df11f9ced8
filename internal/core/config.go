package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic shuffling.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Moves    int  // Accepted moves since the last shuffle
	Won      bool // Whether the win message is showing
	Shuffled bool // Whether the board has been shuffled since start
}

// StepResult is returned by Game.Step() after each handled input.
type StepResult struct {
	State GameState
	// Accepted is true when the input changed the board.
	Accepted bool
	// JustWon is true on the move that raised the win message.
	JustWon bool
}
