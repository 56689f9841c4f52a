package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses it to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is what the platform reads back from the game after each tick.
type GameState struct {
	Score    int  // Current score
	GameOver bool // No legal move remains
	Won      bool // The win tile has been reached at least once
	CanUndo  bool // Whether an undo is currently possible
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState

	// Committed is true when a move finished its full effect this tick
	// (removals applied, new tile spawned, terminal check done). The
	// platform persists the game state when it sees this.
	Committed bool

	// Ended is true on the exact tick the game transitioned to game over.
	// Reported once per game; the platform records the final score.
	Ended bool
}
