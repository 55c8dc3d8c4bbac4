package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this for frame pacing and deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in characters (0 for graphical backends)
	ScreenH  int   // Terminal height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 10,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Status represents the current state of a game as seen by the platform.
type Status struct {
	Score    int  // Current score (snake length)
	Ticks    int  // Simulation ticks run so far
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	Status Status
	Ate    bool // The target was consumed this tick
	Died   bool // The game ended this tick
}

// GameOverFunc is called by platform backends once per finished game.
type GameOverFunc func(gameID string, st Status)
