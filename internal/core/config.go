package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed for deterministic gameplay
	Clock    Clock // Wall clock for time limits; nil means SystemClock
}

// DefaultConfig returns a RuntimeConfig sized for the word fall playfield.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  60,
		ScreenH:  25,
		TickRate: 10,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score     int  // Current score
	Lives     int  // Remaining lives
	Remaining int  // Seconds left on the game timer
	GameOver  bool // Whether the game has ended
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState

	// Hold asks the platform to keep the current frame on screen this much
	// longer before the next tick (hit flashes).
	Hold time.Duration
}
