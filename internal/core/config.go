package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // UI refresh ticks per second
	Seed     int64 // RNG seed for atom placement
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

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the round has ended
	Won      bool // Whether the round ended with every atom found
}

// StepResult is returned by Game.Step() after each input step.
type StepResult struct {
	State GameState
}

// RoundSummary describes a finished round for persistence.
type RoundSummary struct {
	GameID       string
	Atoms        int
	Rays         int
	WrongGuesses int
	Score        int
	Solved       bool
}
