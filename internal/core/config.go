package core

import "time"

// RuntimeConfig is handed to games at Reset.
type RuntimeConfig struct {
	ScreenW  int   // screen width in characters
	ScreenH  int   // screen height in characters
	TickRate int   // simulation ticks per second
	Seed     int64 // RNG seed; 0 lets the platform pick one
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// Attempt summarises one run for persistence.
type Attempt struct {
	Phase    string        // furthest boss phase reached, empty if the boss never started
	Duration time.Duration // time spent in the boss fight
	Won      bool
}

// GameState is the status a game reports to the platform.
type GameState struct {
	Score    int
	GameOver bool
	Paused   bool
	Quit     bool     // the game asked the platform to exit
	Attempt  *Attempt // set once the run has ended
}

// StepResult is returned by Game.Step after each tick.
type StepResult struct {
	State GameState
}
