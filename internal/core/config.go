package core

import (
	"time"

	"github.com/vovakirdan/tui-tictactoe/internal/engine"
)

// RuntimeConfig is passed to games at initialization.
// Screen size drives layout; the match fields select the opponent.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed for the computer opponent

	Mode            engine.Mode
	Difficulty      engine.Difficulty
	AIDelay         time.Duration // pause before the computer replies
	ShowCoordinates bool          // draw column letters and row numbers
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:    80,
		ScreenH:    24,
		TickRate:   30,
		Seed:       0, // 0 means use current time in platform layer
		Mode:       engine.ModeOnePlayer,
		Difficulty: engine.DifficultyHard,
		AIDelay:    500 * time.Millisecond,
	}
}

// TickInterval returns the simulated time covered by one Step.
func (c RuntimeConfig) TickInterval() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 30
	}
	return time.Second / time.Duration(c.TickRate)
}

// GameState is returned by Game.State() to communicate status to the platform.
type GameState struct {
	Scores   engine.Scores
	GameOver bool
	Status   string // e.g. "Turn for X", "O Won!"
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	// Events lists every placement accepted during the tick, in order.
	Events []engine.Event
}
