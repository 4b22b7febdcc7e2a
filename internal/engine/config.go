package engine

import (
	"fmt"
	"strings"
)

// Mode selects who plays O.
type Mode int

const (
	ModeOnePlayer Mode = iota + 1 // human X vs computer O
	ModeTwoPlayer                 // two humans on one device
)

// String returns the config spelling of the mode.
func (m Mode) String() string {
	switch m {
	case ModeOnePlayer:
		return "one_player"
	case ModeTwoPlayer:
		return "two_player"
	default:
		return "unknown"
	}
}

// ParseMode accepts "one_player"/"1p"/"1" and "two_player"/"2p"/"2".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "one_player", "1p", "1", "single", "cpu":
		return ModeOnePlayer, nil
	case "two_player", "2p", "2", "hotseat":
		return ModeTwoPlayer, nil
	}
	return 0, fmt.Errorf("%w: unknown mode %q", ErrInvalidConfig, s)
}

// Difficulty selects the computer opponent strategy.
type Difficulty int

const (
	DifficultyNone Difficulty = iota
	DifficultyEasy
	DifficultyHard
)

// String returns the config spelling of the difficulty.
func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "easy"
	case DifficultyHard:
		return "hard"
	default:
		return "none"
	}
}

// ParseDifficulty accepts "easy", "hard" and "" (none).
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return DifficultyNone, nil
	case "easy":
		return DifficultyEasy, nil
	case "hard":
		return DifficultyHard, nil
	}
	return DifficultyNone, fmt.Errorf("%w: unknown difficulty %q", ErrInvalidConfig, s)
}

// SupportedGridSizes lists the accepted board sizes.
var SupportedGridSizes = []int{3, 5, 7}

// GameConfig is the frozen setup of a session.
type GameConfig struct {
	GridSize   int
	WinStreak  int
	Mode       Mode
	Difficulty Difficulty
}

// Configure validates a setup choice and derives the win streak.
// Difficulty is required in one-player mode and dropped in two-player mode.
func Configure(gridSize int, mode Mode, difficulty Difficulty) (GameConfig, error) {
	streak := WinStreak(gridSize)
	if streak == 0 {
		return GameConfig{}, fmt.Errorf("%w: grid size %d (want 3, 5 or 7)", ErrInvalidConfig, gridSize)
	}

	switch mode {
	case ModeOnePlayer:
		if difficulty != DifficultyEasy && difficulty != DifficultyHard {
			return GameConfig{}, fmt.Errorf("%w: one-player mode needs a difficulty", ErrInvalidConfig)
		}
	case ModeTwoPlayer:
		difficulty = DifficultyNone
	default:
		return GameConfig{}, fmt.Errorf("%w: unknown mode %d", ErrInvalidConfig, mode)
	}

	return GameConfig{
		GridSize:   gridSize,
		WinStreak:  streak,
		Mode:       mode,
		Difficulty: difficulty,
	}, nil
}

// HumanMark is the mark played from the keyboard in one-player mode.
const HumanMark = X

// AIMark is the computer's mark in one-player mode.
const AIMark = O

// HasAI reports whether the computer plays O.
func (c GameConfig) HasAI() bool {
	return c.Mode == ModeOnePlayer
}

// String returns a short label like "5x5 one_player hard".
func (c GameConfig) String() string {
	if c.HasAI() {
		return fmt.Sprintf("%dx%d %s %s", c.GridSize, c.GridSize, c.Mode, c.Difficulty)
	}
	return fmt.Sprintf("%dx%d %s", c.GridSize, c.GridSize, c.Mode)
}
