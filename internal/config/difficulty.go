package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset is a named opponent setup for the --difficulty flag.
type DifficultyPreset string

const (
	PresetEasy    DifficultyPreset = "easy"    // random computer, unhurried reply
	PresetHard    DifficultyPreset = "hard"    // best-play computer
	PresetInstant DifficultyPreset = "instant" // hard, no thinking pause
)

// Presets lists the accepted preset names.
var Presets = []DifficultyPreset{PresetEasy, PresetHard, PresetInstant}

// ParsePreset validates a preset name.
func ParsePreset(s string) (DifficultyPreset, error) {
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Presets {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown difficulty preset %q", s)
}

// ApplyPreset switches the settings to one-player mode with the preset's
// difficulty and reply delay.
func ApplyPreset(cfg *Settings, preset DifficultyPreset) {
	cfg.Game.Mode = "one_player"

	switch preset {
	case PresetEasy:
		cfg.Game.Difficulty = "easy"
		cfg.AI.DelayMS = 800
	case PresetHard:
		cfg.Game.Difficulty = "hard"
		cfg.AI.DelayMS = 500
	case PresetInstant:
		cfg.Game.Difficulty = "hard"
		cfg.AI.DelayMS = 0
	}
}
