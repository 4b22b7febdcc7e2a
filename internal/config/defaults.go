package config

import (
	_ "embed"
)

//go:embed defaults/tictactoe.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in settings, used when even the embedded
// YAML cannot be parsed.
func DefaultConfig() Settings {
	return Settings{
		Game: GameSettings{
			GridSize:   3,
			Mode:       "one_player",
			Difficulty: "hard",
		},
		AI: AISettings{
			DelayMS: 500,
		},
		UI: UISettings{
			TickRate: 30,
		},
		SSH: SSHSettings{
			Address:            ":23234",
			IdleTimeoutMinutes: 30,
		},
		HTTP: HTTPSettings{
			Address:        ":8080",
			GameTTLMinutes: 60,
		},
	}
}

// DefaultYAML returns the embedded default settings file.
func DefaultYAML() []byte {
	return defaultYAML
}
