// Package config provides YAML-based settings loading for the terminal,
// SSH and HTTP front ends.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-tictactoe/internal/core"
	"github.com/vovakirdan/tui-tictactoe/internal/engine"
)

// Settings is the whole tictactoe.yaml file.
type Settings struct {
	Game GameSettings `yaml:"game"`
	AI   AISettings   `yaml:"ai"`
	UI   UISettings   `yaml:"ui"`
	SSH  SSHSettings  `yaml:"ssh"`
	HTTP HTTPSettings `yaml:"http"`
}

// GameSettings selects the default match.
type GameSettings struct {
	GridSize   int    `yaml:"grid_size"`
	Mode       string `yaml:"mode"`       // "one_player" or "two_player"
	Difficulty string `yaml:"difficulty"` // "easy" or "hard"
}

// AISettings tunes the computer opponent.
type AISettings struct {
	DelayMS int `yaml:"delay_ms"`
}

// UISettings tunes the terminal front end.
type UISettings struct {
	TickRate        int  `yaml:"tick_rate"`
	ShowCoordinates bool `yaml:"show_coordinates"`
}

// SSHSettings configures `tictactoe serve`.
type SSHSettings struct {
	Address            string `yaml:"address"`
	HostKeyPath        string `yaml:"host_key_path"`
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
}

// HTTPSettings configures `tictactoe http`.
type HTTPSettings struct {
	Address        string `yaml:"address"`
	GameTTLMinutes int    `yaml:"game_ttl_minutes"`
}

// GameConfig validates the game section through the engine.
func (s Settings) GameConfig() (engine.GameConfig, error) {
	mode, err := engine.ParseMode(s.Game.Mode)
	if err != nil {
		return engine.GameConfig{}, fmt.Errorf("config: game.mode: %w", err)
	}
	var difficulty engine.Difficulty
	if mode == engine.ModeOnePlayer {
		difficulty, err = engine.ParseDifficulty(s.Game.Difficulty)
		if err != nil {
			return engine.GameConfig{}, fmt.Errorf("config: game.difficulty: %w", err)
		}
	}
	gc, err := engine.Configure(s.Game.GridSize, mode, difficulty)
	if err != nil {
		return engine.GameConfig{}, fmt.Errorf("config: %w", err)
	}
	return gc, nil
}

// AIDelay returns ai.delay_ms as a duration. Negative values mean no delay.
func (s Settings) AIDelay() time.Duration {
	return time.Duration(max(0, s.AI.DelayMS)) * time.Millisecond
}

// SSHIdleTimeout returns ssh.idle_timeout_minutes as a duration.
func (s Settings) SSHIdleTimeout() time.Duration {
	return time.Duration(s.SSH.IdleTimeoutMinutes) * time.Minute
}

// GameTTL returns how long an idle HTTP game is kept.
func (s Settings) GameTTL() time.Duration {
	return time.Duration(s.HTTP.GameTTLMinutes) * time.Minute
}

// RuntimeConfig builds the platform config for a validated game setup.
func (s Settings) RuntimeConfig(gc engine.GameConfig, screenW, screenH int) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.ScreenW = screenW
	cfg.ScreenH = screenH
	if s.UI.TickRate > 0 {
		cfg.TickRate = s.UI.TickRate
	}
	cfg.Mode = gc.Mode
	cfg.Difficulty = gc.Difficulty
	cfg.AIDelay = s.AIDelay()
	cfg.ShowCoordinates = s.UI.ShowCoordinates
	return cfg
}
