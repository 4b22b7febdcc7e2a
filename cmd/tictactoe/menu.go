package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tictactoe/internal/config"
	"github.com/vovakirdan/tui-tictactoe/internal/engine"
	"github.com/vovakirdan/tui-tictactoe/internal/platform/tui"
	"github.com/vovakirdan/tui-tictactoe/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Choose board, players and difficulty, then play",
	Long: `Start in interactive setup mode.

Use arrow keys or j/k to pick a board, M to switch between one and two
players and D to change the computer's difficulty. Enter starts the game.
Esc during a game returns to the setup screen.

Controls:
  Up/Down/j/k  - Pick board
  M/Tab        - Players
  D/Left/Right - Difficulty
  Enter/Space  - Start
  Q            - Quit

Examples:
  tictactoe menu
  tictactoe menu --fps 60
  tictactoe menu --config ./tictactoe.yaml`,
	Run: runMenu,
}

// initialSetup preselects the setup screen from the settings.
// Invalid entries fall back to the screen's defaults.
func initialSetup(settings config.Settings) tui.Setup {
	setup := tui.Setup{
		Mode:       engine.ModeOnePlayer,
		Difficulty: engine.DifficultyHard,
	}
	if id, ok := registry.ForGridSize(settings.Game.GridSize); ok {
		setup.Variant = id
	}
	if mode, err := engine.ParseMode(settings.Game.Mode); err == nil {
		setup.Mode = mode
	}
	if d, err := engine.ParseDifficulty(settings.Game.Difficulty); err == nil && d != engine.DifficultyNone {
		setup.Difficulty = d
	}
	return setup
}

func runMenu(_ *cobra.Command, _ []string) {
	settings, err := loadSettings()
	if err != nil {
		fail("%v", err)
	}

	logger, closeLog, err := newLogger("tictactoe", true)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	setup := initialSetup(settings)
	width, height := terminalSize()
	cfg := settings.RuntimeConfig(engine.GameConfig{Mode: setup.Mode, Difficulty: setup.Difficulty}, width, height)
	cfg.Seed = flagSeed

	if err := tui.RunSession(cfg, setup, logger); err != nil {
		closeLog()
		fail("%v", err)
	}
}
