package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tictactoe/internal/config"
	"github.com/vovakirdan/tui-tictactoe/internal/platform/tui"
	"github.com/vovakirdan/tui-tictactoe/internal/registry"
)

var (
	flagMode       string
	flagDifficulty string
	flagDelayMS    int
	flagCoords     bool
)

var playCmd = &cobra.Command{
	Use:   "play [board]",
	Short: "Play a board",
	Long: `Start playing on the given board, or on the config's grid size.

Controls:
  Arrows/WASD  - Move cursor
  Enter/Space  - Place mark (mouse clicks work too)
  R            - Next round (scores kept)
  N            - New game (scores cleared)
  ?            - More keys
  Q/Ctrl+C     - Quit

Difficulty presets (one-player):
  easy    - Random computer
  hard    - Best-play computer (minimax on 3x3)
  instant - Hard, without the thinking pause

Examples:
  tictactoe play
  tictactoe play grid5 --difficulty easy
  tictactoe play grid7 --mode two_player
  tictactoe play classic --delay 0 --coords`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagMode, "mode", "", "Players: one_player or two_player (default: from config)")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, hard, instant")
	playCmd.Flags().IntVar(&flagDelayMS, "delay", -1, "Computer thinking delay in ms (-1 = from config)")
	playCmd.Flags().BoolVar(&flagCoords, "coords", false, "Show row and column labels")
}

// applyPlayFlags layers the play flags over the loaded settings.
func applyPlayFlags(settings *config.Settings) error {
	if flagDifficulty != "" {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return err
		}
		config.ApplyPreset(settings, preset)
	}
	if flagMode != "" {
		settings.Game.Mode = flagMode
	}
	if flagDelayMS >= 0 {
		settings.AI.DelayMS = flagDelayMS
	}
	if flagCoords {
		settings.UI.ShowCoordinates = true
	}
	return nil
}

func runPlay(_ *cobra.Command, args []string) {
	settings, err := loadSettings()
	if err != nil {
		fail("%v", err)
	}
	if err := applyPlayFlags(&settings); err != nil {
		fail("%v", err)
	}

	variantID := ""
	if len(args) == 1 {
		variantID = args[0]
		if !registry.Exists(variantID) {
			fmt.Fprintf(os.Stderr, "Error: unknown board %q\n", variantID)
			fmt.Fprintln(os.Stderr, "Run 'tictactoe variants' to see available boards.")
			os.Exit(1)
		}
	} else {
		id, ok := registry.ForGridSize(settings.Game.GridSize)
		if !ok {
			fail("no board with grid size %d", settings.Game.GridSize)
		}
		variantID = id
	}

	game, err := registry.Create(variantID)
	if err != nil {
		fail("creating game: %v", err)
	}

	// The board comes from the variant; validate the rest against it.
	settings.Game.GridSize = game.GridSize()
	gc, err := settings.GameConfig()
	if err != nil {
		fail("%v", err)
	}

	logger, closeLog, err := newLogger("tictactoe", true)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	width, height := terminalSize()
	cfg := settings.RuntimeConfig(gc, width, height)
	cfg.Seed = flagSeed

	if err := tui.Run(game, cfg, logger); err != nil {
		closeLog()
		fail("running game: %v", err)
	}
}
