// tictactoe plays tic-tac-toe on 3x3, 5x5 and 7x7 boards in the terminal,
// against the computer or a second player on the same keyboard.
//
// Usage:
//
//	tictactoe variants          - List available boards
//	tictactoe play [board]      - Play a board directly
//	tictactoe menu              - Choose board, players and difficulty interactively
//	tictactoe serve             - Start SSH server for remote play
//	tictactoe http              - Start the JSON HTTP API
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: from config, 30)
//	--seed <value>      - Set RNG seed for reproducible computer moves
//	--config <path>     - Use a specific config file
//	--log-level <level> - debug, info, warn or error
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tictactoe/internal/config"

	// Import games to register them
	_ "github.com/vovakirdan/tui-tictactoe/internal/games/tictactoe"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tictactoe",
	Short: "Tic-tac-toe in your terminal",
	Long: `Tic-tac-toe on 3x3, 5x5 and 7x7 boards.

Boards need 3, 4 and 5 marks in a row to win. Play against the
computer (easy or hard) or against a friend on the same keyboard.

Available commands:
  variants - Show all boards
  play     - Play a board directly
  menu     - Interactive setup screen
  serve    - Start SSH server for remote play
  http     - Start the JSON HTTP API

Examples:
  tictactoe variants
  tictactoe play classic
  tictactoe play grid7 --mode two_player
  tictactoe menu
  tictactoe serve --ssh :2222
  tictactoe http --addr :8080`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (frames per second, 0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(variantsCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(httpCmd)
}

// loadSettings reads the config file and applies the global flags.
func loadSettings() (config.Settings, error) {
	settings, err := config.Load(flagConfig)
	if err != nil {
		return settings, err
	}
	if flagFPS > 0 {
		settings.UI.TickRate = flagFPS
	}
	return settings, nil
}

// newLogger builds the process logger. Without --log-file, terminal games
// discard logs so the alt screen stays clean, and servers log to stderr.
func newLogger(prefix string, interactive bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	var w io.Writer = os.Stderr
	closer := func() {}
	switch {
	case flagLogFile != "":
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if openErr != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", openErr)
		}
		w = f
		closer = func() { f.Close() }
	case interactive:
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closer, nil
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
