package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tictactoe/internal/engine"
	"github.com/vovakirdan/tui-tictactoe/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the tic-tac-toe SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own setup screen and its own game.
Connections are never paired: two-player mode means two people
sharing one terminal.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.tictactoe/host_key

Examples:
  tictactoe serve                           # Listen on :23234 with auto-generated key
  tictactoe serve --ssh :2222               # Listen on port 2222
  tictactoe serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port, default: from config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes before disconnecting (0 = from config)")
}

func runServe(_ *cobra.Command, _ []string) {
	settings, err := loadSettings()
	if err != nil {
		fail("%v", err)
	}
	if flagSSHAddr != "" {
		settings.SSH.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		settings.SSH.HostKeyPath = flagHostKey
	}
	if flagIdleTimeout > 0 {
		settings.SSH.IdleTimeoutMinutes = flagIdleTimeout
	}

	logger, closeLog, err := newLogger("tictactoe-ssh", false)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	setup := initialSetup(settings)
	rc := settings.RuntimeConfig(engine.GameConfig{Mode: setup.Mode, Difficulty: setup.Difficulty}, 0, 0)
	rc.Seed = flagSeed

	cfg := tui.SSHServerConfig{
		Address:     settings.SSH.Address,
		HostKeyPath: settings.SSH.HostKeyPath,
		IdleTimeout: settings.SSHIdleTimeout(),
		Runtime:     rc,
		Initial:     setup,
	}

	server, err := tui.NewSSHServer(cfg, logger)
	if err != nil {
		fail("creating server: %v", err)
	}

	fmt.Printf("Starting tic-tac-toe SSH server on %s\n", cfg.Address)
	fmt.Printf("Connect with: ssh localhost -p %s\n", portOf(cfg.Address))
	fmt.Println("Press Ctrl+C to stop")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.ListenAndServe(ctx); err != nil {
		stop()
		closeLog()
		fail("server: %v", err)
	}
}

// portOf returns the port part of a host:port address.
func portOf(addr string) string {
	if _, port, err := net.SplitHostPort(addr); err == nil {
		return port
	}
	return addr
}
