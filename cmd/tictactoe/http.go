package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tictactoe/internal/platform/web"
)

var flagHTTPAddr string

var httpCmd = &cobra.Command{
	Use:   "http",
	Short: "Start the JSON HTTP API",
	Long: `Start an HTTP server exposing games as JSON resources.

Games live in memory and are removed after http.game_ttl_minutes
without a request.

Endpoints:
  POST   /api/games                     {"grid_size": 3, "mode": "one_player", "difficulty": "hard"}
  GET    /api/games/{id}
  POST   /api/games/{id}/moves          {"index": 4}
  POST   /api/games/{id}/reset-round
  POST   /api/games/{id}/reset-session
  DELETE /api/games/{id}

Examples:
  tictactoe http
  tictactoe http --addr :9000`,
	Run: runHTTP,
}

func init() {
	httpCmd.Flags().StringVar(&flagHTTPAddr, "addr", "", "HTTP listen address (default: from config)")
}

func runHTTP(_ *cobra.Command, _ []string) {
	settings, err := loadSettings()
	if err != nil {
		fail("%v", err)
	}
	if flagHTTPAddr != "" {
		settings.HTTP.Address = flagHTTPAddr
	}

	logger, closeLog, err := newLogger("tictactoe-http", false)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	opts := []web.ServiceOption{
		web.WithAIDelay(settings.AIDelay()),
		web.WithTTL(settings.GameTTL()),
		web.WithLogger(logger),
	}
	if flagSeed != 0 {
		opts = append(opts, web.WithSeed(flagSeed))
	}
	svc := web.NewService(opts...)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Starting tic-tac-toe HTTP API on %s\n", settings.HTTP.Address)
	fmt.Println("Press Ctrl+C to stop")

	cfg := web.ServerConfig{
		Address:       settings.HTTP.Address,
		SweepInterval: time.Minute,
	}
	if err := web.Serve(ctx, cfg, svc, logger); err != nil {
		stop()
		closeLog()
		fail("server: %v", err)
	}
}
