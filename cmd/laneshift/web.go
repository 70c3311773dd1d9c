package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lane-shift/internal/platform/web"
	"github.com/vovakirdan/lane-shift/internal/storage"
)

var flagWebAddr string

var webCmd = &cobra.Command{
	Use:   "web",
	Short: "Serve the browser version",
	Long: `Start an HTTP server with the browser client. The game runs on the
server; every browser tab gets its own run over a websocket.

The client works offline after the first visit (service worker cache).

Examples:
  laneshift web
  laneshift web --addr 127.0.0.1:9000`,
	Args: cobra.NoArgs,
	RunE: runWeb,
}

func init() {
	webCmd.Flags().StringVar(&flagWebAddr, "addr", ":8080", "HTTP listen address (host:port)")
}

func runWeb(_ *cobra.Command, _ []string) error {
	gameCfg, err := gameConfig()
	if err != nil {
		return err
	}

	logger, err := newLogger(os.Stderr, "laneshift-web")
	if err != nil {
		return err
	}

	store := storage.OpenBackend(flagDBPath, logger)
	defer store.Close()

	cfg := web.DefaultConfig()
	cfg.Address = flagWebAddr
	cfg.TickRate = flagFPS
	cfg.Game = gameCfg

	server, err := web.New(cfg, store, logger)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Serving Lane Shift on http://localhost%s\n", cfg.Address)
	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}
