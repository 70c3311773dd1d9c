package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/lane-shift/internal/core"
	"github.com/vovakirdan/lane-shift/internal/games/laneshift"
	"github.com/vovakirdan/lane-shift/internal/platform/tui"
	"github.com/vovakirdan/lane-shift/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Open the customization menu and play.

Controls:
  Left/H/A     - Move one lane left
  Right/L/D    - Move one lane right
  Mouse drag   - Swipe left or right
  Enter        - Start
  R            - Restart (back to the menu)
  P            - Pause
  Esc          - Back to menu
  Tab          - Scores (from the menu)
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Slower speed-up, sparser rows
  normal - Config as loaded
  hard   - Faster speed-up, denser rows

Examples:
  laneshift play
  laneshift play --difficulty hard
  laneshift play --seed 42 --log-file /tmp/laneshift.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	gameCfg, err := gameConfig()
	if err != nil {
		return err
	}

	logger, closer, err := fileLogger("laneshift")
	if err != nil {
		return err
	}
	defer closer.Close()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store := storage.OpenBackend(flagDBPath, logger)
	defer store.Close()

	game := laneshift.New(gameCfg,
		laneshift.WithBestStore(store),
		laneshift.WithRunRecorder(store),
		laneshift.WithHaptics(tui.NewBell(os.Stdout)),
		laneshift.WithLogger(logger),
	)

	err = tui.Run(tui.Options{
		Game:  game,
		Store: store,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
