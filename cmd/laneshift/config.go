package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lane-shift/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game config",
	Long: `Print the game config after applying the search order and the
difficulty preset. The output is valid input for --config.

Search order:
  --config path -> ~/.laneshift/configs/laneshift.yaml ->
  ./configs/laneshift.yaml -> built-in defaults`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := gameConfig()
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
