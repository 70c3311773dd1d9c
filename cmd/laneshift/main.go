// laneshift is a three-lane dodging game for the terminal, SSH and the
// browser.
//
// Usage:
//
//	laneshift play            - Play in this terminal
//	laneshift scores          - Show best score and run history
//	laneshift serve           - Start SSH server for remote play
//	laneshift web             - Start the browser version
//	laneshift config          - Print the effective game config
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.laneshift/scores.db)
//	--config <path>       - Custom game config YAML
//	--difficulty <name>   - Difficulty preset: easy, normal, hard
//	--log-level <level>   - debug, info, warn, error
//	--log-file <path>     - Log destination for the terminal game
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "laneshift",
	Short:         "Lane Shift - dodge the falling rows",
	SilenceUsage:  true,
	SilenceErrors: true,
	Long: `Lane Shift is an endless dodging game. Switch between three lanes to
avoid rows of falling obstacles; the longer you last, the faster they fall.

Available commands:
  play     - Play in this terminal
  scores   - View best score and run history
  serve    - Start SSH server for remote play
  web      - Serve the browser version
  config   - Print the effective game config

Examples:
  laneshift play
  laneshift play --difficulty hard
  laneshift serve --ssh :2222
  laneshift web --addr :8080
  laneshift config > ~/.laneshift/configs/laneshift.yaml`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.laneshift/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file for the terminal game (default: discard)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(webCmd)
	rootCmd.AddCommand(configCmd)
}
