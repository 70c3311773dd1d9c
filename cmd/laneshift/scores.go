package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lane-shift/internal/storage"
)

var (
	flagRecent bool
	flagClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show best score and run history",
	Long: `Display the best score and the top 10 runs.

Examples:
  laneshift scores
  laneshift scores --recent
  laneshift scores --clear    # Forget the run history, keep the best score`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "List the most recent runs instead of the best")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the run history (the best score is kept)")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(); err != nil {
			return fmt.Errorf("clearing runs: %w", err)
		}
		fmt.Println("Run history cleared.")
	}

	stats, err := store.Stats()
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}

	var runs []storage.RunEntry
	title := "Top runs"
	if flagRecent {
		title = "Recent runs"
		runs, err = store.RecentRuns(10)
	} else {
		runs, err = store.TopRuns(10)
	}
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}

	fmt.Printf("Lane Shift - Best: %d  (%d runs, avg %.1f)\n", stats.BestScore, stats.Runs, stats.AvgScore)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'laneshift play' to set the first high score!")
		return nil
	}

	fmt.Println(title)
	fmt.Printf("  %-4s  %-8s  %-10s  %-8s  %s\n", "Rank", "Score", "Shape", "Color", "Date")
	fmt.Printf("  %-4s  %-8s  %-10s  %-8s  %s\n", "----", "-----", "-----", "-----", "----")
	for i, r := range runs {
		fmt.Fprintf(os.Stdout, "  %-4d  %-8d  %-10s  %-8s  %s\n",
			i+1, r.Score, r.Shape, r.Color, r.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
