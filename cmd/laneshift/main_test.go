package main

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/lane-shift/internal/config"
	"github.com/vovakirdan/lane-shift/internal/games/laneshift"
	"github.com/vovakirdan/lane-shift/internal/storage"
)

// withFlags restores the package flags after a test changes them.
func withFlags(t *testing.T) {
	t.Helper()
	difficulty, db, cfg, clear, recent := flagDifficulty, flagDBPath, flagConfig, flagClear, flagRecent
	t.Cleanup(func() {
		flagDifficulty, flagDBPath, flagConfig, flagClear, flagRecent = difficulty, db, cfg, clear, recent
	})
}

func TestCommandsReturnSetupErrors(t *testing.T) {
	withFlags(t)
	flagDifficulty = "impossible"

	commands := []struct {
		name string
		run  func() error
	}{
		{"config", func() error { return runConfig(nil, nil) }},
		{"play", func() error { return runPlay(nil, nil) }},
		{"serve", func() error { return runServe(nil, nil) }},
		{"web", func() error { return runWeb(nil, nil) }},
	}

	for _, tc := range commands {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.run(); !errors.Is(err, config.ErrInvalid) {
				t.Errorf("error = %v, expected config.ErrInvalid", err)
			}
		})
	}
}

func TestScoresClear(t *testing.T) {
	withFlags(t)
	flagDBPath = filepath.Join(t.TempDir(), "scores.db")
	flagConfig = ""

	store, err := storage.Open(flagDBPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := store.SaveBestScore(50); err != nil {
		t.Fatalf("SaveBestScore failed: %v", err)
	}
	if err := store.RecordRun(laneshift.RunSummary{Score: 50, Best: 50, Shape: "square", Color: "#4caf50"}); err != nil {
		t.Fatalf("RecordRun failed: %v", err)
	}
	store.Close()

	flagClear = true
	if err := runScores(nil, nil); err != nil {
		t.Fatalf("runScores failed: %v", err)
	}

	store, err = storage.Open(flagDBPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	runs, err := store.RecentRuns(0)
	if err != nil {
		t.Fatalf("RecentRuns failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs after --clear, got %d", len(runs))
	}
	if best, _ := store.BestScore(); best != 50 {
		t.Errorf("BestScore = %d, expected 50", best)
	}
}

func TestScoresMissingDirectory(t *testing.T) {
	withFlags(t)
	blocker := filepath.Join(t.TempDir(), "file")
	store, err := storage.Open(blocker)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	store.Close()

	// A regular file where the database directory should be.
	flagDBPath = filepath.Join(blocker, "scores.db")
	if err := runScores(nil, nil); err == nil {
		t.Error("expected an error for an unusable database path")
	}
}
