package storage

import (
	"sort"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/lane-shift/internal/games/laneshift"
)

// Memory is an in-process store. It is used when the database cannot be
// opened and in tests. Safe for concurrent use.
type Memory struct {
	mu   sync.Mutex
	best int
	runs []RunEntry
	now  func() time.Time
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{now: time.Now}
}

// BestScore returns the best score seen so far.
func (m *Memory) BestScore() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.best, nil
}

// SaveBestScore stores score unless a higher one is already saved.
func (m *Memory) SaveBestScore(score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.best = max(m.best, score)
	return nil
}

// RecordRun implements laneshift.RunRecorder.
func (m *Memory) RecordRun(run laneshift.RunSummary) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.runs = append(m.runs, RunEntry{
		ID:        uuid.NewString(),
		Score:     run.Score,
		Best:      run.Best,
		Shape:     run.Shape,
		Color:     run.Color,
		Ticks:     run.Ticks,
		CreatedAt: m.now(),
	})
	return nil
}

// TopRuns returns the N highest-scoring runs.
func (m *Memory) TopRuns(limit int) ([]RunEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	runs := make([]RunEntry, len(m.runs))
	copy(runs, m.runs)
	sort.SliceStable(runs, func(i, j int) bool { return runs[i].Score > runs[j].Score })
	return head(runs, limit, 10), nil
}

// RecentRuns returns the N most recent runs, newest first.
func (m *Memory) RecentRuns(limit int) ([]RunEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	runs := make([]RunEntry, 0, len(m.runs))
	for i := len(m.runs) - 1; i >= 0; i-- {
		runs = append(runs, m.runs[i])
	}
	return head(runs, limit, 20), nil
}

// Stats returns aggregated statistics over all runs.
func (m *Memory) Stats() (*Stats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stats := &Stats{Runs: len(m.runs), BestScore: m.best}
	var total int
	for _, r := range m.runs {
		total += r.Score
		stats.TotalTicks += int64(r.Ticks)
		stats.BestScore = max(stats.BestScore, r.Score)
		if r.CreatedAt.After(stats.LastPlayed) {
			stats.LastPlayed = r.CreatedAt
		}
	}
	if len(m.runs) > 0 {
		stats.AvgScore = float64(total) / float64(len(m.runs))
	}
	return stats, nil
}

// Close is a no-op.
func (m *Memory) Close() error {
	return nil
}

func head(runs []RunEntry, limit, fallback int) []RunEntry {
	if limit <= 0 {
		limit = fallback
	}
	if len(runs) > limit {
		runs = runs[:limit]
	}
	return runs
}

// Backend is the set of operations the hosts need from a store.
type Backend interface {
	laneshift.BestScoreStore
	laneshift.RunRecorder
	TopRuns(limit int) ([]RunEntry, error)
	RecentRuns(limit int) ([]RunEntry, error)
	Stats() (*Stats, error)
	Close() error
}

var (
	_ Backend = (*Store)(nil)
	_ Backend = (*Memory)(nil)
)

// OpenBackend opens the SQLite store at path, falling back to an in-memory
// store when it cannot be opened.
func OpenBackend(path string, logger *log.Logger) Backend {
	store, err := Open(path)
	if err != nil {
		logger.Warn("score storage unavailable, scores will not persist", "path", path, "error", err)
		return NewMemory()
	}
	return store
}
