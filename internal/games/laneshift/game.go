// Package laneshift implements a three-lane dodging game.
// The player switches lanes to avoid falling obstacle rows while the
// score climbs and the obstacles speed up.
//
// The rules live in pure functions over GameState (Tick, EndGame, Restart,
// Start). Game wraps them for the hosts: it maps input frames to
// operations, persists the best score and renders into a core.Screen.
package laneshift

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lane-shift/internal/config"
	"github.com/vovakirdan/lane-shift/internal/core"
)

// ID is the identifier used for score storage.
const ID = "laneshift"

// BestScoreStore persists the best score between processes.
type BestScoreStore interface {
	BestScore() (int, error)
	SaveBestScore(score int) error
}

// RunSummary describes a finished run for history storage.
type RunSummary struct {
	Score int
	Best  int
	Shape string
	Color string
	Ticks int
}

// RunRecorder stores finished runs.
type RunRecorder interface {
	RecordRun(run RunSummary) error
}

// Haptics gives physical feedback on lane changes where the host
// supports it.
type Haptics interface {
	Pulse(d time.Duration) error
}

// Option configures a Game.
type Option func(*Game)

// WithBestStore sets where the best score is loaded from and saved to.
func WithBestStore(s BestScoreStore) Option {
	return func(g *Game) { g.best = s }
}

// WithRunRecorder sets where finished runs are recorded.
func WithRunRecorder(r RunRecorder) Option {
	return func(g *Game) { g.runs = r }
}

// WithHaptics enables feedback on lane changes.
func WithHaptics(h Haptics) Option {
	return func(g *Game) { g.haptics = h }
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// WithCustomization sets the initial look. Malformed values fall back to
// the configured defaults.
func WithCustomization(c Customization) Option {
	return func(g *Game) { g.look = c.Normalize(DefaultCustomization(g.cfg.Player)) }
}

// Game runs Lane Shift for a host.
type Game struct {
	cfg     config.LaneShiftConfig
	params  Params
	state   GameState
	look    Customization
	rng     *rand.Rand
	runtime core.RuntimeConfig
	paused  bool
	last    *Result

	best    BestScoreStore
	runs    RunRecorder
	haptics Haptics
	logger  *log.Logger
}

// New creates a game from a validated config.
func New(cfg config.LaneShiftConfig, opts ...Option) *Game {
	g := &Game{
		cfg:    cfg,
		params: NewParams(cfg),
		look:   DefaultCustomization(cfg.Player),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.state = NewGameState(g.params, 0, g.look)
	g.rng = rand.New(rand.NewSource(1))
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Lane Shift"
}

// Reset reseeds the game and returns it to an idle state, loading the best
// score from the store. A failing store leaves the best score at zero.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.paused = false
	g.last = nil

	best := g.state.Best
	if g.best != nil {
		stored, err := g.best.BestScore()
		if err != nil {
			g.logger.Warn("could not load best score", "error", err)
		} else {
			best = core.Max(best, stored)
		}
	}
	g.state = NewGameState(g.params, best, g.look)
}

// Customize sets the player's look for the next run. It is ignored while
// a run is in progress. Malformed values fall back to the config defaults.
func (g *Game) Customize(c Customization) bool {
	if g.state.Run.Running {
		return false
	}
	g.look = c.Normalize(DefaultCustomization(g.cfg.Player))
	g.state.Player.Look = g.look
	return true
}

// Look returns the current customization.
func (g *Game) Look() Customization {
	return g.look
}

// Start resets the run and starts it.
func (g *Game) Start() {
	g.state = Start(Restart(g.state, g.params), g.params)
	g.paused = false
	g.last = nil
	g.logger.Debug("run started", "shape", g.look.Shape, "color", g.look.Color)
}

// Restart clears the playfield and run counters without starting a run.
func (g *Game) Restart() {
	g.state = Restart(g.state, g.params)
	g.paused = false
}

// Move shifts the player one lane and pulses haptics.
// Returns whether the lane changed.
func (g *Game) Move(direction int) bool {
	before := g.state.Player.Lane
	g.state.Player = g.state.Player.Move(direction)

	if g.haptics != nil && g.cfg.Input.HapticMillis > 0 {
		d := time.Duration(g.cfg.Input.HapticMillis) * time.Millisecond
		if err := g.haptics.Pulse(d); err != nil {
			g.logger.Debug("haptic feedback unavailable", "error", err)
		}
	}
	return g.state.Player.Lane != before
}

// Step applies the frame's input and advances the simulation by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) {
		g.Restart()
	}
	if in.Has(core.ActionConfirm) && !g.state.Run.Running {
		g.Start()
	}
	if in.Has(core.ActionPause) && g.state.Run.Running {
		g.paused = !g.paused
	}

	var moved bool
	if !g.paused {
		for _, dir := range in.Moves {
			if g.Move(dir) {
				moved = true
			}
		}
	}

	var ended bool
	if g.state.Run.Running && !g.paused {
		var ev Events
		g.state, ev = Tick(g.state, g.params, g.rng)
		if ev.Ended != nil {
			g.finish(*ev.Ended)
			ended = true
		}
	}

	return core.StepResult{State: g.State(), Moved: moved, Ended: ended}
}

// finish persists the outcome of a run. Storage failures are logged and
// otherwise ignored.
func (g *Game) finish(res Result) {
	g.last = &res

	if res.NewBest && g.best != nil {
		if err := g.best.SaveBestScore(res.Best); err != nil {
			g.logger.Warn("could not save best score", "error", err)
		}
	}

	if g.runs != nil {
		run := RunSummary{
			Score: res.Score,
			Best:  res.Best,
			Shape: string(g.look.Shape),
			Color: string(g.look.Color),
			Ticks: g.state.Run.Ticks,
		}
		if err := g.runs.RecordRun(run); err != nil {
			g.logger.Warn("could not record run", "error", err)
		}
	}

	g.logger.Info("run ended", "score", res.Score, "best", res.Best, "new_best", res.NewBest)
}

// LastResult returns the result of the most recent run, or nil if no run
// has ended since the last Start or Reset.
func (g *Game) LastResult() *Result {
	return g.last
}

// State returns the platform view of the game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.state.Run.Score,
		Best:     g.state.Best,
		Running:  g.state.Run.Running,
		GameOver: g.state.Run.Over,
		Paused:   g.paused,
	}
}

// Snapshot returns the current frame in renderer coordinates.
func (g *Game) Snapshot() Snapshot {
	return NewSnapshot(g.state, g.params)
}

// Config returns the config the game was built with.
func (g *Game) Config() config.LaneShiftConfig {
	return g.cfg
}
