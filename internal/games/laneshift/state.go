package laneshift

import (
	"github.com/vovakirdan/lane-shift/internal/config"
)

// RunState holds the transient counters of one run.
type RunState struct {
	Score      int
	Speed      float64
	SpawnTimer int
	Running    bool
	Over       bool // Set when the run ended in a collision
	Ticks      int  // Ticks simulated in this run, including the final one
}

// GameState is the complete simulation state. It is a value: the pure
// functions in this package take a state and return the next one.
type GameState struct {
	Player    Player
	Obstacles []Obstacle
	Run       RunState
	Best      int

	nextID int
}

// Params are the immutable rules a game is played with.
type Params struct {
	Lanes          Lanes
	Spawner        Spawner
	StartLane      Lane
	InitialSpeed   float64
	Acceleration   float64
	SpawnY         float64
	CollisionBand  float64
	OffscreenLimit float64
	SpawnInterval  int
}

// NewParams derives game rules from a validated config.
func NewParams(cfg config.LaneShiftConfig) Params {
	return Params{
		Lanes:          NewLanes(cfg.Lanes),
		Spawner:        Spawner{SingleChance: cfg.Spawner.SingleChance},
		StartLane:      clampLane(cfg.Player.StartLane),
		InitialSpeed:   cfg.Physics.InitialSpeed,
		Acceleration:   cfg.Physics.Acceleration,
		SpawnY:         cfg.Physics.SpawnY,
		CollisionBand:  cfg.Physics.CollisionBand,
		OffscreenLimit: cfg.Physics.OffscreenLimit,
		SpawnInterval:  cfg.Spawner.Interval,
	}
}

// NewGameState returns an idle state: no obstacles, player in the start
// lane, counters at their initial values, not running.
func NewGameState(p Params, best int, look Customization) GameState {
	return GameState{
		Player: Player{Lane: p.StartLane, Look: look},
		Run:    initialRun(p),
		Best:   best,
	}
}

func initialRun(p Params) RunState {
	return RunState{
		Score:      0,
		Speed:      p.InitialSpeed,
		SpawnTimer: 0,
	}
}

// clone returns a copy that shares no slices with s.
func (s GameState) clone() GameState {
	s.Obstacles = append([]Obstacle(nil), s.Obstacles...)
	return s
}
