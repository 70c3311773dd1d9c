package laneshift

import (
	"github.com/vovakirdan/lane-shift/internal/config"
	"github.com/vovakirdan/lane-shift/internal/core"
)

// Lane is one of the three fixed horizontal tracks, numbered left to right.
type Lane int

const (
	// LaneCount is the number of lanes on the playfield.
	LaneCount = config.LaneCount
	// CenterLane is where the player starts every run.
	CenterLane Lane = 1
)

// Valid reports whether the lane exists.
func (l Lane) Valid() bool {
	return l >= 0 && int(l) < LaneCount
}

// clampLane maps any integer onto the nearest valid lane.
func clampLane(v int) Lane {
	return Lane(core.Clamp(v, 0, LaneCount-1))
}

// Lanes maps lane indexes to horizontal percentages.
type Lanes struct {
	positions [LaneCount]float64
	width     float64
}

// NewLanes builds the lane table from config.
// The config is expected to be validated; missing entries stay at zero.
func NewLanes(cfg config.LanesConfig) Lanes {
	var l Lanes
	copy(l.positions[:], cfg.Positions)
	l.width = cfg.Width
	return l
}

// Position returns the horizontal center of a lane in percent.
// Out-of-range lanes are clamped.
func (l Lanes) Position(lane Lane) float64 {
	if !lane.Valid() {
		lane = clampLane(int(lane))
	}
	return l.positions[lane]
}

// Left returns the left edge of an obstacle in the lane, in percent.
func (l Lanes) Left(lane Lane) float64 {
	return l.Position(lane) - l.width/2
}

// Width returns the obstacle width in percent.
func (l Lanes) Width() float64 {
	return l.width
}
