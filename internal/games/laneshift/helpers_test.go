package laneshift

import (
	"github.com/vovakirdan/lane-shift/internal/config"
)

// scriptedRand replays fixed values. Once a script runs out, Float64
// returns 0.99 and Intn counts upward so sampling always terminates.
type scriptedRand struct {
	floats []float64
	ints   []int
	next   int
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.99
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.ints) == 0 {
		r.next++
		return r.next % n
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v % n
}

func testParams() Params {
	return NewParams(config.DefaultLaneShiftConfig())
}

// runningState returns a started game with no obstacles.
func runningState(p Params) GameState {
	s := NewGameState(p, 0, Customization{Shape: ShapeSquare, Color: "#4caf50"})
	return Start(s, p)
}
