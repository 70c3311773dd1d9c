package laneshift

import (
	"math"
	"testing"
)

func TestLanePositions(t *testing.T) {
	lanes := testParams().Lanes

	tests := []struct {
		lane Lane
		want float64
	}{
		{0, 16.66},
		{1, 50},
		{2, 83.33},
		{-1, 16.66}, // clamped
		{7, 83.33},  // clamped
	}

	for _, tc := range tests {
		if got := lanes.Position(tc.lane); got != tc.want {
			t.Errorf("Position(%d) = %v, expected %v", tc.lane, got, tc.want)
		}
	}

	if got := lanes.Left(0); math.Abs(got-(16.66-33.33/2)) > 1e-9 {
		t.Errorf("Left(0) = %v", got)
	}
	if lanes.Width() != 33.33 {
		t.Errorf("Width() = %v", lanes.Width())
	}
}

func TestLaneValid(t *testing.T) {
	for l := Lane(-1); l <= 3; l++ {
		want := l >= 0 && l <= 2
		if l.Valid() != want {
			t.Errorf("Lane(%d).Valid() = %v, expected %v", l, l.Valid(), want)
		}
	}
}
