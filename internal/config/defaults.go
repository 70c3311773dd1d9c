package config

import (
	_ "embed"
)

//go:embed defaults/laneshift.yaml
var defaultLaneShiftYAML []byte

// DefaultLaneShiftConfig returns the built-in configuration.
func DefaultLaneShiftConfig() LaneShiftConfig {
	return LaneShiftConfig{
		Lanes: LanesConfig{
			Positions: []float64{16.66, 50, 83.33},
			Width:     33.33,
		},
		Physics: PhysicsConfig{
			InitialSpeed:   1,
			Acceleration:   0.0005,
			SpawnY:         100,
			CollisionBand:  10,
			OffscreenLimit: -10,
		},
		Spawner: SpawnerConfig{
			Interval:     100,
			SingleChance: 0.7,
		},
		Input: InputConfig{
			SwipeThreshold: 30,
			HapticMillis:   30,
		},
		Player: PlayerConfig{
			StartLane: 1,
			Shape:     "square",
			Color:     "#4caf50",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultLaneShiftYAML
}
