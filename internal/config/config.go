// Package config provides YAML-based game configuration loading,
// validation and difficulty presets for Lane Shift.
package config

// LaneShiftConfig contains all tunable parameters of the game.
type LaneShiftConfig struct {
	Lanes   LanesConfig   `yaml:"lanes"`
	Physics PhysicsConfig `yaml:"physics"`
	Spawner SpawnerConfig `yaml:"spawner"`
	Input   InputConfig   `yaml:"input"`
	Player  PlayerConfig  `yaml:"player"`
}

// LanesConfig defines the horizontal lane layout.
type LanesConfig struct {
	Positions []float64 `yaml:"positions"` // Lane centers in percent, left to right
	Width     float64   `yaml:"width"`     // Obstacle width in percent
}

// PhysicsConfig defines obstacle motion and the collision thresholds.
type PhysicsConfig struct {
	InitialSpeed   float64 `yaml:"initial_speed"`   // Percent per tick at run start
	Acceleration   float64 `yaml:"acceleration"`    // Added to speed every tick
	SpawnY         float64 `yaml:"spawn_y"`         // Vertical position of new rows
	CollisionBand  float64 `yaml:"collision_band"`  // Obstacles at or below this hit the player's lane
	OffscreenLimit float64 `yaml:"offscreen_limit"` // Obstacles below this are removed
}

// SpawnerConfig defines row spawning cadence and shape.
type SpawnerConfig struct {
	Interval     int     `yaml:"interval"`      // A row spawns once the timer exceeds this
	SingleChance float64 `yaml:"single_chance"` // Probability that a row blocks one lane
}

// InputConfig defines gesture and feedback parameters.
type InputConfig struct {
	SwipeThreshold float64 `yaml:"swipe_threshold"` // Minimum horizontal drag distance
	HapticMillis   int     `yaml:"haptic_ms"`       // Feedback pulse length on lane change
}

// PlayerConfig defines the starting lane and the default look of the player.
type PlayerConfig struct {
	StartLane int    `yaml:"start_lane"`
	Shape     string `yaml:"shape"`
	Color     string `yaml:"color"`
}
