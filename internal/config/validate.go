package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// LaneCount is the fixed number of lanes.
const LaneCount = 3

// Validate checks that the configuration describes a playable game.
func (c LaneShiftConfig) Validate() error {
	if len(c.Lanes.Positions) != LaneCount {
		return fmt.Errorf("%w: lanes.positions needs %d entries, got %d", ErrInvalid, LaneCount, len(c.Lanes.Positions))
	}
	for i := 1; i < len(c.Lanes.Positions); i++ {
		if c.Lanes.Positions[i] <= c.Lanes.Positions[i-1] {
			return fmt.Errorf("%w: lanes.positions must increase left to right", ErrInvalid)
		}
	}
	if c.Lanes.Width <= 0 {
		return fmt.Errorf("%w: lanes.width must be positive", ErrInvalid)
	}

	p := c.Physics
	if p.InitialSpeed < 1 {
		return fmt.Errorf("%w: physics.initial_speed must be at least 1, got %g", ErrInvalid, p.InitialSpeed)
	}
	if p.Acceleration <= 0 {
		return fmt.Errorf("%w: physics.acceleration must be positive, got %g", ErrInvalid, p.Acceleration)
	}
	if !(p.OffscreenLimit < p.CollisionBand && p.CollisionBand < p.SpawnY) {
		return fmt.Errorf("%w: need offscreen_limit < collision_band < spawn_y", ErrInvalid)
	}

	if c.Spawner.Interval <= 0 {
		return fmt.Errorf("%w: spawner.interval must be positive", ErrInvalid)
	}
	if c.Spawner.SingleChance < 0 || c.Spawner.SingleChance > 1 {
		return fmt.Errorf("%w: spawner.single_chance must be within [0, 1]", ErrInvalid)
	}

	if c.Input.SwipeThreshold <= 0 {
		return fmt.Errorf("%w: input.swipe_threshold must be positive", ErrInvalid)
	}
	if c.Input.HapticMillis < 0 {
		return fmt.Errorf("%w: input.haptic_ms must not be negative", ErrInvalid)
	}

	if c.Player.StartLane < 0 || c.Player.StartLane >= LaneCount {
		return fmt.Errorf("%w: player.start_lane must be within [0, %d]", ErrInvalid, LaneCount-1)
	}
	return nil
}
