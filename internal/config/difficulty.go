package config

import (
	"fmt"

	"github.com/vovakirdan/lane-shift/internal/core"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a flag value into a preset.
// The empty string means "keep the config as loaded".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty %q (want easy, normal or hard)", ErrInvalid, s)
	}
}

// ApplyPreset scales the speed ramp and the spawn cadence.
// Normal leaves the config untouched.
func ApplyPreset(cfg *LaneShiftConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Physics.Acceleration *= 0.6
		cfg.Spawner.Interval = cfg.Spawner.Interval * 6 / 5
		cfg.Spawner.SingleChance = core.ClampF(cfg.Spawner.SingleChance+0.1, 0, 1)
	case DifficultyHard:
		cfg.Physics.Acceleration *= 1.6
		cfg.Spawner.Interval = cfg.Spawner.Interval * 4 / 5
		cfg.Spawner.SingleChance = core.ClampF(cfg.Spawner.SingleChance-0.2, 0, 1)
	}
	if cfg.Spawner.Interval < 1 {
		cfg.Spawner.Interval = 1
	}
}
