package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg LaneShiftConfig
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultLaneShiftConfig()) {
		t.Errorf("embedded defaults drifted from DefaultLaneShiftConfig():\n%+v\n%+v", cfg, DefaultLaneShiftConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadWithoutFilesUsesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Spawner.Interval != 100 || cfg.Physics.Acceleration != 0.0005 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".laneshift", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	data := []byte("spawner:\n  interval: 42\n")
	if err := os.WriteFile(filepath.Join(dir, "laneshift.yaml"), data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Spawner.Interval != 42 {
		t.Errorf("Interval = %d, expected 42 from user config", cfg.Spawner.Interval)
	}
}

func TestLoadCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("physics:\n  collision_band: 12\n  offscreen_limit: -15\nplayer:\n  shape: circle\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Physics.CollisionBand != 12 || cfg.Physics.OffscreenLimit != -15 {
		t.Errorf("thresholds not overridden: %+v", cfg.Physics)
	}
	if cfg.Player.Shape != "circle" {
		t.Errorf("Shape = %q, expected circle", cfg.Player.Shape)
	}
	// Untouched keys keep defaults
	if cfg.Physics.InitialSpeed != 1 || len(cfg.Lanes.Positions) != 3 {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("spawner: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("expected parse error")
	}

	invalid := filepath.Join(t.TempDir(), "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("lanes:\n  positions: [10, 90]\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := Load(invalid)
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*LaneShiftConfig)
	}{
		{"unordered lanes", func(c *LaneShiftConfig) { c.Lanes.Positions = []float64{50, 16, 83} }},
		{"zero width", func(c *LaneShiftConfig) { c.Lanes.Width = 0 }},
		{"slow start", func(c *LaneShiftConfig) { c.Physics.InitialSpeed = 0.5 }},
		{"no ramp", func(c *LaneShiftConfig) { c.Physics.Acceleration = 0 }},
		{"band below offscreen", func(c *LaneShiftConfig) { c.Physics.CollisionBand = -20 }},
		{"band above spawn", func(c *LaneShiftConfig) { c.Physics.CollisionBand = 120 }},
		{"zero interval", func(c *LaneShiftConfig) { c.Spawner.Interval = 0 }},
		{"chance above one", func(c *LaneShiftConfig) { c.Spawner.SingleChance = 1.5 }},
		{"zero swipe threshold", func(c *LaneShiftConfig) { c.Input.SwipeThreshold = 0 }},
		{"negative haptic", func(c *LaneShiftConfig) { c.Input.HapticMillis = -1 }},
		{"start lane out of range", func(c *LaneShiftConfig) { c.Player.StartLane = 3 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultLaneShiftConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestPresets(t *testing.T) {
	if _, err := ParsePreset("nightmare"); !errors.Is(err, ErrInvalid) {
		t.Errorf("unknown preset should fail with ErrInvalid, got %v", err)
	}

	base := DefaultLaneShiftConfig()

	easy := DefaultLaneShiftConfig()
	ApplyPreset(&easy, DifficultyEasy)
	if easy.Physics.Acceleration >= base.Physics.Acceleration || easy.Spawner.Interval <= base.Spawner.Interval {
		t.Errorf("easy should ramp slower and spawn less often: %+v", easy)
	}

	hard := DefaultLaneShiftConfig()
	ApplyPreset(&hard, DifficultyHard)
	if hard.Physics.Acceleration <= base.Physics.Acceleration || hard.Spawner.Interval >= base.Spawner.Interval {
		t.Errorf("hard should ramp faster and spawn more often: %+v", hard)
	}

	normal := DefaultLaneShiftConfig()
	ApplyPreset(&normal, DifficultyNormal)
	if !reflect.DeepEqual(normal, base) {
		t.Error("normal preset should not change the config")
	}

	for _, cfg := range []LaneShiftConfig{easy, hard} {
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset produced invalid config: %v", err)
		}
	}
}
