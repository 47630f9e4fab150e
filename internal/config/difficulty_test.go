package config

import (
	"math"
	"testing"
)

func testDifficultyConfig() DifficultyConfig {
	return DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.0,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 1000},
		Scaling: ScalingConfig{
			SpeedMultiplier: 1.0,
			DelayReduction:  20,
			IntensityBoost:  0.5,
		},
	}
}

func TestDifficultyLevelByScore(t *testing.T) {
	d := NewDifficultyManager(testDifficultyConfig())

	tests := []struct {
		score    int
		expected float64
	}{
		{0, 0.0},
		{500, 0.5},
		{1000, 1.0},
		{5000, 1.0}, // clamped at max
	}

	for _, tc := range tests {
		level := d.Level(tc.score, 0)
		if math.Abs(level-tc.expected) > 1e-9 {
			t.Errorf("Level(score=%d) = %v, expected %v", tc.score, level, tc.expected)
		}
	}
}

func TestDifficultyLevelByTime(t *testing.T) {
	cfg := testDifficultyConfig()
	cfg.Progression = ProgressionConfig{Type: "time", MaxAt: 600}
	d := NewDifficultyManager(cfg)

	if level := d.Level(0, 300); math.Abs(level-0.5) > 1e-9 {
		t.Errorf("Level(ticks=300) = %v, expected 0.5", level)
	}
	// Score must not matter for time progression
	if level := d.Level(99999, 0); level != 0.0 {
		t.Errorf("Level should ignore score under time progression, got %v", level)
	}
}

func TestDifficultyDisabled(t *testing.T) {
	cfg := testDifficultyConfig()
	cfg.Enabled = false
	d := NewDifficultyManager(cfg)
	d.SetInitialLevel(0.4)

	if d.IsEnabled() {
		t.Error("IsEnabled() should be false when disabled")
	}
	if level := d.Level(10000, 10000); level != 0.4 {
		t.Errorf("Disabled manager should stay at the initial level, got %v", level)
	}
}

func TestDifficultyProgressionNone(t *testing.T) {
	cfg := testDifficultyConfig()
	cfg.Progression.Type = "none"
	d := NewDifficultyManager(cfg)

	if d.IsEnabled() {
		t.Error("Progression type none should disable the manager")
	}
}

func TestDifficultyInitialLevelRaisesFloor(t *testing.T) {
	d := NewDifficultyManager(testDifficultyConfig())
	d.SetInitialLevel(0.5)

	// Level scales the remaining headroom above the initial level
	if level := d.Level(0, 0); level != 0.5 {
		t.Errorf("Level at start = %v, expected 0.5", level)
	}
	if level := d.Level(500, 0); math.Abs(level-0.75) > 1e-9 {
		t.Errorf("Level at half progress = %v, expected 0.75", level)
	}
	if level := d.Level(1000, 0); level != 1.0 {
		t.Errorf("Level at max progress = %v, expected 1.0", level)
	}
}

func TestDifficultySetInitialLevelClamps(t *testing.T) {
	d := NewDifficultyManager(testDifficultyConfig())

	d.SetInitialLevel(1.5)
	if level := d.Level(0, 0); level != 1.0 {
		t.Errorf("Initial level should clamp to 1.0, got %v", level)
	}

	d.SetInitialLevel(-0.5)
	if level := d.Level(0, 0); level != 0.0 {
		t.Errorf("Initial level should clamp to 0.0, got %v", level)
	}
}

func TestDifficultySpeed(t *testing.T) {
	d := NewDifficultyManager(testDifficultyConfig())

	// At level 0 the base speed is unchanged
	if speed := d.Speed(2.0, 0, 0); speed != 2.0 {
		t.Errorf("Speed at level 0 = %v, expected 2.0", speed)
	}
	// At max level the multiplier applies in full
	if speed := d.Speed(2.0, 1000, 0); math.Abs(speed-4.0) > 1e-9 {
		t.Errorf("Speed at max level = %v, expected 4.0", speed)
	}
}

func TestDifficultyInterval(t *testing.T) {
	d := NewDifficultyManager(testDifficultyConfig())

	if iv := d.Interval(30, 0, 0); iv != 30 {
		t.Errorf("Interval at level 0 = %d, expected 30", iv)
	}
	if iv := d.Interval(30, 500, 0); iv != 20 {
		t.Errorf("Interval at half level = %d, expected 20", iv)
	}
	if iv := d.Interval(30, 1000, 0); iv != 10 {
		t.Errorf("Interval at max level = %d, expected 10", iv)
	}
	// Never below one tick
	if iv := d.Interval(5, 1000, 0); iv != 1 {
		t.Errorf("Interval should floor at 1 tick, got %d", iv)
	}
}

func TestDifficultyIntensity(t *testing.T) {
	d := NewDifficultyManager(testDifficultyConfig())

	if in := d.Intensity(0.2, 0, 0); math.Abs(in-0.2) > 1e-9 {
		t.Errorf("Intensity at level 0 = %v, expected 0.2", in)
	}
	if in := d.Intensity(0.2, 1000, 0); math.Abs(in-0.7) > 1e-9 {
		t.Errorf("Intensity at max level = %v, expected 0.7", in)
	}
	// Clamped to 1
	if in := d.Intensity(0.9, 1000, 0); in != 1.0 {
		t.Errorf("Intensity should clamp to 1.0, got %v", in)
	}
}

func TestDifficultyZeroMaxAt(t *testing.T) {
	cfg := testDifficultyConfig()
	cfg.Progression.MaxAt = 0
	d := NewDifficultyManager(cfg)

	// Should not divide by zero; any progress hits the cap
	if level := d.Level(100, 0); level != 1.0 {
		t.Errorf("Level with MaxAt 0 = %v, expected 1.0", level)
	}
}

func TestInitialLevelForPreset(t *testing.T) {
	tests := []struct {
		preset   DifficultyPreset
		expected float64
	}{
		{DifficultyEasy, 0.0},
		{DifficultyNormal, 0.3},
		{DifficultyHard, 0.7},
		{DifficultyFixed, 0.0},
	}

	for _, tc := range tests {
		if got := InitialLevelForPreset(tc.preset); got != tc.expected {
			t.Errorf("InitialLevelForPreset(%q) = %v, expected %v", tc.preset, got, tc.expected)
		}
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := testDifficultyConfig()
	ApplyPreset(&cfg, DifficultyHard)

	if !cfg.Enabled {
		t.Error("Hard preset should keep progression enabled")
	}
	if cfg.InitialLevel != 0.7 {
		t.Errorf("Hard preset initial level = %v, expected 0.7", cfg.InitialLevel)
	}
}

func TestApplyPresetFixedDisablesProgression(t *testing.T) {
	cfg := testDifficultyConfig()
	cfg.InitialLevel = 0.3
	ApplyPreset(&cfg, DifficultyFixed)

	if cfg.Enabled {
		t.Error("Fixed preset should disable progression")
	}
	if cfg.InitialLevel != 0.3 {
		t.Error("Fixed preset should leave the configured level alone")
	}
}

func TestApplyPresetEmptyIsNoop(t *testing.T) {
	cfg := testDifficultyConfig()
	before := cfg
	ApplyPreset(&cfg, "")

	if cfg != before {
		t.Error("Empty preset should not change the config")
	}
}

func TestValidPreset(t *testing.T) {
	for _, s := range []string{"", "easy", "normal", "hard", "fixed"} {
		if !ValidPreset(s) {
			t.Errorf("ValidPreset(%q) = false, expected true", s)
		}
	}
	for _, s := range []string{"brutal", "EASY", "medium"} {
		if ValidPreset(s) {
			t.Errorf("ValidPreset(%q) = true, expected false", s)
		}
	}
}
