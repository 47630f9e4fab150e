package config

import "math"

// DifficultyManager turns a 0..1 difficulty level, derived from score
// or elapsed ticks, into concrete game parameters.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a manager for the given config.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: cfg.InitialLevel,
	}
}

// SetInitialLevel overrides the starting difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// IsEnabled reports whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0).
func (d *DifficultyManager) Level(score, ticks int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Speed scales a base speed by the current difficulty level.
func (d *DifficultyManager) Speed(base float64, score, ticks int) float64 {
	level := d.Level(score, ticks)
	return base * (1.0 + level*d.cfg.Scaling.SpeedMultiplier)
}

// Interval shrinks a base tick interval as difficulty rises. The result
// never drops below 1 tick.
func (d *DifficultyManager) Interval(base int, score, ticks int) int {
	level := d.Level(score, ticks)
	reduced := base - int(level*float64(d.cfg.Scaling.DelayReduction))
	if reduced < 1 {
		reduced = 1
	}
	return reduced
}

// Intensity raises a base 0..1 value (spawn chance, CPU aggression) as
// difficulty rises, clamped to 1.
func (d *DifficultyManager) Intensity(base float64, score, ticks int) float64 {
	level := d.Level(score, ticks)
	return clampF(base+level*d.cfg.Scaling.IntensityBoost, 0.0, 1.0)
}

func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
