// Package config provides YAML-based game tuning and the difficulty
// progression system shared by all arcade games.
package config

// RumbleConfig contains all tuning for Rocket Rumble.
type RumbleConfig struct {
	Player     RumblePlayer     `yaml:"player"`
	Enemies    RumbleEnemies    `yaml:"enemies"`
	Bullets    RumbleBullets    `yaml:"bullets"`
	PowerUps   RumblePowerUps   `yaml:"powerups"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// RumblePlayer defines the player ship parameters.
type RumblePlayer struct {
	Width         int     `yaml:"width"`
	Height        int     `yaml:"height"`
	Speed         float64 `yaml:"speed"`
	MaxHealth     int     `yaml:"max_health"`
	FireCooldown  int     `yaml:"fire_cooldown"`  // Ticks between shots
	ContactDamage int     `yaml:"contact_damage"` // Damage taken per enemy collision
}

// RumbleEnemies defines enemy spawning and behavior.
type RumbleEnemies struct {
	MinSpeed   float64 `yaml:"min_speed"`
	MaxSpeed   float64 `yaml:"max_speed"`
	Health     int     `yaml:"health"`
	ScoreValue int     `yaml:"score_value"`
	SpawnDelay int     `yaml:"spawn_delay"`     // Ticks between spawns
	MinDelay   int     `yaml:"min_spawn_delay"` // Floor for the spawn delay
	WaveSize   int     `yaml:"wave_size"`       // Enemies in the first wave
	WaveGrowth int     `yaml:"wave_growth"`     // Extra enemies per wave
}

// RumbleBullets defines player projectile parameters.
type RumbleBullets struct {
	Speed  float64 `yaml:"speed"`
	Damage int     `yaml:"damage"`
}

// RumblePowerUps defines power-up drops.
type RumblePowerUps struct {
	DropChance     float64 `yaml:"drop_chance"` // Per-kill probability
	RepairAmount   int     `yaml:"repair_amount"`
	RapidDuration  int     `yaml:"rapid_duration"`  // Ticks
	TripleDuration int     `yaml:"triple_duration"` // Ticks
	ShieldDuration int     `yaml:"shield_duration"` // Ticks
	Lifetime       int     `yaml:"lifetime"`        // Ticks a drop stays on screen
}

// HeistConfig contains all tuning for Pixel Heist.
type HeistConfig struct {
	Player     HeistPlayer      `yaml:"player"`
	Guards     HeistGuards      `yaml:"guards"`
	Scoring    HeistScoring     `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// HeistPlayer defines movement and noise parameters for the thief.
type HeistPlayer struct {
	WalkPeriod  int     `yaml:"walk_period"`  // Ticks per step while walking
	SneakPeriod int     `yaml:"sneak_period"` // Ticks per step while sneaking
	WalkNoise   float64 `yaml:"walk_noise"`   // Noise added per walking step
	SneakNoise  float64 `yaml:"sneak_noise"`  // Noise added per sneaking step
	NoiseDecay  float64 `yaml:"noise_decay"`  // Noise removed per tick at rest
	MaxNoise    float64 `yaml:"max_noise"`
}

// HeistGuards defines guard perception and movement.
type HeistGuards struct {
	ViewDistance  int     `yaml:"view_distance"` // Cells
	ViewAngle     float64 `yaml:"view_angle"`    // Degrees, full cone width
	StepPeriod    int     `yaml:"step_period"`   // Ticks per patrol step
	ChasePeriod   int     `yaml:"chase_period"`  // Ticks per chasing step
	SightAlert    float64 `yaml:"sight_alert"`   // Alert gained per tick in view
	HearingAlert  float64 `yaml:"hearing_alert"` // Alert gained per tick in earshot
	AlertDecay    float64 `yaml:"alert_decay"`   // Alert lost per quiet tick
	HearingScale  float64 `yaml:"hearing_scale"` // Noise units per cell of earshot
	WaitTicks     int     `yaml:"wait_ticks"`    // Pause at each patrol waypoint
}

// HeistScoring defines how the final heist score is computed.
type HeistScoring struct {
	TimeBonus    int `yaml:"time_bonus"`     // Starting bonus
	BonusDecay   int `yaml:"bonus_decay"`    // Bonus lost per second
	MinTimeBonus int `yaml:"min_time_bonus"` // Bonus never drops below this
}

// BrawlConfig contains all tuning for Button Brawl.
type BrawlConfig struct {
	Fighter    BrawlFighter     `yaml:"fighter"`
	Rounds     BrawlRounds      `yaml:"rounds"`
	CPU        BrawlCPU         `yaml:"cpu"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BrawlFighter defines fighter movement and attacks.
type BrawlFighter struct {
	MaxHealth     int     `yaml:"max_health"`
	Speed         float64 `yaml:"speed"` // Cells per tick
	JabDamage     int     `yaml:"jab_damage"`
	JabRange      int     `yaml:"jab_range"`
	JabCooldown   int     `yaml:"jab_cooldown"` // Ticks
	KickDamage    int     `yaml:"kick_damage"`
	KickRange     int     `yaml:"kick_range"`
	KickCooldown  int     `yaml:"kick_cooldown"` // Ticks
	GuardTicks    int     `yaml:"guard_ticks"`   // Guard window after pressing block
	GuardCooldown int     `yaml:"guard_cooldown"`
	GuardFactor   float64 `yaml:"guard_factor"` // Damage multiplier while guarding
}

// BrawlRounds defines the match format.
type BrawlRounds struct {
	BestOf        int `yaml:"best_of"`
	BreakTicks    int `yaml:"break_ticks"`    // Pause between rounds
	ScorePerRound int `yaml:"score_per_round"`
	ScorePerHit   int `yaml:"score_per_hit"`
}

// BrawlCPU defines the computer opponent.
type BrawlCPU struct {
	Aggression  float64 `yaml:"aggression"`   // 0..1, chance to attack when in range
	GuardChance float64 `yaml:"guard_chance"` // Chance to guard an incoming attack
	ThinkPeriod int     `yaml:"think_period"` // Ticks between decisions
}

// RallyConfig contains all tuning for Midnight Rally.
type RallyConfig struct {
	Road       RallyRoad        `yaml:"road"`
	Traffic    RallyTraffic     `yaml:"traffic"`
	Boost      RallyBoost       `yaml:"boost"`
	Scoring    RallyScoring     `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// RallyRoad defines the scrolling road.
type RallyRoad struct {
	Width        int `yaml:"width"`         // Cells between the verges
	DriftPeriod  int `yaml:"drift_period"`  // Ticks between center drifts
	MaxDrift     int `yaml:"max_drift"`     // Max cells the center moves at once
	ScrollPeriod int `yaml:"scroll_period"` // Ticks per row of scroll at base speed
}

// RallyTraffic defines oncoming cars.
type RallyTraffic struct {
	SpawnChance float64 `yaml:"spawn_chance"` // Per scroll row
	MinGap      int     `yaml:"min_gap"`      // Rows between spawns
	CarWidth    int     `yaml:"car_width"`
	CarHeight   int     `yaml:"car_height"`
}

// RallyBoost defines the boost meter.
type RallyBoost struct {
	Capacity    float64 `yaml:"capacity"`
	DrainRate   float64 `yaml:"drain_rate"` // Per tick while boosting
	RegenRate   float64 `yaml:"regen_rate"` // Per tick while coasting
	SpeedFactor float64 `yaml:"speed_factor"`
}

// RallyScoring defines score accrual.
type RallyScoring struct {
	PerRow      int `yaml:"per_row"`       // Score per scrolled row
	PerPass     int `yaml:"per_pass"`      // Score per overtaken car
	BoostFactor int `yaml:"boost_factor"`  // Row score multiplier while boosting
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a session.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to speed at max difficulty
	DelayReduction  int     `yaml:"delay_reduction"`  // Tick-interval reduction at max
	IntensityBoost  float64 `yaml:"intensity_boost"`  // Added to 0..1 intensities at max
}

// DifficultyPreset is a named starting difficulty.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the starting level for a preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyPreset adjusts a difficulty config for the given preset.
// The "fixed" preset disables progression entirely.
func ApplyPreset(cfg *DifficultyConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Enabled = false
		return
	}
	cfg.Enabled = true
	cfg.InitialLevel = InitialLevelForPreset(preset)
}

// ValidPreset reports whether the string names a known preset.
func ValidPreset(s string) bool {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return true
	}
	return false
}
