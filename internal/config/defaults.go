package config

import (
	_ "embed"
)

//go:embed defaults/rumble.yaml
var defaultRumbleYAML []byte

//go:embed defaults/heist.yaml
var defaultHeistYAML []byte

//go:embed defaults/brawl.yaml
var defaultBrawlYAML []byte

//go:embed defaults/rally.yaml
var defaultRallyYAML []byte

// DefaultRumbleConfig returns the built-in Rocket Rumble tuning.
// Used as the last-resort fallback when the embedded YAML fails to parse.
func DefaultRumbleConfig() RumbleConfig {
	return RumbleConfig{
		Player: RumblePlayer{
			Width:         3,
			Height:        2,
			Speed:         0.7,
			MaxHealth:     100,
			FireCooldown:  8,
			ContactDamage: 20,
		},
		Enemies: RumbleEnemies{
			MinSpeed:   0.25,
			MaxSpeed:   0.5,
			Health:     30,
			ScoreValue: 100,
			SpawnDelay: 60,
			MinDelay:   20,
			WaveSize:   5,
			WaveGrowth: 2,
		},
		Bullets: RumbleBullets{
			Speed:  1.6,
			Damage: 10,
		},
		PowerUps: RumblePowerUps{
			DropChance:     0.15,
			RepairAmount:   30,
			RapidDuration:  480,
			TripleDuration: 420,
			ShieldDuration: 300,
			Lifetime:       600,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression:  ProgressionConfig{Type: "score", MaxAt: 3000},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.8,
				DelayReduction:  30,
				IntensityBoost:  0.2,
			},
		},
	}
}

// DefaultHeistConfig returns the built-in Pixel Heist tuning.
func DefaultHeistConfig() HeistConfig {
	return HeistConfig{
		Player: HeistPlayer{
			WalkPeriod:  6,
			SneakPeriod: 12,
			WalkNoise:   8,
			SneakNoise:  2,
			NoiseDecay:  0.5,
			MaxNoise:    100,
		},
		Guards: HeistGuards{
			ViewDistance: 12,
			ViewAngle:    90,
			StepPeriod:   10,
			ChasePeriod:  7,
			SightAlert:   10,
			HearingAlert: 5,
			AlertDecay:   0.5,
			HearingScale: 10,
			WaitTicks:    60,
		},
		Scoring: HeistScoring{
			TimeBonus:    1000,
			BonusDecay:   5,
			MinTimeBonus: 0,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression:  ProgressionConfig{Type: "time", MaxAt: 10800},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.0,
				DelayReduction:  3,
				IntensityBoost:  0.0,
			},
		},
	}
}

// DefaultBrawlConfig returns the built-in Button Brawl tuning.
func DefaultBrawlConfig() BrawlConfig {
	return BrawlConfig{
		Fighter: BrawlFighter{
			MaxHealth:     100,
			Speed:         0.5,
			JabDamage:     8,
			JabRange:      4,
			JabCooldown:   15,
			KickDamage:    16,
			KickRange:     6,
			KickCooldown:  45,
			GuardTicks:    30,
			GuardCooldown: 60,
			GuardFactor:   0.25,
		},
		Rounds: BrawlRounds{
			BestOf:        3,
			BreakTicks:    120,
			ScorePerRound: 500,
			ScorePerHit:   10,
		},
		CPU: BrawlCPU{
			Aggression:  0.35,
			GuardChance: 0.25,
			ThinkPeriod: 12,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression:  ProgressionConfig{Type: "time", MaxAt: 7200},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.3,
				DelayReduction:  4,
				IntensityBoost:  0.35,
			},
		},
	}
}

// DefaultRallyConfig returns the built-in Midnight Rally tuning.
func DefaultRallyConfig() RallyConfig {
	return RallyConfig{
		Road: RallyRoad{
			Width:        26,
			DriftPeriod:  18,
			MaxDrift:     1,
			ScrollPeriod: 3,
		},
		Traffic: RallyTraffic{
			SpawnChance: 0.25,
			MinGap:      6,
			CarWidth:    3,
			CarHeight:   2,
		},
		Boost: RallyBoost{
			Capacity:    100,
			DrainRate:   1.2,
			RegenRate:   0.25,
			SpeedFactor: 2.0,
		},
		Scoring: RallyScoring{
			PerRow:      1,
			PerPass:     25,
			BoostFactor: 2,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression:  ProgressionConfig{Type: "time", MaxAt: 14400},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.0,
				DelayReduction:  2,
				IntensityBoost:  0.25,
			},
		},
	}
}
