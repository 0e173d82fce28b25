package config

import (
	_ "embed"
)

//go:embed defaults/starblitz.yaml
var defaultBlitzYAML []byte

// DefaultBlitzConfig returns the default StarBlitz configuration.
func DefaultBlitzConfig() BlitzConfig {
	return BlitzConfig{
		Player: PlayerConfig{
			Speed:        0.9,
			Radius:       1.0,
			HitShrink:    0.35,
			FireCooldown: 7,
			ShotSpeed:    1.8,
			Lives:        3,
			InvulnTicks:  180, // 3 seconds at 60 ticks/s
			RespawnDelay: 60,
		},
		Seeker: SeekerConfig{
			Accel:     0.035,
			MaxSpeed:  0.55,
			Radius:    1.2,
			Score:     100,
			FireRange: 26,
			FireMin:   90,
			FireMax:   180,
			AimJitter: 0.25,
			ShotSpeed: 0.9,
		},
		Wanderer: WandererConfig{
			Speed:      0.4,
			Radius:     1.3,
			Score:      50,
			TurnMin:    60,
			TurnMax:    180,
			FireMin:    150,
			FireMax:    300,
			FireChance: 0.5,
			ShotSpeed:  0.8,
		},
		Spinner: SpinnerConfig{
			OrbitRadius:   6.0,
			OrbitSpeed:    0.045,
			RelocateEvery: 240,
			Radius:        1.2,
			Score:         150,
			SpinRate:      0.15,
			BurstSize:     3,
			BurstGap:      6,
			BurstPause:    120,
			ShotSpeed:     1.0,
		},
		Boss: BossConfig{
			Health:         50,
			Radius:         4.0,
			Score:          1000,
			DescendSpeed:   0.25,
			HoldAltitude:   8,
			StrafeSpeed:    0.4,
			PhaseTicks:     240,
			ShotDelayBase:  50,
			ShotDelayMin:   15,
			HitWindow:      3,
			HitEffectEvery: 3,
			HitScore:       10,
			RadialShots:    12,
			SpreadAngle:    0.3,
			ShotSpeed:      0.9,
		},
		Scoring: ScoringConfig{
			ComboWindow:      120, // 2 seconds at 60 ticks/s
			MultiplierWindow: 300, // 5 seconds
			Tier2At:          5,
			Tier4At:          10,
		},
		Spawner: SpawnerConfig{
			InitialInterval: 120,
			MinInterval:     30,
			InitialCap:      6,
			MaxCap:          20,
			RampEvery:       300,
			BossEvery:       2700, // 45 seconds
			SeekerWeight:    5,
			WandererWeight:  3,
			SpinnerWeight:   2,
		},
		Effects: EffectsConfig{
			MaxParticles: 400,
			TrailEvery:   3,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 36000, // 10 minutes at 60fps
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:    0.5,
				FireRateMultiplier: 0.3,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "starblitz", "starblitz_rush":
		return defaultBlitzYAML
	default:
		return nil
	}
}
