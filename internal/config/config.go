// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

// BlitzConfig contains all tuning for the StarBlitz shooter.
type BlitzConfig struct {
	Player     PlayerConfig     `yaml:"player"`
	Seeker     SeekerConfig     `yaml:"seeker"`
	Wanderer   WandererConfig   `yaml:"wanderer"`
	Spinner    SpinnerConfig    `yaml:"spinner"`
	Boss       BossConfig       `yaml:"boss"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Spawner    SpawnerConfig    `yaml:"spawner"`
	Effects    EffectsConfig    `yaml:"effects"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PlayerConfig defines ship movement, weapon, and survivability parameters.
type PlayerConfig struct {
	Speed        float64 `yaml:"speed"`         // Movement speed in cells per tick
	Radius       float64 `yaml:"radius"`        // Body radius against enemy shots
	HitShrink    float64 `yaml:"hit_shrink"`    // Fraction of radius used against enemy bodies
	FireCooldown int     `yaml:"fire_cooldown"` // Ticks between shots
	ShotSpeed    float64 `yaml:"shot_speed"`    // Shot speed in cells per tick
	Lives        int     `yaml:"lives"`
	InvulnTicks  int     `yaml:"invuln_ticks"`  // Invulnerability window after (re)spawn
	RespawnDelay int     `yaml:"respawn_delay"` // Ticks between death and respawn
}

// SeekerConfig defines the homing enemy.
type SeekerConfig struct {
	Accel     float64 `yaml:"accel"`      // Acceleration toward the player per tick
	MaxSpeed  float64 `yaml:"max_speed"`  // Velocity magnitude cap
	Radius    float64 `yaml:"radius"`
	Score     int     `yaml:"score"`
	FireRange float64 `yaml:"fire_range"` // Max distance to the player for firing
	FireMin   int     `yaml:"fire_min"`   // Min ticks between shots
	FireMax   int     `yaml:"fire_max"`   // Max ticks between shots
	AimJitter float64 `yaml:"aim_jitter"` // Max aim error in radians
	ShotSpeed float64 `yaml:"shot_speed"`
}

// WandererConfig defines the drifting enemy.
type WandererConfig struct {
	Speed      float64 `yaml:"speed"`
	Radius     float64 `yaml:"radius"`
	Score      int     `yaml:"score"`
	TurnMin    int     `yaml:"turn_min"`    // Min ticks between heading changes
	TurnMax    int     `yaml:"turn_max"`    // Max ticks between heading changes
	FireMin    int     `yaml:"fire_min"`
	FireMax    int     `yaml:"fire_max"`
	FireChance float64 `yaml:"fire_chance"` // Probability a ready shot actually fires
	ShotSpeed  float64 `yaml:"shot_speed"`
}

// SpinnerConfig defines the orbiting burst-fire enemy.
type SpinnerConfig struct {
	OrbitRadius   float64 `yaml:"orbit_radius"`
	OrbitSpeed    float64 `yaml:"orbit_speed"`    // Orbit advance in radians per tick
	RelocateEvery int     `yaml:"relocate_every"` // Ticks between orbit-center moves
	Radius        float64 `yaml:"radius"`
	Score         int     `yaml:"score"`
	SpinRate      float64 `yaml:"spin_rate"`   // Visual rotation in radians per tick
	BurstSize     int     `yaml:"burst_size"`  // Shots per burst
	BurstGap      int     `yaml:"burst_gap"`   // Ticks between shots inside a burst
	BurstPause    int     `yaml:"burst_pause"` // Ticks between bursts
	ShotSpeed     float64 `yaml:"shot_speed"`
}

// BossConfig defines the periodic boss encounter.
type BossConfig struct {
	Health         int     `yaml:"health"`
	Radius         float64 `yaml:"radius"`
	Score          int     `yaml:"score"` // Destruction bonus before multiplier
	DescendSpeed   float64 `yaml:"descend_speed"`
	HoldAltitude   float64 `yaml:"hold_altitude"` // Y position held after descent
	StrafeSpeed    float64 `yaml:"strafe_speed"`
	PhaseTicks     int     `yaml:"phase_ticks"`      // Ticks per movement sub-phase
	ShotDelayBase  int     `yaml:"shot_delay_base"`  // Shot delay at full health
	ShotDelayMin   int     `yaml:"shot_delay_min"`   // Shot delay floor at low health
	HitWindow      int     `yaml:"hit_window"`       // Min ticks between accepted hits (0 accepts all)
	HitEffectEvery int     `yaml:"hit_effect_every"` // Hit flash cadence in accepted hits
	HitScore       int     `yaml:"hit_score"`        // Points per accepted hit
	RadialShots    int     `yaml:"radial_shots"`     // Shots per low-health radial burst
	SpreadAngle    float64 `yaml:"spread_angle"`     // Angular spacing of the 3-way spread, radians
	ShotSpeed      float64 `yaml:"shot_speed"`
}

// ScoringConfig defines the combo and multiplier windows.
type ScoringConfig struct {
	ComboWindow      int `yaml:"combo_window"`      // Ticks before the combo streak resets
	MultiplierWindow int `yaml:"multiplier_window"` // Ticks before the multiplier reverts to 1
	Tier2At          int `yaml:"tier2_at"`          // Combo count that sets the x2 multiplier
	Tier4At          int `yaml:"tier4_at"`          // Combo count that sets the x4 multiplier
}

// SpawnerConfig defines the spawn director's pacing.
type SpawnerConfig struct {
	InitialInterval int `yaml:"initial_interval"` // Ticks between spawns at start
	MinInterval     int `yaml:"min_interval"`     // Interval floor after ramping
	InitialCap      int `yaml:"initial_cap"`      // Max simultaneous enemies at start
	MaxCap          int `yaml:"max_cap"`          // Population ceiling after ramping
	RampEvery       int `yaml:"ramp_every"`       // Ticks between ramp steps (0 disables ramping)
	BossEvery       int `yaml:"boss_every"`       // Ticks between boss arrivals
	SeekerWeight    int `yaml:"seeker_weight"`
	WandererWeight  int `yaml:"wanderer_weight"`
	SpinnerWeight   int `yaml:"spinner_weight"`
}

// EffectsConfig defines the particle budget.
type EffectsConfig struct {
	MaxParticles int `yaml:"max_particles"`
	TrailEvery   int `yaml:"trail_every"` // Ticks between engine-trail particles
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier    float64 `yaml:"speed_multiplier"`     // Extra enemy speed at max difficulty
	FireRateMultiplier float64 `yaml:"fire_rate_multiplier"` // Extra enemy fire rate at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
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

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
