package combat

import (
	"github.com/vovakirdan/starblitz/internal/core"
)

// EnemyKind tags the behavior variant of an enemy.
type EnemyKind int

const (
	KindSeeker EnemyKind = iota
	KindWanderer
	KindSpinner
	KindBoss
)

// String returns a human-readable name for the kind.
func (k EnemyKind) String() string {
	switch k {
	case KindSeeker:
		return "seeker"
	case KindWanderer:
		return "wanderer"
	case KindSpinner:
		return "spinner"
	case KindBoss:
		return "boss"
	default:
		return "unknown"
	}
}

// Enemy is a single hostile actor. All kinds share the common kinematic
// fields; the variant-specific timers and targets below them are only
// meaningful for the kind they are named after. Health is tracked for the
// boss only, every other kind dies to a single hit.
type Enemy struct {
	Kind     EnemyKind
	Pos      core.Vec2
	Vel      core.Vec2
	Radius   float64
	Color    core.Color
	Rotation float64
	Score    int

	fireTimer int // ticks until the next shot attempt

	// Seeker
	maxSpeed float64

	// Wanderer
	speed     float64
	turnTimer int

	// Spinner
	orbitCenter   core.Vec2
	orbitRadius   float64
	orbitSpeed    float64
	orbitAngle    float64 // doubles as the boss weave angle
	relocateTimer int
	burstLeft     int
	burstTimer    int

	// Boss
	Health      int
	MaxHealth   int
	attackPhase int
	phaseTimer  int
	shotTimer   int
	shotDelay   int
	burstCount  int // completed radial volleys, rotates successive bursts
	burstSize   int
	lastHitTick int
	hitCount    int // accepted hits, drives the flash cadence
}

// ProjectileOwner distinguishes who fired a projectile.
type ProjectileOwner int

const (
	OwnerPlayer ProjectileOwner = iota
	OwnerEnemy
)

// Projectile is a shot in flight. Created on fire, removed when it leaves
// the arena or collides.
type Projectile struct {
	Pos    core.Vec2
	Vel    core.Vec2
	Radius float64
	Color  core.Color
	Owner  ProjectileOwner
}

// newSeeker spawns a homing enemy at a random arena edge.
func (e *Engine) newSeeker() *Enemy {
	c := e.cfg.Seeker
	return &Enemy{
		Kind:      KindSeeker,
		Pos:       e.edgePosition(c.Radius),
		Radius:    c.Radius,
		Color:     core.ColorBrightRed,
		Score:     c.Score,
		maxSpeed:  c.MaxSpeed * (0.8 + e.rng.Float64()*0.4),
		fireTimer: e.randRange(c.FireMin, c.FireMax),
	}
}

// newWanderer spawns a drifting enemy at a random arena edge.
func (e *Engine) newWanderer() *Enemy {
	c := e.cfg.Wanderer
	en := &Enemy{
		Kind:      KindWanderer,
		Pos:       e.edgePosition(c.Radius),
		Radius:    c.Radius,
		Color:     core.ColorBrightGreen,
		Score:     c.Score,
		speed:     c.Speed * (0.8 + e.rng.Float64()*0.4),
		turnTimer: e.randRange(c.TurnMin, c.TurnMax),
		fireTimer: e.randRange(c.FireMin, c.FireMax),
	}
	// Initial heading points into the arena so edge spawns drift inward
	center := core.V(e.w/2, e.h/2)
	en.Rotation = center.Sub(en.Pos).Angle()
	return en
}

// newSpinner spawns an orbiting enemy at a random arena edge.
func (e *Engine) newSpinner() *Enemy {
	c := e.cfg.Spinner
	return &Enemy{
		Kind:          KindSpinner,
		Pos:           e.edgePosition(c.Radius),
		Radius:        c.Radius,
		Color:         core.ColorBrightCyan,
		Score:         c.Score,
		orbitCenter:   e.orbitPoint(c.OrbitRadius + c.Radius),
		orbitRadius:   c.OrbitRadius * (0.85 + e.rng.Float64()*0.3),
		orbitSpeed:    c.OrbitSpeed * (0.85 + e.rng.Float64()*0.3),
		orbitAngle:    e.rng.Float64() * twoPi,
		relocateTimer: c.RelocateEvery,
		fireTimer:     e.randRange(c.BurstPause/2, c.BurstPause),
	}
}

// newBoss spawns the boss above the top edge, centered horizontally.
func (e *Engine) newBoss() *Enemy {
	c := e.cfg.Boss
	return &Enemy{
		Kind:        KindBoss,
		Pos:         core.V(e.w/2, -c.Radius),
		Radius:      c.Radius,
		Color:       core.ColorBrightMagenta,
		Score:       c.Score,
		Health:      c.Health,
		MaxHealth:   c.Health,
		phaseTimer:  c.PhaseTicks,
		shotDelay:   c.ShotDelayBase,
		shotTimer:   c.ShotDelayBase,
		burstSize:   c.RadialShots,
		lastHitTick: e.tick - c.HitWindow, // the first hit is never throttled
	}
}

// edgePosition picks a random point just outside one of the four arena edges.
func (e *Engine) edgePosition(radius float64) core.Vec2 {
	switch e.rng.Intn(4) {
	case 0:
		return core.V(e.rng.Float64()*e.w, -radius)
	case 1:
		return core.V(e.w+radius, e.rng.Float64()*e.h)
	case 2:
		return core.V(e.rng.Float64()*e.w, e.h+radius)
	default:
		return core.V(-radius, e.rng.Float64()*e.h)
	}
}

// orbitPoint picks a random orbit center inside the arena, padded so the
// full orbit circle stays on screen.
func (e *Engine) orbitPoint(pad float64) core.Vec2 {
	w := e.w - 2*pad
	h := e.h*0.6 - pad
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return core.V(pad+e.rng.Float64()*w, pad+e.rng.Float64()*h)
}
