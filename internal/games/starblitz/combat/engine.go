// Package combat implements the StarBlitz combat simulation: enemy behavior
// state machines, projectile and collision resolution, boss attack phases,
// the score/combo ledger, and the spawn director.
//
// The engine is pure logic driven by fixed ticks. It reaches the outside
// world only through the Player, EffectSink, and Camera interfaces, so it
// can be stepped deterministically in tests with a seeded RNG.
package combat

import (
	"math"
	"math/rand"
	"strconv"

	"github.com/vovakirdan/starblitz/internal/config"
	"github.com/vovakirdan/starblitz/internal/core"
)

const twoPi = 2 * math.Pi

// Player is the engine's view of the player ship. The engine reads position
// and status, and calls Die on a lethal collision; movement and respawn
// belong to the owner.
type Player interface {
	Position() core.Vec2
	Alive() bool
	Invulnerable() bool
	Die()
}

// EffectSink receives visual effect requests. Capacity reports the remaining
// particle budget; the engine skips decorative effects when it reaches zero.
type EffectSink interface {
	SpawnTrail(pos core.Vec2, color core.Color, size float64)
	SpawnExplosion(pos core.Vec2, count int, color core.Color, speed, size, decay float64)
	SpawnDebris(pos core.Vec2, count int, color core.Color, speed float64)
	SpawnScoreText(pos core.Vec2, text string, color core.Color)
	SpawnBossHit(pos core.Vec2)
	Capacity() int
}

// Camera receives screen shake requests.
type Camera interface {
	AddShake(duration int, intensity float64)
}

// StepResult reports what happened during one engine tick.
type StepResult struct {
	EnemiesDestroyed int
	BossDefeated     bool
	PlayerKilled     bool
}

// Engine runs the combat simulation. Construct it once with the
// collaborators, then Reset before stepping.
type Engine struct {
	cfg  config.BlitzConfig
	w, h float64
	rng  *rand.Rand
	tick int

	world  *World
	ledger *Ledger
	dir    director

	speedScale float64
	fireScale  float64

	player  Player
	effects EffectSink
	camera  Camera

	kills          int
	bossesDefeated int
}

// NewEngine creates an engine bound to its collaborators. A nil effects sink
// or camera is replaced with a no-op; a nil player behaves as permanently
// dead, which suits headless benchmarks.
func NewEngine(player Player, effects EffectSink, camera Camera) *Engine {
	if player == nil {
		player = deadPlayer{}
	}
	if effects == nil {
		effects = nopEffects{}
	}
	if camera == nil {
		camera = nopCamera{}
	}
	return &Engine{
		player:  player,
		effects: effects,
		camera:  camera,
	}
}

// Reset discards all combat state and prepares a fresh run.
func (e *Engine) Reset(cfg config.BlitzConfig, width, height float64, seed int64) {
	e.cfg = cfg
	e.w = width
	e.h = height
	e.rng = rand.New(rand.NewSource(seed))
	e.tick = 0
	e.world = NewWorld()
	e.ledger = NewLedger(cfg.Scoring)
	e.dir = newDirector(cfg.Spawner)
	e.speedScale = 1.0
	e.fireScale = 1.0
	e.kills = 0
	e.bossesDefeated = 0
}

// SetSpeedScale scales enemy kinematics. Values at or below zero reset to 1.
func (e *Engine) SetSpeedScale(scale float64) {
	if scale <= 0 {
		scale = 1.0
	}
	e.speedScale = scale
}

// SetFireScale scales enemy fire rates; cooldowns are divided by it.
// Values at or below zero reset to 1.
func (e *Engine) SetFireScale(scale float64) {
	if scale <= 0 {
		scale = 1.0
	}
	e.fireScale = scale
}

// Step advances the simulation by exactly one tick.
func (e *Engine) Step() StepResult {
	e.tick++
	e.ledger.Tick()
	e.stepDirector()
	e.stepEnemies()
	e.stepProjectiles()
	return e.resolveCollisions()
}

// stepEnemies runs each enemy's behavior update. Behaviors only mutate the
// enemy itself and emit projectiles; removal happens during collision
// resolution.
func (e *Engine) stepEnemies() {
	for _, en := range e.world.Enemies {
		switch en.Kind {
		case KindSeeker:
			e.advanceSeeker(en)
		case KindWanderer:
			e.advanceWanderer(en)
		case KindSpinner:
			e.advanceSpinner(en)
		case KindBoss:
			e.advanceBoss(en)
		}
	}
}

// stepProjectiles integrates both shot streams and culls anything that has
// left the arena.
func (e *Engine) stepProjectiles() {
	trailTick := e.cfg.Effects.TrailEvery > 0 && e.tick%e.cfg.Effects.TrailEvery == 0

	for i := len(e.world.PlayerShots) - 1; i >= 0; i-- {
		p := e.world.PlayerShots[i]
		p.Pos = p.Pos.Add(p.Vel)
		if e.offArena(p.Pos, p.Radius) {
			e.world.RemovePlayerShotAt(i)
			continue
		}
		if trailTick && e.effects.Capacity() > 0 {
			e.effects.SpawnTrail(p.Pos, core.ColorGray, 0.5)
		}
	}

	for i := len(e.world.EnemyShots) - 1; i >= 0; i-- {
		p := e.world.EnemyShots[i]
		p.Pos = p.Pos.Add(p.Vel)
		if e.offArena(p.Pos, p.Radius) {
			e.world.RemoveEnemyShotAt(i)
		}
	}
}

// offArena reports whether a point has left the arena plus a small margin.
func (e *Engine) offArena(pos core.Vec2, radius float64) bool {
	margin := radius + 2
	return pos.X < -margin || pos.X > e.w+margin || pos.Y < -margin || pos.Y > e.h+margin
}

// FirePlayerShot adds a player-owned projectile to the world.
// The ship calls this; the engine owns the projectile from then on.
func (e *Engine) FirePlayerShot(pos, dir core.Vec2) {
	d := dir.Normalize()
	if d.LenSq() == 0 {
		return
	}
	e.world.AddPlayerShot(&Projectile{
		Pos:    pos,
		Vel:    d.Scale(e.cfg.Player.ShotSpeed),
		Radius: 0.4,
		Color:  core.ColorBrightYellow,
		Owner:  OwnerPlayer,
	})
}

// fireEnemyShot emits an enemy projectile toward an absolute angle.
func (e *Engine) fireEnemyShot(pos core.Vec2, angle, speed float64) {
	e.world.AddEnemyShot(&Projectile{
		Pos:    pos,
		Vel:    core.FromAngle(angle).Scale(speed * e.speedScale),
		Radius: 0.4,
		Color:  core.ColorOrange,
		Owner:  OwnerEnemy,
	})
}

// randRange returns a uniform int in [min, max].
func (e *Engine) randRange(min, max int) int {
	if max <= min {
		return min
	}
	return min + e.rng.Intn(max-min+1)
}

// fireInterval scales a base cooldown by the fire-rate multiplier.
func (e *Engine) fireInterval(base int) int {
	v := int(float64(base) / e.fireScale)
	if v < 1 {
		v = 1
	}
	return v
}

// Score returns the current score.
func (e *Engine) Score() int {
	return e.ledger.Score()
}

// Combo returns the current streak count and active multiplier.
func (e *Engine) Combo() (count, multiplier int) {
	return e.ledger.Combo()
}

// Tick returns the number of simulation ticks since the last reset.
func (e *Engine) Tick() int {
	return e.tick
}

// World exposes the live actor collections for rendering.
func (e *Engine) World() *World {
	return e.world
}

// BossHealth returns the boss's current and max health.
// ok is false when no boss is alive.
func (e *Engine) BossHealth() (current, max int, ok bool) {
	b := e.world.Boss()
	if b == nil {
		return 0, 0, false
	}
	return b.Health, b.MaxHealth, true
}

// SpawnInterval returns the director's current spawn interval in ticks.
func (e *Engine) SpawnInterval() int {
	return e.dir.spawnInterval
}

// PopulationCap returns the director's current enemy population cap.
func (e *Engine) PopulationCap() int {
	return e.dir.popCap
}

// Kills returns the number of enemies destroyed since the last reset.
func (e *Engine) Kills() int {
	return e.kills
}

// BossesDefeated returns the number of bosses destroyed since the last reset.
func (e *Engine) BossesDefeated() int {
	return e.bossesDefeated
}

// MaxCombo returns the highest combo streak reached since the last reset.
func (e *Engine) MaxCombo() int {
	return e.ledger.MaxCombo()
}

// deadPlayer is the nil-player stand-in: never alive, never a target.
type deadPlayer struct{}

func (deadPlayer) Position() core.Vec2 { return core.Vec2{} }
func (deadPlayer) Alive() bool         { return false }
func (deadPlayer) Invulnerable() bool  { return false }
func (deadPlayer) Die()                {}

type nopEffects struct{}

func (nopEffects) SpawnTrail(core.Vec2, core.Color, float64)                       {}
func (nopEffects) SpawnExplosion(core.Vec2, int, core.Color, float64, float64, float64) {}
func (nopEffects) SpawnDebris(core.Vec2, int, core.Color, float64)                 {}
func (nopEffects) SpawnScoreText(core.Vec2, string, core.Color)                    {}
func (nopEffects) SpawnBossHit(core.Vec2)                                          {}
func (nopEffects) Capacity() int                                                   { return 0 }

type nopCamera struct{}

func (nopCamera) AddShake(int, float64) {}

// scoreTextColor picks the floating-text color for the active multiplier.
func scoreTextColor(multiplier int) core.Color {
	switch multiplier {
	case 4:
		return core.ColorBrightMagenta
	case 2:
		return core.ColorBrightYellow
	default:
		return core.ColorWhite
	}
}

// formatPoints renders a point award as floating text.
func formatPoints(points int) string {
	return "+" + strconv.Itoa(points)
}
