package combat

import (
	"math"

	"github.com/vovakirdan/starblitz/internal/core"
)

// circleHit reports whether two circles overlap.
func circleHit(a core.Vec2, ra float64, b core.Vec2, rb float64) bool {
	r := ra + rb
	return a.Sub(b).LenSq() <= r*r
}

// resolveCollisions runs every hit test for the tick. All removal loops
// walk backwards so a swap-removed element can never be skipped or
// processed twice.
func (e *Engine) resolveCollisions() StepResult {
	var res StepResult

	// Enemy bodies against the player's shrunk hit circle. Contact kills
	// the player; the enemy survives.
	if e.player.Alive() && !e.player.Invulnerable() {
		pp := e.player.Position()
		pr := e.cfg.Player.Radius * e.cfg.Player.HitShrink
		for _, en := range e.world.Enemies {
			if circleHit(pp, pr, en.Pos, en.Radius) {
				e.killPlayer(pp)
				res.PlayerKilled = true
				break
			}
		}
	}

	// Player shots against enemies.
	for i := len(e.world.PlayerShots) - 1; i >= 0; i-- {
		shot := e.world.PlayerShots[i]
		for j := len(e.world.Enemies) - 1; j >= 0; j-- {
			en := e.world.Enemies[j]

			if en.Kind == KindBoss {
				if e.resolveBossHit(shot, i, en, &res) {
					break
				}
				continue
			}

			if !circleHit(shot.Pos, shot.Radius, en.Pos, en.Radius) {
				continue
			}
			e.world.RemovePlayerShotAt(i)
			e.destroyEnemy(j)
			res.EnemiesDestroyed++
			break
		}
	}

	// Enemy shots against the player's full radius.
	if e.player.Alive() && !e.player.Invulnerable() {
		pp := e.player.Position()
		for i := len(e.world.EnemyShots) - 1; i >= 0; i-- {
			shot := e.world.EnemyShots[i]
			if !circleHit(pp, e.cfg.Player.Radius, shot.Pos, shot.Radius) {
				continue
			}
			e.world.RemoveEnemyShotAt(i)
			e.killPlayer(pp)
			res.PlayerKilled = true
			break
		}
	}

	return res
}

// resolveBossHit applies one player shot to the boss. Returns true when the
// shot was consumed. Hits inside the throttle window still consume the shot
// but deal no damage.
func (e *Engine) resolveBossHit(shot *Projectile, shotIdx int, boss *Enemy, res *StepResult) bool {
	// Manhattan broad phase: dist <= |dx|+|dy| <= sqrt2*dist, so 1.5x the
	// combined radius cannot reject a true overlap.
	reach := (shot.Radius + boss.Radius) * 1.5
	if math.Abs(shot.Pos.X-boss.Pos.X)+math.Abs(shot.Pos.Y-boss.Pos.Y) > reach {
		return false
	}
	if !circleHit(shot.Pos, shot.Radius, boss.Pos, boss.Radius) {
		return false
	}

	e.world.RemovePlayerShotAt(shotIdx)

	if e.cfg.Boss.HitWindow > 0 && e.tick-boss.lastHitTick < e.cfg.Boss.HitWindow {
		return true
	}

	boss.lastHitTick = e.tick
	boss.hitCount++
	boss.Health--
	e.ledger.OnBossHit(e.cfg.Boss.HitScore)

	if e.cfg.Boss.HitEffectEvery > 0 && boss.hitCount%e.cfg.Boss.HitEffectEvery == 0 {
		e.effects.SpawnBossHit(shot.Pos)
		e.camera.AddShake(4, 0.3)
	}

	if boss.Health <= 0 {
		for j, en := range e.world.Enemies {
			if en == boss {
				e.destroyEnemy(j)
				break
			}
		}
		res.EnemiesDestroyed++
		res.BossDefeated = true
	}
	return true
}

// destroyEnemy removes the enemy at index j, scores the kill, and emits
// destruction effects.
func (e *Engine) destroyEnemy(j int) {
	en := e.world.Enemies[j]
	points := e.ledger.OnEnemyDestroyed(en.Score)
	e.kills++
	e.world.RemoveEnemyAt(j)

	if en.Kind == KindBoss {
		e.bossesDefeated++
		e.effects.SpawnExplosion(en.Pos, 60, en.Color, 1.2, 1.4, 0.02)
		e.effects.SpawnDebris(en.Pos, 20, core.ColorOrange, 0.9)
		e.camera.AddShake(30, 1.5)
	} else {
		e.effects.SpawnExplosion(en.Pos, 12, en.Color, 0.8, 1.0, 0.04)
		e.effects.SpawnDebris(en.Pos, 6, core.ColorGray, 0.5)
		e.camera.AddShake(6, 0.4)
	}

	if e.effects.Capacity() > 0 {
		_, mult := e.ledger.Combo()
		e.effects.SpawnScoreText(en.Pos, formatPoints(points), scoreTextColor(mult))
	}
}

// killPlayer applies a lethal hit to the player and emits death effects.
func (e *Engine) killPlayer(pos core.Vec2) {
	e.player.Die()
	e.effects.SpawnExplosion(pos, 24, core.ColorBrightYellow, 1.0, 1.2, 0.03)
	e.effects.SpawnDebris(pos, 10, core.ColorOrange, 0.7)
	e.camera.AddShake(20, 1.2)
}
