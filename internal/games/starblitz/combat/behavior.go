package combat

import (
	"github.com/vovakirdan/starblitz/internal/core"
)

// advanceSeeker accelerates toward the player, clamped to the seeker's own
// max speed, and fires aimed shots with bounded jitter when in range.
func (e *Engine) advanceSeeker(en *Enemy) {
	c := e.cfg.Seeker

	if e.player.Alive() {
		dir := e.player.Position().Sub(en.Pos).Normalize()
		en.Vel = en.Vel.Add(dir.Scale(c.Accel * e.speedScale))
	}
	en.Vel = en.Vel.Limit(en.maxSpeed * e.speedScale)
	en.Pos = en.Pos.Add(en.Vel)

	// Face travel direction; a zero velocity keeps the last heading
	if en.Vel.LenSq() > 0 {
		en.Rotation = en.Vel.Angle()
	}

	en.fireTimer--
	if en.fireTimer > 0 || !e.player.Alive() {
		return
	}
	to := e.player.Position().Sub(en.Pos)
	if to.Len() > c.FireRange {
		return
	}
	jitter := (e.rng.Float64()*2 - 1) * c.AimJitter
	e.fireEnemyShot(en.Pos, to.Angle()+jitter, c.ShotSpeed)
	en.fireTimer = e.fireInterval(e.randRange(c.FireMin, c.FireMax))
}

// advanceWanderer holds a heading for a random interval, re-rolls it, and
// bounces off arena edges. Shots are rare and gated by an extra coin flip.
func (e *Engine) advanceWanderer(en *Enemy) {
	c := e.cfg.Wanderer

	en.turnTimer--
	if en.turnTimer <= 0 {
		en.Rotation = e.rng.Float64() * twoPi
		en.turnTimer = e.randRange(c.TurnMin, c.TurnMax)
	}

	en.Vel = core.FromAngle(en.Rotation).Scale(en.speed * e.speedScale)
	en.Pos = en.Pos.Add(en.Vel)

	// Reflect off arena edges rather than wrapping
	bounced := false
	if en.Pos.X < en.Radius {
		en.Pos.X = en.Radius
		en.Vel.X = -en.Vel.X
		bounced = true
	} else if en.Pos.X > e.w-en.Radius {
		en.Pos.X = e.w - en.Radius
		en.Vel.X = -en.Vel.X
		bounced = true
	}
	if en.Pos.Y < en.Radius {
		en.Pos.Y = en.Radius
		en.Vel.Y = -en.Vel.Y
		bounced = true
	} else if en.Pos.Y > e.h-en.Radius {
		en.Pos.Y = e.h - en.Radius
		en.Vel.Y = -en.Vel.Y
		bounced = true
	}
	if bounced {
		en.Rotation = en.Vel.Angle()
	}

	en.fireTimer--
	if en.fireTimer > 0 || !e.player.Alive() {
		return
	}
	if e.rng.Float64() < c.FireChance {
		aim := e.player.Position().Sub(en.Pos).Angle()
		e.fireEnemyShot(en.Pos, aim, c.ShotSpeed)
	}
	en.fireTimer = e.fireInterval(e.randRange(c.FireMin, c.FireMax))
}

// advanceSpinner eases toward a point on its orbit circle while the orbit
// center slowly relocates, and fires fixed-size aimed bursts.
func (e *Engine) advanceSpinner(en *Enemy) {
	c := e.cfg.Spinner

	en.relocateTimer--
	if en.relocateTimer <= 0 {
		en.orbitCenter = e.orbitPoint(en.orbitRadius + en.Radius)
		en.relocateTimer = c.RelocateEvery
	}

	en.orbitAngle += en.orbitSpeed * e.speedScale
	target := en.orbitCenter.Add(core.FromAngle(en.orbitAngle).Scale(en.orbitRadius))
	en.Vel = target.Sub(en.Pos).Scale(0.08 * e.speedScale)
	en.Pos = en.Pos.Add(en.Vel)

	// Visual spin is independent of the orbit
	en.Rotation += c.SpinRate

	if !e.player.Alive() {
		return
	}
	if en.burstLeft > 0 {
		en.burstTimer--
		if en.burstTimer <= 0 {
			aim := e.player.Position().Sub(en.Pos).Angle()
			e.fireEnemyShot(en.Pos, aim, c.ShotSpeed)
			en.burstLeft--
			en.burstTimer = c.BurstGap
		}
		return
	}
	en.fireTimer--
	if en.fireTimer <= 0 {
		en.burstLeft = c.BurstSize
		en.burstTimer = 0 // first burst shot leaves next tick
		en.fireTimer = e.fireInterval(c.BurstPause)
	}
}
