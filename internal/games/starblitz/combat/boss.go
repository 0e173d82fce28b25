package combat

import (
	"math"

	"github.com/vovakirdan/starblitz/internal/core"
)

// Boss movement sub-phases, cycled on a fixed rotation once the boss has
// descended to its holding altitude.
const (
	bossPhaseStrafeRight = 0
	bossPhaseStrafeLeft  = 1
	bossPhaseWeave       = 2
	bossPhaseHold        = 3
)

// advanceBoss runs the boss state machine: descend first, then cycle the
// four movement sub-phases. The shot timer runs throughout.
func (e *Engine) advanceBoss(en *Enemy) {
	c := e.cfg.Boss

	if en.Pos.Y < c.HoldAltitude {
		en.Pos.Y += c.DescendSpeed * e.speedScale
		if en.Pos.Y >= c.HoldAltitude {
			en.Pos.Y = c.HoldAltitude
			en.Vel = core.V(c.StrafeSpeed*e.speedScale, 0) // enter the first strafe
		}
	} else {
		e.moveBossPhase(en)
	}

	e.bossFire(en)
}

// moveBossPhase advances the phase rotation and integrates movement.
// Phase entry sets the velocity; edge contact reverses it and clamps.
func (e *Engine) moveBossPhase(en *Enemy) {
	c := e.cfg.Boss

	en.phaseTimer--
	if en.phaseTimer <= 0 {
		en.phaseTimer = c.PhaseTicks
		en.attackPhase = (en.attackPhase + 1) % 4
		switch en.attackPhase {
		case bossPhaseStrafeRight:
			en.Vel = core.V(c.StrafeSpeed*e.speedScale, 0)
		case bossPhaseStrafeLeft:
			en.Vel = core.V(-c.StrafeSpeed*e.speedScale, 0)
		default:
			en.Vel = core.Vec2{}
		}
	}

	if en.attackPhase == bossPhaseWeave {
		en.orbitAngle += 0.05 * e.speedScale
		en.Vel = core.V(
			math.Cos(en.orbitAngle)*c.StrafeSpeed*e.speedScale,
			math.Sin(en.orbitAngle)*c.StrafeSpeed*0.5*e.speedScale,
		)
	}

	en.Pos = en.Pos.Add(en.Vel)

	if en.Pos.X < en.Radius {
		en.Pos.X = en.Radius
		en.Vel.X = -en.Vel.X
	} else if en.Pos.X > e.w-en.Radius {
		en.Pos.X = e.w - en.Radius
		en.Vel.X = -en.Vel.X
	}
	// The weave bobs below the hold line, never back above it
	if en.Pos.Y < c.HoldAltitude {
		en.Pos.Y = c.HoldAltitude
		en.Vel.Y = -en.Vel.Y
	} else if en.Pos.Y > c.HoldAltitude+4 {
		en.Pos.Y = c.HoldAltitude + 4
		en.Vel.Y = -en.Vel.Y
	}
}

// bossFire picks an attack off the health ladder when the shot timer
// expires: radial burst below 30% health while holding, three-way spread
// below 60% while holding, otherwise a single aimed shot. The shot delay is
// recomputed from remaining health after every volley.
func (e *Engine) bossFire(en *Enemy) {
	c := e.cfg.Boss

	en.shotTimer--
	if en.shotTimer > 0 || !e.player.Alive() {
		return
	}

	healthFrac := 1.0
	if en.MaxHealth > 0 {
		healthFrac = float64(en.Health) / float64(en.MaxHealth)
	}
	holding := en.attackPhase == bossPhaseHold

	switch {
	case holding && healthFrac < 0.3 && en.burstSize > 0:
		// Each volley rotates by half the shot gap so bursts interleave
		base := float64(en.burstCount) * math.Pi / float64(en.burstSize)
		for i := 0; i < en.burstSize; i++ {
			angle := base + twoPi*float64(i)/float64(en.burstSize)
			e.fireEnemyShot(en.Pos, angle, c.ShotSpeed)
		}
		en.burstCount++
	case holding && healthFrac < 0.6:
		aim := e.player.Position().Sub(en.Pos).Angle()
		for _, off := range [...]float64{-c.SpreadAngle, 0, c.SpreadAngle} {
			e.fireEnemyShot(en.Pos, aim+off, c.ShotSpeed)
		}
	default:
		aim := e.player.Position().Sub(en.Pos).Angle()
		e.fireEnemyShot(en.Pos, aim, c.ShotSpeed)
	}

	en.shotDelay = int(float64(c.ShotDelayBase) * healthFrac)
	if en.shotDelay < c.ShotDelayMin {
		en.shotDelay = c.ShotDelayMin
	}
	en.shotTimer = e.fireInterval(en.shotDelay)
}
