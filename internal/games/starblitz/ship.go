package starblitz

import (
	"github.com/vovakirdan/starblitz/internal/config"
	"github.com/vovakirdan/starblitz/internal/core"
	"github.com/vovakirdan/starblitz/internal/games/starblitz/combat"
)

// Ship is the player avatar. It satisfies combat.Player: the engine reads
// position and status and calls Die on lethal contact; movement, firing,
// lives, and respawn all stay here.
type Ship struct {
	cfg config.PlayerConfig

	pos    core.Vec2
	facing core.Vec2
	w, h   float64

	lives        int
	alive        bool
	invulnLeft   int
	respawnLeft  int
	cooldownLeft int

	// Intent captured from the latest input frame, applied once per
	// simulation tick.
	moveX, moveY int
	firing       bool
}

// Reset places the ship at its spawn point with full lives.
func (s *Ship) Reset(cfg config.PlayerConfig, arenaW, arenaH float64) {
	s.cfg = cfg
	s.w = arenaW
	s.h = arenaH
	s.lives = cfg.Lives
	s.respawn()
}

// respawn revives the ship at the spawn point with a fresh
// invulnerability window.
func (s *Ship) respawn() {
	s.pos = core.V(s.w/2, s.h*0.75)
	s.facing = core.V(0, -1)
	s.alive = true
	s.invulnLeft = s.cfg.InvulnTicks
	s.respawnLeft = 0
	s.cooldownLeft = 0
	s.moveX, s.moveY = 0, 0
	s.firing = false
}

// ReadInput captures movement and fire intent from the latest frame.
// The intent holds across every fixed step run for that frame.
func (s *Ship) ReadInput(in core.InputFrame) {
	s.moveX, s.moveY = 0, 0
	if in.Has(core.ActionLeft) {
		s.moveX--
	}
	if in.Has(core.ActionRight) {
		s.moveX++
	}
	if in.Has(core.ActionUp) {
		s.moveY--
	}
	if in.Has(core.ActionDown) {
		s.moveY++
	}
	s.firing = in.Has(core.ActionFire)
}

// Update advances the ship by one simulation tick: respawn countdown while
// down, otherwise movement, facing, invulnerability, and firing.
func (s *Ship) Update(eng *combat.Engine) {
	if s.cooldownLeft > 0 {
		s.cooldownLeft--
	}
	if s.invulnLeft > 0 {
		s.invulnLeft--
	}

	if !s.alive {
		if s.lives > 0 {
			s.respawnLeft--
			if s.respawnLeft <= 0 {
				s.respawn()
			}
		}
		return
	}

	// Diagonals are normalized so every heading moves at the same speed.
	dir := core.V(float64(s.moveX), float64(s.moveY)).Normalize()
	if dir.LenSq() > 0 {
		s.pos = s.pos.Add(dir.Scale(s.cfg.Speed))
		s.facing = dir
	}
	s.pos.X = clamp(s.pos.X, s.cfg.Radius, s.w-s.cfg.Radius)
	s.pos.Y = clamp(s.pos.Y, s.cfg.Radius, s.h-s.cfg.Radius)

	if s.firing && s.cooldownLeft <= 0 {
		muzzle := s.pos.Add(s.facing.Scale(s.cfg.Radius))
		eng.FirePlayerShot(muzzle, s.facing)
		s.cooldownLeft = s.cfg.FireCooldown
	}
}

// Position returns the ship's center.
func (s *Ship) Position() core.Vec2 {
	return s.pos
}

// Alive reports whether the ship is currently in play.
func (s *Ship) Alive() bool {
	return s.alive
}

// Invulnerable reports whether the post-spawn grace window is active.
func (s *Ship) Invulnerable() bool {
	return s.invulnLeft > 0
}

// Die consumes a life and schedules the respawn. The final death leaves
// the ship down for good; the game ends the run.
func (s *Ship) Die() {
	if !s.alive {
		return
	}
	s.alive = false
	s.lives--
	if s.lives > 0 {
		s.respawnLeft = s.cfg.RespawnDelay
	}
}

// Lives returns the remaining lives.
func (s *Ship) Lives() int {
	return s.lives
}

// Facing returns the current facing direction as a unit vector.
func (s *Ship) Facing() core.Vec2 {
	return s.facing
}

// clamp restricts a float64 to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
