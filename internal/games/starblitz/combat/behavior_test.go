package combat

import (
	"testing"

	"github.com/vovakirdan/starblitz/internal/core"
)

func TestSeekerSpeedNeverExceedsMax(t *testing.T) {
	player := &stubPlayer{pos: core.V(40, 12), alive: true}
	e := newTestEngine(player)

	en := e.newSeeker()
	en.Pos = core.V(5, 5)
	e.world.AddEnemy(en)

	for i := 0; i < 600; i++ {
		e.advanceSeeker(en)
		if v := en.Vel.Len(); v > en.maxSpeed+1e-9 {
			t.Fatalf("tick %d: seeker speed %v exceeds max %v", i, v, en.maxSpeed)
		}
		// Keep the chase alive by moving the target around
		if i%120 == 0 {
			player.pos = core.V(float64(10+i%60), float64(5+i%14))
		}
	}
}

func TestSeekerFacesTravelDirection(t *testing.T) {
	player := &stubPlayer{pos: core.V(60, 12), alive: true}
	e := newTestEngine(player)

	en := e.newSeeker()
	en.Pos = core.V(10, 12)
	en.Vel = core.Vec2{}
	e.world.AddEnemy(en)

	for i := 0; i < 30; i++ {
		e.advanceSeeker(en)
	}
	want := en.Vel.Angle()
	if en.Rotation != want {
		t.Errorf("seeker rotation = %v, expected travel angle %v", en.Rotation, want)
	}
}

func TestSeekerZeroVelocityKeepsHeading(t *testing.T) {
	player := &stubPlayer{pos: core.V(40, 12), alive: false}
	e := newTestEngine(player)

	en := e.newSeeker()
	en.Pos = core.V(10, 12)
	en.Vel = core.Vec2{}
	en.Rotation = 1.25
	e.world.AddEnemy(en)

	// Dead player: no acceleration, velocity stays zero
	e.advanceSeeker(en)
	if en.Rotation != 1.25 {
		t.Errorf("rotation changed to %v on zero velocity, expected 1.25", en.Rotation)
	}
}

func TestSeekerFiresOnlyInRange(t *testing.T) {
	player := &stubPlayer{pos: core.V(40, 12), alive: true}
	e := newTestEngine(player)

	en := e.newSeeker()
	en.Pos = core.V(40, 12).Add(core.V(e.cfg.Seeker.FireRange+20, 0))
	en.fireTimer = 0
	e.world.AddEnemy(en)

	e.advanceSeeker(en)
	if len(e.world.EnemyShots) != 0 {
		t.Errorf("seeker fired from beyond its range, %d shots", len(e.world.EnemyShots))
	}

	// Park it next to the player; the ready timer should fire immediately
	en.Pos = player.pos.Add(core.V(5, 0))
	en.Vel = core.Vec2{}
	e.advanceSeeker(en)
	if len(e.world.EnemyShots) != 1 {
		t.Errorf("seeker in range fired %d shots, expected 1", len(e.world.EnemyShots))
	}
	if en.fireTimer < e.cfg.Seeker.FireMin || en.fireTimer > e.cfg.Seeker.FireMax {
		t.Errorf("fire timer reset to %d, expected within [%d, %d]",
			en.fireTimer, e.cfg.Seeker.FireMin, e.cfg.Seeker.FireMax)
	}
}

func TestWandererStaysInArena(t *testing.T) {
	player := &stubPlayer{pos: core.V(40, 12), alive: false}
	e := newTestEngine(player)

	en := e.newWanderer()
	en.Pos = core.V(40, 12)
	e.world.AddEnemy(en)

	for i := 0; i < 2000; i++ {
		e.advanceWanderer(en)
		if en.Pos.X < en.Radius-1e-9 || en.Pos.X > e.w-en.Radius+1e-9 ||
			en.Pos.Y < en.Radius-1e-9 || en.Pos.Y > e.h-en.Radius+1e-9 {
			t.Fatalf("tick %d: wanderer escaped to %+v", i, en.Pos)
		}
	}
}

func TestWandererReflectsOffEdge(t *testing.T) {
	player := &stubPlayer{alive: false}
	e := newTestEngine(player)

	en := e.newWanderer()
	en.Pos = core.V(e.w-en.Radius-0.1, 12)
	en.Rotation = 0 // heading straight right
	en.turnTimer = 1 << 20
	e.world.AddEnemy(en)

	e.advanceWanderer(en)
	if en.Vel.X >= 0 {
		t.Errorf("velocity X = %v after right-edge contact, expected negative", en.Vel.X)
	}
	if en.Pos.X > e.w-en.Radius {
		t.Errorf("position X = %v, expected clamped to %v", en.Pos.X, e.w-en.Radius)
	}
}

func TestSpinnerBurstCadence(t *testing.T) {
	player := &stubPlayer{pos: core.V(40, 20), alive: true}
	e := newTestEngine(player)

	en := e.newSpinner()
	en.Pos = core.V(40, 8)
	en.orbitCenter = core.V(40, 8)
	en.fireTimer = 1 // burst arms on the first advance
	e.world.AddEnemy(en)

	shotTicks := make([]int, 0, e.cfg.Spinner.BurstSize)
	for i := 0; i < e.cfg.Spinner.BurstPause; i++ {
		before := len(e.world.EnemyShots)
		e.advanceSpinner(en)
		if len(e.world.EnemyShots) > before {
			shotTicks = append(shotTicks, i)
		}
	}

	if len(shotTicks) != e.cfg.Spinner.BurstSize {
		t.Fatalf("burst fired %d shots, expected %d", len(shotTicks), e.cfg.Spinner.BurstSize)
	}
	for i := 1; i < len(shotTicks); i++ {
		if gap := shotTicks[i] - shotTicks[i-1]; gap != e.cfg.Spinner.BurstGap {
			t.Errorf("gap between burst shots %d and %d = %d ticks, expected %d",
				i-1, i, gap, e.cfg.Spinner.BurstGap)
		}
	}
}

func TestSpinnerHoldsOrbitDistance(t *testing.T) {
	player := &stubPlayer{alive: false}
	e := newTestEngine(player)

	en := e.newSpinner()
	en.Pos = en.orbitCenter // start at the center, ease outward
	en.relocateTimer = 1 << 20
	e.world.AddEnemy(en)

	for i := 0; i < 600; i++ {
		e.advanceSpinner(en)
	}
	// After settling, the spinner tracks its orbit circle
	dist := en.Pos.Dist(en.orbitCenter)
	if dist < en.orbitRadius*0.5 || dist > en.orbitRadius*1.5 {
		t.Errorf("orbit distance = %v, expected near radius %v", dist, en.orbitRadius)
	}
}

func TestEnemiesHoldFireWhilePlayerDead(t *testing.T) {
	player := &stubPlayer{pos: core.V(40, 12), alive: false}
	e := newTestEngine(player)

	seeker := e.newSeeker()
	seeker.Pos = core.V(42, 12)
	seeker.fireTimer = 0
	wanderer := e.newWanderer()
	wanderer.Pos = core.V(38, 12)
	wanderer.fireTimer = 0
	e.world.AddEnemy(seeker)
	e.world.AddEnemy(wanderer)

	for i := 0; i < 10; i++ {
		e.advanceSeeker(seeker)
		e.advanceWanderer(wanderer)
	}
	if len(e.world.EnemyShots) != 0 {
		t.Errorf("enemies fired %d shots at a dead player", len(e.world.EnemyShots))
	}
}
