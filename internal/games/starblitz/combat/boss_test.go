package combat

import (
	"testing"

	"github.com/vovakirdan/starblitz/internal/core"
)

func spawnTestBoss(e *Engine) *Enemy {
	b := e.newBoss()
	e.world.AddEnemy(b)
	return b
}

func TestBossDescendsToHoldAltitude(t *testing.T) {
	player := &stubPlayer{pos: core.V(40, 20), alive: true}
	e := newTestEngine(player)
	b := spawnTestBoss(e)

	if b.Pos.Y >= 0 {
		t.Fatalf("boss should spawn above the arena, Y = %v", b.Pos.Y)
	}

	prevY := b.Pos.Y
	for i := 0; i < 200; i++ {
		e.advanceBoss(b)
		if b.Pos.Y < prevY {
			t.Fatalf("tick %d: boss moved back up during descent", i)
		}
		prevY = b.Pos.Y
		if b.Pos.Y == e.cfg.Boss.HoldAltitude {
			break
		}
	}
	if b.Pos.Y != e.cfg.Boss.HoldAltitude {
		t.Errorf("boss altitude = %v after descent, expected %v", b.Pos.Y, e.cfg.Boss.HoldAltitude)
	}
}

func TestBossPhaseRotation(t *testing.T) {
	player := &stubPlayer{pos: core.V(40, 20), alive: true}
	e := newTestEngine(player)
	b := spawnTestBoss(e)
	b.Pos.Y = e.cfg.Boss.HoldAltitude // skip the descent

	if b.attackPhase != bossPhaseStrafeRight {
		t.Fatalf("initial phase = %d, expected strafe right", b.attackPhase)
	}

	want := []int{bossPhaseStrafeLeft, bossPhaseWeave, bossPhaseHold, bossPhaseStrafeRight}
	for _, phase := range want {
		for i := 0; i < e.cfg.Boss.PhaseTicks; i++ {
			e.advanceBoss(b)
		}
		if b.attackPhase != phase {
			t.Fatalf("after %d ticks phase = %d, expected %d", e.cfg.Boss.PhaseTicks, b.attackPhase, phase)
		}
	}
}

func TestBossStaysInArenaWhileStrafing(t *testing.T) {
	player := &stubPlayer{pos: core.V(40, 20), alive: true}
	e := newTestEngine(player)
	b := spawnTestBoss(e)
	b.Pos.Y = e.cfg.Boss.HoldAltitude

	for i := 0; i < 4000; i++ {
		e.advanceBoss(b)
		if b.Pos.X < b.Radius-1e-9 || b.Pos.X > e.w-b.Radius+1e-9 {
			t.Fatalf("tick %d: boss strafed out of bounds, X = %v", i, b.Pos.X)
		}
		if b.Pos.Y < e.cfg.Boss.HoldAltitude-1e-9 {
			t.Fatalf("tick %d: boss climbed above its hold line, Y = %v", i, b.Pos.Y)
		}
	}
}

func TestBossShotDelayTracksHealth(t *testing.T) {
	player := &stubPlayer{pos: core.V(40, 20), alive: true}
	e := newTestEngine(player)
	b := spawnTestBoss(e)
	b.Pos.Y = e.cfg.Boss.HoldAltitude

	tests := []struct {
		health    int
		wantDelay int
	}{
		{50, 50}, // full health: base delay
		{25, 25}, // half health: half delay
		{10, 15}, // low health: clamped to the floor
		{1, 15},
	}

	for _, tt := range tests {
		b.Health = tt.health
		b.shotTimer = 1
		e.advanceBoss(b)
		if b.shotDelay != tt.wantDelay {
			t.Errorf("health %d: shotDelay = %d, expected %d", tt.health, b.shotDelay, tt.wantDelay)
		}
	}
}

func TestBossAttackLadder(t *testing.T) {
	tests := []struct {
		name      string
		health    int
		phase     int
		wantShots int
	}{
		{"healthy single shot", 50, bossPhaseHold, 1},
		{"hurt spread while holding", 25, bossPhaseHold, 3},
		{"hurt single while strafing", 25, bossPhaseStrafeRight, 1},
		{"critical radial while holding", 10, bossPhaseHold, 12},
		{"critical single while strafing", 10, bossPhaseStrafeLeft, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			player := &stubPlayer{pos: core.V(40, 20), alive: true}
			e := newTestEngine(player)
			b := spawnTestBoss(e)
			b.Pos.Y = e.cfg.Boss.HoldAltitude
			b.Health = tt.health
			b.attackPhase = tt.phase
			b.phaseTimer = 1 << 20 // freeze the phase rotation
			b.shotTimer = 1

			e.advanceBoss(b)
			if got := len(e.world.EnemyShots); got != tt.wantShots {
				t.Errorf("volley fired %d shots, expected %d", got, tt.wantShots)
			}
		})
	}
}

func TestBossRadialVolleysRotate(t *testing.T) {
	player := &stubPlayer{pos: core.V(40, 20), alive: true}
	e := newTestEngine(player)
	b := spawnTestBoss(e)
	b.Pos.Y = e.cfg.Boss.HoldAltitude
	b.Health = 5
	b.attackPhase = bossPhaseHold
	b.phaseTimer = 1 << 20

	b.shotTimer = 1
	e.advanceBoss(b)
	first := e.world.EnemyShots[0].Vel.Angle()
	e.world.EnemyShots = e.world.EnemyShots[:0]

	b.shotTimer = 1
	e.advanceBoss(b)
	second := e.world.EnemyShots[0].Vel.Angle()

	if first == second {
		t.Error("successive radial volleys fired at identical angles, expected a rotating offset")
	}
	if b.burstCount != 2 {
		t.Errorf("burstCount = %d, expected 2 after two volleys", b.burstCount)
	}
}

func TestBossHoldsFireWhilePlayerDead(t *testing.T) {
	player := &stubPlayer{pos: core.V(40, 20), alive: false}
	e := newTestEngine(player)
	b := spawnTestBoss(e)
	b.Pos.Y = e.cfg.Boss.HoldAltitude
	b.shotTimer = 1

	for i := 0; i < 10; i++ {
		e.advanceBoss(b)
	}
	if len(e.world.EnemyShots) != 0 {
		t.Errorf("boss fired %d shots at a dead player", len(e.world.EnemyShots))
	}
}
