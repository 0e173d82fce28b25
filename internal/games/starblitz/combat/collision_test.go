package combat

import (
	"testing"

	"github.com/vovakirdan/starblitz/internal/core"
)

func TestPlayerShotDestroysEnemy(t *testing.T) {
	player := &stubPlayer{pos: core.V(10, 20), alive: true}
	e := newTestEngine(player)

	en := e.newWanderer()
	en.Pos = core.V(60, 6)
	e.world.AddEnemy(en)
	e.world.AddPlayerShot(&Projectile{Pos: core.V(60, 6), Radius: 0.4, Owner: OwnerPlayer})

	res := e.resolveCollisions()

	if res.EnemiesDestroyed != 1 {
		t.Errorf("EnemiesDestroyed = %d, expected 1", res.EnemiesDestroyed)
	}
	if e.world.EnemyCount() != 0 {
		t.Errorf("enemy count = %d, expected 0", e.world.EnemyCount())
	}
	if len(e.world.PlayerShots) != 0 {
		t.Errorf("shot count = %d, expected 0; the shot is consumed", len(e.world.PlayerShots))
	}
	if e.Score() != e.cfg.Wanderer.Score {
		t.Errorf("score = %d, expected %d", e.Score(), e.cfg.Wanderer.Score)
	}
	if e.Kills() != 1 {
		t.Errorf("Kills() = %d, expected 1", e.Kills())
	}
}

func TestPlayerShotMissesDistantEnemy(t *testing.T) {
	player := &stubPlayer{pos: core.V(10, 20), alive: true}
	e := newTestEngine(player)

	en := e.newWanderer()
	en.Pos = core.V(60, 6)
	e.world.AddEnemy(en)
	e.world.AddPlayerShot(&Projectile{Pos: core.V(20, 6), Radius: 0.4, Owner: OwnerPlayer})

	e.resolveCollisions()

	if e.world.EnemyCount() != 1 || len(e.world.PlayerShots) != 1 {
		t.Error("nothing should be removed when the shot misses")
	}
}

func TestEnemyContactKillsPlayer(t *testing.T) {
	player := &stubPlayer{pos: core.V(40, 12), alive: true}
	e := newTestEngine(player)

	en := e.newSeeker()
	en.Pos = core.V(40, 12)
	e.world.AddEnemy(en)

	res := e.resolveCollisions()

	if !res.PlayerKilled {
		t.Error("expected PlayerKilled on body contact")
	}
	if player.deaths != 1 {
		t.Errorf("player deaths = %d, expected 1", player.deaths)
	}
	if e.world.EnemyCount() != 1 {
		t.Errorf("enemy count = %d, expected 1; body contact does not destroy the enemy", e.world.EnemyCount())
	}
}

func TestInvulnerablePlayerSurvivesContact(t *testing.T) {
	player := &stubPlayer{pos: core.V(40, 12), alive: true, invuln: true}
	e := newTestEngine(player)

	en := e.newSeeker()
	en.Pos = core.V(40, 12)
	e.world.AddEnemy(en)
	e.world.AddEnemyShot(&Projectile{Pos: core.V(40, 12), Radius: 0.4, Owner: OwnerEnemy})

	res := e.resolveCollisions()

	if res.PlayerKilled || player.deaths != 0 {
		t.Error("invulnerable player must survive contact and shots")
	}
	if len(e.world.EnemyShots) != 1 {
		t.Error("enemy shots pass through an invulnerable player, not consumed")
	}
}

func TestEnemyShotKillsPlayer(t *testing.T) {
	player := &stubPlayer{pos: core.V(40, 12), alive: true}
	e := newTestEngine(player)

	e.world.AddEnemyShot(&Projectile{Pos: core.V(40.5, 12), Radius: 0.4, Owner: OwnerEnemy})

	res := e.resolveCollisions()

	if !res.PlayerKilled || player.deaths != 1 {
		t.Error("expected the enemy shot to kill the player")
	}
	if len(e.world.EnemyShots) != 0 {
		t.Errorf("enemy shot count = %d, expected 0; the lethal shot is consumed", len(e.world.EnemyShots))
	}
}

func TestBossHitWindowThrottlesSameTick(t *testing.T) {
	player := &stubPlayer{pos: core.V(10, 20), alive: true}
	e := newTestEngine(player) // hit_window = 3

	boss := spawnTestBoss(e)
	boss.Pos = core.V(40, 8)
	e.world.AddPlayerShot(&Projectile{Pos: core.V(40, 8), Radius: 0.4, Owner: OwnerPlayer})
	e.world.AddPlayerShot(&Projectile{Pos: core.V(41, 8), Radius: 0.4, Owner: OwnerPlayer})

	e.resolveCollisions()

	if boss.Health != e.cfg.Boss.Health-1 {
		t.Errorf("boss health = %d, expected %d; the second same-tick hit is throttled",
			boss.Health, e.cfg.Boss.Health-1)
	}
	if len(e.world.PlayerShots) != 0 {
		t.Errorf("shot count = %d, expected 0; throttled shots are still consumed", len(e.world.PlayerShots))
	}
	if e.Score() != e.cfg.Boss.HitScore {
		t.Errorf("score = %d, expected %d for one accepted hit", e.Score(), e.cfg.Boss.HitScore)
	}
}

func TestBossHitWindowZeroAcceptsEveryHit(t *testing.T) {
	player := &stubPlayer{pos: core.V(10, 20), alive: true}
	cfg := testConfig()
	cfg.Boss.HitWindow = 0
	e := NewEngine(player, nil, nil)
	e.Reset(cfg, 80, 24, 1)

	boss := spawnTestBoss(e)
	boss.Pos = core.V(40, 8)
	e.world.AddPlayerShot(&Projectile{Pos: core.V(40, 8), Radius: 0.4, Owner: OwnerPlayer})
	e.world.AddPlayerShot(&Projectile{Pos: core.V(41, 8), Radius: 0.4, Owner: OwnerPlayer})

	e.resolveCollisions()

	if boss.Health != cfg.Boss.Health-2 {
		t.Errorf("boss health = %d, expected %d with no throttle window", boss.Health, cfg.Boss.Health-2)
	}
}

func TestBossHitWindowAcrossTicks(t *testing.T) {
	player := &stubPlayer{pos: core.V(10, 20), alive: true}
	e := newTestEngine(player) // hit_window = 3

	boss := spawnTestBoss(e)
	boss.Pos = core.V(40, 8)

	hit := func() {
		e.world.AddPlayerShot(&Projectile{Pos: core.V(40, 8), Radius: 0.4, Owner: OwnerPlayer})
		e.resolveCollisions()
	}

	hit() // accepted
	e.tick += 2
	hit() // inside the window: consumed, no damage
	e.tick += 3
	hit() // window elapsed: accepted

	if boss.Health != e.cfg.Boss.Health-2 {
		t.Errorf("boss health = %d, expected %d", boss.Health, e.cfg.Boss.Health-2)
	}
}

func TestBossHealthNeverNegative(t *testing.T) {
	player := &stubPlayer{pos: core.V(10, 20), alive: true}
	cfg := testConfig()
	cfg.Boss.HitWindow = 0
	e := NewEngine(player, nil, nil)
	e.Reset(cfg, 80, 24, 1)

	boss := spawnTestBoss(e)
	boss.Pos = core.V(40, 8)
	boss.Health = 1
	for i := 0; i < 5; i++ {
		e.world.AddPlayerShot(&Projectile{Pos: core.V(40+float64(i), 8), Radius: 0.4, Owner: OwnerPlayer})
	}

	res := e.resolveCollisions()

	if !res.BossDefeated {
		t.Error("expected BossDefeated")
	}
	if e.world.BossAlive() {
		t.Error("boss should be removed exactly when health reaches zero")
	}
	if boss.Health < 0 {
		t.Errorf("boss health = %d, must never go negative", boss.Health)
	}
}

func TestBossDestructionAward(t *testing.T) {
	player := &stubPlayer{pos: core.V(10, 20), alive: true}
	cfg := testConfig()
	cfg.Boss.HitWindow = 0
	e := NewEngine(player, nil, nil)
	e.Reset(cfg, 80, 24, 1)

	boss := spawnTestBoss(e)
	boss.Pos = core.V(40, 8)
	boss.Health = 1
	e.world.AddPlayerShot(&Projectile{Pos: core.V(40, 8), Radius: 0.4, Owner: OwnerPlayer})

	res := e.resolveCollisions()

	if !res.BossDefeated {
		t.Fatal("expected BossDefeated")
	}
	want := cfg.Boss.HitScore + cfg.Boss.Score // flat hit points plus destruction bonus at x1
	if e.Score() != want {
		t.Errorf("score = %d, expected %d", e.Score(), want)
	}
	if e.BossesDefeated() != 1 {
		t.Errorf("BossesDefeated() = %d, expected 1", e.BossesDefeated())
	}
}

func TestBossDestructionUsesMultiplier(t *testing.T) {
	player := &stubPlayer{pos: core.V(10, 20), alive: true}
	cfg := testConfig()
	cfg.Boss.HitWindow = 0
	e := NewEngine(player, nil, nil)
	e.Reset(cfg, 80, 24, 1)

	// Build a 5-streak for the x2 tier
	for i := 0; i < 5; i++ {
		e.ledger.OnEnemyDestroyed(0)
	}
	base := e.Score()

	boss := spawnTestBoss(e)
	boss.Pos = core.V(40, 8)
	boss.Health = 1
	e.world.AddPlayerShot(&Projectile{Pos: core.V(40, 8), Radius: 0.4, Owner: OwnerPlayer})

	e.resolveCollisions()

	want := base + cfg.Boss.HitScore + cfg.Boss.Score*2
	if e.Score() != want {
		t.Errorf("score = %d, expected %d; destruction bonus honors the multiplier", e.Score(), want)
	}
}

func TestBossHitEffectCadence(t *testing.T) {
	player := &stubPlayer{pos: core.V(10, 20), alive: true}
	rec := &recordingEffects{}
	cfg := testConfig()
	cfg.Boss.HitWindow = 0 // every hit lands
	e := NewEngine(player, rec, nil)
	e.Reset(cfg, 80, 24, 1)

	boss := spawnTestBoss(e)
	boss.Pos = core.V(40, 8)

	for i := 0; i < 7; i++ {
		e.world.AddPlayerShot(&Projectile{Pos: core.V(40, 8), Radius: 0.4, Owner: OwnerPlayer})
		e.resolveCollisions()
	}

	// hit_effect_every = 3: flashes on hits 3 and 6
	if rec.bossHits != 2 {
		t.Errorf("boss hit flashes = %d, expected 2 for 7 hits at cadence 3", rec.bossHits)
	}
	if boss.Health != cfg.Boss.Health-7 {
		t.Errorf("boss health = %d, expected %d; the cadence gates visuals, not damage",
			boss.Health, cfg.Boss.Health-7)
	}
}

func TestDestroyEnemyEmitsEffects(t *testing.T) {
	player := &stubPlayer{pos: core.V(10, 20), alive: true}
	rec := &recordingEffects{}
	cam := &recordingCamera{}
	e := NewEngine(player, rec, cam)
	e.Reset(testConfig(), 80, 24, 1)

	en := e.newSeeker()
	en.Pos = core.V(60, 6)
	e.world.AddEnemy(en)
	e.world.AddPlayerShot(&Projectile{Pos: core.V(60, 6), Radius: 0.4, Owner: OwnerPlayer})

	e.resolveCollisions()

	if rec.explosions != 1 {
		t.Errorf("explosions = %d, expected 1", rec.explosions)
	}
	if rec.scoreTexts != 1 {
		t.Errorf("score texts = %d, expected 1", rec.scoreTexts)
	}
	if cam.shakes != 1 {
		t.Errorf("camera shakes = %d, expected 1", cam.shakes)
	}
}
