package combat

import "github.com/vovakirdan/starblitz/internal/config"

// director drives spawn pacing: a count-up spawn timer, a periodic ramp
// that tightens the interval and raises the population cap one step at a
// time, and a boss countdown that freezes while a boss is alive.
type director struct {
	cfg config.SpawnerConfig

	spawnTimer    int
	spawnInterval int
	popCap        int
	rampTimer     int
	bossTimer     int
}

func newDirector(cfg config.SpawnerConfig) director {
	return director{
		cfg:           cfg,
		spawnInterval: cfg.InitialInterval,
		popCap:        cfg.InitialCap,
		bossTimer:     cfg.BossEvery,
	}
}

// stepDirector advances the spawn machinery by one tick.
func (e *Engine) stepDirector() {
	d := &e.dir

	// Pacing ramp: one interval step and one cap step per trigger,
	// monotone toward their limits. RampEvery 0 disables ramping.
	if d.cfg.RampEvery > 0 {
		d.rampTimer++
		if d.rampTimer >= d.cfg.RampEvery {
			d.rampTimer = 0
			if d.spawnInterval > d.cfg.MinInterval {
				d.spawnInterval--
			}
			if d.popCap < d.cfg.MaxCap {
				d.popCap++
			}
		}
	}

	// Regular spawns while below the population cap.
	d.spawnTimer++
	if d.spawnTimer >= d.spawnInterval {
		d.spawnTimer = 0
		if e.world.EnemyCount() < d.popCap {
			e.world.AddEnemy(e.rollEnemy())
		}
	}

	// Boss countdown only runs while no boss is alive, so the next boss
	// arrives a full interval after the previous one dies.
	if !e.world.BossAlive() {
		d.bossTimer--
		if d.bossTimer <= 0 {
			e.world.AddEnemy(e.newBoss())
			d.bossTimer = d.cfg.BossEvery
		}
	}
}

// rollEnemy picks a weighted-random enemy kind and constructs it.
func (e *Engine) rollEnemy() *Enemy {
	c := e.dir.cfg
	total := c.SeekerWeight + c.WandererWeight + c.SpinnerWeight
	if total <= 0 {
		return e.newSeeker()
	}
	r := e.rng.Intn(total)
	switch {
	case r < c.SeekerWeight:
		return e.newSeeker()
	case r < c.SeekerWeight+c.WandererWeight:
		return e.newWanderer()
	default:
		return e.newSpinner()
	}
}
