package combat

// World holds every live combat actor: the enemy set and the two projectile
// streams. The slices are unordered; removal swaps the last element into the
// hole, so any loop that removes must walk backwards.
type World struct {
	Enemies     []*Enemy
	PlayerShots []*Projectile
	EnemyShots  []*Projectile
}

// NewWorld creates an empty world with modest pre-allocated capacity.
func NewWorld() *World {
	return &World{
		Enemies:     make([]*Enemy, 0, 32),
		PlayerShots: make([]*Projectile, 0, 64),
		EnemyShots:  make([]*Projectile, 0, 128),
	}
}

// AddEnemy inserts an enemy into the live set.
func (w *World) AddEnemy(e *Enemy) {
	w.Enemies = append(w.Enemies, e)
}

// AddPlayerShot inserts a player-owned projectile.
func (w *World) AddPlayerShot(p *Projectile) {
	w.PlayerShots = append(w.PlayerShots, p)
}

// AddEnemyShot inserts an enemy-owned projectile.
func (w *World) AddEnemyShot(p *Projectile) {
	w.EnemyShots = append(w.EnemyShots, p)
}

// RemoveEnemyAt removes the enemy at index i by swapping in the last element.
func (w *World) RemoveEnemyAt(i int) {
	last := len(w.Enemies) - 1
	w.Enemies[i] = w.Enemies[last]
	w.Enemies[last] = nil
	w.Enemies = w.Enemies[:last]
}

// RemovePlayerShotAt removes the player shot at index i by swap.
func (w *World) RemovePlayerShotAt(i int) {
	last := len(w.PlayerShots) - 1
	w.PlayerShots[i] = w.PlayerShots[last]
	w.PlayerShots[last] = nil
	w.PlayerShots = w.PlayerShots[:last]
}

// RemoveEnemyShotAt removes the enemy shot at index i by swap.
func (w *World) RemoveEnemyShotAt(i int) {
	last := len(w.EnemyShots) - 1
	w.EnemyShots[i] = w.EnemyShots[last]
	w.EnemyShots[last] = nil
	w.EnemyShots = w.EnemyShots[:last]
}

// Boss returns the live boss, or nil if none is present.
// Boss presence is derived from the enemy set rather than tracked separately.
func (w *World) Boss() *Enemy {
	for _, e := range w.Enemies {
		if e.Kind == KindBoss {
			return e
		}
	}
	return nil
}

// BossAlive reports whether a boss is currently in the enemy set.
func (w *World) BossAlive() bool {
	return w.Boss() != nil
}

// EnemyCount returns the number of live enemies, boss included.
func (w *World) EnemyCount() int {
	return len(w.Enemies)
}
