package starblitz

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying  GameStateType = "playing"
	StateGameOver GameStateType = "game_over"
	StatePaused   GameStateType = "paused"
	StateTooSmall GameStateType = "too_small_window"
)

// Snapshot captures the observable game state for determinism and reset
// testing.
type Snapshot struct {
	Tick       uint64 // platform frames
	EngineTick int    // fixed simulation ticks
	Mode       string

	Score      int
	ComboCount int
	Multiplier int
	Lives      int

	ShipX, ShipY float64
	ShipAlive    bool

	Enemies     int
	PlayerShots int
	EnemyShots  int

	BossAlive  bool
	BossHealth int

	SpawnInterval int
	PopulationCap int

	State GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StateTooSmall
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	combo, mult := g.engine.Combo()
	bossHealth, _, bossAlive := g.engine.BossHealth()
	w := g.engine.World()
	pos := g.ship.Position()

	return Snapshot{
		Tick:          g.tick,
		EngineTick:    g.engine.Tick(),
		Mode:          string(g.mode),
		Score:         g.engine.Score(),
		ComboCount:    combo,
		Multiplier:    mult,
		Lives:         g.ship.Lives(),
		ShipX:         pos.X,
		ShipY:         pos.Y,
		ShipAlive:     g.ship.Alive(),
		Enemies:       len(w.Enemies),
		PlayerShots:   len(w.PlayerShots),
		EnemyShots:    len(w.EnemyShots),
		BossAlive:     bossAlive,
		BossHealth:    bossHealth,
		SpawnInterval: g.engine.SpawnInterval(),
		PopulationCap: g.engine.PopulationCap(),
		State:         state,
	}
}
