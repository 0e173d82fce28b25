// Package starblitz implements the StarBlitz arena shooter: a lone ship
// against waves of seekers, wanderers, and spinners, a periodic boss fight,
// and a combo-multiplier scoring system.
//
// The package is the platform half of the game. It owns the ship, the
// particle pool, the shake camera, and the renderer, and drives the pure
// simulation in the combat subpackage through a fixed-timestep accumulator,
// so gameplay speed never depends on the platform frame rate.
package starblitz

import (
	"math/rand"

	"github.com/vovakirdan/starblitz/internal/config"
	"github.com/vovakirdan/starblitz/internal/core"
	"github.com/vovakirdan/starblitz/internal/games/starblitz/combat"
	"github.com/vovakirdan/starblitz/internal/registry"
)

// simRate is the fixed simulation rate in engine ticks per second.
const simRate = 60.0

// hudHeight is the number of rows reserved above the arena border.
const hudHeight = 2

// Minimum screen size for a playable arena.
const (
	minScreenW = 40
	minScreenH = 16
)

// Mode represents the game mode.
type Mode string

const (
	ModeArena Mode = "arena"
	ModeRush  Mode = "rush"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the process-wide difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = parsePreset(preset)
}

// parsePreset maps a preset flag value to the config constant.
func parsePreset(preset string) config.DifficultyPreset {
	switch preset {
	case "easy":
		return config.DifficultyEasy
	case "normal":
		return config.DifficultyNormal
	case "hard":
		return config.DifficultyHard
	case "fixed":
		return config.DifficultyFixed
	default:
		return ""
	}
}

// Game implements the StarBlitz shooter.
type Game struct {
	mode   Mode
	preset config.DifficultyPreset // per-instance override of the CLI preset

	rng  *rand.Rand
	tick uint64

	// Simulation and collaborators
	engine    *combat.Engine
	ship      *Ship
	particles *ParticleSystem
	camera    *ShakeCamera

	// Fixed-timestep accumulator: seconds of real time not yet simulated.
	accumulator float64
	frameDelta  float64

	// Configuration
	runtime    core.RuntimeConfig
	cfg        config.BlitzConfig
	difficulty *config.DifficultyManager

	// Arena layout (playfield inside the border, below the HUD)
	screenW int
	screenH int
	arenaX  int
	arenaY  int
	arenaW  float64
	arenaH  float64

	// Game state flags
	gameOver bool
	paused   bool
	tooSmall bool
}

func init() {
	registry.Register("starblitz", func() registry.Game {
		return New()
	})
	registry.Register("starblitz_rush", func() registry.Game {
		return NewRush()
	})
}

// New creates an arena survival game.
func New() *Game {
	return &Game{mode: ModeArena}
}

// NewRush creates a boss rush game.
func NewRush() *Game {
	return &Game{mode: ModeRush}
}

// SetPreset overrides the difficulty preset for this instance only.
// Session hosts use this so concurrent players don't share the CLI default.
// Takes effect on the next Reset.
func (g *Game) SetPreset(preset string) {
	g.preset = parsePreset(preset)
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeRush {
		return "starblitz_rush"
	}
	return "starblitz"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeRush {
		return "StarBlitz (Boss Rush)"
	}
	return "StarBlitz"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.tick = 0
	g.accumulator = 0
	g.gameOver = false
	g.paused = false

	fps := float64(runtime.TickRate)
	if fps <= 0 {
		fps = simRate
	}
	g.frameDelta = 1.0 / fps

	// Load game config
	cfg, err := config.LoadBlitz(configPath)
	if err != nil {
		cfg = config.DefaultBlitzConfig()
	}

	// Apply difficulty preset if set; the instance override wins
	preset := difficultyPreset
	if g.preset != "" {
		preset = g.preset
	}
	if preset != "" {
		config.ApplyBlitzPreset(&cfg, preset)
	}

	if g.mode == ModeRush {
		applyRushTuning(&cfg)
	}

	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	g.screenW = runtime.ScreenW
	g.screenH = runtime.ScreenH
	g.layoutArena()

	if g.ship == nil {
		g.ship = &Ship{}
	}
	g.ship.Reset(cfg.Player, g.arenaW, g.arenaH)

	if g.particles == nil {
		g.particles = NewParticleSystem(cfg.Effects.MaxParticles)
	}
	if g.camera == nil {
		g.camera = &ShakeCamera{}
	}
	if g.engine == nil {
		g.engine = combat.NewEngine(g.ship, g.particles, g.camera)
	}

	// Derived seeds keep the three streams independent but reproducible.
	g.engine.Reset(cfg, g.arenaW, g.arenaH, g.rng.Int63())
	g.particles.Reset(cfg.Effects.MaxParticles, g.rng.Int63())
	g.camera.Reset(g.rng.Int63())
}

// layoutArena computes the playfield rectangle inside the border and HUD.
func (g *Game) layoutArena() {
	g.tooSmall = g.screenW < minScreenW || g.screenH < minScreenH

	g.arenaX = 1
	g.arenaY = hudHeight + 1
	w := g.screenW - 2
	h := g.screenH - hudHeight - 2
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	g.arenaW = float64(w)
	g.arenaH = float64(h)
}

// applyRushTuning reconfigures the spawner for back-to-back boss fights:
// the first boss arrives in seconds, the next re-arms shortly after each
// kill, and regular spawning drops to a trickle.
func applyRushTuning(cfg *config.BlitzConfig) {
	cfg.Spawner.BossEvery = 180
	cfg.Spawner.InitialInterval = 600
	cfg.Spawner.MinInterval = 600
	cfg.Spawner.InitialCap = 2
	cfg.Spawner.MaxCap = 2
	cfg.Spawner.RampEvery = 0
}

// Step advances the game by one platform frame.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	// Handle restart
	if input.Has(core.ActionRestart) && g.gameOver {
		g.Reset(core.RuntimeConfig{
			ScreenW:  g.runtime.ScreenW,
			ScreenH:  g.runtime.ScreenH,
			TickRate: g.runtime.TickRate,
			Seed:     g.rng.Int63(),
		})
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if input.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}

	if g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	// After the run ends the engine stays frozen, but effects keep
	// draining so the final explosion plays out.
	if g.gameOver {
		g.particles.Update()
		g.camera.Update()
		return core.StepResult{State: g.State()}
	}

	g.ship.ReadInput(input)

	// Run whole fixed steps out of the accumulated frame time. The pause
	// return above halts the accumulator, so resuming never causes a
	// catch-up burst.
	g.accumulator += g.frameDelta
	const stepSize = 1.0 / simRate
	for g.accumulator >= stepSize {
		g.accumulator -= stepSize
		g.simStep()
	}

	g.particles.Update()
	g.camera.Update()

	return core.StepResult{State: g.State()}
}

// simStep runs exactly one engine tick plus the ship update bound to it.
func (g *Game) simStep() {
	g.engine.SetSpeedScale(g.difficulty.Speed(1.0, g.engine.Score(), g.engine.Tick()))
	g.engine.SetFireScale(g.difficulty.FireRate(g.engine.Score(), g.engine.Tick()))

	g.ship.Update(g.engine)
	res := g.engine.Step()

	if res.PlayerKilled && g.ship.Lives() <= 0 {
		g.gameOver = true
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.engine.Score(),
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// RunStats summarizes the finished or in-progress run for the platform's
// run history.
func (g *Game) RunStats() core.RunStats {
	if g.engine == nil {
		return core.RunStats{}
	}
	return core.RunStats{
		Kills:          g.engine.Kills(),
		MaxCombo:       g.engine.MaxCombo(),
		BossesDefeated: g.engine.BossesDefeated(),
		DurationTicks:  g.engine.Tick(),
	}
}
