package starblitz

import (
	"strings"
	"testing"

	"github.com/vovakirdan/starblitz/internal/core"
	"github.com/vovakirdan/starblitz/internal/games/starblitz/combat"
)

func newTestGame(t *testing.T, mode Mode) *Game {
	t.Helper()
	var g *Game
	if mode == ModeRush {
		g = NewRush()
	} else {
		g = New()
	}
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7})
	return g
}

func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestGameIdentity(t *testing.T) {
	tests := []struct {
		game  *Game
		id    string
		title string
	}{
		{New(), "starblitz", "StarBlitz"},
		{NewRush(), "starblitz_rush", "StarBlitz (Boss Rush)"},
	}
	for _, tt := range tests {
		if tt.game.ID() != tt.id {
			t.Errorf("ID() = %q, expected %q", tt.game.ID(), tt.id)
		}
		if tt.game.Title() != tt.title {
			t.Errorf("Title() = %q, expected %q", tt.game.Title(), tt.title)
		}
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() []Snapshot {
		g := New()
		g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 99})
		var snaps []Snapshot
		for i := 0; i < 900; i++ {
			in := core.NewInputFrame()
			switch {
			case i < 300:
				in.Set(core.ActionRight)
				in.Set(core.ActionFire)
			case i < 600:
				in.Set(core.ActionLeft)
				in.Set(core.ActionUp)
			default:
				in.Set(core.ActionFire)
			}
			g.Step(in)
			if (i+1)%150 == 0 {
				snaps = append(snaps, g.Snapshot())
			}
		}
		return snaps
	}

	first := run()
	second := run()
	if len(first) != len(second) {
		t.Fatalf("snapshot counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("snapshot %d diverged:\n  first:  %+v\n  second: %+v", i, first[i], second[i])
		}
	}
}

func TestResetStartsClean(t *testing.T) {
	g := newTestGame(t, ModeArena)
	for i := 0; i < 400; i++ {
		g.Step(press(core.ActionFire))
	}

	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7})
	snap := g.Snapshot()

	if snap.EngineTick != 0 {
		t.Errorf("EngineTick after reset = %d, expected 0", snap.EngineTick)
	}
	if snap.Score != 0 {
		t.Errorf("Score after reset = %d, expected 0", snap.Score)
	}
	if snap.ComboCount != 0 || snap.Multiplier != 1 {
		t.Errorf("combo after reset = (%d, x%d), expected (0, x1)", snap.ComboCount, snap.Multiplier)
	}
	if snap.Enemies != 0 || snap.PlayerShots != 0 || snap.EnemyShots != 0 {
		t.Errorf("world not empty after reset: %+v", snap)
	}
	if snap.Lives != g.cfg.Player.Lives {
		t.Errorf("Lives after reset = %d, expected %d", snap.Lives, g.cfg.Player.Lives)
	}
	if !snap.ShipAlive || snap.State != StatePlaying {
		t.Errorf("ship state after reset = alive %v / %s, expected alive playing", snap.ShipAlive, snap.State)
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newTestGame(t, ModeArena)
	for i := 0; i < 50; i++ {
		g.Step(core.NewInputFrame())
	}
	before := g.Snapshot()

	g.Step(press(core.ActionPause))
	for i := 0; i < 100; i++ {
		g.Step(core.NewInputFrame())
	}
	paused := g.Snapshot()

	if paused.State != StatePaused {
		t.Fatalf("state = %s, expected %s", paused.State, StatePaused)
	}
	if paused.EngineTick != before.EngineTick {
		t.Errorf("simulation advanced while paused: tick %d -> %d", before.EngineTick, paused.EngineTick)
	}
	if paused.Enemies != before.Enemies || paused.ShipX != before.ShipX || paused.ShipY != before.ShipY {
		t.Errorf("world changed while paused")
	}

	g.Step(press(core.ActionPause))
	g.Step(core.NewInputFrame())
	after := g.Snapshot()
	if after.State != StatePlaying {
		t.Errorf("state after resume = %s, expected %s", after.State, StatePlaying)
	}
	if after.EngineTick <= before.EngineTick {
		t.Errorf("simulation did not resume: tick still %d", after.EngineTick)
	}
}

func TestInvulnerabilityWindow(t *testing.T) {
	g := newTestGame(t, ModeArena)
	if !g.ship.Invulnerable() {
		t.Fatal("ship should spawn invulnerable")
	}

	window := g.cfg.Player.InvulnTicks
	for i := 0; i < window-1; i++ {
		g.Step(core.NewInputFrame())
	}
	if !g.ship.Invulnerable() {
		t.Errorf("grace window ended one tick early")
	}

	g.Step(core.NewInputFrame())
	if g.ship.Invulnerable() {
		t.Errorf("ship still invulnerable after %d ticks", window)
	}
}

func TestGameOverOnFinalDeath(t *testing.T) {
	g := newTestGame(t, ModeArena)
	g.ship.lives = 1
	g.ship.invulnLeft = 0
	g.engine.World().AddEnemy(&combat.Enemy{
		Kind:   combat.KindSeeker,
		Pos:    g.ship.Position(),
		Radius: 1.2,
	})

	g.Step(core.NewInputFrame())

	if !g.gameOver {
		t.Fatal("losing the last life should end the run")
	}
	if g.ship.Lives() != 0 {
		t.Errorf("Lives() = %d, expected 0", g.ship.Lives())
	}
	if !g.State().GameOver {
		t.Error("State().GameOver = false, expected true")
	}

	g.Step(press(core.ActionRestart))
	snap := g.Snapshot()
	if g.gameOver {
		t.Error("restart did not clear game over")
	}
	if snap.Score != 0 || snap.Lives != g.cfg.Player.Lives || snap.EngineTick != 0 {
		t.Errorf("restart did not start a fresh run: %+v", snap)
	}
}

func TestRushModeBossCadence(t *testing.T) {
	g := newTestGame(t, ModeRush)
	if g.cfg.Spawner.BossEvery != 180 {
		t.Fatalf("rush BossEvery = %d, expected 180", g.cfg.Spawner.BossEvery)
	}

	for i := 0; i < 200; i++ {
		g.Step(core.NewInputFrame())
	}
	snap := g.Snapshot()
	if !snap.BossAlive {
		t.Fatal("boss rush should field a boss within the first seconds")
	}
	if snap.Enemies != 1 {
		t.Errorf("enemy count = %d, expected the boss alone before the trickle starts", snap.Enemies)
	}
}

func TestShipFiresWithCooldown(t *testing.T) {
	g := newTestGame(t, ModeArena)
	cooldown := g.cfg.Player.FireCooldown

	g.Step(press(core.ActionFire))
	if got := g.Snapshot().PlayerShots; got != 1 {
		t.Fatalf("shots after first frame = %d, expected 1", got)
	}

	for i := 0; i < cooldown-1; i++ {
		g.Step(press(core.ActionFire))
	}
	if got := g.Snapshot().PlayerShots; got != 1 {
		t.Errorf("shots during cooldown = %d, expected still 1", got)
	}

	g.Step(press(core.ActionFire))
	if got := g.Snapshot().PlayerShots; got != 2 {
		t.Errorf("shots after cooldown elapsed = %d, expected 2", got)
	}
}

func TestRunStatsCountsKills(t *testing.T) {
	g := newTestGame(t, ModeArena)
	g.engine.World().AddEnemy(&combat.Enemy{
		Kind:   combat.KindWanderer,
		Pos:    core.V(g.ship.Position().X, 10),
		Radius: 1.3,
		Score:  50,
	})

	for i := 0; i < 6; i++ {
		g.Step(press(core.ActionFire))
	}

	stats := g.RunStats()
	if stats.Kills != 1 {
		t.Errorf("Kills = %d, expected 1", stats.Kills)
	}
	if stats.MaxCombo != 1 {
		t.Errorf("MaxCombo = %d, expected 1", stats.MaxCombo)
	}
	if stats.DurationTicks != 6 {
		t.Errorf("DurationTicks = %d, expected 6", stats.DurationTicks)
	}
	if g.engine.Score() != 50 {
		t.Errorf("Score = %d, expected 50", g.engine.Score())
	}
}

func TestTooSmallScreenHaltsPlay(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 8, TickRate: 60, Seed: 1})

	if !g.tooSmall {
		t.Fatal("20x8 should be flagged too small")
	}
	g.Step(press(core.ActionFire))
	if g.Snapshot().EngineTick != 0 {
		t.Error("simulation ran on a too-small screen")
	}

	s := core.NewScreen(20, 8)
	g.Render(s)
	if !strings.Contains(s.String(), "small") {
		t.Error("too-small overlay not rendered")
	}
}

func TestRenderSmoke(t *testing.T) {
	g := newTestGame(t, ModeArena)
	for i := 0; i < 240; i++ {
		g.Step(press(core.ActionFire))
	}

	s := core.NewScreen(80, 24)
	g.Render(s)

	if s.Get(0, hudHeight) != '┌' || s.Get(79, 23) != '┘' {
		t.Errorf("arena border missing: corners %q %q", s.Get(0, hudHeight), s.Get(79, 23))
	}
	if !strings.Contains(s.Row(0), "Score") {
		t.Errorf("HUD row missing score: %q", s.Row(0))
	}

	g.Step(press(core.ActionPause))
	g.Render(s)
	if !strings.Contains(s.String(), "Paused") {
		t.Error("pause overlay not rendered")
	}
}

func TestDifficultyPresetChangesRun(t *testing.T) {
	SetDifficultyPreset("hard")
	defer SetDifficultyPreset("")

	g := newTestGame(t, ModeArena)
	if g.cfg.Player.Lives != 2 {
		t.Errorf("hard preset lives = %d, expected 2", g.cfg.Player.Lives)
	}
	if g.cfg.Boss.Health != 70 {
		t.Errorf("hard preset boss health = %d, expected 70", g.cfg.Boss.Health)
	}

	SetDifficultyPreset("fixed")
	g2 := newTestGame(t, ModeArena)
	if g2.cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable difficulty progression")
	}
	if g2.cfg.Spawner.RampEvery != 0 {
		t.Errorf("fixed preset RampEvery = %d, expected 0", g2.cfg.Spawner.RampEvery)
	}
}
