package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultParses(t *testing.T) {
	var cfg BlitzConfig
	if err := yaml.Unmarshal(defaultBlitzYAML, &cfg); err != nil {
		t.Fatalf("embedded default YAML should parse: %v", err)
	}

	want := DefaultBlitzConfig()
	if cfg.Spawner.InitialInterval != want.Spawner.InitialInterval {
		t.Errorf("spawner.initial_interval = %d, expected %d", cfg.Spawner.InitialInterval, want.Spawner.InitialInterval)
	}
	if cfg.Boss.Health != want.Boss.Health {
		t.Errorf("boss.health = %d, expected %d", cfg.Boss.Health, want.Boss.Health)
	}
	if cfg.Scoring.MultiplierWindow != want.Scoring.MultiplierWindow {
		t.Errorf("scoring.multiplier_window = %d, expected %d", cfg.Scoring.MultiplierWindow, want.Scoring.MultiplierWindow)
	}
	if cfg.Player.Lives != want.Player.Lives {
		t.Errorf("player.lives = %d, expected %d", cfg.Player.Lives, want.Player.Lives)
	}
}

func TestLoadBlitzCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")

	content := []byte("player:\n  lives: 7\nboss:\n  health: 99\n")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("writing temp config: %v", err)
	}

	cfg, err := LoadBlitz(path)
	if err != nil {
		t.Fatalf("LoadBlitz(%s) error: %v", path, err)
	}
	if cfg.Player.Lives != 7 {
		t.Errorf("player.lives = %d, expected 7", cfg.Player.Lives)
	}
	if cfg.Boss.Health != 99 {
		t.Errorf("boss.health = %d, expected 99", cfg.Boss.Health)
	}
}

func TestLoadBlitzMissingCustomPath(t *testing.T) {
	_, err := LoadBlitz("/nonexistent/starblitz.yaml")
	if err == nil {
		t.Error("LoadBlitz with a missing explicit path should return an error")
	}
}

func TestApplyBlitzPreset(t *testing.T) {
	tests := []struct {
		preset       DifficultyPreset
		wantEnabled  bool
		wantLevel    float64
		wantLives    int
		wantBossHP   int
	}{
		{DifficultyEasy, true, 0.0, 5, 40},
		{DifficultyNormal, true, 0.3, 3, 50},
		{DifficultyHard, true, 0.7, 2, 70},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultBlitzConfig()
			ApplyBlitzPreset(&cfg, tt.preset)

			if cfg.Difficulty.Enabled != tt.wantEnabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tt.wantEnabled)
			}
			if cfg.Difficulty.InitialLevel != tt.wantLevel {
				t.Errorf("InitialLevel = %v, expected %v", cfg.Difficulty.InitialLevel, tt.wantLevel)
			}
			if cfg.Player.Lives != tt.wantLives {
				t.Errorf("Lives = %d, expected %d", cfg.Player.Lives, tt.wantLives)
			}
			if cfg.Boss.Health != tt.wantBossHP {
				t.Errorf("Boss.Health = %d, expected %d", cfg.Boss.Health, tt.wantBossHP)
			}
		})
	}
}

func TestApplyBlitzPresetFixed(t *testing.T) {
	cfg := DefaultBlitzConfig()
	ApplyBlitzPreset(&cfg, DifficultyFixed)

	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable difficulty progression")
	}
	if cfg.Spawner.RampEvery != 0 {
		t.Errorf("fixed preset should disable pacing ramps, RampEvery = %d", cfg.Spawner.RampEvery)
	}
	// Gameplay values stay at their defaults
	if cfg.Player.Lives != 3 {
		t.Errorf("Lives = %d, expected default 3", cfg.Player.Lives)
	}
}

func TestDifficultyManagerLevel(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.0,
		Progression:  ProgressionConfig{Type: "time", MaxAt: 1000},
		Scaling:      ScalingConfig{SpeedMultiplier: 0.5, FireRateMultiplier: 0.3},
	}
	m := NewDifficultyManager(cfg)

	if lvl := m.Level(0, 0); lvl != 0.0 {
		t.Errorf("Level at start = %v, expected 0.0", lvl)
	}
	if lvl := m.Level(0, 500); lvl != 0.5 {
		t.Errorf("Level at half progression = %v, expected 0.5", lvl)
	}
	if lvl := m.Level(0, 2000); lvl != 1.0 {
		t.Errorf("Level past max = %v, expected 1.0", lvl)
	}
}

func TestDifficultyManagerInitialLevelLerp(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "time", MaxAt: 1000},
	}
	m := NewDifficultyManager(cfg)
	m.SetInitialLevel(0.5)

	if lvl := m.Level(0, 0); lvl != 0.5 {
		t.Errorf("Level at start = %v, expected initial 0.5", lvl)
	}
	// Halfway through progression: 0.5 + 0.5*(1-0.5) = 0.75
	if lvl := m.Level(0, 500); lvl != 0.75 {
		t.Errorf("Level at half progression = %v, expected 0.75", lvl)
	}
}

func TestDifficultyManagerDisabled(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      false,
		InitialLevel: 0.4,
		Progression:  ProgressionConfig{Type: "time", MaxAt: 1000},
		Scaling:      ScalingConfig{SpeedMultiplier: 1.0},
	}
	m := NewDifficultyManager(cfg)

	if lvl := m.Level(0, 100000); lvl != 0.4 {
		t.Errorf("disabled manager Level = %v, expected fixed 0.4", lvl)
	}
	if m.IsEnabled() {
		t.Error("IsEnabled() should be false when disabled")
	}
}

func TestDifficultyManagerSpeedAndFireRate(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.0,
		Progression:  ProgressionConfig{Type: "time", MaxAt: 100},
		Scaling:      ScalingConfig{SpeedMultiplier: 0.5, FireRateMultiplier: 0.3},
	}
	m := NewDifficultyManager(cfg)

	if got := m.Speed(1.0, 0, 0); got != 1.0 {
		t.Errorf("Speed at level 0 = %v, expected 1.0", got)
	}
	if got := m.Speed(1.0, 0, 100); got != 1.5 {
		t.Errorf("Speed at level 1 = %v, expected 1.5", got)
	}
	if got := m.FireRate(0, 0); got != 1.0 {
		t.Errorf("FireRate at level 0 = %v, expected 1.0", got)
	}
	if got := m.FireRate(0, 100); got != 1.3 {
		t.Errorf("FireRate at level 1 = %v, expected 1.3", got)
	}
}
