package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/starblitz/internal/core"
	"github.com/vovakirdan/starblitz/internal/games/starblitz"
	"github.com/vovakirdan/starblitz/internal/platform/tui"
	"github.com/vovakirdan/starblitz/internal/registry"
	"github.com/vovakirdan/starblitz/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <mode>",
	Short: "Play a mode",
	Long: `Start playing the specified mode.

Controls:
  WASD/Arrows - Move ship
  Space       - Fire
  P/Esc       - Pause
  R           - Restart (after game over)
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Extra lives, softer boss
  normal - The intended experience
  hard   - Fewer lives, tougher boss, faster ramp
  fixed  - No ramp, spawn pressure stays at the initial level

If no difficulty is given, a setup screen asks for one.

Examples:
  starblitz play starblitz
  starblitz play starblitz --difficulty hard
  starblitz play starblitz_rush --difficulty easy
  starblitz play starblitz --config ./my-tuning.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if mode exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'starblitz list' to see available modes.")
		os.Exit(1)
	}

	applyTheme()

	// Get terminal size early for the setup screen
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Set config path and difficulty before creation
	starblitz.SetConfigPath(flagConfig)
	if flagDifficulty != "" {
		starblitz.SetDifficultyPreset(flagDifficulty)
	} else {
		// Show the difficulty setup screen
		selection, updatedCfg, selErr := tui.RunBlitzSetup(cfg)
		if selErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
			os.Exit(1)
		}
		cfg = updatedCfg

		// User pressed back or quit
		if selection == nil {
			return
		}
		starblitz.SetDifficultyPreset(selection.Preset)
	}

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the game
	runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
