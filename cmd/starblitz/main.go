// starblitz is a terminal arcade shooter played over a TUI or SSH.
//
// Usage:
//
//	starblitz list              - List available modes
//	starblitz play <mode>       - Play a mode
//	starblitz menu              - Start menu to pick a mode interactively
//	starblitz serve             - Start SSH server for remote play
//	starblitz scores <mode>     - Show high scores and run stats for a mode
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.starblitz/scores.db)
//	--theme <name>  - Color theme: default, neon, mono
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/starblitz/internal/platform/tui"

	// Import game modes to register them
	_ "github.com/vovakirdan/starblitz/internal/games/starblitz"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagTheme  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "starblitz",
	Short: "StarBlitz - Arena shooter in your terminal",
	Long: `StarBlitz is a terminal arena shooter. Pilot a ship, shred waves of
seekers, wanderers and spinners, and take down the boss when the
klaxon sounds.

Available commands:
  list     - Show all available modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View high scores and run stats

Examples:
  starblitz list
  starblitz play starblitz
  starblitz menu
  starblitz serve --ssh :2222
  starblitz scores starblitz`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.starblitz/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagTheme, "theme", "", "Color theme: default, neon, mono")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// applyTheme installs the selected color theme before any UI runs.
func applyTheme() {
	if flagTheme != "" {
		tui.SetBlitzTheme(tui.ThemeByName(flagTheme))
	}
}
