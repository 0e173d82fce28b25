package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/starblitz/internal/registry"
	"github.com/vovakirdan/starblitz/internal/storage"
)

var flagRuns bool

var scoresCmd = &cobra.Command{
	Use:   "scores <mode>",
	Short: "Show high scores and run stats for a mode",
	Long: `Display the top 10 high scores and lifetime run stats for the
specified mode.

Examples:
  starblitz scores starblitz
  starblitz scores starblitz_rush
  starblitz scores starblitz --runs`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagRuns, "runs", false, "Show recent runs instead of high scores")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if mode exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'starblitz list' to see available modes.")
		os.Exit(1)
	}

	// Get mode title
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagRuns {
		printRuns(store, gameID, title)
		return
	}
	printScores(store, gameID, title)
}

func printScores(store *storage.Store, gameID, title string) {
	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'starblitz play %s' to set the first high score!\n", gameID)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

	// Print scores
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}

	// Show the best run's full counters if we have one
	fmt.Println()
	best, err := store.BestRun(gameID)
	if err == nil && best != nil {
		fmt.Printf("Best run: %d points, %d kills, combo x%d, %d bosses, %s\n",
			best.Score, best.Kills, best.MaxCombo, best.BossesDefeated, fmtSecs(best.Duration))
	} else if high, hErr := store.HighScore(gameID); hErr == nil {
		fmt.Printf("Best: %d\n", high)
	}

	totals, err := store.GetRunTotals(gameID)
	if err == nil && totals.Runs > 0 {
		fmt.Printf("Lifetime: %d runs, %d kills, %d bosses, best combo x%d, %s played\n",
			totals.Runs, totals.Kills, totals.BossesDefeated, totals.BestCombo, fmtSecs(int(totals.PlaySecs)))
	}
}

func printRuns(store *storage.Store, gameID, title string) {
	runs, err := store.RecentRuns(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Recent Runs - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	fmt.Printf("  %-10s  %-6s  %-6s  %-5s  %-7s  %-10s  %s\n",
		"Score", "Kills", "Combo", "Boss", "Time", "Outcome", "Date")
	fmt.Printf("  %-10s  %-6s  %-6s  %-5s  %-7s  %-10s  %s\n",
		"-----", "-----", "-----", "----", "----", "-------", "----")

	for _, run := range runs {
		dateStr := run.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-10d  %-6d  x%-5d  %-5d  %-7s  %-10s  %s\n",
			run.Score, run.Kills, run.MaxCombo, run.BossesDefeated,
			fmtSecs(run.Duration), run.Outcome, dateStr)
	}
}

// fmtSecs renders a duration in seconds as "42s" or "3m07s".
func fmtSecs(secs int) string {
	if secs < 60 {
		return fmt.Sprintf("%ds", secs)
	}
	return fmt.Sprintf("%dm%02ds", secs/60, secs%60)
}
