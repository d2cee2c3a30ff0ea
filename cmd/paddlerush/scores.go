package main

import (
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/paddle-rush/internal/games/paddlerush"
	"github.com/vovakirdan/paddle-rush/internal/registry"
	"github.com/vovakirdan/paddle-rush/internal/storage"
)

var (
	flagAttempts bool
	flagLimit    int
	flagClear    bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores and boss attempts",
	Long: `Display the top high scores for a mode (default: paddlerush).

With --attempts, list recent boss fights instead: the furthest phase
reached, how long the fight lasted and whether the boss went down.

Examples:
  paddlerush scores
  paddlerush scores paddlerush_boss --attempts
  paddlerush scores --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagAttempts, "attempts", false, "Show boss attempts instead of scores")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of rows to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores and attempts for the game")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := paddlerush.ID
	if len(args) > 0 {
		gameID = args[0]
	}

	info, ok := registry.Lookup(gameID)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'paddlerush list' to see available games.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagClear:
		err = store.ClearScores(gameID)
		if err == nil {
			fmt.Printf("Cleared scores for %s.\n", info.Title)
		}
	case flagAttempts:
		err = printAttempts(store, info)
	default:
		err = printScores(store, info)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		store.Close()
		os.Exit(1)
	}
}

func printScores(store *storage.Store, info registry.Info) error {
	scores, err := store.TopScores(info.ID, flagLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", info.Title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'paddlerush play %s' to set the first high score!\n", info.ID)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}

	fmt.Println()
	fmt.Printf("Best: %d\n", scores[0].Score)
	return nil
}

func printAttempts(store *storage.Store, info registry.Info) error {
	stats, err := store.GetAttemptStats(info.ID)
	if err != nil {
		return err
	}
	attempts, err := store.RecentAttempts(info.ID, flagLimit)
	if err != nil {
		return err
	}

	fmt.Printf("Boss Attempts - %s\n", info.Title)
	fmt.Println()

	if stats.Attempts == 0 {
		fmt.Println("Nobody has reached the boss yet.")
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %-8s  %-6s  %-8s  %s\n", "#", "Phase", "Time", "Result", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %-8s  %-6s  %-8s  %s\n", "-", "-----", "----", "------", "-----", "----")
	for i, a := range attempts {
		result := "died"
		if a.Won {
			result = "won"
		}
		fmt.Printf("  %-4d  %-10s  %-8s  %-6s  %-8d  %s\n",
			i+1, a.Phase, a.Duration.Round(100*time.Millisecond).String(), result, a.Score, a.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	fmt.Printf("Attempts: %d  Wins: %d", stats.Attempts, stats.Wins)
	if stats.BestWin > 0 {
		fmt.Printf("  Fastest kill: %s", stats.BestWin.Round(100*time.Millisecond))
	}
	fmt.Println()

	phases := make([]string, 0, len(stats.ByPhase))
	for p := range stats.ByPhase {
		phases = append(phases, p)
	}
	slices.Sort(phases)
	for _, p := range phases {
		fmt.Printf("  %-10s %d\n", p, stats.ByPhase[p])
	}
	return nil
}
