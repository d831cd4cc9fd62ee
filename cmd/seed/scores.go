package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/seed-of-life/internal/games/seed"
	"github.com/vovakirdan/seed-of-life/internal/platform/tui"
	"github.com/vovakirdan/seed-of-life/internal/registry"
	"github.com/vovakirdan/seed-of-life/internal/storage"
)

var (
	flagInteractive bool
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show high scores and recent runs",
	Long: `Display the top 10 scores for a variant (default: seed) and the most
recent runs of every variant. Run IDs can be passed to 'seed replay'.

Examples:
  seed scores
  seed scores seed_biome
  seed scores --interactive
  seed scores --clear seed_biome`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in a table")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all high scores for the variant")
}

func runScores(cmd *cobra.Command, args []string) error {
	gameID := seed.VariantTiles
	if len(args) == 1 {
		gameID = args[0]
	}
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Cleared high scores for %s\n", game.Title())
		return nil
	}

	if flagInteractive {
		cfg := runtimeConfig()
		return tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
	}

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "High Scores - %s\n\n", game.Title())

	if len(scores) == 0 {
		fmt.Fprintln(out, "No seeds planted yet.")
		fmt.Fprintf(out, "Play 'seed play %s' to set the first high score!\n", gameID)
	} else {
		fmt.Fprintf(out, "  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
		fmt.Fprintf(out, "  %-4s  %-10s  %s\n", "----", "-----", "----")
		for i, entry := range scores {
			fmt.Fprintf(out, "  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
		}
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return err
	}
	if stats.GamesCount > 0 {
		fmt.Fprintf(out, "\nGames %d, best %d, average %.0f, last played %s\n",
			stats.GamesCount, stats.HighScore, stats.AvgScore, stats.LastPlayed.Format("2006-01-02 15:04"))
	}

	counts, err := store.OutcomeCounts(gameID)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "\nPlanted %d, crashed %d, lost to the void %d\n",
		counts["win"], counts["crashed"], counts["void"])

	runs, err := store.RecentRuns(10)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		return nil
	}

	fmt.Fprintln(out, "\nRecent runs:")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %-36s  %-10s  %-8s  %8s  %7s  %5s\n", "ID", "Variant", "Outcome", "Time", "Thrusts", "Score")
	for _, r := range runs {
		elapsed := time.Duration(r.ElapsedMs * float64(time.Millisecond)).Round(100 * time.Millisecond)
		fmt.Fprintf(out, "  %-36s  %-10s  %-8s  %8s  %7d  %5d\n",
			r.ID, r.Variant, r.Outcome, elapsed, r.Thrusts, r.Score)
	}
	return nil
}
