package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blackbox/internal/registry"
	"github.com/vovakirdan/blackbox/internal/storage"
)

var flagRounds int

var scoresCmd = &cobra.Command{
	Use:   "scores <variant>",
	Short: "Show high scores for a variant",
	Long: `Display the top 10 solved-round scores for the variant, followed by
statistics over every finished round and the most recent rounds.

Examples:
  blackbox scores blackbox
  blackbox scores blackbox_classic --rounds 10`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagRounds, "rounds", 5, "Number of recent rounds to show")
}

func runScores(cmd *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q, run 'blackbox list' to see available variants", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "High Scores - %s\n\n", game.Title())

	if len(scores) == 0 {
		fmt.Fprintln(out, "No solved rounds yet.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Play 'blackbox play %s' to set the first high score!\n", gameID)
	} else {
		fmt.Fprintf(out, "  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
		fmt.Fprintf(out, "  %-4s  %-10s  %s\n", "----", "-----", "----")
		for i, entry := range scores {
			fmt.Fprintf(out, "  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
		}
		if best, ok, err := store.HighScore(gameID); err == nil && ok {
			fmt.Fprintf(out, "\nBest: %d\n", best)
		}
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}
	if stats.RoundsCount == 0 {
		return nil
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Rounds: %d  Solved: %d  Avg score: %.1f  Avg rays: %.1f\n",
		stats.RoundsCount, stats.SolvedCount, stats.AvgScore, stats.AvgRays)

	rounds, err := store.RecentRounds(gameID, flagRounds)
	if err != nil {
		return fmt.Errorf("retrieving rounds: %w", err)
	}
	if len(rounds) == 0 {
		return nil
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %-8s  %-5s  %-4s  %-5s  %-6s  %s\n", "Round", "Score", "Rays", "Wrong", "Solved", "Date")
	for _, r := range rounds {
		solved := "no"
		if r.Solved {
			solved = "yes"
		}
		fmt.Fprintf(out, "  %-8s  %-5d  %-4d  %-5d  %-6s  %s\n",
			r.ID[:8], r.Score, r.Rays, r.WrongGuesses, solved, r.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
