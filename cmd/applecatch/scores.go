package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/applecatch/internal/game"
	"github.com/vovakirdan/applecatch/internal/storage"
)

var flagClear bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top 10 Apple Catch scores.

Examples:
  applecatch scores
  applecatch scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded scores")
}

func runScores(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()
	if flagClear {
		n, err := store.ClearScores(game.GameID)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Removed %d scores.\n", n)
		return nil
	}
	return printScores(out, store, 10)
}

// printScores writes the top limit scores and the best score to out.
func printScores(out io.Writer, store *storage.Store, limit int) error {
	scores, err := store.TopScores(game.GameID, limit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Fprintln(out, "High Scores - Apple Catch")
	fmt.Fprintln(out)

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Run 'applecatch play' to set the first high score!")
		return nil
	}

	// Print header
	fmt.Fprintf(out, "  %-4s  %-12s  %-6s  %-5s  %s\n", "Rank", "Player", "Score", "Level", "Date")
	fmt.Fprintf(out, "  %-4s  %-12s  %-6s  %-5s  %s\n", "----", "------", "-----", "-----", "----")

	for i, entry := range scores {
		player := entry.Player
		if player == "" {
			player = "-"
		}
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Fprintf(out, "  %-4d  %-12s  %-6d  %-5d  %s\n", i+1, player, entry.Score, entry.Level, dateStr)
	}

	fmt.Fprintln(out)
	if highScore, err := store.HighScore(game.GameID); err == nil {
		fmt.Fprintf(out, "Best: %d\n", highScore)
	}
	return nil
}
