package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-hangman/internal/storage"
)

const (
	topPlayersLimit   = 10
	recentRoundsLimit = 10
)

var scoresCmd = &cobra.Command{
	Use:   "scores [player]",
	Short: "Show top players or one player's rounds",
	Long: `Without arguments, display the top 10 players and the best score.
With a player name, display that player's stats and recent rounds.

Examples:
  hangman scores
  hangman scores alice`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	cfg := mustLoadConfig(cmd)

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 1 {
		err = printPlayer(store, args[0])
	} else {
		err = printTopPlayers(store)
	}
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}
}

func printTopPlayers(store *storage.Store) error {
	players, err := store.TopPlayers(topPlayersLimit)
	if err != nil {
		return err
	}

	fmt.Println("Top Players")
	fmt.Println()

	if len(players) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'hangman play' to set the first score!")
		return nil
	}

	fmt.Printf("  %-4s  %-20s  %-6s  %s\n", "Rank", "Player", "Score", "Updated")
	fmt.Printf("  %-4s  %-20s  %-6s  %s\n", "----", "------", "-----", "-------")
	for i, p := range players {
		fmt.Printf("  %-4d  %-20s  %-6d  %s\n", i+1, p.Player, p.Score, p.UpdatedAt.Local().Format("2006-01-02 15:04"))
	}

	best, err := store.BestScore()
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Best: %d\n", best)
	return nil
}

func printPlayer(store *storage.Store, player string) error {
	stats, err := store.GetPlayerStats(player)
	if err != nil {
		return err
	}

	fmt.Printf("Player - %s\n", player)
	fmt.Println()
	fmt.Printf("  Score:  %d\n", stats.Score)
	fmt.Printf("  Rounds: %d (won %d, lost %d)\n", stats.Rounds, stats.Wins, stats.Losses)
	if !stats.LastPlayed.IsZero() {
		fmt.Printf("  Last:   %s\n", stats.LastPlayed.Local().Format("2006-01-02 15:04"))
	}

	rounds, err := store.RecentRounds(player, recentRoundsLimit)
	if err != nil {
		return err
	}
	if len(rounds) == 0 {
		return nil
	}

	fmt.Println()
	fmt.Printf("  %-16s  %-12s  %-7s  %-6s  %s\n", "Date", "Word", "Result", "Misses", "Score")
	fmt.Printf("  %-16s  %-12s  %-7s  %-6s  %s\n", "----", "----", "------", "------", "-----")
	for _, r := range rounds {
		fmt.Printf("  %-16s  %-12s  %-7s  %-6d  %d\n",
			r.CreatedAt.Local().Format("2006-01-02 15:04"), r.Word, r.Outcome, r.Misses, r.ScoreAfter)
	}
	return nil
}
