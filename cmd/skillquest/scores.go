package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skillquest/internal/games/skillquest"
	"github.com/vovakirdan/skillquest/internal/registry"
	"github.com/vovakirdan/skillquest/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores",
	Long: `Display the top scores for a level pack (default: skillquest).

A score is recorded when a run clears the last level.

Examples:
  skillquest scores
  skillquest scores skillquest_tiled --limit 20
  skillquest scores --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every score and achievement for the game")
}

// gameArg returns the game named on the command line, checked against the
// registry.
func gameArg(args []string) (string, string) {
	gameID := skillquest.GameID
	if len(args) > 0 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		fail("unknown game %q\nRun 'skillquest list' to see available games.", gameID)
	}
	game, err := registry.Create(gameID)
	if err != nil {
		fail("creating game: %v", err)
	}
	return gameID, game.Title()
}

// mustOpenStore opens the scores database or exits.
func mustOpenStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening scores database: %v", err)
	}
	return store
}

func runScores(_ *cobra.Command, args []string) {
	gameID, title := gameArg(args)
	store := mustOpenStore()
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			store.Close()
			fail("clearing scores: %v", err)
		}
		fmt.Printf("Cleared scores for %s.\n", title)
		return
	}

	scores, err := store.TopScores(gameID, flagLimit)
	if err != nil {
		store.Close()
		fail("retrieving scores: %v", err)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Finish every level with 'skillquest play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-12s  %-8s  %-5s  %s\n", "Rank", "Player", "Score", "Level", "Date")
	fmt.Printf("  %-4s  %-12s  %-8s  %-5s  %s\n", "----", "------", "-----", "-----", "----")
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-12s  %-8d  %-5d  %s\n", i+1, entry.Player, entry.Score, entry.LevelReached, dateStr)
	}

	fmt.Println()
	stats, err := store.GetGameStats(gameID)
	if err == nil {
		fmt.Printf("Best: %d   Runs: %d   Average: %.0f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	}
}
