package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var flagPlayer string

var achievementsCmd = &cobra.Command{
	Use:   "achievements [game]",
	Short: "Show unlocked achievements",
	Long: `List the achievements players have collected in a level pack
(default: skillquest). Each achievement is unlocked once per player.

Examples:
  skillquest achievements
  skillquest achievements --player alice
  skillquest achievements skillquest_tiled`,
	Args: cobra.MaximumNArgs(1),
	Run:  runAchievements,
}

func init() {
	achievementsCmd.Flags().StringVar(&flagPlayer, "player", "", "Only show this player (default: everyone)")
}

func runAchievements(_ *cobra.Command, args []string) {
	gameID, title := gameArg(args)
	store := mustOpenStore()
	defer store.Close()

	list, err := store.Achievements(gameID, flagPlayer)
	if err != nil {
		store.Close()
		fail("retrieving achievements: %v", err)
	}

	fmt.Printf("Achievements - %s\n", title)
	fmt.Println()

	if len(list) == 0 {
		fmt.Println("No achievements unlocked yet.")
		return
	}

	fmt.Printf("  %-12s  %-20s  %s\n", "Player", "Achievement", "Unlocked")
	fmt.Printf("  %-12s  %-20s  %s\n", "------", "-----------", "--------")
	for _, a := range list {
		fmt.Printf("  %-12s  %-20s  %s\n", a.Player, a.Name, a.UnlockedAt.Format("2006-01-02 15:04"))
	}
	fmt.Println()
	fmt.Printf("%d unlocked\n", len(list))
}
