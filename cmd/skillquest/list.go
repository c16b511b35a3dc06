package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skillquest/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available level packs",
	Long:  `Shows the games registered with the launcher, one per level pack.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	fmt.Println("Available games:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range games {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	fmt.Println()
	fmt.Println("Run 'skillquest play' or 'skillquest play --pack tiled' to play.")
}
