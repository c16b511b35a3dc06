package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skillquest/internal/games/skillquest/levels"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Show the levels of a pack",
	Long: `Load a level pack, validate it and print each level with its skills.

A custom directory may hold .yaml, .yml or .tmx files; they are
ordered by file name and numbered from 1.

Examples:
  skillquest levels
  skillquest levels --pack tiled
  skillquest levels --levels ./my-levels`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

func init() {
	levelsCmd.Flags().StringVar(&flagLevelsDir, "levels", "", "Directory with a custom level pack (YAML or TMX)")
	levelsCmd.Flags().StringVar(&flagPack, "pack", levels.SourceBuiltin, "Built-in level pack: builtin, tiled")
}

func runLevels(_ *cobra.Command, _ []string) {
	pack, err := levels.Open(flagLevelsDir, flagPack)
	if err != nil {
		fail("%v", err)
	}

	fmt.Printf("Level pack %q - %d levels\n", pack.Name, pack.Count())
	for _, l := range pack.Levels {
		fmt.Println()
		fmt.Printf("%d. %s (%d points)\n", l.Number, l.Name, l.TotalPoints())
		if l.Description != "" {
			fmt.Printf("   %s\n", l.Description)
		}
		fmt.Printf("   %d platforms, %d skills\n", len(l.Platforms), len(l.Collectibles))
		for _, c := range l.Collectibles {
			fmt.Printf("     %-2s %-18s %-11s %3d  at (%.0f, %.0f)\n", c.Icon, c.Name, c.Kind, c.Value(), c.X, c.Y)
		}
	}
}
