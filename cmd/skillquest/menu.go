package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skillquest/internal/core"
	"github.com/vovakirdan/skillquest/internal/games/skillquest"
	"github.com/vovakirdan/skillquest/internal/platform/tui"
	"github.com/vovakirdan/skillquest/internal/registry"
	"github.com/vovakirdan/skillquest/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a level pack interactively",
	Long: `Start the launcher in interactive menu mode.

Use the arrow keys or j/k to pick a level pack, Enter to play it.
After a run ends, you return to the launcher to play again.

Controls:
  Up/Down/j/k  - Navigate
  Enter/Space  - Play
  Tab          - Scoreboard
  Q            - Quit

Examples:
  skillquest menu
  skillquest menu --fps 30
  skillquest menu --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	menuCmd.Flags().IntVar(&flagHoldTicks, "hold-ticks", 0, "Ticks a movement key stays held after a press (0 = config value)")
}

func runMenu(_ *cobra.Command, _ []string) {
	_, opts, err := gameOptions()
	if err != nil {
		fail("%v", err)
	}
	skillquest.SetOptions(launcherOptions(opts))

	logger, closeLog := fileLogger()
	defer closeLog()

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	runLauncher(store, terminalConfig(), tui.ModelOptions{
		Player:    playerName(),
		HoldTicks: holdTicks(),
		Logger:    logger,
	})
}

// runLauncher loops between the pack launcher, the scoreboard and games
// until the user quits.
func runLauncher(store *storage.Store, cfg core.RuntimeConfig, opts tui.ModelOptions) {
	for {
		result, err := tui.RunMenu(store, cfg, opts.Player)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}

		// Update config with any size changes
		cfg = result.Config

		if result.Quit {
			return
		}

		if result.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			return
		}

		if result.GameID == "" {
			return
		}

		game, err := registry.Create(result.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		// Fresh particles for each run unless a seed was given
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		backToMenu, err := tui.Run(game, store, cfg, opts)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
		if !backToMenu {
			return
		}
	}
}
