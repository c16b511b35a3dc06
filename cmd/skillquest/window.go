package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skillquest/internal/games/skillquest"
	"github.com/vovakirdan/skillquest/internal/platform/gui"
)

var (
	flagScale      float64
	flagFullscreen bool
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Start SkillQuest in a desktop window.

Controls:
  Left/Right, A/D  - Move (hold)
  Space/Up/W       - Jump
  Touch/Click      - Left third moves left, right third moves right,
                     upper middle jumps
  1-9              - Pick a level on the menu
  Enter            - Start
  P                - Pause
  R                - Play again after the last level
  Esc              - Back to the level menu
  F11              - Toggle fullscreen
  Q                - Quit

The window remembers fullscreen and the last level started.

Examples:
  skillquest window
  skillquest window --scale 1.5
  skillquest window --pack tiled --level 2`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	addGameFlags(windowCmd)
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Initial window scale")
	windowCmd.Flags().BoolVar(&flagFullscreen, "fullscreen", false, "Start fullscreen")
}

func runWindow(_ *cobra.Command, _ []string) {
	id, opts, err := gameOptions()
	if err != nil {
		fail("%v", err)
	}

	logger := newLogger(os.Stderr)
	game := skillquest.NewWithOptions(id, opts)

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	settings, err := gui.OpenSettings(gui.AppName)
	if err != nil {
		logger.Warn("window settings unavailable", "error", err)
	}

	runErr := gui.Run(game, store, settings, gui.Options{
		Player:     playerName(),
		TickRate:   flagFPS,
		Seed:       flagSeed,
		Scale:      flagScale,
		Fullscreen: flagFullscreen,
		Logger:     logger,
	})
	if gameErr := game.Err(); gameErr != nil {
		logger.Warn("game fell back to defaults", "error", gameErr)
	}
	if runErr != nil {
		if store != nil {
			store.Close()
		}
		fail("running window: %v", runErr)
	}
}
