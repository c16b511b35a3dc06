package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/skillquest/internal/core"
	"github.com/vovakirdan/skillquest/internal/games/skillquest"
	"github.com/vovakirdan/skillquest/internal/platform/tui"
)

var flagHoldTicks int

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start SkillQuest in the terminal.

Controls:
  Left/Right, A/D  - Move
  Space/Up/W       - Jump
  1-9              - Pick a level on the menu
  Enter            - Start
  P                - Pause
  R                - Play again after the last level
  Esc              - Back to the level menu
  B                - Back to the pack launcher
  Ctrl+S           - Screenshot
  Q/Ctrl+C         - Quit

Terminals only report key presses, so a movement key counts as held for
--hold-ticks ticks after each press or repeat.

Examples:
  skillquest play
  skillquest play --level 3
  skillquest play --pack tiled
  skillquest play --levels ./my-levels --difficulty easy
  skillquest play --config ./my-skillquest.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addGameFlags(playCmd)
	playCmd.Flags().IntVar(&flagHoldTicks, "hold-ticks", 0, "Ticks a movement key stays held after a press (0 = config value)")
}

// terminalConfig returns the runtime config for the current terminal.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

func runPlay(_ *cobra.Command, _ []string) {
	id, opts, err := gameOptions()
	if err != nil {
		fail("%v", err)
	}
	skillquest.SetOptions(launcherOptions(opts))

	logger, closeLog := fileLogger()
	defer closeLog()

	game := skillquest.NewWithOptions(id, opts)

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := terminalConfig()
	modelOpts := tui.ModelOptions{
		Player:    playerName(),
		HoldTicks: holdTicks(),
		Logger:    logger,
	}

	backToMenu, err := tui.Run(game, store, cfg, modelOpts)
	if err != nil {
		fail("running game: %v", err)
	}
	if gameErr := game.Err(); gameErr != nil {
		logger.Warn("game fell back to defaults", "error", gameErr)
	}
	if backToMenu {
		runLauncher(store, cfg, modelOpts)
	}
}

// holdTicks returns the --hold-ticks flag or the configured value.
func holdTicks() int {
	if flagHoldTicks > 0 {
		return flagHoldTicks
	}
	cfg, err := loadConfig()
	if err != nil {
		return tui.DefaultHoldTicks
	}
	return cfg.Input.HoldTicks
}
