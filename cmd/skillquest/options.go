package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/skillquest/internal/config"
	"github.com/vovakirdan/skillquest/internal/games/skillquest"
	"github.com/vovakirdan/skillquest/internal/games/skillquest/levels"
)

// Game flags shared by play, window and menu.
var (
	flagConfig     string
	flagDifficulty string
	flagLevelsDir  string
	flagPack       string
	flagLevel      int
)

func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	cmd.Flags().StringVar(&flagLevelsDir, "levels", "", "Directory with a custom level pack (YAML or TMX)")
	cmd.Flags().StringVar(&flagPack, "pack", levels.SourceBuiltin, "Built-in level pack: builtin, tiled")
	cmd.Flags().IntVar(&flagLevel, "level", 0, "Start directly at this level (0 = menu)")
}

// gameOptions validates the game flags and returns the game ID they select.
func gameOptions() (string, skillquest.Options, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return "", skillquest.Options{}, err
	}
	// Fail early on a bad pack or level rather than inside the frontend.
	pack, err := levels.Open(flagLevelsDir, flagPack)
	if err != nil {
		return "", skillquest.Options{}, err
	}
	if flagLevel != 0 {
		if _, err := pack.Level(flagLevel); err != nil {
			return "", skillquest.Options{}, err
		}
	}

	id := skillquest.GameID
	if flagPack == levels.SourceTiled && flagLevelsDir == "" {
		id = skillquest.TiledGameID
	}
	return id, skillquest.Options{
		ConfigPath: flagConfig,
		Difficulty: preset,
		LevelsDir:  flagLevelsDir,
		Pack:       flagPack,
		StartLevel: flagLevel,
	}, nil
}

// loadConfig loads the game config the --config flag points at.
func loadConfig() (config.SkillQuestConfig, error) {
	return config.LoadSkillQuest(flagConfig)
}

// launcherOptions drops the per-command pack and start level so games the
// launcher creates from the registry pick their own pack and open on the menu.
func launcherOptions(opts skillquest.Options) skillquest.Options {
	opts.Pack = ""
	opts.StartLevel = 0
	return opts
}
