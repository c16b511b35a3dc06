// skillquest is a portfolio platformer for the terminal, SSH and the desktop.
//
// Usage:
//
//	skillquest play                 - Play in the terminal
//	skillquest window               - Play in a desktop window
//	skillquest menu                 - Pick a level pack interactively
//	skillquest serve                - Start SSH server for remote play
//	skillquest list                 - List available level packs
//	skillquest levels               - Show the levels of a pack
//	skillquest scores [game]        - Show high scores
//	skillquest achievements [game]  - Show unlocked achievements
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible particles
//	--db <path>          - Set database path (default: ~/.skillquest/scores.db)
//	--log-level <level>  - Set log level (debug, info, warn, error)
package main

import (
	"fmt"
	"io"
	"os"
	"os/user"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/skillquest/internal/config"
	"github.com/vovakirdan/skillquest/internal/storage"

	// Import games to register them
	_ "github.com/vovakirdan/skillquest/internal/games/skillquest"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "skillquest",
	Short: "SkillQuest - Collect every skill, clear every level",
	Long: `SkillQuest is a single-screen platformer where each level holds a set
of skills to collect. Collect them all to move on to the next level.

Available commands:
  play          - Play in the terminal
  window        - Play in a desktop window
  menu          - Interactive level pack picker
  serve         - Start SSH server for remote play
  list          - Show the available level packs
  levels        - Show the levels of a pack
  scores        - View high scores
  achievements  - View unlocked achievements

Examples:
  skillquest play
  skillquest play --level 3
  skillquest window --pack tiled
  skillquest serve --ssh :2222
  skillquest scores`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.skillquest/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(achievementsCmd)
}

// fail prints an error the way every command reports one and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// newLogger builds the command logger writing to w.
func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "skillquest",
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// fileLogger logs to ~/.skillquest/skillquest.log, since the terminal belongs
// to the game. The returned close func is always safe to call.
func fileLogger() (*log.Logger, func()) {
	path := config.UserPath("skillquest.log")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return newLogger(io.Discard), func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return newLogger(io.Discard), func() {}
	}
	return newLogger(f), func() { f.Close() }
}

// openStore opens the scores database, warning and returning nil on failure
// so games still run without persistence.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

// playerName returns the local user name recorded with scores.
func playerName() string {
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return storage.DefaultPlayer
}
