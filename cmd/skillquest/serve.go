package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skillquest/internal/games/skillquest"
	"github.com/vovakirdan/skillquest/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SkillQuest SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own session with the pack launcher.
Scores are stored per-server and recorded under the SSH user name.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.skillquest/host_key

Examples:
  skillquest serve                           # Listen on :23234 with auto-generated key
  skillquest serve --ssh :2222               # Listen on port 2222
  skillquest serve --host-key ./my_host_key  # Use specific host key
  skillquest serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	serveCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	serveCmd.Flags().IntVar(&flagHoldTicks, "hold-ticks", 0, "Ticks a movement key stays held after a press (0 = config value)")
}

func runServe(_ *cobra.Command, _ []string) {
	_, opts, err := gameOptions()
	if err != nil {
		fail("%v", err)
	}
	skillquest.SetOptions(launcherOptions(opts))

	logger := newLogger(os.Stderr)

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagDBPath
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.TickRate = flagFPS
	cfg.HoldTicks = holdTicks()
	cfg.Logger = logger

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fail("creating server: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("press Ctrl+C to stop", "connect", "ssh localhost -p "+port(cfg.Address))
	if err := server.Serve(ctx); err != nil {
		fail("%v", err)
	}
}

// port returns the port part of a listen address.
func port(addr string) string {
	if i := strings.LastIndex(addr, ":"); i >= 0 {
		return addr[i+1:]
	}
	return addr
}
