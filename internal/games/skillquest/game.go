// Package skillquest implements the SkillQuest portfolio platformer: a
// single-screen run-and-jump game where every skill on a level must be
// collected before the next one loads.
package skillquest

import (
	"github.com/vovakirdan/skillquest/internal/config"
	"github.com/vovakirdan/skillquest/internal/core"
	"github.com/vovakirdan/skillquest/internal/games/skillquest/levels"
	"github.com/vovakirdan/skillquest/internal/registry"
)

// Registered game IDs.
const (
	GameID      = "skillquest"
	TiledGameID = "skillquest_tiled"
)

var titles = map[string]string{
	GameID:      "SkillQuest",
	TiledGameID: "SkillQuest (Tiled levels)",
}

// Options configure how a game instance resets.
type Options struct {
	ConfigPath string                  // Custom config file, empty for the search path
	Difficulty config.DifficultyPreset // Empty keeps the configured values
	LevelsDir  string                  // Custom level pack directory, wins over Pack
	Pack       string                  // levels.SourceBuiltin or levels.SourceTiled
	StartLevel int                     // Skip the menu and start here, 0 for the menu
}

// defaultOptions stores the options set via CLI for registry-created games.
var defaultOptions Options

// SetOptions sets the options used by games created from the registry.
func SetOptions(o Options) {
	defaultOptions = o
}

// Game adapts State to the registry interface.
type Game struct {
	id      string
	opts    Options
	runtime core.RuntimeConfig
	state   *State
	err     error
}

// New creates a game over the built-in YAML pack.
func New() *Game {
	return NewWithOptions(GameID, defaultOptions)
}

// NewTiled creates a game over the built-in Tiled pack.
func NewTiled() *Game {
	opts := defaultOptions
	if opts.Pack == "" {
		opts.Pack = levels.SourceTiled
	}
	return NewWithOptions(TiledGameID, opts)
}

// NewWithOptions creates a game with explicit options.
func NewWithOptions(id string, opts Options) *Game {
	return &Game{id: id, opts: opts}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if t, ok := titles[g.id]; ok {
		return t
	}
	return titles[GameID]
}

// Reset loads configuration and levels and puts the game on the menu, or
// straight into StartLevel. Load failures fall back to the built-in defaults;
// the cause is kept in Err.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.err = nil

	cfg, err := config.LoadSkillQuest(g.opts.ConfigPath)
	if err != nil {
		g.err = err
		cfg = config.DefaultSkillQuestConfig()
	}
	if g.opts.Difficulty != "" {
		config.ApplySkillQuestPreset(&cfg, g.opts.Difficulty)
	}

	pack, err := levels.Open(g.opts.LevelsDir, g.opts.Pack)
	if err != nil {
		g.err = err
		pack = levels.MustBuiltin()
	}

	g.state = NewState(pack, cfg, runtime.TickRate, runtime.Seed)
	if g.opts.StartLevel > 0 {
		g.state.StartRun(g.opts.StartLevel)
	}
}

// Err returns the last configuration or level loading error from Reset.
func (g *Game) Err() error {
	return g.err
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.state == nil {
		g.Reset(g.runtime)
	}
	g.state.Step(in)
	return core.StepResult{State: g.state.GameState(), Events: g.state.DrainEvents()}
}

// Render draws the current frame.
func (g *Game) Render(dst core.Canvas) {
	if g.state == nil {
		return
	}
	Render(g.state, dst)
}

// State returns the platform-level summary.
func (g *Game) State() core.GameState {
	if g.state == nil {
		return core.GameState{}
	}
	return g.state.GameState()
}

// SelectLevel preselects the menu's starting level. It reports false when
// the game is not on the menu or n is outside the pack.
func (g *Game) SelectLevel(n int) bool {
	if g.state == nil || g.state.Screen != ScreenMenu || n < 1 || n > g.state.LevelCount {
		return false
	}
	g.state.SelectedLevel = n
	return true
}

// Sim returns the underlying simulation state.
func (g *Game) Sim() *State {
	return g.state
}

// LogicalSize returns the playfield size frontends should scale to.
func (g *Game) LogicalSize() (float64, float64) {
	if g.state == nil {
		d := config.DefaultSkillQuestConfig().Canvas
		return d.Width, d.Height
	}
	c := g.state.cfg.Canvas
	return c.Width, c.Height
}

func init() {
	registry.Register(registry.GameInfo{ID: GameID, Title: titles[GameID]}, func() registry.Game {
		return New()
	})
	registry.Register(registry.GameInfo{ID: TiledGameID, Title: titles[TiledGameID]}, func() registry.Game {
		return NewTiled()
	})
}
