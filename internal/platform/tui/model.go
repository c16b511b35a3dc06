package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skillquest/internal/config"
	"github.com/vovakirdan/skillquest/internal/core"
	"github.com/vovakirdan/skillquest/internal/platform/session"
	"github.com/vovakirdan/skillquest/internal/registry"
	"github.com/vovakirdan/skillquest/internal/storage"
)

// Logical playfield size used when a game does not report one.
const (
	defaultLogicalW = 800
	defaultLogicalH = 600
)

// sizer is implemented by games with a logical playfield larger than the
// terminal grid.
type sizer interface {
	LogicalSize() (float64, float64)
}

// ModelOptions configure a game model.
type ModelOptions struct {
	Player    string      // Name recorded with scores, empty for the default
	HoldTicks int         // Ticks a movement key stays held after a press
	Logger    *log.Logger // Run event logger, nil for the default logger
}

// Model is the Bubble Tea model for running a game in the terminal.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	canvas     *core.CellCanvas
	store      *storage.Store
	recorder   *session.Recorder
	config     core.RuntimeConfig
	keys       *KeyMapper
	gameState  core.GameState
	loop       uint64
	standalone bool // Owns the program; leaving quits it
	quitting   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ModelOptions) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	lw, lh := float64(defaultLogicalW), float64(defaultLogicalH)
	if sz, ok := game.(sizer); ok {
		lw, lh = sz.LogicalSize()
	}

	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	return Model{
		game:     game,
		screen:   screen,
		canvas:   core.NewCellCanvas(screen, lw, lh),
		store:    store,
		recorder: session.NewRecorder(game.ID(), opts.Player, session.StoreOf(store), opts.Logger),
		config:   cfg,
		keys:     NewKeyMapper(opts.HoldTicks),
		loop:     nextLoop(),
	}
}

// Init resets the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate, m.loop)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keys.Mouse(msg, m.screen.Width(), m.screen.Height())
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.Loop != m.loop {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case "b":
		// Leave to the launcher, when there is one
		m.backToMenu = true
		if m.standalone {
			return m, tea.Quit
		}
		return m, nil
	}

	if m.keys.Press(msg) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events. The canvas rescales, so the
// run keeps going.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.keys.Frame())
	m.gameState = result.State
	m.recorder.Handle(result.Events)

	// Continue ticking
	return m, tickCmd(m.config.TickRate, m.loop)
}

// saveScreenshot saves the current screen as text under ~/.skillquest/screenshots.
func (m *Model) saveScreenshot() {
	m.game.Render(m.canvas)

	dir := config.UserPath("screenshots")
	if dir == "" {
		return
	}
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.canvas)
	return RenderScreen(m.screen)
}

// State returns the game summary from the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the launcher.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given model. It reports
// whether the player asked to return to the launcher.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ModelOptions) (backToMenu bool, err error) {
	model := NewModel(game, store, cfg, opts)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Mouse presses map to touch zones
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	if fm, ok := final.(Model); ok {
		return fm.BackToMenu(), nil
	}
	return false, nil
}
