package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skillquest/internal/core"
	"github.com/vovakirdan/skillquest/internal/registry"
	"github.com/vovakirdan/skillquest/internal/storage"
)

// sessionView is the screen a SessionModel shows.
type sessionView int

const (
	viewMenu sessionView = iota
	viewGame
	viewScores
)

// SessionModel chains the launcher, games and the scoreboard inside one
// program. SSH sessions use it as their top-level model, so only an explicit
// quit ends the connection.
type SessionModel struct {
	store      *storage.Store
	config     core.RuntimeConfig
	opts       ModelOptions
	view       sessionView
	menu       MenuModel
	game       Model
	scoreboard ScoreboardModel
	quitting   bool
}

// NewSessionModel opens on the launcher. store may be nil.
func NewSessionModel(store *storage.Store, cfg core.RuntimeConfig, opts ModelOptions) SessionModel {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	return SessionModel{
		store:  store,
		config: cfg,
		opts:   opts,
		menu:   NewMenuModel(store, cfg, opts.Player),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update routes msg to the active screen.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW, m.config.ScreenH = ws.Width, ws.Height
	}

	switch m.view {
	case viewGame:
		next, cmd := m.game.Update(msg)
		m.game = next.(Model)
		switch {
		case m.game.IsQuitting():
			return m.quit()
		case m.game.BackToMenu():
			return m.toMenu()
		}
		return m, cmd

	case viewScores:
		next, cmd := m.scoreboard.Update(msg)
		m.scoreboard = next.(ScoreboardModel)
		switch {
		case m.scoreboard.IsQuitting():
			return m.quit()
		case m.scoreboard.IsGoingBack():
			return m.toMenu()
		}
		return m, cmd
	}

	// The launcher quits its own program on every decision; here the
	// decision switches screens instead.
	next, _ := m.menu.Update(msg)
	m.menu = next.(MenuModel)
	r := m.menu.Result()
	switch {
	case r.Quit:
		return m.quit()
	case r.WantsScoreboard:
		m.scoreboard = NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH)
		m.view = viewScores
		return m, nil
	case r.GameID != "":
		return m.start(r.GameID)
	}
	return m, nil
}

func (m SessionModel) start(gameID string) (tea.Model, tea.Cmd) {
	game, err := registry.Create(gameID)
	if err != nil {
		m.opts.Logger.Warn("could not create game", "game", gameID, "error", err)
		return m.toMenu()
	}
	m.config.Seed = time.Now().UnixNano()
	m.game = NewModel(game, m.store, m.config, m.opts)
	m.view = viewGame
	return m, m.game.Init()
}

// toMenu rebuilds the launcher so scores and achievements are current.
func (m SessionModel) toMenu() (tea.Model, tea.Cmd) {
	m.view = viewMenu
	m.menu = NewMenuModel(m.store, m.config, m.opts.Player)
	return m, m.menu.Init()
}

func (m SessionModel) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}

// View renders the active screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	switch m.view {
	case viewGame:
		return m.game.View()
	case viewScores:
		return m.scoreboard.View()
	default:
		return m.menu.View()
	}
}
