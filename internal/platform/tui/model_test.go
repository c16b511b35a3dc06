package tui

import (
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skillquest/internal/core"
	"github.com/vovakirdan/skillquest/internal/games/skillquest"
)

func testModel(t *testing.T) Model {
	t.Helper()
	game := skillquest.NewWithOptions(skillquest.GameID, skillquest.Options{})
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
	m := NewModel(game, nil, cfg, ModelOptions{Logger: log.New(io.Discard)})
	m.Init()
	return m
}

func tick(m Model) Model {
	next, _ := m.Update(TickMsg{At: time.Now(), Loop: m.loop})
	return next.(Model)
}

func TestModelStartsRunFromMenu(t *testing.T) {
	m := testModel(t)
	m = tick(m)
	if m.State().Level != 0 {
		t.Fatalf("expected menu, got %+v", m.State())
	}

	next, _ := m.Update(keyMsg("enter"))
	m = tick(next.(Model))
	if m.State().Level != 1 {
		t.Errorf("enter should start level 1, got %+v", m.State())
	}

	view := m.View()
	if !strings.Contains(view, "Level 1/4") {
		t.Errorf("view should show the HUD:\n%s", view)
	}
}

func TestModelIgnoresStaleTicks(t *testing.T) {
	m := testModel(t)
	next, _ := m.Update(keyMsg("enter"))
	m = next.(Model)

	next, cmd := m.Update(TickMsg{At: time.Now(), Loop: m.loop + 100})
	m = next.(Model)
	if cmd != nil || m.State().Level != 0 {
		t.Error("a tick from another loop should be ignored")
	}
}

func TestModelResizeKeepsRun(t *testing.T) {
	m := testModel(t)
	next, _ := m.Update(keyMsg("2"))
	m = tick(next.(Model))
	next, _ = m.Update(keyMsg("enter"))
	m = tick(next.(Model))

	next, _ = m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = tick(next.(Model))
	if m.State().Level != 2 {
		t.Errorf("resize should not reset the run, got %+v", m.State())
	}
	if m.screen.Width() != 120 || m.screen.Height() != 40 {
		t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
	}
}

func TestModelQuit(t *testing.T) {
	m := testModel(t)
	next, cmd := m.Update(keyMsg("q"))
	m = next.(Model)
	if !m.IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
	s := NewSessionModel(nil, cfg, ModelOptions{Logger: log.New(io.Discard)})

	if !strings.Contains(s.View(), "S K I L L Q U E S T") {
		t.Fatalf("session should open on the launcher:\n%s", s.View())
	}

	next, _ := s.Update(keyMsg("enter"))
	s = next.(SessionModel)
	if s.view != viewGame {
		t.Fatalf("enter should start a game, view = %v", s.view)
	}

	next, _ = s.Update(keyMsg("b"))
	s = next.(SessionModel)
	if s.view != viewMenu || s.quitting {
		t.Errorf("b should return to the launcher, view = %v quitting = %v", s.view, s.quitting)
	}
}

func TestSessionScoreboardWithoutStore(t *testing.T) {
	cfg := core.RuntimeConfig{ScreenW: 100, ScreenH: 30, TickRate: 60, Seed: 1}
	s := NewSessionModel(nil, cfg, ModelOptions{Logger: log.New(io.Discard)})

	next, _ := s.Update(keyMsg("tab"))
	s = next.(SessionModel)
	if s.view != viewScores {
		t.Fatalf("tab should open scores, view = %v", s.view)
	}
	if !strings.Contains(s.View(), "No runs recorded yet") {
		t.Errorf("empty scoreboard message missing:\n%s", s.View())
	}

	next, _ = s.Update(keyMsg("esc"))
	s = next.(SessionModel)
	if s.view != viewMenu {
		t.Errorf("esc should return to the launcher, view = %v", s.view)
	}
}
