package skillquest

import (
	"fmt"

	"github.com/vovakirdan/skillquest/internal/core"
)

// Step advances the state by one tick.
//
// On the playing screens a pending level advance is checked first, then the
// physics step runs with the frame's input snapshot. The step never fails:
// menu digits are range-checked before a level is loaded.
func (s *State) Step(in core.InputFrame) {
	s.Input = FlagsFromFrame(in)

	switch s.Screen {
	case ScreenMenu:
		s.handleMenuInput(in)

	case ScreenPlaying, ScreenLevelComplete:
		if s.Input.Escape {
			s.ReturnToMenu()
			return
		}
		if in.Has(core.ActionPause) && s.Screen == ScreenPlaying {
			s.Screen = ScreenPaused
			return
		}

		s.Tick++
		if s.AdvanceAt != 0 && s.Tick >= s.AdvanceAt {
			s.advance()
			if s.Screen == ScreenGameComplete {
				return
			}
		}

		s.stepPhysics(s.Input)
		if s.AdvanceAt != 0 {
			s.Screen = ScreenLevelComplete
		}
		s.banner.Update()

	case ScreenPaused:
		switch {
		case s.Input.Escape:
			s.ReturnToMenu()
		case in.Has(core.ActionPause):
			s.Screen = ScreenPlaying
		}

	case ScreenGameComplete:
		switch {
		case in.Has(core.ActionRestart):
			s.StartRun(1)
		case s.Input.Escape, in.Has(core.ActionConfirm):
			s.ReturnToMenu()
		}
	}
}

// StartRun resets the run totals and starts playing level n.
func (s *State) StartRun(n int) {
	if _, err := s.pack.Level(n); err != nil {
		s.Message = err.Error()
		return
	}
	s.Score = 0
	s.Achievements = nil
	s.LoadLevel(n) //nolint:errcheck // range checked above
	s.Screen = ScreenPlaying
}

// ReturnToMenu leaves the run. Any pending level advance is dropped.
func (s *State) ReturnToMenu() {
	s.Screen = ScreenMenu
	s.AdvanceAt = 0
	s.Message = ""
	if s.Level > 0 {
		s.SelectedLevel = s.Level
	}
}

// advance loads the next level, or ends the run after the last one.
func (s *State) advance() {
	s.AdvanceAt = 0
	next := s.Level + 1
	if next <= s.LevelCount {
		if err := s.LoadLevel(next); err == nil {
			s.Screen = ScreenPlaying
			return
		}
	}

	s.Screen = ScreenGameComplete
	s.setMessage(fmt.Sprintf("All %d levels complete! Final score: %d", s.LevelCount, s.Score))
	s.emit(core.Event{Kind: core.EventRunComplete, Level: s.Level, Score: s.Score})
}

// GameState summarizes the state for the platform layer.
func (s *State) GameState() core.GameState {
	level := s.Level
	if s.Screen == ScreenMenu {
		level = 0
	}
	return core.GameState{
		Score:    s.Score,
		Level:    level,
		GameOver: s.Screen == ScreenGameComplete,
		Paused:   s.Screen == ScreenPaused,
	}
}
