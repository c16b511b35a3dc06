package skillquest

import "github.com/vovakirdan/skillquest/internal/core"

// FlagsFromFrame builds the physics input snapshot from a frame.
func FlagsFromFrame(in core.InputFrame) InputFlags {
	return InputFlags{
		Left:   in.Has(core.ActionLeft),
		Right:  in.Has(core.ActionRight),
		Up:     in.Has(core.ActionUp),
		Space:  in.Has(core.ActionSpace),
		Escape: in.Has(core.ActionBack),
	}
}

// ZoneActions maps a pointer at (x, y) on a w x h surface to touch actions.
// The left third moves left, the right third moves right and the upper half
// of the middle third jumps. Anything else maps to nothing.
func ZoneActions(x, y, w, h float64) []core.Action {
	if !core.NewRectF(0, 0, w, h).Contains(x, y) {
		return nil
	}
	switch {
	case x < w/3:
		return []core.Action{core.ActionLeft}
	case x >= w*2/3:
		return []core.Action{core.ActionRight}
	case y < h/2:
		return []core.Action{core.ActionUp}
	default:
		return nil
	}
}

// handleMenuInput applies menu-screen input. Digits pick the starting level,
// confirm or space starts the run.
func (s *State) handleMenuInput(in core.InputFrame) {
	for n := 1; n <= core.MaxLevelAction; n++ {
		if in.Has(core.LevelAction(n)) && n <= s.LevelCount {
			s.SelectedLevel = n
		}
	}
	if in.Has(core.ActionSpace) || in.Has(core.ActionConfirm) {
		s.StartRun(s.SelectedLevel)
	}
}
