package tui

import (
	"image/color"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/skillquest/internal/core"
)

// styleCache maps cell colors to lipgloss styles. Games use a small
// palette, so the cache stays small.
var styleCache sync.Map // color.RGBA -> lipgloss.Style

// styleFor returns the foreground style for c. The zero color is the
// terminal default.
func styleFor(c color.RGBA) lipgloss.Style {
	if c == (color.RGBA{}) {
		return lipgloss.NewStyle()
	}
	if s, ok := styleCache.Load(c); ok {
		return s.(lipgloss.Style)
	}
	s := lipgloss.NewStyle().Foreground(lipgloss.Color(core.Hex(c)))
	styleCache.Store(c, s)
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
