package core

import (
	"image/color"
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenCellColor(t *testing.T) {
	s := NewScreen(10, 3)
	red := color.RGBA{0xff, 0, 0, 0xff}

	s.SetCell(2, 1, Cell{Rune: '#', Color: red})
	got := s.GetCell(2, 1)
	if got.Rune != '#' || got.Color != red {
		t.Errorf("GetCell(2, 1) = %+v, expected '#' in red", got)
	}

	s.Clear()
	if got := s.GetCell(2, 1); got.Rune != ' ' || got.Color != (color.RGBA{}) {
		t.Errorf("After Clear, GetCell(2, 1) = %+v, expected blank", got)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello", ColorWhite)

	if got := s.Row(1); !strings.HasPrefix(got, "  Hello") {
		t.Errorf("Row(1) = %q, expected it to start with '  Hello'", got)
	}

	// Clipped at the right edge
	s.DrawText(17, 2, "World", ColorWhite)
	if got := s.Row(2); !strings.HasSuffix(got, "Wor") {
		t.Errorf("Row(2) = %q, expected clipped 'Wor' at end", got)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.Set(1, 1, 'X')
	s.Resize(20, 5)

	if s.Width() != 20 || s.Height() != 5 {
		t.Fatalf("Resize: got %dx%d, expected 20x5", s.Width(), s.Height())
	}
	if s.Get(1, 1) != ' ' {
		t.Error("Resize should clear content")
	}
	s.Set(19, 4, 'Y')
	if s.Get(19, 4) != 'Y' {
		t.Error("Resized screen should accept writes at new bounds")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	expected := "a  \n  b"
	if got := s.String(); got != expected {
		t.Errorf("String() = %q, expected %q", got, expected)
	}
}
