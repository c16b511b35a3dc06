package core

import (
	"image/color"
	"math"
	"unicode/utf8"
)

// Canvas is a 2D drawing surface in logical pixel coordinates.
// The game renders through it; each frontend provides an implementation
// (terminal cell grid, desktop window, test recorder).
type Canvas interface {
	// Size returns the logical drawing size.
	Size() (w, h float64)
	// Clear fills the whole surface.
	Clear(c color.RGBA)
	FillRect(x, y, w, h float64, c color.RGBA)
	FillCircle(cx, cy, r float64, c color.RGBA)
	// DrawText draws s with its top-left corner at (x, y).
	DrawText(x, y, size float64, s string, c color.RGBA)
	// MeasureText returns the rendered width of s at the given font size.
	MeasureText(s string, size float64) float64
}

// Glyphs used when rasterizing shapes onto a cell grid.
const (
	FillGlyph = '█'
	DotGlyph  = '●'
)

// CellCanvas rasterizes a logical canvas onto a terminal Screen.
// Every logical coordinate is scaled to the screen's cell grid.
type CellCanvas struct {
	screen   *Screen
	logicalW float64
	logicalH float64
	bg       color.RGBA
}

// NewCellCanvas wraps screen as a canvas of the given logical size.
func NewCellCanvas(screen *Screen, logicalW, logicalH float64) *CellCanvas {
	return &CellCanvas{
		screen:   screen,
		logicalW: logicalW,
		logicalH: logicalH,
		bg:       ColorBackground,
	}
}

// Size returns the logical size.
func (c *CellCanvas) Size() (float64, float64) {
	return c.logicalW, c.logicalH
}

// Screen returns the underlying screen buffer.
func (c *CellCanvas) Screen() *Screen {
	return c.screen
}

func (c *CellCanvas) cellW() float64 {
	return c.logicalW / float64(max(c.screen.Width(), 1))
}

func (c *CellCanvas) cellH() float64 {
	return c.logicalH / float64(max(c.screen.Height(), 1))
}

func (c *CellCanvas) toCell(x, y float64) (int, int) {
	return int(math.Floor(x / c.cellW())), int(math.Floor(y / c.cellH()))
}

// blend resolves a translucent color against whatever is under the cell.
func (c *CellCanvas) blend(x, y int, col color.RGBA) color.RGBA {
	if col.A == 0xff {
		return col
	}
	under := c.bg
	if cell := c.screen.GetCell(x, y); cell.Rune == FillGlyph {
		under = cell.Color
	}
	return Over(under, col)
}

// Clear remembers the background and blanks the screen.
func (c *CellCanvas) Clear(col color.RGBA) {
	c.bg = col
	c.screen.Clear()
}

// FillRect fills every cell whose center lies inside the rectangle.
// Rectangles thinner than a cell still cover the cell they start in.
func (c *CellCanvas) FillRect(x, y, w, h float64, col color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	cw, ch := c.cellW(), c.cellH()
	x0 := int(math.Round(x / cw))
	y0 := int(math.Round(y / ch))
	x1 := int(math.Round((x + w) / cw))
	y1 := int(math.Round((y + h) / ch))
	if x1 <= x0 {
		x0, _ = c.toCell(x, y)
		x1 = x0 + 1
	}
	if y1 <= y0 {
		_, y0 = c.toCell(x, y)
		y1 = y0 + 1
	}
	for cy := y0; cy < y1; cy++ {
		for cx := x0; cx < x1; cx++ {
			c.screen.SetCell(cx, cy, Cell{Rune: FillGlyph, Color: c.blend(cx, cy, col)})
		}
	}
}

// FillCircle fills cells whose centers fall inside the circle. A circle
// smaller than one cell is drawn as a single dot.
func (c *CellCanvas) FillCircle(cx, cy, r float64, col color.RGBA) {
	if r <= 0 {
		return
	}
	cw, ch := c.cellW(), c.cellH()
	minX, minY := c.toCell(cx-r, cy-r)
	maxX, maxY := c.toCell(cx+r, cy+r)
	drawn := false
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			px := (float64(x) + 0.5) * cw
			py := (float64(y) + 0.5) * ch
			if Distance(px, py, cx, cy) <= r {
				c.screen.SetCell(x, y, Cell{Rune: FillGlyph, Color: c.blend(x, y, col)})
				drawn = true
			}
		}
	}
	if !drawn {
		x, y := c.toCell(cx, cy)
		c.screen.SetCell(x, y, Cell{Rune: DotGlyph, Color: c.blend(x, y, col)})
	}
}

// DrawText places runes on the cell row containing y. Size is ignored: a
// terminal has one font size.
func (c *CellCanvas) DrawText(x, y, _ float64, s string, col color.RGBA) {
	cx, cy := c.toCell(x, y)
	c.screen.DrawText(cx, cy, s, c.blend(cx, cy, col))
}

// MeasureText returns the logical width covered by s.
func (c *CellCanvas) MeasureText(s string, _ float64) float64 {
	return float64(utf8.RuneCountInString(s)) * c.cellW()
}
