package gui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"
)

// ImageCanvas draws onto an ebiten image in logical pixels. The image is the
// Layout-sized screen, so no scaling happens here.
type ImageCanvas struct {
	dst    *ebiten.Image
	w, h   float64
	source *text.GoTextFaceSource
	faces  map[float64]*text.GoTextFace
}

// NewImageCanvas creates a canvas of the given logical size with the Go
// regular font.
func NewImageCanvas(w, h float64) (*ImageCanvas, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("gui: loading font: %w", err)
	}
	return &ImageCanvas{
		w:      w,
		h:      h,
		source: src,
		faces:  make(map[float64]*text.GoTextFace),
	}, nil
}

// Target sets the image the next draw calls go to.
func (c *ImageCanvas) Target(dst *ebiten.Image) {
	c.dst = dst
}

// face returns the cached face for a font size.
func (c *ImageCanvas) face(size float64) *text.GoTextFace {
	if f, ok := c.faces[size]; ok {
		return f
	}
	f := &text.GoTextFace{Source: c.source, Size: size}
	c.faces[size] = f
	return f
}

// nrgba reinterprets a straight-alpha palette color for ebiten, which reads
// color.RGBA as premultiplied.
func nrgba(c color.RGBA) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Size returns the logical size.
func (c *ImageCanvas) Size() (float64, float64) {
	return c.w, c.h
}

// Clear fills the whole image.
func (c *ImageCanvas) Clear(col color.RGBA) {
	if c.dst == nil {
		return
	}
	c.dst.Fill(nrgba(col))
}

// FillRect fills an axis-aligned rectangle.
func (c *ImageCanvas) FillRect(x, y, w, h float64, col color.RGBA) {
	if c.dst == nil || w <= 0 || h <= 0 {
		return
	}
	vector.DrawFilledRect(c.dst, float32(x), float32(y), float32(w), float32(h), nrgba(col), false)
}

// FillCircle fills an anti-aliased circle.
func (c *ImageCanvas) FillCircle(cx, cy, r float64, col color.RGBA) {
	if c.dst == nil || r <= 0 {
		return
	}
	vector.DrawFilledCircle(c.dst, float32(cx), float32(cy), float32(r), nrgba(col), true)
}

// DrawText draws s with its top-left corner at (x, y).
func (c *ImageCanvas) DrawText(x, y, size float64, s string, col color.RGBA) {
	if c.dst == nil || s == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(nrgba(col))
	text.Draw(c.dst, s, c.face(size), op)
}

// MeasureText returns the advance width of s.
func (c *ImageCanvas) MeasureText(s string, size float64) float64 {
	return text.Advance(s, c.face(size))
}
