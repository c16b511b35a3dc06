package core

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Palette colors shared by the renderer and the frontends.
var (
	ColorBackground = color.RGBA{0x1a, 0x1a, 0x2e, 0xff}
	ColorWhite      = color.RGBA{0xff, 0xff, 0xff, 0xff}
	ColorBlack      = color.RGBA{0x00, 0x00, 0x00, 0xff}
	ColorGray       = color.RGBA{0x8a, 0x8a, 0x9e, 0xff}
	ColorYellow     = color.RGBA{0xff, 0xd7, 0x00, 0xff}
)

// ParseHex parses "#rrggbb", "rrggbb" or "#rgb" into an opaque color.
func ParseHex(s string) (color.RGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return color.RGBA{}, fmt.Errorf("core: invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("core: invalid hex color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// Hex formats a color as "#rrggbb", ignoring alpha.
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// WithAlpha returns c with its alpha scaled to a in [0, 1].
// The result is non-premultiplied; canvases blend it themselves.
func WithAlpha(c color.RGBA, a float64) color.RGBA {
	c.A = uint8(ClampF(a, 0, 1) * 255)
	return c
}

// Lighten mixes c toward white by amount in [0, 1].
func Lighten(c color.RGBA, amount float64) color.RGBA {
	return Blend(c, color.RGBA{0xff, 0xff, 0xff, 0xff}, amount)
}

// Blend linearly mixes from toward to by t in [0, 1]. The result is opaque.
func Blend(from, to color.RGBA, t float64) color.RGBA {
	t = ClampF(t, 0, 1)
	mix := func(a, b uint8) uint8 {
		return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
	}
	return color.RGBA{R: mix(from.R, to.R), G: mix(from.G, to.G), B: mix(from.B, to.B), A: 0xff}
}

// Over composites a non-premultiplied color onto an opaque background.
func Over(bg, fg color.RGBA) color.RGBA {
	return Blend(bg, fg, float64(fg.A)/255)
}
