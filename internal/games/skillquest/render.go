package skillquest

import (
	"fmt"
	"image/color"
	"math"

	"github.com/vovakirdan/skillquest/internal/core"
)

// Colors used by the renderer.
var (
	ColorFloor       = color.RGBA{0x2d, 0x2d, 0x44, 0xff}
	ColorFloorEdge   = color.RGBA{0x4a, 0x4e, 0x69, 0xff}
	ColorPlayer      = color.RGBA{0xff, 0x6b, 0x35, 0xff}
	ColorPlayerMove  = color.RGBA{0xff, 0xa9, 0x4d, 0xff}
	ColorHUD         = core.ColorWhite
	ColorSelected    = color.RGBA{0x3a, 0x86, 0xff, 0xff}
	ColorDecorA      = color.RGBA{0x4e, 0xcd, 0xc4, 0x18}
	ColorDecorB      = color.RGBA{0x83, 0x38, 0xec, 0x18}
	ColorOverlay     = color.RGBA{0x00, 0x00, 0x00, 0xb0}
	ColorBannerPanel = color.RGBA{0x00, 0x00, 0x00, 0x80}
)

// Font sizes in logical pixels.
const (
	SizeTitle     = 40
	SizeHeading   = 24
	SizeHUD       = 16
	SizeLabel     = 12
	BannerMaxSize = 24
	BannerMinSize = 10
	bannerMargin  = 20
)

// decor is the static background: soft circles behind the playfield.
var decor = []struct {
	x, y, r float64
	c       color.RGBA
}{
	{120, 120, 70, ColorDecorA},
	{680, 90, 50, ColorDecorB},
	{420, 200, 90, ColorDecorB},
	{740, 330, 60, ColorDecorA},
}

// Render draws the state onto dst. It only reads the state.
func Render(s *State, dst core.Canvas) {
	if s.Screen == ScreenMenu {
		renderMenu(s, dst)
		return
	}

	w, h := dst.Size()
	dst.Clear(core.ColorBackground)
	for _, d := range decor {
		dst.FillCircle(d.x, d.y, d.r, d.c)
	}

	floorY := s.cfg.Physics.FloorY
	dst.FillRect(0, floorY, w, h-floorY, ColorFloor)
	dst.FillRect(0, floorY, w, 4, ColorFloorEdge)

	for _, p := range s.Platforms {
		r := p.Rect
		dst.FillRect(r.X, r.Y, r.W, r.H, p.Color)
		dst.FillRect(r.X, r.Y, r.W, 4, core.Lighten(p.Color, 0.35))
	}

	for _, c := range s.Collectibles {
		if !c.Collected {
			drawCollectible(dst, c, w, h)
		}
	}

	for _, p := range s.Particles {
		dst.FillCircle(p.X, p.Y, p.Size, core.WithAlpha(p.Color, p.Alpha()))
	}

	drawPlayer(dst, s.Player)
	drawHUD(dst, s)
	drawBanner(dst, s.Message, s.MessageAlpha())

	switch s.Screen {
	case ScreenPaused:
		drawPaused(dst)
	case ScreenGameComplete:
		drawGameComplete(dst, s)
	}
}

// PulseRadius returns a collectible's radius at the given phase.
func PulseRadius(phase float64) float64 {
	return 15 + 3*math.Sin(phase)
}

func drawCollectible(dst core.Canvas, c Collectible, w, h float64) {
	r := PulseRadius(c.Phase)
	dst.FillCircle(c.X, c.Y, r, KindColor(c.Kind))

	if c.Icon != "" {
		iw := dst.MeasureText(c.Icon, SizeHUD)
		dst.DrawText(c.X-iw/2, c.Y-SizeHUD/2, SizeHUD, c.Icon, core.ColorWhite)
	}

	// Name label below the pickup, kept inside the canvas.
	if c.Name == "" {
		return
	}
	lw := dst.MeasureText(c.Name, SizeLabel)
	ly := c.Y + r + 4
	if lw > w || ly+SizeLabel > h {
		return
	}
	lx := core.ClampF(c.X-lw/2, 0, w-lw)
	dst.DrawText(lx, ly, SizeLabel, c.Name, ColorHUD)
}

func drawPlayer(dst core.Canvas, p PlayerState) {
	body := ColorPlayer
	if p.Moving() {
		body = ColorPlayerMove
	}
	dst.FillRect(p.X, p.Y, p.W, p.H, body)

	const eye = 5
	eyeY := p.Y + p.H/4
	if p.Facing == FacingLeft {
		dst.FillRect(p.X+3, eyeY, eye, eye, core.ColorWhite)
		dst.FillRect(p.X+11, eyeY, eye, eye, core.ColorWhite)
	} else {
		dst.FillRect(p.X+p.W-16, eyeY, eye, eye, core.ColorWhite)
		dst.FillRect(p.X+p.W-8, eyeY, eye, eye, core.ColorWhite)
	}
}

// HUDText returns the status line.
func HUDText(s *State) string {
	return fmt.Sprintf("Level %d/%d  Score %d  Collected %d/%d",
		s.Level, s.LevelCount, s.Score, s.CollectedCount(), len(s.Collectibles))
}

func drawHUD(dst core.Canvas, s *State) {
	dst.DrawText(10, 10, SizeHUD, HUDText(s), ColorHUD)
}

// FitFontSize returns the largest banner size from BannerMaxSize down to
// BannerMinSize at which text fits the canvas width minus margins.
func FitFontSize(dst core.Canvas, text string) float64 {
	w, _ := dst.Size()
	limit := w - 2*bannerMargin
	size := float64(BannerMaxSize)
	for size > BannerMinSize && dst.MeasureText(text, size) > limit {
		size--
	}
	return size
}

func drawBanner(dst core.Canvas, text string, alpha float64) {
	if text == "" || alpha <= 0 {
		return
	}
	w, _ := dst.Size()
	size := FitFontSize(dst, text)
	tw := dst.MeasureText(text, size)
	y := 50.0

	dst.FillRect(bannerMargin/2, y-6, w-bannerMargin, size+12, core.WithAlpha(ColorBannerPanel, alpha*0.5))
	dst.DrawText((w-tw)/2, y, size, text, core.WithAlpha(core.ColorYellow, alpha))
}

func drawCentered(dst core.Canvas, y, size float64, text string, c color.RGBA) {
	w, _ := dst.Size()
	tw := dst.MeasureText(text, size)
	dst.DrawText((w-tw)/2, y, size, text, c)
}

func drawPaused(dst core.Canvas) {
	w, h := dst.Size()
	dst.FillRect(0, 0, w, h, ColorOverlay)
	drawCentered(dst, h/2-40, SizeTitle, "PAUSED", core.ColorWhite)
	drawCentered(dst, h/2+20, SizeHUD, "P to resume  Esc for menu", core.ColorGray)
}

func drawGameComplete(dst core.Canvas, s *State) {
	w, h := dst.Size()
	dst.FillRect(0, 0, w, h, ColorOverlay)
	drawCentered(dst, 140, SizeTitle, "Quest complete!", core.ColorYellow)
	drawCentered(dst, 210, SizeHeading, fmt.Sprintf("Final score: %d", s.Score), core.ColorWhite)

	if len(s.Achievements) > 0 {
		drawCentered(dst, 270, SizeHUD, "Achievements", ColorAchievement)
		for i, name := range s.Achievements {
			drawCentered(dst, 300+float64(i)*24, SizeHUD, "* "+name, core.ColorWhite)
		}
	}
	drawCentered(dst, h-80, SizeHUD, "R to play again  Enter for menu", core.ColorGray)
}

// MenuLines returns the level list shown on the menu, one line per level.
func MenuLines(s *State) []string {
	lines := make([]string, 0, s.pack.Count())
	for i, l := range s.pack.Levels {
		marker := "  "
		if i+1 == s.SelectedLevel {
			marker = "> "
		}
		lines = append(lines, fmt.Sprintf("%s%d. %s", marker, i+1, l.Name))
	}
	return lines
}

func renderMenu(s *State, dst core.Canvas) {
	w, h := dst.Size()
	dst.Clear(core.ColorBackground)
	for _, d := range decor {
		dst.FillCircle(d.x, d.y, d.r, d.c)
	}

	drawCentered(dst, 70, SizeTitle, "SkillQuest", core.ColorYellow)
	drawCentered(dst, 130, SizeHUD, "Collect every skill to finish a level", core.ColorGray)

	y := 190.0
	for i, line := range MenuLines(s) {
		c := core.ColorWhite
		if i+1 == s.SelectedLevel {
			dst.FillRect(w/4, y-4, w/2, SizeHeading+8, ColorSelected)
		} else {
			c = core.ColorGray
		}
		dst.DrawText(w/4+16, y, SizeHeading, line, c)
		y += 44
	}

	controls := []string{
		fmt.Sprintf("1-%d select level   Enter/Space start", min(s.LevelCount, core.MaxLevelAction)),
		"Arrows/WASD move   Up/W/Space jump",
		"P pause   Esc menu   Q quit",
	}
	cy := h - 30 - float64(len(controls))*26
	for _, line := range controls {
		drawCentered(dst, cy, SizeHUD, line, core.ColorGray)
		cy += 26
	}
	if s.Message != "" {
		drawCentered(dst, cy-float64(len(controls))*26-36, SizeHUD, s.Message, ColorBonus)
	}
}
