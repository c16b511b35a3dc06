package skillquest

import (
	"image/color"
	"strings"
	"testing"

	"github.com/vovakirdan/skillquest/internal/config"
	"github.com/vovakirdan/skillquest/internal/core"
	"github.com/vovakirdan/skillquest/internal/games/skillquest/levels"
)

type drawOp struct {
	kind       string // "clear", "rect", "circle", "text"
	x, y, w, h float64
	r, size    float64
	text       string
	c          color.RGBA
}

// recordCanvas records draw calls. Text is 0.5*size wide per rune.
type recordCanvas struct {
	w, h float64
	ops  []drawOp
}

func newRecordCanvas() *recordCanvas {
	return &recordCanvas{w: 800, h: 600}
}

func (c *recordCanvas) Size() (float64, float64) { return c.w, c.h }

func (c *recordCanvas) Clear(col color.RGBA) {
	c.ops = append(c.ops, drawOp{kind: "clear", c: col})
}

func (c *recordCanvas) FillRect(x, y, w, h float64, col color.RGBA) {
	c.ops = append(c.ops, drawOp{kind: "rect", x: x, y: y, w: w, h: h, c: col})
}

func (c *recordCanvas) FillCircle(cx, cy, r float64, col color.RGBA) {
	c.ops = append(c.ops, drawOp{kind: "circle", x: cx, y: cy, r: r, c: col})
}

func (c *recordCanvas) DrawText(x, y, size float64, s string, col color.RGBA) {
	c.ops = append(c.ops, drawOp{kind: "text", x: x, y: y, size: size, text: s, c: col})
}

func (c *recordCanvas) MeasureText(s string, size float64) float64 {
	return float64(len([]rune(s))) * size * 0.5
}

func (c *recordCanvas) texts() []drawOp {
	var out []drawOp
	for _, op := range c.ops {
		if op.kind == "text" {
			out = append(out, op)
		}
	}
	return out
}

func (c *recordCanvas) findText(sub string) (drawOp, bool) {
	for _, op := range c.texts() {
		if strings.Contains(op.text, sub) {
			return op, true
		}
	}
	return drawOp{}, false
}

// circlesAt returns circles centered at (x, y).
func (c *recordCanvas) circlesAt(x, y float64) []drawOp {
	var out []drawOp
	for _, op := range c.ops {
		if op.kind == "circle" && op.x == x && op.y == y {
			out = append(out, op)
		}
	}
	return out
}

func TestRenderMenu(t *testing.T) {
	s := NewState(levels.MustBuiltin(), config.DefaultSkillQuestConfig(), 60, 1)
	s.SelectedLevel = 2
	dst := newRecordCanvas()
	Render(s, dst)

	if len(dst.ops) == 0 || dst.ops[0].kind != "clear" {
		t.Fatal("menu should start by clearing the canvas")
	}
	if _, ok := dst.findText("SkillQuest"); !ok {
		t.Error("menu should show the title")
	}
	for i, l := range s.Pack().Levels {
		if _, ok := dst.findText(l.Name); !ok {
			t.Errorf("menu should list level %d (%s)", i+1, l.Name)
		}
	}
	if op, ok := dst.findText("> 2."); !ok || op.c != core.ColorWhite {
		t.Errorf("selected level should be marked and highlighted, got %+v", op)
	}
	if _, ok := dst.findText("1-4 select level"); !ok {
		t.Error("menu should show the controls")
	}
}

func TestMenuLines(t *testing.T) {
	s := NewState(levels.MustBuiltin(), config.DefaultSkillQuestConfig(), 60, 1)
	lines := MenuLines(s)
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d", len(lines))
	}
	if lines[0] != "> 1. Frontend Foundations" {
		t.Errorf("first line = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "  2. ") {
		t.Errorf("unselected line = %q", lines[1])
	}
}

func TestRenderPlaying(t *testing.T) {
	s := newTestState(t, 1)
	dst := newRecordCanvas()
	Render(s, dst)

	hud, ok := dst.findText("Level 1/4")
	if !ok {
		t.Fatal("HUD missing")
	}
	if hud.text != "Level 1/4  Score 0  Collected 0/3" {
		t.Errorf("HUD = %q", hud.text)
	}

	for _, c := range s.Collectibles {
		circles := dst.circlesAt(c.X, c.Y)
		if len(circles) != 1 {
			t.Fatalf("expected one circle for %s, got %d", c.Name, len(circles))
		}
		if r := circles[0].r; r < 12 || r > 18 {
			t.Errorf("%s pulse radius %v outside [12, 18]", c.Name, r)
		}
		if _, ok := dst.findText(c.Name); !ok {
			t.Errorf("label for %s missing", c.Name)
		}
	}

	// Every platform is drawn with a lighter 4px top edge.
	for _, p := range s.Platforms {
		var body, edge bool
		for _, op := range dst.ops {
			if op.kind != "rect" || op.x != p.Rect.X || op.y != p.Rect.Y || op.w != p.Rect.W {
				continue
			}
			if op.h == p.Rect.H && op.c == p.Color {
				body = true
			}
			if op.h == 4 && op.c == core.Lighten(p.Color, 0.35) {
				edge = true
			}
		}
		if !body || !edge {
			t.Errorf("platform %+v: body=%v edge=%v", p.Rect, body, edge)
		}
	}
}

func TestRenderSkipsCollected(t *testing.T) {
	s := newTestState(t, 1)
	collectInOrder(t, s, []int{0})

	dst := newRecordCanvas()
	Render(s, dst)

	c := s.Collectibles[0]
	if len(dst.circlesAt(c.X, c.Y)) != 0 {
		t.Error("collected pickup should not be drawn")
	}
	if _, ok := dst.findText("Collected 1/3"); !ok {
		t.Error("HUD should count the pickup")
	}
	if _, ok := dst.findText("Skill learned: HTML"); !ok {
		t.Error("pickup message banner missing")
	}
}

func TestRenderParticlesFade(t *testing.T) {
	s := newTestState(t, 1)
	s.Particles = []Particle{{X: 300, Y: 300, Life: 15, MaxLife: 30, Size: 4, Color: ColorBonus}}

	dst := newRecordCanvas()
	Render(s, dst)

	circles := dst.circlesAt(300, 300)
	if len(circles) != 1 {
		t.Fatalf("expected one particle circle, got %d", len(circles))
	}
	if a := circles[0].c.A; a != 127 {
		t.Errorf("half-life particle alpha = %d, expected 127", a)
	}
}

func playerEyes(dst *recordCanvas, p PlayerState) []drawOp {
	var eyes []drawOp
	for _, op := range dst.ops {
		if op.kind == "rect" && op.c == core.ColorWhite && op.w == 5 &&
			op.x >= p.X && op.x+op.w <= p.X+p.W && op.y >= p.Y && op.y <= p.Y+p.H {
			eyes = append(eyes, op)
		}
	}
	return eyes
}

func TestRenderPlayerFacing(t *testing.T) {
	s := newTestState(t, 1)
	s.Player.X, s.Player.Y = 400, 400
	cx, _ := s.Player.Center()

	s.Player.Facing = FacingRight
	dst := newRecordCanvas()
	Render(s, dst)
	eyes := playerEyes(dst, s.Player)
	if len(eyes) != 2 {
		t.Fatalf("expected 2 eyes, got %d", len(eyes))
	}
	for _, e := range eyes {
		if e.x < cx {
			t.Errorf("facing right: eye at %v left of center %v", e.x, cx)
		}
	}

	s.Player.Facing = FacingLeft
	dst = newRecordCanvas()
	Render(s, dst)
	for _, e := range playerEyes(dst, s.Player) {
		if e.x+e.w > cx {
			t.Errorf("facing left: eye at %v right of center %v", e.x, cx)
		}
	}
}

func TestRenderPlayerRecolorsWhileMoving(t *testing.T) {
	s := newTestState(t, 1)
	bodyColor := func() color.RGBA {
		dst := newRecordCanvas()
		Render(s, dst)
		for _, op := range dst.ops {
			if op.kind == "rect" && op.x == s.Player.X && op.y == s.Player.Y && op.w == s.Player.W {
				return op.c
			}
		}
		t.Fatal("player body not drawn")
		return color.RGBA{}
	}

	if c := bodyColor(); c != ColorPlayer {
		t.Errorf("idle color = %v", c)
	}
	s.Player.VX = 5
	if c := bodyColor(); c != ColorPlayerMove {
		t.Errorf("moving color = %v", c)
	}
}

func TestLabelClampedInsideCanvas(t *testing.T) {
	s := newTestState(t, 1)
	s.Collectibles = []Collectible{{X: 795, Y: 200, Kind: levels.KindSkill, Name: "Kubernetes Operators"}}

	dst := newRecordCanvas()
	Render(s, dst)

	op, ok := dst.findText("Kubernetes Operators")
	if !ok {
		t.Fatal("label missing")
	}
	w := dst.MeasureText(op.text, op.size)
	if op.x < 0 || op.x+w > 800 {
		t.Errorf("label spans %v..%v, outside the canvas", op.x, op.x+w)
	}
}

func TestFitFontSize(t *testing.T) {
	dst := newRecordCanvas()

	if got := FitFontSize(dst, "Short"); got != BannerMaxSize {
		t.Errorf("short text size = %v, expected %v", got, BannerMaxSize)
	}

	long := strings.Repeat("x", 500)
	if got := FitFontSize(dst, long); got != BannerMinSize {
		t.Errorf("very long text size = %v, expected %v", got, BannerMinSize)
	}

	// 100 runes: 0.5*size*100 <= 760 needs size <= 15.2.
	mid := strings.Repeat("y", 100)
	if got := FitFontSize(dst, mid); got != 15 {
		t.Errorf("mid text size = %v, expected 15", got)
	}
}

func TestRenderOverlays(t *testing.T) {
	s := newTestState(t, 1)
	s.Step(frame(core.ActionPause))
	dst := newRecordCanvas()
	Render(s, dst)
	if _, ok := dst.findText("PAUSED"); !ok {
		t.Error("paused overlay missing")
	}

	s = newTestState(t, 4)
	order := make([]int, len(s.Collectibles))
	for i := range order {
		order[i] = i
	}
	collectInOrder(t, s, order)
	for k := 0; k < 120; k++ {
		s.Step(core.NewInputFrame())
	}
	dst = newRecordCanvas()
	Render(s, dst)
	if _, ok := dst.findText("Quest complete!"); !ok {
		t.Error("game complete overlay missing")
	}
	if _, ok := dst.findText("Tech Lead"); !ok {
		t.Error("achievements should be listed")
	}
}

func TestRenderOnCellCanvas(t *testing.T) {
	s := newTestState(t, 1)
	screen := core.NewScreen(80, 24)
	Render(s, core.NewCellCanvas(screen, 800, 600))

	out := screen.String()
	if !strings.Contains(out, "Level 1/4") {
		t.Errorf("HUD not visible on the cell grid:\n%s", out)
	}
	if !strings.ContainsRune(out, core.FillGlyph) {
		t.Error("platforms should be rasterized as block glyphs")
	}
}
