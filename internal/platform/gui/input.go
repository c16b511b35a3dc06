package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/skillquest/internal/core"
	"github.com/vovakirdan/skillquest/internal/games/skillquest"
)

// binding maps physical keys to an action. Held bindings are active every
// tick the key is down; the others fire once per press.
type binding struct {
	keys   []ebiten.Key
	action core.Action
	held   bool
}

var bindings = []binding{
	{keys: []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}, action: core.ActionLeft, held: true},
	{keys: []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}, action: core.ActionRight, held: true},
	{keys: []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}, action: core.ActionUp, held: true},
	{keys: []ebiten.Key{ebiten.KeySpace}, action: core.ActionSpace, held: true},
	{keys: []ebiten.Key{ebiten.KeyEnter, ebiten.KeyNumpadEnter}, action: core.ActionConfirm},
	{keys: []ebiten.Key{ebiten.KeyEscape}, action: core.ActionBack},
	{keys: []ebiten.Key{ebiten.KeyP}, action: core.ActionPause},
	{keys: []ebiten.Key{ebiten.KeyR}, action: core.ActionRestart},
	{keys: []ebiten.Key{ebiten.KeyQ}, action: core.ActionQuit},
	{keys: []ebiten.Key{ebiten.KeyDigit1, ebiten.KeyNumpad1}, action: core.ActionLevel1},
	{keys: []ebiten.Key{ebiten.KeyDigit2, ebiten.KeyNumpad2}, action: core.ActionLevel2},
	{keys: []ebiten.Key{ebiten.KeyDigit3, ebiten.KeyNumpad3}, action: core.ActionLevel3},
	{keys: []ebiten.Key{ebiten.KeyDigit4, ebiten.KeyNumpad4}, action: core.ActionLevel4},
	{keys: []ebiten.Key{ebiten.KeyDigit5, ebiten.KeyNumpad5}, action: core.ActionLevel5},
	{keys: []ebiten.Key{ebiten.KeyDigit6, ebiten.KeyNumpad6}, action: core.ActionLevel6},
	{keys: []ebiten.Key{ebiten.KeyDigit7, ebiten.KeyNumpad7}, action: core.ActionLevel7},
	{keys: []ebiten.Key{ebiten.KeyDigit8, ebiten.KeyNumpad8}, action: core.ActionLevel8},
	{keys: []ebiten.Key{ebiten.KeyDigit9, ebiten.KeyNumpad9}, action: core.ActionLevel9},
}

// Point is a pointer position in logical coordinates.
type Point struct {
	X, Y float64
}

// KeyReader reports key state. ebitenKeys reads the live keyboard.
type KeyReader interface {
	Pressed(k ebiten.Key) bool
	JustPressed(k ebiten.Key) bool
}

type ebitenKeys struct{}

func (ebitenKeys) Pressed(k ebiten.Key) bool     { return ebiten.IsKeyPressed(k) }
func (ebitenKeys) JustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }

// BuildFrame assembles one tick of input from key state and the pointers
// currently down on a w x h playfield. A released pointer is simply absent,
// which clears its zone actions.
func BuildFrame(keys KeyReader, pointers []Point, w, h float64) core.InputFrame {
	frame := core.NewInputFrame()
	for _, b := range bindings {
		for _, k := range b.keys {
			if (b.held && keys.Pressed(k)) || (!b.held && keys.JustPressed(k)) {
				frame.Set(b.action)
				break
			}
		}
	}
	for _, p := range pointers {
		for _, a := range skillquest.ZoneActions(p.X, p.Y, w, h) {
			frame.Set(a)
		}
	}
	return frame
}

// pointerReader collects touches and the left mouse button.
type pointerReader struct {
	touches []ebiten.TouchID
	points  []Point
}

// read returns pointer positions in Layout coordinates.
func (r *pointerReader) read() []Point {
	r.points = r.points[:0]
	r.touches = ebiten.AppendTouchIDs(r.touches[:0])
	for _, id := range r.touches {
		x, y := ebiten.TouchPosition(id)
		r.points = append(r.points, Point{X: float64(x), Y: float64(y)})
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		r.points = append(r.points, Point{X: float64(x), Y: float64(y)})
	}
	return r.points
}
