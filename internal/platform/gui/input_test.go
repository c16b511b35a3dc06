package gui

import (
	"image/color"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/skillquest/internal/core"
)

// fakeKeys reports a fixed set of held and just-pressed keys.
type fakeKeys struct {
	down map[ebiten.Key]bool
	just map[ebiten.Key]bool
}

func (f fakeKeys) Pressed(k ebiten.Key) bool     { return f.down[k] }
func (f fakeKeys) JustPressed(k ebiten.Key) bool { return f.just[k] }

func keysDown(keys ...ebiten.Key) fakeKeys {
	f := fakeKeys{down: map[ebiten.Key]bool{}, just: map[ebiten.Key]bool{}}
	for _, k := range keys {
		f.down[k] = true
	}
	return f
}

func TestBuildFrameHeldKeys(t *testing.T) {
	tests := []struct {
		name string
		keys []ebiten.Key
		want []core.Action
	}{
		{"arrow left", []ebiten.Key{ebiten.KeyArrowLeft}, []core.Action{core.ActionLeft}},
		{"wasd", []ebiten.Key{ebiten.KeyD, ebiten.KeyW}, []core.Action{core.ActionRight, core.ActionUp}},
		{"space", []ebiten.Key{ebiten.KeySpace}, []core.Action{core.ActionSpace}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame := BuildFrame(keysDown(tt.keys...), nil, 800, 600)
			for _, a := range tt.want {
				if !frame.Has(a) {
					t.Errorf("frame missing %s", a)
				}
			}
		})
	}
}

func TestBuildFramePulseNeedsFreshPress(t *testing.T) {
	held := keysDown(ebiten.KeyEnter, ebiten.KeyP, ebiten.KeyDigit3)
	frame := BuildFrame(held, nil, 800, 600)
	for _, a := range []core.Action{core.ActionConfirm, core.ActionPause, core.ActionLevel3} {
		if frame.Has(a) {
			t.Errorf("held key should not repeat %s", a)
		}
	}

	held.just[ebiten.KeyNumpad3] = true
	held.just[ebiten.KeyEscape] = true
	frame = BuildFrame(held, nil, 800, 600)
	if !frame.Has(core.ActionLevel3) || !frame.Has(core.ActionBack) {
		t.Error("fresh presses should fire their actions")
	}
}

func TestBuildFramePointerZones(t *testing.T) {
	tests := []struct {
		name string
		at   Point
		want core.Action
	}{
		{"bottom left", Point{X: 50, Y: 550}, core.ActionLeft},
		{"bottom right", Point{X: 750, Y: 550}, core.ActionRight},
		{"top half", Point{X: 400, Y: 100}, core.ActionUp},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame := BuildFrame(keysDown(), []Point{tt.at}, 800, 600)
			if !frame.Has(tt.want) {
				t.Errorf("pointer at %+v should press %s", tt.at, tt.want)
			}
		})
	}

	frame := BuildFrame(keysDown(), nil, 800, 600)
	for _, a := range []core.Action{core.ActionLeft, core.ActionRight, core.ActionUp} {
		if frame.Has(a) {
			t.Errorf("no pointer should press nothing, got %s", a)
		}
	}
}

func TestNRGBAKeepsStraightAlpha(t *testing.T) {
	c := nrgba(core.WithAlpha(color.RGBA{R: 0x33, G: 0x66, B: 0x99, A: 0xff}, 0.5))
	if c.R != 0x33 || c.G != 0x66 || c.B != 0x99 || c.A != 127 {
		t.Errorf("nrgba = %+v", c)
	}
}
