// Package gui runs a game in a desktop window with Ebitengine. The game's
// logical playfield is the Layout size; Ebitengine scales it to the window.
package gui

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/skillquest/internal/core"
	"github.com/vovakirdan/skillquest/internal/platform/session"
	"github.com/vovakirdan/skillquest/internal/registry"
	"github.com/vovakirdan/skillquest/internal/storage"
)

// AppName names the per-user settings directory.
const AppName = "skillquest"

// sizer is implemented by games that report their logical playfield.
type sizer interface {
	LogicalSize() (float64, float64)
}

// levelSelector is implemented by games that can preselect a menu level.
type levelSelector interface {
	SelectLevel(n int) bool
}

// Options configure a window run.
type Options struct {
	Player     string      // Name recorded with scores
	TickRate   int         // Simulation ticks per second
	Seed       int64       // RNG seed, 0 for time-based
	Scale      float64     // Initial window scale of the playfield, 0 for 1
	Fullscreen bool        // Start fullscreen regardless of saved settings
	Logger     *log.Logger // Nil for the default logger
}

// Window adapts a registry game to ebiten.Game.
type Window struct {
	game     registry.Game
	recorder *session.Recorder
	settings *SettingsStore
	saved    Settings
	canvas   *ImageCanvas
	pointers pointerReader
	keys     KeyReader
	logger   *log.Logger
	w, h     float64
}

// NewWindow creates a window for game. settings may be nil.
func NewWindow(game registry.Game, store *storage.Store, settings *SettingsStore, opts Options) (*Window, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	w, h := 800.0, 600.0
	if sz, ok := game.(sizer); ok {
		w, h = sz.LogicalSize()
	}

	canvas, err := NewImageCanvas(w, h)
	if err != nil {
		return nil, err
	}

	saved, err := settings.Load()
	if err != nil {
		logger.Warn("could not load window settings", "error", err)
	}

	return &Window{
		game:     game,
		recorder: session.NewRecorder(game.ID(), opts.Player, session.StoreOf(store), logger),
		settings: settings,
		saved:    saved,
		canvas:   canvas,
		keys:     ebitenKeys{},
		logger:   logger,
		w:        w,
		h:        h,
	}, nil
}

// Update advances the game by one tick.
func (win *Window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		win.saved.Fullscreen = !ebiten.IsFullscreen()
		ebiten.SetFullscreen(win.saved.Fullscreen)
		win.save()
	}

	frame := BuildFrame(win.keys, win.pointers.read(), win.w, win.h)
	if frame.Has(core.ActionQuit) {
		return ebiten.Termination
	}

	result := win.game.Step(frame)
	win.recorder.Handle(result.Events)
	win.remember(result.Events)
	return nil
}

// remember keeps the last started level so the next launch preselects it.
func (win *Window) remember(events []core.Event) {
	for _, ev := range events {
		if ev.Kind == core.EventLevelStarted && ev.Level != win.saved.LastLevel {
			win.saved.LastLevel = ev.Level
			win.saved.LastGame = win.game.ID()
			win.save()
		}
	}
}

func (win *Window) save() {
	if err := win.settings.Save(win.saved); err != nil {
		win.logger.Warn("could not save window settings", "error", err)
	}
}

// Draw renders the current frame.
func (win *Window) Draw(screen *ebiten.Image) {
	win.canvas.Target(screen)
	win.game.Render(win.canvas)
}

// Layout fixes the logical screen to the playfield size.
func (win *Window) Layout(_, _ int) (int, int) {
	return int(win.w), int(win.h)
}

// Run resets game and blocks until the window closes.
func Run(game registry.Game, store *storage.Store, settings *SettingsStore, opts Options) error {
	if opts.TickRate <= 0 {
		opts.TickRate = 60
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.Scale <= 0 {
		opts.Scale = 1
	}

	win, err := NewWindow(game, store, settings, opts)
	if err != nil {
		return err
	}

	game.Reset(core.RuntimeConfig{TickRate: opts.TickRate, Seed: opts.Seed})
	if win.saved.LastLevel > 0 && win.saved.LastGame == game.ID() {
		if sel, ok := game.(levelSelector); ok {
			sel.SelectLevel(win.saved.LastLevel)
		}
	}

	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowSize(int(win.w*opts.Scale), int(win.h*opts.Scale))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(opts.TickRate)
	ebiten.SetFullscreen(opts.Fullscreen || win.saved.Fullscreen)

	win.logger.Info("window started", "game", game.ID(), "tps", opts.TickRate)
	if err := ebiten.RunGame(win); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("gui: %w", err)
	}
	return nil
}
