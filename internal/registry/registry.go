// Package registry maps game IDs to factories. Game packages register their
// variants from init, so frontends and the CLI can list and create them by ID.
package registry

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/vovakirdan/skillquest/internal/core"
)

// ErrUnknownGame is returned by Create for an unregistered ID.
var ErrUnknownGame = errors.New("registry: unknown game")

// Game is one playable variant driven by a frontend. Implementations hold
// pure simulation state and never touch Bubble Tea or Ebitengine.
type Game interface {
	// ID is the stable key used by the CLI and score storage.
	ID() string
	Title() string

	// Reset starts over from the menu with the given runtime settings.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick and returns the
	// resulting state with the events emitted during the tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current frame in logical playfield coordinates;
	// the canvas maps them to terminal cells or window pixels.
	Render(dst core.Canvas)

	State() core.GameState
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a fresh game instance.
type Factory func() Game

type entry struct {
	info    GameInfo
	factory Factory
}

var (
	mu      sync.RWMutex
	entries = map[string]entry{}
)

// Register adds a game. It panics on an empty or duplicate ID, both of
// which are programming errors in an init function.
func Register(info GameInfo, f Factory) {
	if info.ID == "" || f == nil {
		panic("registry: Register needs an ID and a factory")
	}

	mu.Lock()
	defer mu.Unlock()
	if _, dup := entries[info.ID]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", info.ID))
	}
	if info.Title == "" {
		info.Title = info.ID
	}
	entries[info.ID] = entry{info: info, factory: f}
}

// List returns every registered game sorted by ID.
func List() []GameInfo {
	mu.RLock()
	out := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.info)
	}
	mu.RUnlock()

	slices.SortFunc(out, func(a, b GameInfo) int { return cmp.Compare(a.ID, b.ID) })
	return out
}

// Create returns a new instance of the game registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := entries[id]
	return ok
}
