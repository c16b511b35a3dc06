package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/skillquest/internal/core"
)

type stubGame struct{ id string }

func (g stubGame) ID() string                           { return g.id }
func (g stubGame) Title() string                        { return "Stub" }
func (g stubGame) Reset(core.RuntimeConfig)             {}
func (g stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g stubGame) Render(core.Canvas)                   {}
func (g stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register(GameInfo{ID: "test_b", Title: "B"}, func() Game { return stubGame{id: "test_b"} })
	Register(GameInfo{ID: "test_a"}, func() Game { return stubGame{id: "test_a"} })

	if !Exists("test_a") || Exists("test_missing") {
		t.Error("Exists gave the wrong answer")
	}

	g, err := Create("test_b")
	if err != nil || g.ID() != "test_b" {
		t.Fatalf("Create(test_b) = %v, %v", g, err)
	}

	if _, err := Create("test_missing"); !errors.Is(err, ErrUnknownGame) {
		t.Errorf("Create(test_missing) error = %v, want ErrUnknownGame", err)
	}

	var ids []string
	for _, info := range List() {
		ids = append(ids, info.ID)
		if info.ID == "test_a" && info.Title != "test_a" {
			t.Errorf("empty title should default to the ID, got %q", info.Title)
		}
	}
	if len(ids) < 2 || ids[0] > ids[1] {
		t.Errorf("List not sorted: %v", ids)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register(GameInfo{ID: "test_dup"}, func() Game { return stubGame{id: "test_dup"} })
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register(GameInfo{ID: "test_dup"}, func() Game { return stubGame{id: "test_dup"} })
}
