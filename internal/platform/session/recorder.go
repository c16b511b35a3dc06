// Package session turns game events into log lines and persisted results.
// Every frontend owns one Recorder per running game.
package session

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skillquest/internal/core"
	"github.com/vovakirdan/skillquest/internal/storage"
)

// ResultStore persists finished runs and unlocked achievements.
// *storage.Store implements it.
type ResultStore interface {
	SaveScore(gameID, player string, score, levelReached int) (int64, error)
	UnlockAchievements(gameID, player string, names ...string) (int, error)
}

// StoreOf returns s as a ResultStore, or nil when s is nil so a missing
// database is never called.
func StoreOf(s *storage.Store) ResultStore {
	if s == nil {
		return nil
	}
	return s
}

// Recorder logs events for one game and persists run results.
type Recorder struct {
	gameID string
	player string
	store  ResultStore
	logger *log.Logger
}

// NewRecorder creates a recorder. store and logger may be nil.
func NewRecorder(gameID, player string, store ResultStore, logger *log.Logger) *Recorder {
	if logger == nil {
		logger = log.Default()
	}
	return &Recorder{
		gameID: gameID,
		player: player,
		store:  store,
		logger: logger.With("game", gameID, "player", player),
	}
}

// Handle processes the events emitted by one step.
func (r *Recorder) Handle(events []core.Event) {
	for _, ev := range events {
		r.handle(ev)
	}
}

func (r *Recorder) handle(ev core.Event) {
	switch ev.Kind {
	case core.EventLevelStarted:
		r.logger.Info("level started", "level", ev.Level, "name", ev.Name)

	case core.EventCollected:
		r.logger.Debug("collected", "level", ev.Level, "name", ev.Name, "points", ev.Points, "score", ev.Score)

	case core.EventAchievement:
		r.logger.Info("achievement unlocked", "name", ev.Name)
		if r.store != nil {
			if _, err := r.store.UnlockAchievements(r.gameID, r.player, ev.Name); err != nil {
				r.logger.Warn("could not save achievement", "name", ev.Name, "error", err)
			}
		}

	case core.EventLevelComplete:
		r.logger.Info("level complete", "level", ev.Level, "name", ev.Name, "level_score", ev.Points, "score", ev.Score)

	case core.EventRunComplete:
		r.logger.Info("run finished", "score", ev.Score, "level", ev.Level)
		if r.store != nil && ev.Score > 0 {
			if _, err := r.store.SaveScore(r.gameID, r.player, ev.Score, ev.Level); err != nil {
				r.logger.Warn("could not save score", "score", ev.Score, "error", err)
			}
		}
	}
}
