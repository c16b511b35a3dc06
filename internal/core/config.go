package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in characters (0 for desktop frontends)
	ScreenH  int   // Terminal height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic effects
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState summarizes a game for the platform layer.
type GameState struct {
	Score    int  // Current score
	Level    int  // Current level number, 0 while in a menu
	GameOver bool // Whether the run has ended
	Paused   bool // Whether the game is paused
}

// EventKind identifies something noteworthy that happened during a tick.
type EventKind int

const (
	EventLevelStarted EventKind = iota
	EventCollected
	EventAchievement
	EventLevelComplete
	EventRunComplete
)

// String returns a short name for log output.
func (k EventKind) String() string {
	switch k {
	case EventLevelStarted:
		return "level_started"
	case EventCollected:
		return "collected"
	case EventAchievement:
		return "achievement"
	case EventLevelComplete:
		return "level_complete"
	case EventRunComplete:
		return "run_complete"
	default:
		return "unknown"
	}
}

// Event is emitted by a game step for the platform to log or persist.
type Event struct {
	Kind   EventKind
	Level  int
	Name   string
	Points int
	Score  int
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}
