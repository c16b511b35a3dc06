// Package config provides YAML-based game configuration loading and
// difficulty presets.
package config

import (
	"errors"
	"fmt"
)

// SkillQuestConfig contains all configuration for the SkillQuest platformer.
type SkillQuestConfig struct {
	Canvas    CanvasConfig    `yaml:"canvas"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Player    PlayerConfig    `yaml:"player"`
	Pickup    PickupConfig    `yaml:"pickup"`
	Particles ParticleConfig  `yaml:"particles"`
	Timing    TimingConfig    `yaml:"timing"`
	Input     InputConfig     `yaml:"input"`
	Animation AnimationConfig `yaml:"animation"`
}

// CanvasConfig defines the logical playfield size.
type CanvasConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig defines per-tick physics constants, tuned for 60 ticks/s.
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity"`
	MoveSpeed   float64 `yaml:"move_speed"`
	JumpImpulse float64 `yaml:"jump_impulse"` // Negative = up
	FloorY      float64 `yaml:"floor_y"`
}

// PlayerConfig defines the player's size and spawn point.
type PlayerConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	SpawnX float64 `yaml:"spawn_x"`
	SpawnY float64 `yaml:"spawn_y"`
}

// PickupConfig defines collectible pickup rules.
type PickupConfig struct {
	Radius float64 `yaml:"radius"` // Center-to-center pickup distance
}

// ParticleConfig defines the burst spawned on each pickup.
type ParticleConfig struct {
	Count    int     `yaml:"count"`
	Life     int     `yaml:"life"`     // Ticks
	Speed    float64 `yaml:"speed"`    // Max horizontal speed either way
	Lift     float64 `yaml:"lift"`     // Max initial upward speed
	Friction float64 `yaml:"friction"` // Horizontal velocity multiplier per tick
	Gravity  float64 `yaml:"gravity"`  // Vertical velocity increment per tick
	MinSize  float64 `yaml:"min_size"`
	MaxSize  float64 `yaml:"max_size"`
}

// TimingConfig defines wall-clock delays, converted to ticks at runtime.
type TimingConfig struct {
	AdvanceDelay   float64 `yaml:"advance_delay"`   // Seconds between level complete and next level
	MessageSeconds float64 `yaml:"message_seconds"` // How long the banner stays before fading
	FadeSeconds    float64 `yaml:"fade_seconds"`
}

// InputConfig defines terminal input emulation.
type InputConfig struct {
	// HoldTicks is how long a movement key counts as held after a press.
	// Terminals report presses only, never releases.
	HoldTicks int `yaml:"hold_ticks"`
}

// AnimationConfig defines cosmetic animation speeds.
type AnimationConfig struct {
	PhaseStep float64 `yaml:"phase_step"` // Collectible pulse phase per tick
}

// Validate checks the configuration for values the simulation cannot use.
func (c SkillQuestConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}

	positive("canvas.width", c.Canvas.Width)
	positive("canvas.height", c.Canvas.Height)
	positive("physics.move_speed", c.Physics.MoveSpeed)
	positive("player.width", c.Player.Width)
	positive("player.height", c.Player.Height)
	positive("pickup.radius", c.Pickup.Radius)
	if c.Physics.JumpImpulse >= 0 {
		errs = append(errs, fmt.Errorf("physics.jump_impulse must be negative, got %v", c.Physics.JumpImpulse))
	}
	if c.Physics.FloorY <= c.Player.Height || c.Physics.FloorY > c.Canvas.Height {
		errs = append(errs, fmt.Errorf("physics.floor_y %v must be within (player.height, canvas.height]", c.Physics.FloorY))
	}
	if c.Player.Width >= c.Canvas.Width {
		errs = append(errs, fmt.Errorf("player.width %v must be less than canvas.width", c.Player.Width))
	}
	if c.Particles.Count < 0 || c.Particles.Life <= 0 {
		errs = append(errs, errors.New("particles need count >= 0 and life > 0"))
	}
	if c.Particles.MaxSize < c.Particles.MinSize {
		errs = append(errs, errors.New("particles.max_size must be >= min_size"))
	}
	if c.Timing.AdvanceDelay < 0 {
		errs = append(errs, errors.New("timing.advance_delay must not be negative"))
	}
	if c.Input.HoldTicks < 1 {
		errs = append(errs, errors.New("input.hold_ticks must be at least 1"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid skillquest config: %w", errors.Join(errs...))
	}
	return nil
}

// Ticks converts a duration in seconds to simulation ticks at tickRate.
func Ticks(seconds float64, tickRate int) int {
	if tickRate <= 0 {
		tickRate = 60
	}
	return int(seconds*float64(tickRate) + 0.5)
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset maps a CLI string to a preset. Empty means "use config as is".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplySkillQuestPreset modifies the config based on a difficulty preset.
// Normal keeps the configured values.
func ApplySkillQuestPreset(cfg *SkillQuestConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Pickup.Radius *= 1.4
		cfg.Timing.AdvanceDelay = 1.0
	case DifficultyHard:
		cfg.Pickup.Radius *= 0.7
		cfg.Physics.MoveSpeed *= 0.8
	}
}
