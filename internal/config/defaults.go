package config

import (
	_ "embed"
)

//go:embed defaults/skillquest.yaml
var defaultSkillQuestYAML []byte

// DefaultSkillQuestConfig returns the default SkillQuest configuration.
func DefaultSkillQuestConfig() SkillQuestConfig {
	return SkillQuestConfig{
		Canvas: CanvasConfig{
			Width:  800,
			Height: 600,
		},
		Physics: PhysicsConfig{
			Gravity:     0.8,
			MoveSpeed:   5,
			JumpImpulse: -15,
			FloorY:      550,
		},
		Player: PlayerConfig{
			Width:  32,
			Height: 32,
			SpawnX: 100,
			SpawnY: 450,
		},
		Pickup: PickupConfig{
			Radius: 25,
		},
		Particles: ParticleConfig{
			Count:    5,
			Life:     30,
			Speed:    4,
			Lift:     6,
			Friction: 0.95,
			Gravity:  0.2,
			MinSize:  2,
			MaxSize:  5,
		},
		Timing: TimingConfig{
			AdvanceDelay:   1.5,
			MessageSeconds: 3,
			FadeSeconds:    0.5,
		},
		Input: InputConfig{
			HoldTicks: 8,
		},
		Animation: AnimationConfig{
			PhaseStep: 0.1,
		},
	}
}
