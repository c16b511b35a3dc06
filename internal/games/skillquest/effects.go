package skillquest

import (
	"image/color"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/vovakirdan/skillquest/internal/games/skillquest/levels"
)

// Burst colors by collectible kind.
var (
	ColorSkill       = color.RGBA{0x4e, 0xcd, 0xc4, 0xff}
	ColorAchievement = color.RGBA{0xff, 0xd7, 0x00, 0xff}
	ColorBonus       = color.RGBA{0xff, 0x6b, 0x6b, 0xff}
)

// KindColor returns the color used for a collectible kind.
func KindColor(k levels.CollectibleKind) color.RGBA {
	switch k {
	case levels.KindAchievement:
		return ColorAchievement
	case levels.KindBonus:
		return ColorBonus
	default:
		return ColorSkill
	}
}

// spawnBurst adds the pickup particles at (x, y).
func (s *State) spawnBurst(x, y float64, c color.RGBA) {
	pc := s.cfg.Particles
	for n := 0; n < pc.Count; n++ {
		s.Particles = append(s.Particles, Particle{
			X:       x,
			Y:       y,
			VX:      (s.rng.Float64()*2 - 1) * pc.Speed,
			VY:      -s.rng.Float64() * pc.Lift,
			Life:    pc.Life,
			MaxLife: pc.Life,
			Size:    pc.MinSize + s.rng.Float64()*(pc.MaxSize-pc.MinSize),
			Color:   c,
		})
	}
}

// updateParticles advances every particle and drops the expired ones in place.
func (s *State) updateParticles() {
	pc := s.cfg.Particles
	alive := s.Particles[:0]
	for _, p := range s.Particles {
		p.X += p.VX
		p.Y += p.VY
		p.VX *= pc.Friction
		p.VY += pc.Gravity
		p.Life--
		if p.Life > 0 {
			alive = append(alive, p)
		}
	}
	s.Particles = alive
}

// Banner tracks the message opacity: fully visible for a hold period, then
// faded out by a tween.
type Banner struct {
	hold  int
	fade  int
	tween *gween.Tween
	alpha float32
}

// Show restarts the banner at full opacity.
func (b *Banner) Show(holdTicks, fadeTicks int) {
	b.hold = holdTicks
	b.fade = fadeTicks
	b.tween = nil
	b.alpha = 1
}

// Update advances the banner by one tick.
func (b *Banner) Update() {
	if b.alpha <= 0 {
		return
	}
	if b.hold > 0 {
		b.hold--
		return
	}
	if b.fade <= 0 {
		b.alpha = 0
		return
	}
	if b.tween == nil {
		b.tween = gween.New(1, 0, float32(b.fade), ease.OutQuad)
	}
	alpha, done := b.tween.Update(1)
	b.alpha = alpha
	if done {
		b.alpha = 0
	}
}

// Alpha returns the banner opacity in [0, 1].
func (b *Banner) Alpha() float64 {
	switch {
	case b.alpha <= 0:
		return 0
	case b.alpha >= 1:
		return 1
	default:
		return float64(b.alpha)
	}
}

// Visible reports whether the banner should be drawn.
func (b *Banner) Visible() bool {
	return b.alpha > 0
}
