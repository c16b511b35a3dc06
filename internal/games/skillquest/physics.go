package skillquest

import (
	"fmt"
	"sort"

	"github.com/solarlune/resolv"

	"github.com/vovakirdan/skillquest/internal/config"
	"github.com/vovakirdan/skillquest/internal/core"
	"github.com/vovakirdan/skillquest/internal/games/skillquest/levels"
)

// Resolv tags.
const (
	tagPlatform = "platform"
	tagPlayer   = "player"
)

// Broad phase cell size in playfield units.
const spaceCell = 16

// buildSpace indexes the platforms in a spatial hash. Each platform object
// carries its index into platforms as Data.
func buildSpace(cfg config.SkillQuestConfig, platforms []Platform) *resolv.Space {
	space := resolv.NewSpace(int(cfg.Canvas.Width), int(cfg.Canvas.Height), spaceCell, spaceCell)
	for i, p := range platforms {
		obj := resolv.NewObject(p.Rect.X, p.Rect.Y, p.Rect.W, p.Rect.H, tagPlatform)
		obj.SetShape(resolv.NewRectangle(0, 0, p.Rect.W, p.Rect.H))
		obj.Data = i
		space.Add(obj)
	}
	return space
}

// platformCandidates returns indices of platforms near the player's rect,
// in ascending order. Candidates still need an exact overlap test.
func (s *State) platformCandidates(r core.RectF) []int {
	if s.space == nil {
		return nil
	}

	// Resolv maps an object to cells up to (x+w-1, y+h-1); grow the probe so
	// sub-unit overlaps on a cell boundary are still found.
	probe := resolv.NewObject(r.X-1, r.Y-1, r.W+2, r.H+2, tagPlayer)
	s.space.Add(probe)
	defer s.space.Remove(probe)

	check := probe.Check(0, 0, tagPlatform)
	if check == nil {
		return nil
	}

	seen := make(map[int]bool)
	var out []int
	for _, obj := range check.ObjectsByTags(tagPlatform) {
		idx, ok := obj.Data.(int)
		if !ok || seen[idx] {
			continue
		}
		seen[idx] = true
		out = append(out, idx)
	}
	sort.Ints(out)
	return out
}

// stepPhysics runs one playing tick of movement, collision, pickups and
// particles, in that order.
func (s *State) stepPhysics(in InputFlags) {
	ph := s.cfg.Physics
	p := &s.Player

	// Gravity
	p.VY += ph.Gravity

	// Horizontal. Right is applied last so it wins when both are held.
	p.VX = 0
	if in.Left {
		p.VX = -ph.MoveSpeed
		p.Facing = FacingLeft
	}
	if in.Right {
		p.VX = ph.MoveSpeed
		p.Facing = FacingRight
	}

	// Jump
	if in.Jump() && p.OnGround {
		p.VY = ph.JumpImpulse
		p.OnGround = false
	}

	// Integrate
	p.X += p.VX
	p.Y += p.VY
	p.X = core.ClampF(p.X, 0, s.cfg.Canvas.Width-p.W)

	// Land on platforms from above. Undersides and sides do not collide.
	p.OnGround = false
	for _, idx := range s.platformCandidates(p.Rect()) {
		pr := s.Platforms[idx].Rect
		if !p.Rect().Overlaps(pr) {
			continue
		}
		if p.VY > 0 && p.Y < pr.Y {
			p.Y = pr.Y - p.H
			p.VY = 0
			p.OnGround = true
		}
	}

	// Floor
	if p.Y+p.H > ph.FloorY {
		p.Y = ph.FloorY - p.H
		p.VY = 0
		p.OnGround = true
	}

	// Animation counters
	if p.Moving() {
		p.MoveTicks++
	} else {
		p.MoveTicks = 0
	}
	p.AnimFrame++
	for i := range s.Collectibles {
		s.Collectibles[i].Phase += s.cfg.Animation.PhaseStep
	}

	s.collect()
	s.updateParticles()
}

// collect picks up every uncollected collectible within the pickup radius of
// the player's center and schedules the level advance once all are taken.
func (s *State) collect() {
	px, py := s.Player.Center()
	picked := false

	for i := range s.Collectibles {
		c := &s.Collectibles[i]
		if c.Collected || core.Distance(px, py, c.X, c.Y) > s.cfg.Pickup.Radius {
			continue
		}

		c.Collected = true
		picked = true
		s.Score += c.Points
		s.LevelScore += c.Points
		s.spawnBurst(c.X, c.Y, KindColor(c.Kind))
		s.setMessage(pickupMessage(*c))
		s.emit(core.Event{Kind: core.EventCollected, Level: s.Level, Name: c.Name, Points: c.Points, Score: s.Score})

		if c.Kind == levels.KindAchievement {
			s.Achievements = append(s.Achievements, c.Name)
			s.emit(core.Event{Kind: core.EventAchievement, Level: s.Level, Name: c.Name, Score: s.Score})
		}
	}

	if picked && s.LevelComplete() && s.AdvanceAt == 0 {
		s.AdvanceAt = s.Tick + s.ticks(s.cfg.Timing.AdvanceDelay)
		s.setMessage(fmt.Sprintf("%s complete! +%d", s.LevelName(), s.LevelScore))
		s.emit(core.Event{Kind: core.EventLevelComplete, Level: s.Level, Name: s.LevelName(), Points: s.LevelScore, Score: s.Score})
	}
}

// pickupMessage returns the banner text for a pickup.
func pickupMessage(c Collectible) string {
	switch c.Kind {
	case levels.KindAchievement:
		return fmt.Sprintf("Achievement unlocked: %s! +%d", c.Name, c.Points)
	case levels.KindBonus:
		return fmt.Sprintf("Bonus: %s! +%d", c.Name, c.Points)
	default:
		return fmt.Sprintf("Skill learned: %s! +%d", c.Name, c.Points)
	}
}
