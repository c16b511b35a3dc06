// Package levels provides level data and level pack loading for SkillQuest.
// The game package depends on levels but levels does not depend on the game.
package levels

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/skillquest/internal/core"
)

// Playfield bounds every level is authored against.
const (
	PlayfieldWidth  = 800
	PlayfieldHeight = 600
)

// DefaultPlatformColor is used when a platform does not set its own color.
const DefaultPlatformColor = "#4a4e69"

var (
	// ErrUnknownLevel is returned for a level number outside the pack.
	ErrUnknownLevel = errors.New("levels: unknown level")
	// ErrEmptyPack is returned when a pack holds no levels.
	ErrEmptyPack = errors.New("levels: pack has no levels")
)

// PlatformKind tags a platform's behavior. Only normal behavior exists;
// moving and disappearing platforms are parsed and treated as normal.
type PlatformKind string

const (
	PlatformNormal       PlatformKind = "normal"
	PlatformMoving       PlatformKind = "moving"
	PlatformDisappearing PlatformKind = "disappearing"
)

// ParsePlatformKind maps a file value to a kind. Empty means normal.
func ParsePlatformKind(s string) (PlatformKind, error) {
	switch k := PlatformKind(strings.ToLower(strings.TrimSpace(s))); k {
	case "":
		return PlatformNormal, nil
	case PlatformNormal, PlatformMoving, PlatformDisappearing:
		return k, nil
	default:
		return "", fmt.Errorf("unknown platform kind %q", s)
	}
}

// CollectibleKind drives a pickup's color, points and message.
type CollectibleKind string

const (
	KindSkill       CollectibleKind = "skill"
	KindAchievement CollectibleKind = "achievement"
	KindBonus       CollectibleKind = "bonus"
)

// ParseCollectibleKind maps a file value to a kind.
func ParseCollectibleKind(s string) (CollectibleKind, error) {
	switch k := CollectibleKind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindSkill, KindAchievement, KindBonus:
		return k, nil
	default:
		return "", fmt.Errorf("unknown collectible kind %q", s)
	}
}

// DefaultPoints returns the value of a pickup that does not set its own.
func (k CollectibleKind) DefaultPoints() int {
	switch k {
	case KindAchievement:
		return 25
	case KindBonus:
		return 50
	default:
		return 10
	}
}

// PlatformSpec is an authored platform rectangle.
type PlatformSpec struct {
	X, Y, W, H float64
	Color      string
	Kind       PlatformKind
}

// Rect returns the platform's bounds.
func (p PlatformSpec) Rect() core.RectF {
	return core.NewRectF(p.X, p.Y, p.W, p.H)
}

// CollectibleSpec is an authored pickup. X and Y are its center.
type CollectibleSpec struct {
	X, Y   float64
	Kind   CollectibleKind
	Points int
	Icon   string
	Name   string
}

// Value returns the points the pickup awards.
func (c CollectibleSpec) Value() int {
	if c.Points > 0 {
		return c.Points
	}
	return c.Kind.DefaultPoints()
}

// Level is one playable screen.
type Level struct {
	Number       int
	Name         string
	Description  string
	Platforms    []PlatformSpec
	Collectibles []CollectibleSpec
}

// Clone returns a deep copy of the level.
func (l Level) Clone() Level {
	out := l
	out.Platforms = append([]PlatformSpec(nil), l.Platforms...)
	out.Collectibles = append([]CollectibleSpec(nil), l.Collectibles...)
	return out
}

// TotalPoints returns the sum of every pickup's value.
func (l Level) TotalPoints() int {
	total := 0
	for _, c := range l.Collectibles {
		total += c.Value()
	}
	return total
}

// Pack is an ordered set of levels, numbered from 1.
type Pack struct {
	Name   string
	Levels []Level
}

// Count returns the number of levels.
func (p *Pack) Count() int {
	return len(p.Levels)
}

// Level returns a deep copy of level n (1-based).
func (p *Pack) Level(n int) (Level, error) {
	if n < 1 || n > len(p.Levels) {
		return Level{}, fmt.Errorf("%w: %d (pack %q has %d)", ErrUnknownLevel, n, p.Name, len(p.Levels))
	}
	return p.Levels[n-1].Clone(), nil
}

// Clone returns a deep copy of the pack.
func (p *Pack) Clone() *Pack {
	out := &Pack{Name: p.Name, Levels: make([]Level, len(p.Levels))}
	for i, l := range p.Levels {
		out.Levels[i] = l.Clone()
	}
	return out
}

// Validate reports every problem in the pack as one joined error.
func Validate(p *Pack) error {
	if p == nil || len(p.Levels) == 0 {
		return ErrEmptyPack
	}

	var errs []error
	for i, l := range p.Levels {
		where := fmt.Sprintf("level %d (%s)", i+1, l.Name)
		if l.Number != 0 && l.Number != i+1 {
			errs = append(errs, fmt.Errorf("%s: number %d does not match position %d", where, l.Number, i+1))
		}
		if len(l.Collectibles) == 0 {
			errs = append(errs, fmt.Errorf("%s: no collectibles", where))
		}
		for j, pl := range l.Platforms {
			if pl.W <= 0 || pl.H <= 0 {
				errs = append(errs, fmt.Errorf("%s: platform %d has size %vx%v", where, j, pl.W, pl.H))
			}
			if _, err := ParsePlatformKind(string(pl.Kind)); err != nil {
				errs = append(errs, fmt.Errorf("%s: platform %d: %w", where, j, err))
			}
			if pl.Color != "" {
				if _, err := core.ParseHex(pl.Color); err != nil {
					errs = append(errs, fmt.Errorf("%s: platform %d: %w", where, j, err))
				}
			}
		}
		for j, c := range l.Collectibles {
			if c.X < 0 || c.X > PlayfieldWidth || c.Y < 0 || c.Y > PlayfieldHeight {
				errs = append(errs, fmt.Errorf("%s: collectible %d (%s) at (%v,%v) is outside the playfield", where, j, c.Name, c.X, c.Y))
			}
			if _, err := ParseCollectibleKind(string(c.Kind)); err != nil {
				errs = append(errs, fmt.Errorf("%s: collectible %d: %w", where, j, err))
			}
			if c.Points < 0 {
				errs = append(errs, fmt.Errorf("%s: collectible %d has negative points", where, j))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("levels: invalid pack %q: %w", p.Name, errors.Join(errs...))
	}
	return nil
}
