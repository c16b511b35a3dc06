package skillquest

import (
	"image/color"
	"math/rand"

	"github.com/solarlune/resolv"

	"github.com/vovakirdan/skillquest/internal/config"
	"github.com/vovakirdan/skillquest/internal/core"
	"github.com/vovakirdan/skillquest/internal/games/skillquest/levels"
)

// Screen is the top-level mode of a run.
type Screen int

const (
	ScreenMenu Screen = iota
	ScreenPlaying
	ScreenPaused
	ScreenLevelComplete
	ScreenGameComplete
)

// String returns the screen name.
func (s Screen) String() string {
	switch s {
	case ScreenMenu:
		return "menu"
	case ScreenPlaying:
		return "playing"
	case ScreenPaused:
		return "paused"
	case ScreenLevelComplete:
		return "level_complete"
	case ScreenGameComplete:
		return "game_complete"
	default:
		return "unknown"
	}
}

// Direction is the way the player faces.
type Direction int

const (
	FacingRight Direction = iota
	FacingLeft
)

// PlayerState is the player's kinematics. X and Y are the top-left corner.
type PlayerState struct {
	X, Y      float64
	VX, VY    float64
	W, H      float64
	OnGround  bool
	Facing    Direction
	AnimFrame int // Advances every tick
	MoveTicks int // Consecutive ticks with horizontal movement
}

// Rect returns the player's bounds.
func (p PlayerState) Rect() core.RectF {
	return core.NewRectF(p.X, p.Y, p.W, p.H)
}

// Center returns the player's center point.
func (p PlayerState) Center() (float64, float64) {
	return p.X + p.W/2, p.Y + p.H/2
}

// Moving reports whether the player has horizontal velocity.
func (p PlayerState) Moving() bool {
	return p.VX != 0
}

// Platform is a solid rectangle the player can land on from above.
type Platform struct {
	Rect  core.RectF
	Color color.RGBA
	Kind  levels.PlatformKind
}

// Collectible is a pickup. X and Y are its center.
type Collectible struct {
	X, Y      float64
	Collected bool
	Kind      levels.CollectibleKind
	Points    int
	Icon      string
	Name      string
	Phase     float64 // Drives the pulse animation
}

// Particle is one fragment of a pickup burst.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Life    int
	MaxLife int
	Size    float64
	Color   color.RGBA
}

// Alpha returns the particle's opacity in [0, 1].
func (p Particle) Alpha() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return float64(p.Life) / float64(p.MaxLife)
}

// InputFlags is the per-tick input snapshot read by the physics step.
type InputFlags struct {
	Left, Right bool
	Up, Space   bool
	Escape      bool
}

// Jump reports whether either jump input is held.
func (f InputFlags) Jump() bool {
	return f.Up || f.Space
}

// Camera is the viewport offset. The playfield is a single screen, so it
// stays at zero.
type Camera struct {
	X, Y float64
}

// State is the whole simulation. It is owned by one frontend goroutine.
type State struct {
	Screen        Screen
	Level         int // 1-based, 0 before the first load
	LevelCount    int
	Player        PlayerState
	Platforms     []Platform
	Collectibles  []Collectible
	Particles     []Particle
	Input         InputFlags
	Score         int
	LevelScore    int
	Achievements  []string
	Message       string
	Camera        Camera
	SelectedLevel int
	Tick          int
	AdvanceAt     int // Tick at which the next level loads, 0 when none is pending

	pack     *levels.Pack
	cfg      config.SkillQuestConfig
	tickRate int
	rng      *rand.Rand
	space    *resolv.Space
	banner   Banner
	events   []core.Event
}

// NewState creates a state on the menu screen for pack.
func NewState(pack *levels.Pack, cfg config.SkillQuestConfig, tickRate int, seed int64) *State {
	if tickRate <= 0 {
		tickRate = 60
	}
	s := &State{
		Screen:        ScreenMenu,
		LevelCount:    pack.Count(),
		SelectedLevel: 1,
		pack:          pack,
		cfg:           cfg,
		tickRate:      tickRate,
		rng:           rand.New(rand.NewSource(seed)), //nolint:gosec // cosmetic effects only
	}
	s.resetPlayer()
	return s
}

// Config returns the configuration the state runs with.
func (s *State) Config() config.SkillQuestConfig {
	return s.cfg
}

// Pack returns the level pack.
func (s *State) Pack() *levels.Pack {
	return s.pack
}

// LevelName returns the current level's name, or empty on the menu.
func (s *State) LevelName() string {
	if s.Level < 1 || s.Level > s.pack.Count() {
		return ""
	}
	return s.pack.Levels[s.Level-1].Name
}

// LoadLevel replaces the platforms and collectibles with copies of level n,
// clears particles, puts the player back on the spawn point and shows the
// level description. An unknown level leaves the state untouched.
func (s *State) LoadLevel(n int) error {
	lvl, err := s.pack.Level(n)
	if err != nil {
		return err
	}

	platforms := make([]Platform, 0, len(lvl.Platforms))
	for _, p := range lvl.Platforms {
		c, err := core.ParseHex(p.Color)
		if err != nil {
			c, _ = core.ParseHex(levels.DefaultPlatformColor)
		}
		platforms = append(platforms, Platform{Rect: p.Rect(), Color: c, Kind: p.Kind})
	}

	collectibles := make([]Collectible, 0, len(lvl.Collectibles))
	for i, c := range lvl.Collectibles {
		collectibles = append(collectibles, Collectible{
			X:      c.X,
			Y:      c.Y,
			Kind:   c.Kind,
			Points: c.Value(),
			Icon:   c.Icon,
			Name:   c.Name,
			Phase:  float64(i) * 0.7, // Staggered start phase
		})
	}

	s.Level = n
	s.Platforms = platforms
	s.Collectibles = collectibles
	s.Particles = s.Particles[:0]
	s.LevelScore = 0
	s.AdvanceAt = 0
	s.Camera = Camera{}
	s.resetPlayer()
	s.space = buildSpace(s.cfg, s.Platforms)
	s.setMessage(lvl.Description)
	s.emit(core.Event{Kind: core.EventLevelStarted, Level: n, Name: lvl.Name, Score: s.Score})
	return nil
}

// LevelComplete reports whether every collectible in the level is collected.
// A state with no level loaded is never complete.
func (s *State) LevelComplete() bool {
	if len(s.Collectibles) == 0 {
		return false
	}
	for _, c := range s.Collectibles {
		if !c.Collected {
			return false
		}
	}
	return true
}

// CollectedCount returns how many collectibles have been picked up.
func (s *State) CollectedCount() int {
	n := 0
	for _, c := range s.Collectibles {
		if c.Collected {
			n++
		}
	}
	return n
}

// MessageAlpha returns the banner's current opacity.
func (s *State) MessageAlpha() float64 {
	if s.Message == "" {
		return 0
	}
	return s.banner.Alpha()
}

// DrainEvents returns the events emitted since the last call.
func (s *State) DrainEvents() []core.Event {
	if len(s.events) == 0 {
		return nil
	}
	out := s.events
	s.events = nil
	return out
}

func (s *State) emit(ev core.Event) {
	s.events = append(s.events, ev)
}

func (s *State) resetPlayer() {
	p := s.cfg.Player
	s.Player = PlayerState{
		X:      p.SpawnX,
		Y:      p.SpawnY,
		W:      p.Width,
		H:      p.Height,
		Facing: FacingRight,
	}
}

func (s *State) setMessage(text string) {
	s.Message = text
	s.banner.Show(
		config.Ticks(s.cfg.Timing.MessageSeconds, s.tickRate),
		config.Ticks(s.cfg.Timing.FadeSeconds, s.tickRate),
	)
}

func (s *State) ticks(seconds float64) int {
	return config.Ticks(seconds, s.tickRate)
}
