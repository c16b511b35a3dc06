package skillquest

import "math"

// Snapshot contains the simulation-relevant state for replay and
// determinism checks. Cosmetic state (banner, phases) is left out.
type Snapshot struct {
	Tick       uint64
	Screen     int
	Level      int
	Score      int
	LevelScore int
	AdvanceAt  int

	// Player as float bits: X, Y, VX, VY
	PlayerData [4]uint64
	OnGround   bool
	Facing     int

	// One flag per collectible, 1 when collected
	CollectedData []int

	// Each particle is 4 values: X, Y, VX, VY bits
	ParticleCount int
	ParticleData  []uint64
}

// Snapshot returns the current state as a Snapshot.
func (s *State) Snapshot() Snapshot {
	p := s.Player
	collected := make([]int, len(s.Collectibles))
	for i, c := range s.Collectibles {
		if c.Collected {
			collected[i] = 1
		}
	}

	particles := make([]uint64, 0, len(s.Particles)*4)
	for _, pt := range s.Particles {
		particles = append(particles,
			math.Float64bits(pt.X), math.Float64bits(pt.Y),
			math.Float64bits(pt.VX), math.Float64bits(pt.VY))
	}

	return Snapshot{
		Tick:       uint64(s.Tick), //#nosec G115 -- tick count is always positive
		Screen:     int(s.Screen),
		Level:      s.Level,
		Score:      s.Score,
		LevelScore: s.LevelScore,
		AdvanceAt:  s.AdvanceAt,
		PlayerData: [4]uint64{
			math.Float64bits(p.X), math.Float64bits(p.Y),
			math.Float64bits(p.VX), math.Float64bits(p.VY),
		},
		OnGround:      p.OnGround,
		Facing:        int(p.Facing),
		CollectedData: collected,
		ParticleCount: len(s.Particles),
		ParticleData:  particles,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Screen)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.LevelScore)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.AdvanceAt)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Facing)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ParticleCount) //#nosec G115 -- hash computation
	if snap.OnGround {
		h = h*31 + 1
	}

	for _, v := range snap.PlayerData {
		h = h*31 + v
	}
	for _, v := range snap.CollectedData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.ParticleData {
		h = h*31 + v
	}

	return h
}
