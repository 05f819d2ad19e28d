package game

import "math"

// Snapshot is a flat copy of the session for determinism checks and
// debugging. Apples are flattened as X, Y, Size, VY quadruples.
type Snapshot struct {
	Tick          uint64
	Phase         int
	Score         int
	Lives         int
	Level         int
	FallSpeed     float64
	SpawnInterval float64
	SpawnAcc      float64
	BasketX       float64
	Direction     int
	AppleCount    int
	AppleData     []float64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	apples := g.orchard.Apples()
	data := make([]float64, 0, len(apples)*4)
	for _, a := range apples {
		data = append(data, a.X, a.Y, a.Size, a.VY)
	}

	return Snapshot{
		Tick:          g.tickCount,
		Phase:         int(g.phase),
		Score:         g.score,
		Lives:         g.lives,
		Level:         g.difficulty.Level,
		FallSpeed:     g.difficulty.FallSpeed,
		SpawnInterval: g.difficulty.SpawnInterval,
		SpawnAcc:      g.spawner.Accumulated(),
		BasketX:       g.basket.X,
		Direction:     g.direction,
		AppleCount:    g.orchard.Len(),
		AppleData:     data,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Phase)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Direction)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.AppleCount) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.FallSpeed)
	h = h*31 + math.Float64bits(snap.SpawnInterval)
	h = h*31 + math.Float64bits(snap.SpawnAcc)
	h = h*31 + math.Float64bits(snap.BasketX)

	for _, v := range snap.AppleData {
		h = h*31 + math.Float64bits(v)
	}

	return h
}
