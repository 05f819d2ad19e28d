package game

import (
	"github.com/vovakirdan/applecatch/internal/config"
)

// Rand is the random source used for spawning. *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// Spawner emits one apple each time accumulated time reaches the interval.
type Spawner struct {
	apples config.AppleConfig
	width  float64
	rng    Rand
	acc    float64 // Seconds since the last spawn
}

// NewSpawner creates a spawner for a playfield of the given width.
func NewSpawner(apples config.AppleConfig, width float64, rng Rand) *Spawner {
	return &Spawner{
		apples: apples,
		width:  width,
		rng:    rng,
	}
}

// Reset zeroes the accumulator.
func (s *Spawner) Reset() {
	s.acc = 0
}

// SetRand swaps the random source.
func (s *Spawner) SetRand(rng Rand) {
	s.rng = rng
}

// Accumulated returns the seconds gathered toward the next spawn.
func (s *Spawner) Accumulated() float64 {
	return s.acc
}

// Advance adds dt to the accumulator. When it reaches interval the
// accumulator restarts from zero and a new apple is returned.
func (s *Spawner) Advance(dt, interval, fallSpeed float64) (Apple, bool) {
	s.acc += dt
	if s.acc < interval {
		return Apple{}, false
	}
	s.acc = 0
	return s.spawn(fallSpeed), true
}

// spawn places an apple uniformly across [margin, width-size-margin].
func (s *Spawner) spawn(fallSpeed float64) Apple {
	size := s.apples.Size
	margin := s.apples.SpawnMargin
	span := max(0, s.width-size-2*margin)

	return Apple{
		X:    s.rng.Float64()*span + margin,
		Y:    s.apples.SpawnY,
		Size: size,
		VY:   fallSpeed + s.rng.Float64()*s.apples.SpeedJitter,
	}
}
