package game

import "github.com/vovakirdan/applecatch/internal/config"

// Difficulty tracks the level ramp. Level is derived from score; each time
// it advances, apples fall faster and spawn more often, down to a floor.
type Difficulty struct {
	cfg config.DifficultyConfig

	Level         int
	FallSpeed     float64 // Base vertical speed for new apples
	SpawnInterval float64 // Seconds between spawns
}

// NewDifficulty creates a controller at level 1.
func NewDifficulty(cfg config.DifficultyConfig) Difficulty {
	d := Difficulty{cfg: cfg}
	d.Reset()
	return d
}

// Reset returns to the starting pace.
func (d *Difficulty) Reset() {
	d.Level = 1
	d.FallSpeed = d.cfg.InitialFallSpeed
	d.SpawnInterval = d.cfg.InitialSpawnInterval
}

// TargetLevel is the level a score earns: one level per PointsPerLevel points.
func (d Difficulty) TargetLevel(score int) int {
	per := d.cfg.PointsPerLevel
	if per <= 0 {
		per = 1
	}
	return score/per + 1
}

// Update advances the level when score has crossed a boundary and reports
// whether it did. Crossing several boundaries at once still applies a
// single speed and interval step.
func (d *Difficulty) Update(score int) bool {
	target := d.TargetLevel(score)
	if target <= d.Level {
		return false
	}
	d.Level = target
	d.FallSpeed += d.cfg.FallSpeedStep
	d.SpawnInterval = max(d.cfg.MinSpawnInterval, d.SpawnInterval-d.cfg.SpawnIntervalStep)
	return true
}
