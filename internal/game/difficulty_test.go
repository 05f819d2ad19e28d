package game

import (
	"math"
	"testing"

	"github.com/vovakirdan/applecatch/internal/config"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestDifficultyLevelFromScore(t *testing.T) {
	tests := []struct {
		score int
		level int
	}{
		{0, 1},
		{7, 1},
		{8, 2},
		{15, 2},
		{16, 3},
		{64, 9},
	}

	d := NewDifficulty(config.DefaultCatchConfig().Difficulty)
	for _, tc := range tests {
		if got := d.TargetLevel(tc.score); got != tc.level {
			t.Errorf("TargetLevel(%d) = %d, expected %d", tc.score, got, tc.level)
		}
	}
}

func TestDifficultyNoChangeBelowBoundary(t *testing.T) {
	d := NewDifficulty(config.DefaultCatchConfig().Difficulty)
	for score := 0; score <= 7; score++ {
		if d.Update(score) {
			t.Fatalf("score %d should not level up", score)
		}
	}
	if d.Level != 1 || d.FallSpeed != 80 || d.SpawnInterval != 1.4 {
		t.Errorf("pace changed below the first boundary: %+v", d)
	}
}

func TestDifficultySecondLevelAppliesOnce(t *testing.T) {
	d := NewDifficulty(config.DefaultCatchConfig().Difficulty)

	if !d.Update(8) {
		t.Fatal("score 8 should level up")
	}
	for score := 8; score <= 15; score++ {
		if d.Update(score) {
			t.Errorf("score %d should not level up again", score)
		}
	}

	if d.Level != 2 {
		t.Errorf("Level = %d, expected 2", d.Level)
	}
	if !almostEqual(d.FallSpeed, 100) {
		t.Errorf("FallSpeed = %f, expected 100", d.FallSpeed)
	}
	if !almostEqual(d.SpawnInterval, 1.32) {
		t.Errorf("SpawnInterval = %f, expected 1.32", d.SpawnInterval)
	}
}

func TestDifficultySpawnIntervalFloor(t *testing.T) {
	d := NewDifficulty(config.DefaultCatchConfig().Difficulty)
	for score := 0; score <= 200; score++ {
		d.Update(score)
		if d.SpawnInterval < 0.6 {
			t.Fatalf("SpawnInterval %f dropped below floor at score %d", d.SpawnInterval, score)
		}
	}

	if d.Level != 26 {
		t.Errorf("Level = %d, expected 26", d.Level)
	}
	if d.SpawnInterval != 0.6 {
		t.Errorf("SpawnInterval = %f, expected floor 0.6", d.SpawnInterval)
	}
	if !almostEqual(d.FallSpeed, 80+25*20) {
		t.Errorf("FallSpeed = %f, expected %d", d.FallSpeed, 80+25*20)
	}
}

func TestDifficultyIntervalReachesFloorAtScore80(t *testing.T) {
	tests := []struct {
		score    int
		level    int
		interval float64
	}{
		{64, 9, 0.76},
		{72, 10, 0.68},
		{79, 10, 0.68},
		{80, 11, 0.6},
		{88, 12, 0.6},
	}

	d := NewDifficulty(config.DefaultCatchConfig().Difficulty)
	score := 0
	for _, tt := range tests {
		for ; score <= tt.score; score++ {
			d.Update(score)
		}
		if d.Level != tt.level {
			t.Errorf("score %d: Level = %d, expected %d", tt.score, d.Level, tt.level)
		}
		if !almostEqual(d.SpawnInterval, tt.interval) {
			t.Errorf("score %d: SpawnInterval = %f, expected %f", tt.score, d.SpawnInterval, tt.interval)
		}
	}
}

func TestDifficultyJumpAppliesSingleStep(t *testing.T) {
	d := NewDifficulty(config.DefaultCatchConfig().Difficulty)
	d.Update(64)

	if d.Level != 9 {
		t.Errorf("Level = %d, expected 9", d.Level)
	}
	if !almostEqual(d.FallSpeed, 100) {
		t.Errorf("FallSpeed = %f, expected a single +20 step", d.FallSpeed)
	}
	if !almostEqual(d.SpawnInterval, 1.32) {
		t.Errorf("SpawnInterval = %f, expected a single -0.08 step", d.SpawnInterval)
	}
}

func TestDifficultyReset(t *testing.T) {
	d := NewDifficulty(config.DefaultCatchConfig().Difficulty)
	d.Update(40)
	d.Reset()

	if d.Level != 1 || d.FallSpeed != 80 || d.SpawnInterval != 1.4 {
		t.Errorf("Reset should restore the starting pace, got %+v", d)
	}
}
