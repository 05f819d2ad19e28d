package config

import (
	_ "embed"
)

//go:embed defaults/catch.yaml
var defaultCatchYAML []byte

// DefaultCatchConfig returns the built-in tuning. It mirrors
// defaults/catch.yaml and is used when the embedded file cannot be parsed.
func DefaultCatchConfig() CatchConfig {
	return CatchConfig{
		Playfield: PlayfieldConfig{
			Width:   500,
			Height:  640,
			GroundY: 600,
		},
		Basket: BasketConfig{
			Y:      560,
			Width:  60,
			Height: 44,
			Speed:  220,
			Margin: 12,
		},
		Apples: AppleConfig{
			Size:        18,
			SpawnY:      120,
			SpawnMargin: 15,
			SpeedJitter: 40,
		},
		Difficulty: DifficultyConfig{
			InitialFallSpeed:     80,
			InitialSpawnInterval: 1.4,
			PointsPerLevel:       8,
			FallSpeedStep:        20,
			SpawnIntervalStep:    0.08,
			MinSpawnInterval:     0.6,
		},
		Session: SessionConfig{
			Lives: 3,
		},
		Input: InputConfig{
			FirstRepeatMS: 500,
			HoldTimeoutMS: 150,
		},
	}
}

// DefaultYAML returns the embedded default config file.
func DefaultYAML() []byte {
	return defaultCatchYAML
}
