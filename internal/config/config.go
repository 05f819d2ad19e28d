// Package config provides YAML-based tuning for the game and the
// difficulty presets exposed on the command line.
package config

// CatchConfig contains all tuning for Apple Catch.
// Distances are playfield units, speeds are units per second,
// intervals are seconds.
type CatchConfig struct {
	Playfield  PlayfieldConfig  `yaml:"playfield"`
	Basket     BasketConfig     `yaml:"basket"`
	Apples     AppleConfig      `yaml:"apples"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Session    SessionConfig    `yaml:"session"`
	Input      InputConfig      `yaml:"input"`
}

// PlayfieldConfig describes the logical play area.
type PlayfieldConfig struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	GroundY float64 `yaml:"ground_y"` // Apples whose bottom edge reaches this line are missed
}

// BasketConfig describes the player-controlled basket.
type BasketConfig struct {
	Y      float64 `yaml:"y"` // Fixed top edge
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`
	Margin float64 `yaml:"margin"` // Gap kept from both playfield edges
}

// AppleConfig describes spawned apples.
type AppleConfig struct {
	Size        float64 `yaml:"size"`
	SpawnY      float64 `yaml:"spawn_y"`
	SpawnMargin float64 `yaml:"spawn_margin"`
	SpeedJitter float64 `yaml:"speed_jitter"` // Extra fall speed drawn from [0, jitter)
}

// DifficultyConfig defines the stepped level ramp.
type DifficultyConfig struct {
	InitialFallSpeed     float64 `yaml:"initial_fall_speed"`
	InitialSpawnInterval float64 `yaml:"initial_spawn_interval"`
	PointsPerLevel       int     `yaml:"points_per_level"`
	FallSpeedStep        float64 `yaml:"fall_speed_step"`
	SpawnIntervalStep    float64 `yaml:"spawn_interval_step"`
	MinSpawnInterval     float64 `yaml:"min_spawn_interval"`
}

// SessionConfig holds per-session rules.
type SessionConfig struct {
	Lives int `yaml:"lives"`
}

// InputConfig tunes how terminal input is turned into held keys.
type InputConfig struct {
	// FirstRepeatMS is how long a freshly pressed direction key counts as
	// held while waiting for the keyboard's first auto-repeat.
	FirstRepeatMS int `yaml:"first_repeat_ms"`
	// HoldTimeoutMS is how long a repeating direction key counts as held
	// after its last auto-repeat.
	HoldTimeoutMS int `yaml:"hold_timeout_ms"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI value into a preset.
// Unknown or empty values yield "" (use the config as loaded).
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s)
	default:
		return ""
	}
}
