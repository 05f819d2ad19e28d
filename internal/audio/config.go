package audio

import (
	"os"
	"strconv"
)

// Environment variables read by LoadConfig.
const (
	EnvEnabled = "APPLECATCH_AUDIO_ENABLED"
	EnvVolume  = "APPLECATCH_VOLUME"
)

// Config controls the cue player.
type Config struct {
	Enabled    bool
	Volume     float64 // 0.0-1.0
	SampleRate int
}

// DefaultConfig returns audio on at a moderate volume.
func DefaultConfig() Config {
	return Config{
		Enabled:    true,
		Volume:     0.5,
		SampleRate: 44100,
	}
}

// LoadConfig applies environment overrides to the defaults.
// Unparseable values are ignored; volume is given as 0-100 and clamped.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if enabled := os.Getenv(EnvEnabled); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	if volume := os.Getenv(EnvVolume); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.Volume = min(1, max(0, float64(val)/100.0))
		}
	}

	return cfg
}
