package main

import (
	"fmt"

	"github.com/vovakirdan/applecatch/internal/config"
)

// loadTuning loads the tuning from path (or the search order when empty)
// and applies the named difficulty preset.
func loadTuning(path, difficulty string) (config.CatchConfig, error) {
	preset := config.ParsePreset(difficulty)
	if difficulty != "" && preset == "" {
		return config.CatchConfig{}, fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", difficulty)
	}

	cfg, err := config.LoadCatch(path)
	if err != nil {
		return config.CatchConfig{}, err
	}
	config.ApplyPreset(&cfg, preset)

	if err := cfg.Validate(); err != nil {
		return config.CatchConfig{}, fmt.Errorf("config: preset %q produced invalid tuning: %w", preset, err)
	}
	return cfg, nil
}
