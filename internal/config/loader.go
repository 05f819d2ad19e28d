package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFileName = "catch.yaml"

// LoadCatch loads the game tuning.
// Search order: customPath -> ~/.arcade/configs/catch.yaml -> ./configs/catch.yaml -> embedded default.
// Files are layered over the defaults, so a file only needs the keys it changes.
// A custom path that cannot be read, parsed or validated is an error; the
// other locations are skipped when broken.
func LoadCatch(customPath string) (CatchConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return CatchConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return CatchConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return CatchConfig{}, fmt.Errorf("config: invalid %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{userConfigPath(configFileName), filepath.Join("configs", configFileName)}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parse(data); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	cfg, err := parse(defaultCatchYAML)
	if err != nil {
		return DefaultCatchConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse layers YAML over the hardcoded defaults.
func parse(data []byte) (CatchConfig, error) {
	cfg := DefaultCatchConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return CatchConfig{}, err
	}
	return cfg, nil
}

// Marshal renders cfg as YAML.
func Marshal(cfg CatchConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyPreset adjusts the starting pace for a difficulty preset.
// The ramp itself (step sizes, floor) is left as configured.
func ApplyPreset(cfg *CatchConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Difficulty.InitialFallSpeed = 60
		cfg.Difficulty.InitialSpawnInterval = 1.6
	case DifficultyHard:
		cfg.Difficulty.InitialFallSpeed = 110
		cfg.Difficulty.InitialSpawnInterval = 1.1
	}
	if cfg.Difficulty.InitialSpawnInterval < cfg.Difficulty.MinSpawnInterval {
		cfg.Difficulty.InitialSpawnInterval = cfg.Difficulty.MinSpawnInterval
	}
}
