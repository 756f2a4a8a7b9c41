package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadArkanoid loads Arkanoid configuration.
// Search order: customPath -> ~/.arcade/configs/arkanoid.yaml -> ./configs/arkanoid.yaml -> embedded default
//
// Files are decoded on top of the defaults, so a partial file only overrides
// the keys it names.
func LoadArkanoid(customPath string) (ArkanoidConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultArkanoidConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseArkanoid(data)
		if err != nil {
			return DefaultArkanoidConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("arkanoid.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseArkanoid(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "arkanoid.yaml")); err == nil {
		if cfg, err := parseArkanoid(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseArkanoid(defaultArkanoidYAML)
	if err != nil {
		return DefaultArkanoidConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseArkanoid decodes YAML over the hard-coded defaults and validates the result.
func parseArkanoid(data []byte) (ArkanoidConfig, error) {
	cfg := DefaultArkanoidConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyArkanoidPreset modifies the config based on a difficulty preset.
// Normal and fixed keep the loaded values.
func ApplyArkanoidPreset(cfg *ArkanoidConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Sizes.Paddle.Width = 240
		cfg.Physics.BallVelocity = 12
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Sizes.Paddle.Width = 140
		cfg.Physics.BallVelocity = 19
	}
}
