package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

const marioConfigFile = "mario.yaml"

// LoadMario loads the platformer configuration.
// Search order: customPath -> $XDG_CONFIG_HOME/mario/mario.yaml ->
// ./configs/mario.yaml -> embedded default -> hardcoded default.
// Only an explicit customPath can produce an error; unreadable optional
// locations are skipped.
func LoadMario(customPath string) (MarioConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return MarioConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := ParseMario(data)
		if err != nil {
			return MarioConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range []string{userConfigPath(marioConfigFile), filepath.Join("configs", marioConfigFile)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := ParseMario(data); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := ParseMario(defaultMarioYAML); err == nil {
		return cfg, nil
	}
	return DefaultMarioConfig(), nil // Fallback to hardcoded if embed fails
}

// ParseMario decodes YAML on top of the hardcoded defaults and validates the result.
func ParseMario(data []byte) (MarioConfig, error) {
	cfg := DefaultMarioConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return MarioConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return MarioConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the per-user config file location.
func userConfigPath(filename string) string {
	if xdg.ConfigHome == "" {
		return ""
	}
	return filepath.Join(xdg.ConfigHome, "mario", filename)
}

// ApplyMarioPreset modifies the config based on a difficulty preset.
func ApplyMarioPreset(cfg *MarioConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Player.Lives = 5
		cfg.Enemies.SpeedPerLevel = 0.35
		cfg.Player.HitInvincibility = 90
	case DifficultyHard:
		cfg.Player.Lives = 2
		cfg.Difficulty.Enabled = true
		cfg.Player.HitInvincibility = 45
	}
}
