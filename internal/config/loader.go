package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const fileName = "breakout.yaml"

// Load loads and validates the breakout configuration.
// Search order: customPath -> ~/.arcade/configs/breakout.yaml -> ./configs/breakout.yaml -> embedded default
//
// Documents are decoded over the built-in defaults, so a file only needs
// the keys it changes.
func Load(customPath string) (Breakout, error) {
	cfg, err := load(customPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func load(customPath string) (Breakout, error) {
	// Try custom path first
	if customPath != "" {
		return LoadFile(customPath)
	}

	// Try user config directory
	if userCfgPath := userConfigPath(fileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", fileName)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultBreakoutYAML)
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// LoadFile reads a single configuration file without validating it.
func LoadFile(path string) (Breakout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Breakout{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes a YAML document over the built-in defaults.
func Parse(data []byte) (Breakout, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg Breakout) ([]byte, error) {
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

// ApplyPreset adjusts lives, paddle width and ball speed for a preset.
// An empty preset is the same as normal. The result is validated; on any
// error cfg is left unchanged.
func ApplyPreset(cfg *Breakout, preset Preset) error {
	next := *cfg
	switch preset {
	case "", PresetNormal:
	case PresetEasy:
		next.Session.Lives = 5
		next.Paddle.Width *= 1.25
		next.Ball.Speed *= 0.85
	case PresetHard:
		next.Session.Lives = 2
		next.Paddle.Width *= 0.75
		next.Ball.Speed *= 1.25
	default:
		return fmt.Errorf("config: unknown preset %q (want easy, normal or hard): %w", preset, ErrInvalid)
	}
	if err := next.Validate(); err != nil {
		return fmt.Errorf("config: preset %q: %w", preset, err)
	}
	*cfg = next
	return nil
}
