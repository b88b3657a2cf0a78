package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// LoadSnake loads Snake configuration.
// Search order: customPath -> ~/.snake/configs/snake.yaml -> ./configs/snake.yaml -> embedded default
func LoadSnake(customPath string) (SnakeConfig, error) {
	// Start from defaults so partial files only override what they set
	cfg := DefaultSnakeConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("snake.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/snake.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultSnakeYAML, &cfg); err != nil {
		return DefaultSnakeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snake", "configs", filename)
}

// Validate checks that the board can hold the starting snake with room for
// a reward and that the tick interval is positive.
func (c SnakeConfig) Validate() error {
	switch {
	case c.Board.Size < 2:
		return fmt.Errorf("%w: board size %d, need at least 2", ErrInvalid, c.Board.Size)
	case c.Board.InitialLength < 1:
		return fmt.Errorf("%w: initial length %d, need at least 1", ErrInvalid, c.Board.InitialLength)
	case c.Board.InitialLength > c.Board.Size:
		return fmt.Errorf("%w: initial length %d does not fit a row of %d", ErrInvalid, c.Board.InitialLength, c.Board.Size)
	case c.Timing.Difficulty <= 0:
		return fmt.Errorf("%w: difficulty %d, must be positive", ErrInvalid, c.Timing.Difficulty)
	case c.Timing.UnitMS <= 0:
		return fmt.Errorf("%w: unit_ms %d, must be positive", ErrInvalid, c.Timing.UnitMS)
	}
	return nil
}

// Marshal renders cfg as YAML.
func Marshal(cfg SnakeConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}
