package main

import (
	"fmt"

	"github.com/vovakirdan/gridsnake/internal/config"
	"github.com/vovakirdan/gridsnake/internal/core"
)

// loadSettings resolves the effective config: file search order first,
// then --preset, then the individual flag overrides.
func loadSettings() (config.SnakeConfig, error) {
	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return config.SnakeConfig{}, fmt.Errorf("cannot load config: %w", err)
	}

	if flagPreset != "" {
		if err := config.ApplyPreset(&cfg, flagPreset); err != nil {
			return config.SnakeConfig{}, err
		}
	}

	config.Overrides{
		Size:          flagSize,
		InitialLength: flagLength,
		Difficulty:    flagDifficulty,
		Seed:          flagSeed,
	}.Apply(&cfg)

	if err := cfg.Validate(); err != nil {
		return config.SnakeConfig{}, err
	}
	return cfg, nil
}

// runtimeConfig turns a loaded config into what the game runs with.
func runtimeConfig(cfg config.SnakeConfig, width, height int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:      width,
		ScreenH:      height,
		BoardSize:    cfg.Board.Size,
		SnakeLength:  cfg.Board.InitialLength,
		TickInterval: cfg.TickInterval(),
		Seed:         cfg.Seed,
	}
}
