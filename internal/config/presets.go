package config

import (
	"fmt"
	"sort"
)

// Preset is a named board and speed combination.
type Preset struct {
	Name        string
	Description string
	Board       BoardConfig
	Difficulty  int
}

// presets is keyed by name. "classic" is the default 10×10 board.
var presets = map[string]Preset{
	"classic": {
		Name:        "classic",
		Description: "10x10 board, snake of 5, half-second ticks",
		Board:       BoardConfig{Size: 10, InitialLength: 5},
		Difficulty:  5,
	},
	"tiny": {
		Name:        "tiny",
		Description: "6x6 board, snake of 3, slow ticks",
		Board:       BoardConfig{Size: 6, InitialLength: 3},
		Difficulty:  6,
	},
	"large": {
		Name:        "large",
		Description: "20x20 board, snake of 5",
		Board:       BoardConfig{Size: 20, InitialLength: 5},
		Difficulty:  3,
	},
	"blitz": {
		Name:        "blitz",
		Description: "15x15 board, snake of 4, fastest ticks",
		Board:       BoardConfig{Size: 15, InitialLength: 4},
		Difficulty:  1,
	},
}

// Presets returns all presets, sorted by name.
func Presets() []Preset {
	result := make([]Preset, 0, len(presets))
	for _, p := range presets {
		result = append(result, p)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// ApplyPreset overwrites the board and difficulty of cfg with the named preset.
// Returns an error if the preset does not exist.
func ApplyPreset(cfg *SnakeConfig, name string) error {
	p, ok := presets[name]
	if !ok {
		return fmt.Errorf("config: unknown preset %q", name)
	}
	cfg.Board = p.Board
	cfg.Timing.Difficulty = p.Difficulty
	return nil
}
