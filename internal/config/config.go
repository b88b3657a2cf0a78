// Package config provides YAML-based game configuration loading and
// tick timing for the snake game.
package config

// SnakeConfig contains all configuration for the Snake game.
type SnakeConfig struct {
	Board  BoardConfig  `yaml:"board"`
	Timing TimingConfig `yaml:"timing"`
	Seed   int64        `yaml:"seed"`
}

// BoardConfig defines the playing field.
type BoardConfig struct {
	Size          int `yaml:"size"`
	InitialLength int `yaml:"initial_length"`
}

// TimingConfig defines the fixed tick interval.
type TimingConfig struct {
	Difficulty int `yaml:"difficulty"` // multiplier on UnitMS; larger means slower
	UnitMS     int `yaml:"unit_ms"`
}

// Overrides holds command-line values that replace loaded settings.
// Zero values leave the loaded setting alone.
type Overrides struct {
	Size          int
	InitialLength int
	Difficulty    int
	Seed          int64
}

// Apply copies every non-zero override onto cfg.
func (o Overrides) Apply(cfg *SnakeConfig) {
	if o.Size != 0 {
		cfg.Board.Size = o.Size
	}
	if o.InitialLength != 0 {
		cfg.Board.InitialLength = o.InitialLength
	}
	if o.Difficulty != 0 {
		cfg.Timing.Difficulty = o.Difficulty
	}
	if o.Seed != 0 {
		cfg.Seed = o.Seed
	}
}
