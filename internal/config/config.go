// Package config provides YAML-based configuration for the game: board
// dimensions, rules, and the undo policy. Defaults ship embedded in the
// binary so the game runs without any config file present.
package config

import (
	"fmt"

	"github.com/vovakirdan/tui-2048/internal/game"
)

// Config is the root of the t2048.yaml document.
type Config struct {
	Board BoardConfig `yaml:"board"`
	Rules RulesConfig `yaml:"rules"`
}

// BoardConfig defines the grid dimensions.
type BoardConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// RulesConfig defines the gameplay parameters.
type RulesConfig struct {
	// Target is the tile value that counts as a win. The classic game
	// uses 2048; any power of two works on any board size.
	Target int `yaml:"target"`

	// SpawnFourProb is the probability that a spawned tile is a 4
	// instead of a 2.
	SpawnFourProb float64 `yaml:"spawn_four_prob"`

	// UndoDepth bounds the undo history; 0 keeps it unbounded.
	UndoDepth int `yaml:"undo_depth"`
}

// Validate checks the loaded values for contradictions a file author could
// introduce.
func (c Config) Validate() error {
	if c.Board.Rows < 1 || c.Board.Cols < 1 {
		return fmt.Errorf("config: board must be at least 1x1, got %dx%d", c.Board.Rows, c.Board.Cols)
	}
	if c.Rules.Target < 2 || c.Rules.Target&(c.Rules.Target-1) != 0 {
		return fmt.Errorf("config: target %d must be a power of two >= 2", c.Rules.Target)
	}
	if c.Rules.SpawnFourProb < 0 || c.Rules.SpawnFourProb > 1 {
		return fmt.Errorf("config: spawn_four_prob %v must be within [0, 1]", c.Rules.SpawnFourProb)
	}
	if c.Rules.UndoDepth < 0 {
		return fmt.Errorf("config: undo_depth %d must not be negative", c.Rules.UndoDepth)
	}
	return nil
}

// GameConfig converts the file representation into the session config.
func (c Config) GameConfig() game.Config {
	return game.Config{
		Rows:          c.Board.Rows,
		Cols:          c.Board.Cols,
		Target:        c.Rules.Target,
		SpawnFourProb: c.Rules.SpawnFourProb,
		UndoDepth:     c.Rules.UndoDepth,
	}
}
