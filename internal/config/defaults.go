package config

import (
	_ "embed"
)

//go:embed defaults/t2048.yaml
var defaultYAML []byte

// Default returns the built-in configuration: the classic 4x4 board with a
// 2048 target and unbounded undo.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Rows: 4,
			Cols: 4,
		},
		Rules: RulesConfig{
			Target:        2048,
			SpawnFourProb: 0.10,
			UndoDepth:     0,
		},
	}
}

// DefaultYAML returns the embedded default config document, useful for
// writing a starter file for the user to edit.
func DefaultYAML() []byte {
	return defaultYAML
}
