// Package config provides YAML-based game configuration loading and
// difficulty presets for the Black Box game.
package config

import (
	"errors"
	"fmt"
)

// BlackBoxConfig contains all configuration for the Black Box game.
type BlackBoxConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Display DisplayConfig `yaml:"display"`
}

// BoardConfig defines how atoms are hidden.
type BoardConfig struct {
	Atoms  int      `yaml:"atoms"`  // Number of randomly placed atoms
	Layout [][2]int `yaml:"layout"` // Fixed [row, col] atom positions; overrides Atoms when set
}

// DisplayConfig defines presentation options.
type DisplayConfig struct {
	ShowPath       bool `yaml:"show_path"`        // Trace the last ray across the field
	RevealOnFinish bool `yaml:"reveal_on_finish"` // Show hidden atoms once the round ends
}

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid config")

// field bounds, kept in sync with the engine's 8x8 interior
const (
	minAtoms = 1
	maxAtoms = 8
	fieldMin = 1
	fieldMax = 8
)

// Validate checks atom counts and layout positions.
func (c BlackBoxConfig) Validate() error {
	if len(c.Board.Layout) == 0 {
		if c.Board.Atoms < minAtoms || c.Board.Atoms > maxAtoms {
			return fmt.Errorf("%w: atoms must be in %d..%d, got %d", ErrInvalidConfig, minAtoms, maxAtoms, c.Board.Atoms)
		}
		return nil
	}

	seen := make(map[[2]int]bool, len(c.Board.Layout))
	for _, p := range c.Board.Layout {
		if p[0] < fieldMin || p[0] > fieldMax || p[1] < fieldMin || p[1] > fieldMax {
			return fmt.Errorf("%w: layout position %v outside the field", ErrInvalidConfig, p)
		}
		if seen[p] {
			return fmt.Errorf("%w: duplicate layout position %v", ErrInvalidConfig, p)
		}
		seen[p] = true
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// AtomsForPreset returns the atom count for a difficulty preset.
func AtomsForPreset(preset DifficultyPreset) (int, bool) {
	switch preset {
	case DifficultyEasy:
		return 3, true
	case DifficultyNormal:
		return 4, true
	case DifficultyHard:
		return 5, true
	default:
		return 0, false
	}
}
