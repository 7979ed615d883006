package config

import (
	_ "embed"
)

//go:embed defaults/blackbox.yaml
var defaultBlackBoxYAML []byte

// DefaultBlackBoxConfig returns the default Black Box configuration.
func DefaultBlackBoxConfig() BlackBoxConfig {
	return BlackBoxConfig{
		Board: BoardConfig{
			Atoms: 4,
		},
		Display: DisplayConfig{
			ShowPath:       true,
			RevealOnFinish: true,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultBlackBoxYAML
}
