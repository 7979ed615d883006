package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadBlackBox loads Black Box configuration.
// Search order: customPath -> ~/.blackbox/configs/blackbox.yaml -> ./configs/blackbox.yaml -> embedded default
func LoadBlackBox(customPath string) (BlackBoxConfig, error) {
	var cfg BlackBoxConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("blackbox.yaml"); userCfgPath != "" {
		if cfg, ok := readConfig(userCfgPath); ok {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, ok := readConfig(filepath.Join("configs", "blackbox.yaml")); ok {
		return cfg, nil
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultBlackBoxYAML, &cfg); err != nil || cfg.Validate() != nil {
		return DefaultBlackBoxConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// readConfig reads an optional config file; unreadable or invalid files are skipped.
func readConfig(path string) (BlackBoxConfig, bool) {
	var cfg BlackBoxConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	if err := cfg.Validate(); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".blackbox", "configs", filename)
}

// ApplyBlackBoxPreset modifies the config based on a difficulty preset.
// A fixed layout is left untouched. Unknown presets return an error.
func ApplyBlackBoxPreset(cfg *BlackBoxConfig, preset DifficultyPreset) error {
	if preset == "" {
		return nil
	}
	atoms, ok := AtomsForPreset(preset)
	if !ok {
		return fmt.Errorf("%w: unknown difficulty %q", ErrInvalidConfig, preset)
	}
	if len(cfg.Board.Layout) == 0 {
		cfg.Board.Atoms = atoms
	}
	return nil
}
