package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsParse(t *testing.T) {
	var cfg BlackBoxConfig
	if err := yaml.Unmarshal(GetDefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("embedded YAML is invalid: %v", err)
	}

	def := DefaultBlackBoxConfig()
	if cfg.Board.Atoms != def.Board.Atoms {
		t.Errorf("embedded atoms = %d, hardcoded = %d", cfg.Board.Atoms, def.Board.Atoms)
	}
	if cfg.Display != def.Display {
		t.Errorf("embedded display = %+v, hardcoded = %+v", cfg.Display, def.Display)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("board:\n  layout: [[5, 1], [5, 3], [8, 1]]\ndisplay:\n  show_path: false\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := LoadBlackBox(path)
	if err != nil {
		t.Fatalf("LoadBlackBox() failed: %v", err)
	}
	if len(cfg.Board.Layout) != 3 {
		t.Fatalf("layout = %v, want 3 positions", cfg.Board.Layout)
	}
	if cfg.Board.Layout[2] != [2]int{8, 1} {
		t.Errorf("layout[2] = %v, want [8 1]", cfg.Board.Layout[2])
	}
	if cfg.Display.ShowPath {
		t.Error("show_path should be false")
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadBlackBox(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	os.WriteFile(bad, []byte("board: [unclosed"), 0o600)
	if _, err := LoadBlackBox(bad); err == nil {
		t.Error("expected error for malformed YAML")
	}

	border := filepath.Join(dir, "border.yaml")
	os.WriteFile(border, []byte("board:\n  layout: [[0, 4]]\n"), 0o600)
	if _, err := LoadBlackBox(border); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("border layout error = %v, want ErrInvalidConfig", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		board BoardConfig
		ok    bool
	}{
		{"random default", BoardConfig{Atoms: 4}, true},
		{"zero atoms", BoardConfig{Atoms: 0}, false},
		{"too many atoms", BoardConfig{Atoms: 9}, false},
		{"layout", BoardConfig{Layout: [][2]int{{1, 1}, {8, 8}}}, true},
		{"layout duplicate", BoardConfig{Layout: [][2]int{{2, 2}, {2, 2}}}, false},
		{"layout off field", BoardConfig{Layout: [][2]int{{9, 2}}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := BlackBoxConfig{Board: tt.board}.Validate()
			if (err == nil) != tt.ok {
				t.Errorf("Validate() = %v, want ok=%v", err, tt.ok)
			}
		})
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultBlackBoxConfig()

	if err := ApplyBlackBoxPreset(&cfg, DifficultyHard); err != nil {
		t.Fatalf("ApplyBlackBoxPreset() failed: %v", err)
	}
	if cfg.Board.Atoms != 5 {
		t.Errorf("hard atoms = %d, want 5", cfg.Board.Atoms)
	}

	if err := ApplyBlackBoxPreset(&cfg, ""); err != nil {
		t.Errorf("empty preset returned error: %v", err)
	}
	if cfg.Board.Atoms != 5 {
		t.Errorf("empty preset changed atoms to %d", cfg.Board.Atoms)
	}

	if err := ApplyBlackBoxPreset(&cfg, "brutal"); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("unknown preset error = %v, want ErrInvalidConfig", err)
	}

	fixed := BlackBoxConfig{Board: BoardConfig{Layout: [][2]int{{5, 1}}}}
	ApplyBlackBoxPreset(&fixed, DifficultyEasy)
	if fixed.Board.Atoms != 0 {
		t.Error("preset should not touch a fixed layout")
	}
}
