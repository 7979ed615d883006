package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blackbox/internal/core"
	"github.com/vovakirdan/blackbox/internal/games/blackbox"
	"github.com/vovakirdan/blackbox/internal/platform/tui"
	"github.com/vovakirdan/blackbox/internal/registry"
	"github.com/vovakirdan/blackbox/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <variant>",
	Short: "Play a Black Box round",
	Long: `Start a round of the given variant.

Controls:
  Arrows/hjkl/wasd  - Move the cursor
  Enter/Space       - Fire from a border port, or guess an interior cell
  X                 - Give up and reveal the atoms
  R                 - New round (after the round ends)
  Esc/B             - Leave the round
  Q/Ctrl+C          - Quit

Difficulty options (random variant only):
  easy   - 3 atoms
  normal - 4 atoms
  hard   - 5 atoms

Examples:
  blackbox play blackbox
  blackbox play blackbox --difficulty hard
  blackbox play blackbox --seed 42
  blackbox play blackbox_classic
  blackbox play blackbox --config ./my-board.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom board config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	menuCmd.Flags().AddFlagSet(playCmd.Flags())
}

// runtimeConfig builds the runtime config from the terminal size and global flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the scores database, returning nil when it is unavailable.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be saved", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q, run 'blackbox list' to see available variants", gameID)
	}

	blackbox.SetConfigPath(flagConfig)
	blackbox.SetDifficultyPreset(flagDifficulty)

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(game, store, runtimeConfig()); err != nil {
		return fmt.Errorf("running %s: %w", gameID, err)
	}
	return nil
}
