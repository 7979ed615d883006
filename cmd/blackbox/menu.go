package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/blackbox/internal/games/blackbox"
	"github.com/vovakirdan/blackbox/internal/platform/tui"
	"github.com/vovakirdan/blackbox/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a variant from an interactive menu",
	Long: `Start Black Box in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to start a round, Tab for the
scoreboard. Leaving a round returns you to the menu.

Examples:
  blackbox menu
  blackbox menu --difficulty easy
  blackbox menu --db ./scores.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	blackbox.SetConfigPath(flagConfig)
	blackbox.SetDifficultyPreset(flagDifficulty)

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	for {
		result, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		cfg = result.Config

		if result.Quit {
			return nil
		}

		if result.WantsScoreboard {
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}
			continue
		}

		game, err := registry.Create(result.GameID)
		if err != nil {
			logger.Error("cannot create variant", "id", result.GameID, "error", err)
			continue
		}

		if err := tui.Run(game, store, cfg); err != nil {
			logger.Error("round failed", "id", result.GameID, "error", err)
		}
	}
}
