// blackbox is a terminal Black Box puzzle: fire rays into a sealed grid and
// deduce where the atoms are hidden.
//
// Usage:
//
//	blackbox list              - List available variants
//	blackbox play <variant>    - Play a variant
//	blackbox menu              - Pick variants interactively
//	blackbox scores <variant>  - Show high scores and round statistics
//	blackbox serve             - Start SSH server for remote play
//	blackbox demo              - Replay the reference round and print the board
//
// Global flags:
//
//	--seed <value>  - Set RNG seed for reproducible atom placement
//	--db <path>     - Set database path (default: ~/.blackbox/scores.db)
//	--verbose       - Log shots and guesses to stderr
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/blackbox/internal/games/blackbox"
)

var (
	flagSeed    int64
	flagDBPath  string
	flagVerbose bool

	logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "blackbox"})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blackbox",
	Short: "Black Box - find hidden atoms by firing rays",
	Long: `Black Box is a deduction puzzle played on a 10x10 grid.

Atoms are hidden in the 8x8 interior. Fire rays from the border and watch
where they come out: a ray is absorbed when it hits an atom, deflected when
it passes next to one, and reflected back when it meets two at once.
Mark every atom to finish the round.

Scoring starts at 25. Each port you use costs 1, each wrong guess costs 5.

Examples:
  blackbox list
  blackbox play blackbox
  blackbox play blackbox_classic
  blackbox menu
  blackbox serve --ssh :2222
  blackbox scores blackbox`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if flagVerbose {
			logger.SetLevel(log.DebugLevel)
			blackbox.SetLogger(logger.WithPrefix("game"))
		}
	},
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.blackbox/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(demoCmd)
}
