package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blackbox/internal/games/blackbox/engine"
)

var flagReveal bool

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Replay the reference round without a terminal UI",
	Long: `Plays a fixed round on the classic layout, atoms at (5,1), (5,3) and (8,1),
and prints the result: three guesses at (5,6), (5,1) and (5,1), ending with
a score of 20 and 2 atoms left.

Examples:
  blackbox demo
  blackbox demo --reveal`,
	RunE: runDemo,
}

func init() {
	demoCmd.Flags().BoolVar(&flagReveal, "reveal", false, "Show the hidden atoms on the board")
}

func runDemo(cmd *cobra.Command, _ []string) error {
	game, err := engine.New(engine.ClassicAtoms())
	if err != nil {
		return err
	}

	for _, c := range []engine.Coord{engine.At(5, 6), engine.At(5, 1), engine.At(5, 1)} {
		correct, err := game.GuessAtom(c.Row, c.Col)
		if err != nil {
			return err
		}
		logger.Debug("guess", "cell", c, "correct", correct, "score", game.CurrentScore())
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, game.CurrentScore())
	fmt.Fprintln(out, game.AtomsRemaining())
	fmt.Fprintln(out)
	fmt.Fprint(out, engine.RenderASCII(game, flagReveal))
	return nil
}
