// Package blackbox adapts the Black Box engine to the terminal platform:
// cursor input, round lifecycle, rendering and configuration.
package blackbox

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blackbox/internal/config"
	"github.com/vovakirdan/blackbox/internal/core"
	"github.com/vovakirdan/blackbox/internal/games/blackbox/engine"
	"github.com/vovakirdan/blackbox/internal/registry"
)

// Mode selects how atoms are placed.
type Mode string

const (
	ModeRandom  Mode = "random"
	ModeClassic Mode = "classic"
)

// Game IDs registered by this package.
const (
	IDRandom  = "blackbox"
	IDClassic = "blackbox_classic"
)

// Game implements registry.Game for Black Box.
type Game struct {
	mode   Mode
	cfg    config.BlackBoxConfig
	rng    *rand.Rand
	box    *engine.Game
	cursor engine.Coord

	lastRay *engine.Ray
	message string
	gaveUp  bool

	// Screen dimensions
	screenW  int
	screenH  int
	tooSmall bool
}

// Package-level variables for config
var (
	configPath       string
	difficultyPreset string
	logger           = log.New(io.Discard)
)

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset (easy, normal, hard).
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// SetLogger sets the logger used for shot and guess events.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// New creates a Black Box game with randomly placed atoms.
func New() *Game {
	return &Game{mode: ModeRandom}
}

// NewClassic creates a Black Box game over the fixed reference layout.
func NewClassic() *Game {
	return &Game{mode: ModeClassic}
}

func init() {
	registry.Register(IDRandom, func() registry.Game {
		return New()
	})
	registry.Register(IDClassic, func() registry.Game {
		return NewClassic()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeClassic {
		return IDClassic
	}
	return IDRandom
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeClassic {
		return "Black Box (Classic)"
	}
	return "Black Box"
}

// Reset loads configuration, hides a fresh set of atoms and starts a round.
func (g *Game) Reset(cfg core.RuntimeConfig) error {
	boxCfg, err := config.LoadBlackBox(configPath)
	if err != nil {
		return err
	}
	if err := config.ApplyBlackBoxPreset(&boxCfg, config.DifficultyPreset(difficultyPreset)); err != nil {
		return err
	}

	g.cfg = boxCfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.cursor = engine.At(0, 1)
	g.lastRay = nil
	g.gaveUp = false

	atoms, err := g.atoms()
	if err != nil {
		return err
	}
	box, err := engine.New(atoms)
	if err != nil {
		return fmt.Errorf("blackbox: %w", err)
	}
	g.box = box
	g.message = fmt.Sprintf("%d atoms hidden. Fire rays from the border.", box.AtomsRemaining())

	logger.Debug("round started", "game", g.ID(), "atoms", len(atoms), "seed", cfg.Seed)
	g.checkScreenSize()
	return nil
}

// atoms picks the atom layout for the current mode and config.
func (g *Game) atoms() ([]engine.Coord, error) {
	if g.mode == ModeClassic {
		return engine.ClassicAtoms(), nil
	}
	if len(g.cfg.Board.Layout) > 0 {
		atoms := make([]engine.Coord, 0, len(g.cfg.Board.Layout))
		for _, p := range g.cfg.Board.Layout {
			atoms = append(atoms, engine.At(p[0], p[1]))
		}
		return atoms, nil
	}
	return engine.RandomAtoms(g.rng, g.cfg.Board.Atoms)
}

// Resize updates the screen dimensions without restarting the round.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	g.tooSmall = g.screenW < minScreenW || g.screenH < minScreenH
}

// Step applies the actions triggered since the last step.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.box == nil || g.tooSmall || g.over() {
		return core.StepResult{State: g.State()}
	}

	switch {
	case in.Has(core.ActionUp):
		g.moveCursor(-1, 0)
	case in.Has(core.ActionDown):
		g.moveCursor(1, 0)
	case in.Has(core.ActionLeft):
		g.moveCursor(0, -1)
	case in.Has(core.ActionRight):
		g.moveCursor(0, 1)
	}

	switch {
	case in.Has(core.ActionConfirm):
		g.act()
	case in.Has(core.ActionReveal):
		g.gaveUp = true
		g.message = "You gave up. The atoms are revealed."
		logger.Debug("round abandoned", "game", g.ID(), "score", g.box.CurrentScore())
	}

	return core.StepResult{State: g.State()}
}

// moveCursor moves the cursor, staying on the grid.
func (g *Game) moveCursor(dr, dc int) {
	g.cursor = engine.At(
		core.Clamp(g.cursor.Row+dr, 0, engine.GridSize-1),
		core.Clamp(g.cursor.Col+dc, 0, engine.GridSize-1),
	)
}

// act fires from a border port or guesses an interior cell under the cursor.
func (g *Game) act() {
	c := g.cursor
	if c.InField() {
		g.guess(c)
		return
	}
	g.fire(c)
}

func (g *Game) fire(c engine.Coord) {
	before := g.box.CurrentScore()
	out, err := g.box.FireRay(c.Row, c.Col)
	if err != nil {
		g.message = err.Error()
		return
	}
	cost := before - g.box.CurrentScore()

	switch out.Kind {
	case engine.OutcomeInvalidEntry:
		g.message = "Corners are not ports."
		return
	case engine.OutcomeAbsorbed:
		g.message = fmt.Sprintf("Ray from %s was absorbed.%s", c, costNote(cost))
	case engine.OutcomeExit:
		if out.Exit == c {
			g.message = fmt.Sprintf("Ray from %s was reflected.%s", c, costNote(cost))
		} else {
			g.message = fmt.Sprintf("Ray from %s exited at %s.%s", c, out.Exit, costNote(cost))
		}
	}

	shots := g.box.Shots()
	last := shots[len(shots)-1].Ray
	g.lastRay = &last

	logger.Debug("ray fired", "entry", c, "outcome", out, "score", g.box.CurrentScore())
}

func (g *Game) guess(c engine.Coord) {
	before := g.box.CurrentScore()
	hit, err := g.box.GuessAtom(c.Row, c.Col)
	if err != nil {
		g.message = err.Error()
		return
	}
	cost := before - g.box.CurrentScore()

	switch {
	case g.box.Solved():
		g.message = fmt.Sprintf("All atoms found! Final score %d.", g.box.CurrentScore())
	case hit:
		g.message = fmt.Sprintf("Atom at %s! %d left.", c, g.box.AtomsRemaining())
	default:
		g.message = fmt.Sprintf("No atom at %s.%s", c, costNote(cost))
	}

	logger.Debug("atom guessed", "cell", c, "hit", hit, "score", g.box.CurrentScore())
}

// costNote formats the points a move cost, or nothing if it was free.
func costNote(cost int) string {
	if cost == 0 {
		return ""
	}
	return fmt.Sprintf(" (-%d)", cost)
}

// over reports whether the round has ended.
func (g *Game) over() bool {
	return g.gaveUp || (g.box != nil && g.box.Solved())
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.box == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.box.CurrentScore(),
		GameOver: g.over(),
		Won:      g.box.Solved(),
	}
}

// Round summarizes the current round for persistence.
func (g *Game) Round() core.RoundSummary {
	if g.box == nil {
		return core.RoundSummary{GameID: g.ID()}
	}
	wrong := 0
	for _, guess := range g.box.Guesses() {
		if !guess.Correct {
			wrong++
		}
	}
	return core.RoundSummary{
		GameID:       g.ID(),
		Atoms:        g.box.Board().AtomCount(),
		Rays:         len(g.box.Shots()),
		WrongGuesses: wrong,
		Score:        g.box.CurrentScore(),
		Solved:       g.box.Solved(),
	}
}

// Cursor returns the cursor position.
func (g *Game) Cursor() engine.Coord {
	return g.cursor
}

// Message returns the status line shown under the board.
func (g *Game) Message() string {
	return g.message
}

var (
	_ registry.RoundReporter = (*Game)(nil)
	_ registry.Resizer       = (*Game)(nil)
)
