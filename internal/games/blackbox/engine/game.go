package engine

import "fmt"

// Shot is one valid ray fired during a game.
type Shot struct {
	Ray
	Charged int // points deducted by this shot
}

// Guess is one first-time guess at an atom position.
type Guess struct {
	Cell    Coord
	Correct bool
}

// MarkerKind is the classic annotation written next to a port.
type MarkerKind int

const (
	MarkerHit MarkerKind = iota
	MarkerReflection
	MarkerDetour
)

// Marker annotates a port with what happened to the ray fired through it.
// Detour markers come in pairs sharing a Number.
type Marker struct {
	Kind   MarkerKind
	Number int
}

// Label returns the one or two character label for display.
func (m Marker) Label() string {
	switch m.Kind {
	case MarkerHit:
		return "H"
	case MarkerReflection:
		return "R"
	default:
		return fmt.Sprintf("%d", m.Number)
	}
}

// Rune returns a single-character form of the label. Detours 1-9 use their
// digit, later ones continue with 'a', 'b', ... and '#' past 'z'.
func (m Marker) Rune() rune {
	switch {
	case m.Kind == MarkerHit:
		return 'H'
	case m.Kind == MarkerReflection:
		return 'R'
	case m.Number >= 1 && m.Number <= 9:
		return rune('0' + m.Number)
	case m.Number >= 10 && m.Number < 10+26:
		return rune('a' + m.Number - 10)
	default:
		return '#'
	}
}

// Game is one round of Black Box: a board, its tracer and the score.
// A Game is not safe for concurrent use.
type Game struct {
	board     *Board
	tracer    *Tracer
	score     *ScoreTracker
	remaining int

	shots   []Shot
	guesses []Guess
	markers map[Coord]Marker
	detours int
}

// New starts a game over the given atom positions.
func New(atoms []Coord) (*Game, error) {
	b, err := NewBoard(atoms)
	if err != nil {
		return nil, err
	}
	return &Game{
		board:     b,
		tracer:    NewTracer(b),
		score:     NewScoreTracker(),
		remaining: b.AtomCount(),
		markers:   make(map[Coord]Marker),
	}, nil
}

// FireRay fires a ray into the box from the border port at (row, col).
// Invalid entries are free and leave no trace.
func (g *Game) FireRay(row, col int) (RayOutcome, error) {
	entry := At(row, col)
	ray, err := g.tracer.Trace(entry)
	if err != nil {
		return RayOutcome{}, err
	}
	if ray.Outcome.Kind == OutcomeInvalidEntry {
		return ray.Outcome, nil
	}

	shot := Shot{Ray: ray}
	if g.score.ChargeForPort(entry) {
		shot.Charged += PortPenalty
	}
	if ray.Outcome.Exited() && g.score.ChargeForPort(ray.Outcome.Exit) {
		shot.Charged += PortPenalty
	}
	g.shots = append(g.shots, shot)
	g.mark(ray)

	return ray.Outcome, nil
}

// GuessAtom guesses that an atom sits at (row, col) and reports whether it does.
// Only the first guess at a cell affects the score and the remaining count.
// Border cells cannot hold atoms, so guessing one is rejected with
// ErrNotInterior and costs nothing rather than counting as a wrong guess.
func (g *Game) GuessAtom(row, col int) (bool, error) {
	cell := At(row, col)
	if !cell.InGrid() {
		return false, fmt.Errorf("guess at %s: %w", cell, ErrOutOfRange)
	}
	if !cell.InField() {
		return false, fmt.Errorf("guess at %s: %w", cell, ErrNotInterior)
	}

	correct := g.board.IsAtom(cell)
	if g.score.ChargeForGuess(cell, correct) {
		if correct {
			g.remaining--
		}
		g.guesses = append(g.guesses, Guess{Cell: cell, Correct: correct})
	}
	return correct, nil
}

// AtomsRemaining returns how many atoms are still unfound.
func (g *Game) AtomsRemaining() int {
	return g.remaining
}

// CurrentScore returns the current score.
func (g *Game) CurrentScore() int {
	return g.score.Score()
}

// Solved reports whether every atom has been found.
func (g *Game) Solved() bool {
	return g.remaining == 0
}

// Board returns the game's board.
func (g *Game) Board() *Board {
	return g.board
}

// Shots returns every valid ray fired so far, oldest first.
func (g *Game) Shots() []Shot {
	out := make([]Shot, len(g.shots))
	copy(out, g.shots)
	return out
}

// Guesses returns the first-time guesses, oldest first.
func (g *Game) Guesses() []Guess {
	out := make([]Guess, len(g.guesses))
	copy(out, g.guesses)
	return out
}

// Guessed reports whether cell has been guessed, and if so whether correctly.
func (g *Game) Guessed(cell Coord) (guessed, correct bool) {
	if !g.score.Guessed(cell) {
		return false, false
	}
	return true, g.board.IsAtom(cell)
}

// PortUsed reports whether a port has already been paid for.
func (g *Game) PortUsed(c Coord) bool {
	return g.score.PortUsed(c)
}

// PortsUsed returns the charged ports in order of first use.
func (g *Game) PortsUsed() []Coord {
	return g.score.Ports()
}

// Marker returns the annotation for a port, if any ray used it.
func (g *Game) Marker(port Coord) (Marker, bool) {
	m, ok := g.markers[port]
	return m, ok
}

// mark annotates the ports used by a ray. The first annotation of a port wins;
// an entry whose exit is already annotated gets a detour number of its own.
func (g *Game) mark(ray Ray) {
	if _, ok := g.markers[ray.Entry]; ok {
		return
	}
	switch {
	case ray.Outcome.Absorbed():
		g.markers[ray.Entry] = Marker{Kind: MarkerHit}
	case ray.Outcome.Exit == ray.Entry:
		g.markers[ray.Entry] = Marker{Kind: MarkerReflection}
	default:
		g.detours++
		m := Marker{Kind: MarkerDetour, Number: g.detours}
		g.markers[ray.Entry] = m
		if _, ok := g.markers[ray.Outcome.Exit]; !ok {
			g.markers[ray.Outcome.Exit] = m
		}
	}
}
