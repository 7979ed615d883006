package engine

import "fmt"

// OutcomeKind tells how a ray ended.
type OutcomeKind int

const (
	OutcomeInvalidEntry OutcomeKind = iota
	OutcomeAbsorbed
	OutcomeExit
)

// String returns a human-readable name for the outcome kind.
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeInvalidEntry:
		return "InvalidEntry"
	case OutcomeAbsorbed:
		return "Absorbed"
	case OutcomeExit:
		return "Exit"
	default:
		return "Unknown"
	}
}

// RayOutcome is the observable result of firing a ray.
// Exit is only meaningful when Kind is OutcomeExit.
type RayOutcome struct {
	Kind OutcomeKind
	Exit Coord
}

// Absorbed reports whether the ray hit an atom.
func (o RayOutcome) Absorbed() bool {
	return o.Kind == OutcomeAbsorbed
}

// Exited reports whether the ray left the box.
func (o RayOutcome) Exited() bool {
	return o.Kind == OutcomeExit
}

// String returns a short description of the outcome.
func (o RayOutcome) String() string {
	if o.Kind == OutcomeExit {
		return fmt.Sprintf("Exit%s", o.Exit)
	}
	return o.Kind.String()
}

// Ray is a traced ray: its outcome and every cell it visited, entry port first.
type Ray struct {
	Entry       Coord
	Outcome     RayOutcome
	Path        []Coord
	Deflections int
	Reflected   bool
}

// Tracer follows rays through a board.
type Tracer struct {
	board *Board
}

// NewTracer creates a tracer over the given board.
func NewTracer(b *Board) *Tracer {
	return &Tracer{board: b}
}

// EntryHeading returns the initial heading for a ray fired from c.
// Corners and cells off the border frame have no heading.
func EntryHeading(c Coord) (Direction, bool) {
	if !c.OnBorder() || c.IsCorner() {
		return Up, false
	}
	switch {
	case c.Row == 0:
		return Down, true
	case c.Row == GridSize-1:
		return Up, true
	case c.Col == 0:
		return Right, true
	default:
		return Left, true
	}
}

// Fire traces a ray from entry and returns only its outcome.
func (t *Tracer) Fire(entry Coord) (RayOutcome, error) {
	ray, err := t.Trace(entry)
	if err != nil {
		return RayOutcome{}, err
	}
	return ray.Outcome, nil
}

// Trace follows a ray from entry until it is absorbed or leaves the box.
//
// At every cell the two diagonals ahead of the ray are inspected before it
// moves: two atoms send the ray back out of its entry port, one atom turns
// it 90 degrees away. A ray that is turned straight back onto the frame on
// its first step also leaves through its entry port.
func (t *Tracer) Trace(entry Coord) (Ray, error) {
	if !entry.InGrid() {
		return Ray{}, fmt.Errorf("fire from %s: %w", entry, ErrOutOfRange)
	}

	ray := Ray{Entry: entry}
	heading, ok := EntryHeading(entry)
	if !ok {
		ray.Outcome = RayOutcome{Kind: OutcomeInvalidEntry}
		return ray, nil
	}

	type state struct {
		pos     Coord
		heading Direction
	}
	seen := make(map[state]bool)

	pos := entry
	steps := 0
	ray.Path = append(ray.Path, pos)

	for {
		if steps > 0 {
			if t.board.IsAtom(pos) {
				ray.Outcome = RayOutcome{Kind: OutcomeAbsorbed}
				return ray, nil
			}
			if pos.OnBorder() {
				exit := pos
				if steps == 1 {
					exit = entry
					ray.Reflected = true
				}
				ray.Outcome = RayOutcome{Kind: OutcomeExit, Exit: exit}
				return ray, nil
			}
		}

		left, right := t.sideAtoms(pos, heading)
		switch {
		case left && right:
			ray.Reflected = true
			ray.Outcome = RayOutcome{Kind: OutcomeExit, Exit: entry}
			return ray, nil
		case left || right:
			heading = t.deflect(pos, heading)
			ray.Deflections++
		}

		// A repeated state can never reach the frame again. Such cycles do occur
		// on real boards because deflection is not reversible.
		st := state{pos: pos, heading: heading}
		if seen[st] {
			ray.Outcome = RayOutcome{Kind: OutcomeAbsorbed}
			return ray, nil
		}
		seen[st] = true

		pos = pos.Step(heading)
		steps++
		ray.Path = append(ray.Path, pos)
	}
}

// sideOffsets returns the two unit offsets perpendicular to d.
func sideOffsets(d Direction) (a, b Coord) {
	dr, dc := d.Delta()
	return At(dc, dr), At(-dc, -dr)
}

// sideAtoms reports which of the diagonals ahead of pos hold atoms.
func (t *Tracer) sideAtoms(pos Coord, d Direction) (bool, bool) {
	ahead := pos.Step(d)
	a, b := sideOffsets(d)
	return t.board.IsAtom(ahead.Add(a.Row, a.Col)), t.board.IsAtom(ahead.Add(b.Row, b.Col))
}

// deflect turns the heading away from the single atom on a diagonal ahead.
func (t *Tracer) deflect(pos Coord, d Direction) Direction {
	ahead := pos.Step(d)
	a, b := sideOffsets(d)
	side := b
	if t.board.IsAtom(ahead.Add(a.Row, a.Col)) {
		side = a
	}
	return directionOf(-side.Row, -side.Col)
}
