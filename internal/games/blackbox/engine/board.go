package engine

import (
	"fmt"
	"sort"
)

// CellKind classifies a grid cell.
type CellKind int

const (
	CellBorder CellKind = iota
	CellEmpty
	CellAtom
)

// String returns a human-readable name for the cell kind.
func (k CellKind) String() string {
	switch k {
	case CellBorder:
		return "Border"
	case CellEmpty:
		return "Empty"
	case CellAtom:
		return "Atom"
	default:
		return "Unknown"
	}
}

// Board is the fixed 10x10 grid with its hidden atoms.
// It never changes after construction.
type Board struct {
	cells [GridSize][GridSize]CellKind
	atoms []Coord
}

// NewBoard builds a board from a non-empty set of interior atom positions.
func NewBoard(atoms []Coord) (*Board, error) {
	if len(atoms) == 0 {
		return nil, fmt.Errorf("%w: no atoms given", ErrInvalidConfiguration)
	}

	b := &Board{atoms: make([]Coord, 0, len(atoms))}
	for r := 0; r < GridSize; r++ {
		for c := 0; c < GridSize; c++ {
			if At(r, c).InField() {
				b.cells[r][c] = CellEmpty
			} else {
				b.cells[r][c] = CellBorder
			}
		}
	}

	for _, a := range atoms {
		if !a.InField() {
			return nil, fmt.Errorf("%w: atom %s outside the field", ErrInvalidConfiguration, a)
		}
		if b.cells[a.Row][a.Col] == CellAtom {
			return nil, fmt.Errorf("%w: duplicate atom %s", ErrInvalidConfiguration, a)
		}
		b.cells[a.Row][a.Col] = CellAtom
		b.atoms = append(b.atoms, a)
	}

	sortCoords(b.atoms)
	return b, nil
}

// IsAtom reports whether c holds an atom. Coordinates off the grid are never atoms.
func (b *Board) IsAtom(c Coord) bool {
	if !c.InGrid() {
		return false
	}
	return b.cells[c.Row][c.Col] == CellAtom
}

// CellKind classifies c.
func (b *Board) CellKind(c Coord) (CellKind, error) {
	if !c.InGrid() {
		return CellBorder, fmt.Errorf("cell %s: %w", c, ErrOutOfRange)
	}
	return b.cells[c.Row][c.Col], nil
}

// Atoms returns the atom positions in row-major order.
func (b *Board) Atoms() []Coord {
	out := make([]Coord, len(b.atoms))
	copy(out, b.atoms)
	return out
}

// AtomCount returns how many atoms the board hides.
func (b *Board) AtomCount() int {
	return len(b.atoms)
}

// sortCoords orders coordinates row-major for deterministic output.
func sortCoords(cs []Coord) {
	sort.Slice(cs, func(i, j int) bool {
		if cs[i].Row != cs[j].Row {
			return cs[i].Row < cs[j].Row
		}
		return cs[i].Col < cs[j].Col
	})
}
