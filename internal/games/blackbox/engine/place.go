package engine

import (
	"fmt"
	"math/rand"
)

// MaxAtoms is the largest atom count RandomAtoms accepts.
const MaxAtoms = FieldMax - FieldMin + 1

// ClassicAtoms returns the layout of the reference demo game.
func ClassicAtoms() []Coord {
	return []Coord{At(5, 1), At(5, 3), At(8, 1)}
}

// RandomAtoms picks n distinct interior cells using rng.
// The same seed always yields the same layout.
func RandomAtoms(rng *rand.Rand, n int) ([]Coord, error) {
	if n < 1 || n > MaxAtoms {
		return nil, fmt.Errorf("%w: atom count %d not in 1..%d", ErrInvalidConfiguration, n, MaxAtoms)
	}

	side := FieldMax - FieldMin + 1
	cells := rng.Perm(side * side)[:n]

	atoms := make([]Coord, 0, n)
	for _, idx := range cells {
		atoms = append(atoms, At(FieldMin+idx/side, FieldMin+idx%side))
	}
	sortCoords(atoms)
	return atoms, nil
}
