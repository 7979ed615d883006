package engine_test

import (
	"errors"
	"testing"

	"github.com/vovakirdan/blackbox/internal/games/blackbox/engine"
)

func TestNewBoardRejectsBadLayouts(t *testing.T) {
	tests := []struct {
		name  string
		atoms []engine.Coord
	}{
		{"empty", nil},
		{"duplicate", []engine.Coord{engine.At(2, 2), engine.At(2, 2)}},
		{"on border", []engine.Coord{engine.At(0, 4)}},
		{"on corner", []engine.Coord{engine.At(9, 9)}},
		{"off grid", []engine.Coord{engine.At(12, 3)}},
		{"negative", []engine.Coord{engine.At(-1, 3)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := engine.NewBoard(tt.atoms)
			if !errors.Is(err, engine.ErrInvalidConfiguration) {
				t.Errorf("NewBoard(%v) error = %v, want ErrInvalidConfiguration", tt.atoms, err)
			}
		})
	}
}

func TestBoardCellKind(t *testing.T) {
	b, err := engine.NewBoard(engine.ClassicAtoms())
	if err != nil {
		t.Fatalf("NewBoard() failed: %v", err)
	}

	testCases := []struct {
		coord engine.Coord
		kind  engine.CellKind
	}{
		{engine.At(0, 0), engine.CellBorder},
		{engine.At(0, 5), engine.CellBorder},
		{engine.At(9, 1), engine.CellBorder},
		{engine.At(4, 9), engine.CellBorder},
		{engine.At(5, 1), engine.CellAtom},
		{engine.At(5, 3), engine.CellAtom},
		{engine.At(8, 1), engine.CellAtom},
		{engine.At(5, 2), engine.CellEmpty},
		{engine.At(1, 1), engine.CellEmpty},
	}

	for _, tc := range testCases {
		kind, err := b.CellKind(tc.coord)
		if err != nil {
			t.Errorf("CellKind(%v) unexpected error: %v", tc.coord, err)
			continue
		}
		if kind != tc.kind {
			t.Errorf("CellKind(%v) = %v, want %v", tc.coord, kind, tc.kind)
		}
	}

	for _, c := range []engine.Coord{engine.At(10, 0), engine.At(0, -1), engine.At(-3, 12)} {
		if _, err := b.CellKind(c); !errors.Is(err, engine.ErrOutOfRange) {
			t.Errorf("CellKind(%v) error = %v, want ErrOutOfRange", c, err)
		}
	}
}

func TestBoardIsAtom(t *testing.T) {
	b, err := engine.NewBoard(engine.ClassicAtoms())
	if err != nil {
		t.Fatalf("NewBoard() failed: %v", err)
	}

	if !b.IsAtom(engine.At(5, 1)) {
		t.Error("expected atom at (5,1)")
	}
	if b.IsAtom(engine.At(5, 2)) {
		t.Error("unexpected atom at (5,2)")
	}
	if b.IsAtom(engine.At(42, 42)) {
		t.Error("off-grid cell reported as atom")
	}
	if b.AtomCount() != 3 {
		t.Errorf("AtomCount() = %d, want 3", b.AtomCount())
	}
}

func TestBoardAtomsSortedCopy(t *testing.T) {
	b, err := engine.NewBoard([]engine.Coord{engine.At(8, 1), engine.At(5, 3), engine.At(5, 1)})
	if err != nil {
		t.Fatalf("NewBoard() failed: %v", err)
	}

	atoms := b.Atoms()
	want := []engine.Coord{engine.At(5, 1), engine.At(5, 3), engine.At(8, 1)}
	for i := range want {
		if atoms[i] != want[i] {
			t.Fatalf("Atoms() = %v, want %v", atoms, want)
		}
	}

	atoms[0] = engine.At(1, 1)
	if b.Atoms()[0] != engine.At(5, 1) {
		t.Error("mutating Atoms() result changed the board")
	}
}
