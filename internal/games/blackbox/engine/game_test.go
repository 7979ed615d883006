package engine_test

import (
	"errors"
	"testing"

	"github.com/vovakirdan/blackbox/internal/games/blackbox/engine"
)

func newClassicGame(t *testing.T) *engine.Game {
	t.Helper()
	g, err := engine.New(engine.ClassicAtoms())
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return g
}

func TestReferenceRun(t *testing.T) {
	g := newClassicGame(t)

	if g.CurrentScore() != 25 {
		t.Fatalf("initial score = %d, want 25", g.CurrentScore())
	}

	if hit, _ := g.GuessAtom(5, 6); hit {
		t.Error("GuessAtom(5,6) reported a hit")
	}
	if hit, _ := g.GuessAtom(5, 1); !hit {
		t.Error("GuessAtom(5,1) reported a miss")
	}
	if hit, _ := g.GuessAtom(5, 1); !hit {
		t.Error("repeated GuessAtom(5,1) reported a miss")
	}

	if g.CurrentScore() != 20 {
		t.Errorf("score = %d, want 20", g.CurrentScore())
	}
	if g.AtomsRemaining() != 2 {
		t.Errorf("atoms remaining = %d, want 2", g.AtomsRemaining())
	}
}

func TestFireSamePortTwiceChargesOnce(t *testing.T) {
	g := newClassicGame(t)

	// (0,2) reflects, so entry and exit are the same port.
	for i := 0; i < 2; i++ {
		out, err := g.FireRay(0, 2)
		if err != nil {
			t.Fatalf("FireRay() failed: %v", err)
		}
		if out.Exit != engine.At(0, 2) {
			t.Fatalf("FireRay(0,2) = %v, want reflection", out)
		}
	}
	if g.CurrentScore() != 24 {
		t.Errorf("score = %d, want 24", g.CurrentScore())
	}
}

func TestFireChargesEntryAndExit(t *testing.T) {
	g := newClassicGame(t)

	out, err := g.FireRay(0, 4)
	if err != nil {
		t.Fatalf("FireRay() failed: %v", err)
	}
	if out.Exit != engine.At(4, 9) {
		t.Fatalf("FireRay(0,4) = %v, want exit (4,9)", out)
	}
	if g.CurrentScore() != 23 {
		t.Errorf("score = %d, want 23", g.CurrentScore())
	}

	// The reverse shot uses two ports already paid for.
	if _, err := g.FireRay(4, 9); err != nil {
		t.Fatalf("FireRay() failed: %v", err)
	}
	if g.CurrentScore() != 23 {
		t.Errorf("score after reverse shot = %d, want 23", g.CurrentScore())
	}

	shots := g.Shots()
	if len(shots) != 2 {
		t.Fatalf("len(Shots()) = %d, want 2", len(shots))
	}
	if shots[0].Charged != 2 || shots[1].Charged != 0 {
		t.Errorf("charged = %d,%d, want 2,0", shots[0].Charged, shots[1].Charged)
	}
}

func TestAbsorbedChargesEntryOnly(t *testing.T) {
	g := newClassicGame(t)

	out, err := g.FireRay(9, 1)
	if err != nil {
		t.Fatalf("FireRay() failed: %v", err)
	}
	if !out.Absorbed() {
		t.Fatalf("FireRay(9,1) = %v, want absorbed", out)
	}
	if g.CurrentScore() != 24 {
		t.Errorf("score = %d, want 24", g.CurrentScore())
	}
}

func TestInvalidEntryIsFree(t *testing.T) {
	g := newClassicGame(t)

	for _, c := range []engine.Coord{
		engine.At(0, 0), engine.At(0, 9), engine.At(9, 0), engine.At(9, 9), engine.At(3, 3),
	} {
		out, err := g.FireRay(c.Row, c.Col)
		if err != nil {
			t.Fatalf("FireRay(%v) unexpected error: %v", c, err)
		}
		if out.Kind != engine.OutcomeInvalidEntry {
			t.Errorf("FireRay(%v) = %v, want InvalidEntry", c, out)
		}
		if g.PortUsed(c) {
			t.Errorf("invalid entry %v recorded as used", c)
		}
	}

	if g.CurrentScore() != 25 {
		t.Errorf("score = %d, want 25", g.CurrentScore())
	}
	if len(g.Shots()) != 0 {
		t.Errorf("invalid entries were logged as shots")
	}
}

func TestFireOutOfGrid(t *testing.T) {
	g := newClassicGame(t)

	if _, err := g.FireRay(-1, 4); !errors.Is(err, engine.ErrOutOfRange) {
		t.Errorf("FireRay(-1,4) error = %v, want ErrOutOfRange", err)
	}
	if g.CurrentScore() != 25 {
		t.Errorf("score = %d, want 25", g.CurrentScore())
	}
}

func TestGuessErrors(t *testing.T) {
	g := newClassicGame(t)

	if _, err := g.GuessAtom(10, 4); !errors.Is(err, engine.ErrOutOfRange) {
		t.Errorf("GuessAtom(10,4) error = %v, want ErrOutOfRange", err)
	}
	if _, err := g.GuessAtom(0, 4); !errors.Is(err, engine.ErrNotInterior) {
		t.Errorf("GuessAtom(0,4) error = %v, want ErrNotInterior", err)
	}
	if g.CurrentScore() != 25 {
		t.Errorf("score = %d, want 25", g.CurrentScore())
	}
}

func TestWrongGuessChargedOnce(t *testing.T) {
	g := newClassicGame(t)

	for i := 0; i < 3; i++ {
		if _, err := g.GuessAtom(2, 2); err != nil {
			t.Fatalf("GuessAtom() failed: %v", err)
		}
	}
	if g.CurrentScore() != 20 {
		t.Errorf("score = %d, want 20", g.CurrentScore())
	}
	if len(g.Guesses()) != 1 {
		t.Errorf("len(Guesses()) = %d, want 1", len(g.Guesses()))
	}
}

func TestScoreMayGoNegative(t *testing.T) {
	g := newClassicGame(t)

	wrong := 0
	for r := 1; r <= engine.FieldMax && wrong < 6; r++ {
		for c := 1; c <= engine.FieldMax && wrong < 6; c++ {
			if g.Board().IsAtom(engine.At(r, c)) {
				continue
			}
			g.GuessAtom(r, c)
			wrong++
		}
	}
	if g.CurrentScore() != -5 {
		t.Errorf("score = %d, want -5", g.CurrentScore())
	}
}

func TestSolve(t *testing.T) {
	g := newClassicGame(t)

	for _, a := range engine.ClassicAtoms() {
		if g.Solved() {
			t.Fatal("solved before every atom was found")
		}
		g.GuessAtom(a.Row, a.Col)
	}
	if !g.Solved() {
		t.Error("expected game to be solved")
	}
	if g.AtomsRemaining() != 0 {
		t.Errorf("atoms remaining = %d, want 0", g.AtomsRemaining())
	}
	if g.CurrentScore() != 25 {
		t.Errorf("score = %d, want 25", g.CurrentScore())
	}
}

func TestScoreNeverIncreases(t *testing.T) {
	g := newClassicGame(t)

	prev := g.CurrentScore()
	check := func() {
		t.Helper()
		if g.CurrentScore() > prev {
			t.Fatalf("score increased from %d to %d", prev, g.CurrentScore())
		}
		prev = g.CurrentScore()
	}

	for c := 0; c < engine.GridSize; c++ {
		g.FireRay(0, c)
		check()
		g.FireRay(c, 9)
		check()
	}
	for r := 1; r <= engine.FieldMax; r++ {
		g.GuessAtom(r, r)
		check()
		g.GuessAtom(5, 1)
		check()
	}
}

func TestReadsAreIdempotent(t *testing.T) {
	g := newClassicGame(t)
	g.FireRay(0, 4)
	g.GuessAtom(5, 3)

	score, left := g.CurrentScore(), g.AtomsRemaining()
	for i := 0; i < 5; i++ {
		if g.CurrentScore() != score || g.AtomsRemaining() != left {
			t.Fatalf("reads changed: score %d->%d, left %d->%d",
				score, g.CurrentScore(), left, g.AtomsRemaining())
		}
	}
}

func TestMarkers(t *testing.T) {
	g := newClassicGame(t)
	g.FireRay(0, 4) // detour to (4,9)
	g.FireRay(9, 1) // hit
	g.FireRay(0, 2) // reflection

	tests := []struct {
		port  engine.Coord
		label string
	}{
		{engine.At(0, 4), "1"},
		{engine.At(4, 9), "1"},
		{engine.At(9, 1), "H"},
		{engine.At(0, 2), "R"},
	}
	for _, tt := range tests {
		m, ok := g.Marker(tt.port)
		if !ok {
			t.Errorf("no marker at %v", tt.port)
			continue
		}
		if m.Label() != tt.label {
			t.Errorf("marker at %v = %q, want %q", tt.port, m.Label(), tt.label)
		}
	}

	if _, ok := g.Marker(engine.At(0, 6)); ok {
		t.Error("unused port has a marker")
	}
}

func TestSharedExitKeepsEntryMarked(t *testing.T) {
	// Both (9,2) and (9,3) come out at (2,9).
	g, err := engine.New([]engine.Coord{engine.At(1, 1), engine.At(1, 2)})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	for _, p := range []engine.Coord{engine.At(9, 2), engine.At(9, 3)} {
		out, err := g.FireRay(p.Row, p.Col)
		if err != nil || out.Exit != engine.At(2, 9) {
			t.Fatalf("FireRay(%v) = %v, %v, want exit (2,9)", p, out, err)
		}
	}

	tests := []struct {
		port engine.Coord
		want rune
	}{
		{engine.At(9, 2), '1'},
		{engine.At(2, 9), '1'},
		{engine.At(9, 3), '2'},
	}
	for _, tt := range tests {
		m, ok := g.Marker(tt.port)
		if !ok {
			t.Errorf("no marker at %v", tt.port)
			continue
		}
		if m.Rune() != tt.want {
			t.Errorf("marker at %v = %q, want %q", tt.port, m.Rune(), tt.want)
		}
	}
}

func TestDetourRunesPastNine(t *testing.T) {
	g, err := engine.New([]engine.Coord{engine.At(8, 8)})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	for r := 1; r <= 6; r++ {
		g.FireRay(r, 0)
	}
	for c := 1; c <= 6; c++ {
		g.FireRay(0, c)
	}

	tests := []struct {
		port  engine.Coord
		label string
		r     rune
	}{
		{engine.At(1, 0), "1", '1'},
		{engine.At(0, 3), "9", '9'},
		{engine.At(0, 4), "10", 'a'},
		{engine.At(9, 4), "10", 'a'},
		{engine.At(0, 6), "12", 'c'},
	}
	for _, tt := range tests {
		m, _ := g.Marker(tt.port)
		if m.Label() != tt.label || m.Rune() != tt.r {
			t.Errorf("marker at %v = %q/%q, want %q/%q", tt.port, m.Label(), m.Rune(), tt.label, tt.r)
		}
	}
	if got := g.CellRune(engine.At(0, 4), false); got != 'a' {
		t.Errorf("CellRune(0,4) = %q, want 'a'", got)
	}
}

func TestPortsUsedInOrder(t *testing.T) {
	g := newClassicGame(t)
	g.FireRay(0, 4) // exits at (4,9)
	g.FireRay(9, 1) // absorbed
	g.FireRay(4, 9) // both ports already paid

	want := []engine.Coord{engine.At(0, 4), engine.At(4, 9), engine.At(9, 1)}
	got := g.PortsUsed()
	if len(got) != len(want) {
		t.Fatalf("PortsUsed() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("PortsUsed()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestNewRejectsBadConfiguration(t *testing.T) {
	if _, err := engine.New(nil); !errors.Is(err, engine.ErrInvalidConfiguration) {
		t.Errorf("New(nil) error = %v, want ErrInvalidConfiguration", err)
	}
}
