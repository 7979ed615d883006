package engine_test

import (
	"strings"
	"testing"

	"github.com/vovakirdan/blackbox/internal/games/blackbox/engine"
)

func TestRenderASCII(t *testing.T) {
	g := newClassicGame(t)
	g.FireRay(0, 4)
	g.FireRay(9, 1)
	g.GuessAtom(5, 3)
	g.GuessAtom(2, 2)

	lines := strings.Split(strings.TrimRight(engine.RenderASCII(g, false), "\n"), "\n")
	if len(lines) != engine.GridSize+1 {
		t.Fatalf("got %d lines, want %d", len(lines), engine.GridSize+1)
	}

	if lines[0] != "Score: 17 | Atoms left: 2 | Rays: 2" {
		t.Errorf("header = %q", lines[0])
	}

	// Cell (r, c) is at column 2*c of line r+1.
	cell := func(r, c int) byte { return lines[r+1][2*c] }

	checks := []struct {
		r, c int
		want byte
	}{
		{0, 0, '+'},
		{0, 4, '1'},
		{4, 9, '1'},
		{9, 1, 'H'},
		{0, 6, '.'},
		{5, 3, 'o'},
		{2, 2, 'x'},
		{5, 1, '.'},
	}
	for _, c := range checks {
		if got := cell(c.r, c.c); got != c.want {
			t.Errorf("cell (%d,%d) = %q, want %q", c.r, c.c, got, c.want)
		}
	}

	revealed := strings.Split(engine.RenderASCII(g, true), "\n")
	if revealed[6][2] != '*' {
		t.Errorf("revealed atom at (5,1) = %q, want '*'", revealed[6][2])
	}
}
