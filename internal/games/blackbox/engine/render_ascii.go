package engine

import (
	"fmt"
	"strings"
)

// RenderASCII draws the box as text, one cell per column.
//
// Format:
//   - Border ports: '.' unused, marker label (H, R, detour number mod 10) once used
//   - Corners: '+'
//   - Field: '.' empty, 'o' correct guess, 'x' wrong guess, '*' atom (reveal only)
func RenderASCII(g *Game, reveal bool) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Score: %d | Atoms left: %d | Rays: %d\n",
		g.CurrentScore(), g.AtomsRemaining(), len(g.shots)))

	for r := 0; r < GridSize; r++ {
		for c := 0; c < GridSize; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteRune(g.CellRune(At(r, c), reveal))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// CellRune returns the character RenderASCII uses for a cell.
func (g *Game) CellRune(c Coord, reveal bool) rune {
	switch {
	case c.IsCorner():
		return '+'
	case c.OnBorder():
		m, ok := g.markers[c]
		if !ok {
			return '.'
		}
		return m.Rune()
	}

	guessed, correct := g.Guessed(c)
	switch {
	case guessed && correct:
		return 'o'
	case guessed:
		return 'x'
	case reveal && g.board.IsAtom(c):
		return '*'
	default:
		return '.'
	}
}
