package blackbox

import (
	"fmt"

	"github.com/vovakirdan/blackbox/internal/core"
	"github.com/vovakirdan/blackbox/internal/games/blackbox/engine"
)

// Layout constants. Each grid cell is drawn three columns wide so the
// cursor brackets fit around it.
const (
	cellW      = 3
	gridW      = engine.GridSize * cellW
	hudW       = 28
	minScreenW = gridW + hudW + 4
	minScreenH = engine.GridSize + 8
)

// Render draws the board, HUD and status line.
func (g *Game) Render(dst *core.Screen) {
	if g.box == nil {
		return
	}
	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	ox := (dst.Width() - gridW - hudW) / 2
	if ox < 1 {
		ox = 1
	}
	oy := 2

	dst.DrawTextColored(ox, 0, g.Title(), core.ColorBrightWhite)
	dst.DrawBox(core.NewRect(ox-1, oy-1, gridW+2, engine.GridSize+2), core.ColorGray)

	path := g.pathCells()
	reveal := g.over() && g.cfg.Display.RevealOnFinish

	for r := 0; r < engine.GridSize; r++ {
		for c := 0; c < engine.GridSize; c++ {
			cell := engine.At(r, c)
			x := ox + c*cellW
			y := oy + r

			ch, color := g.cellStyle(cell, reveal)
			if ch == '.' && path[cell] {
				ch, color = '•', core.ColorBlue
			}
			dst.SetColored(x+1, y, ch, color)

			if cell == g.cursor && !g.over() {
				dst.SetColored(x, y, '[', core.ColorYellow)
				dst.SetColored(x+2, y, ']', core.ColorYellow)
			}
		}
	}

	g.renderHUD(dst, ox+gridW+3, oy)

	msgY := oy + engine.GridSize + 1
	dst.DrawTextColored(ox, msgY, g.message, core.ColorCyan)

	if g.over() {
		dst.DrawTextColored(ox, msgY+1, "Press R to play again, Q to quit", core.ColorGray)
	}
}

// cellStyle picks the rune and color for a grid cell.
func (g *Game) cellStyle(c engine.Coord, reveal bool) (rune, core.Color) {
	ch := g.box.CellRune(c, reveal)

	switch {
	case c.IsCorner():
		return ch, core.ColorGray
	case c.OnBorder():
		m, ok := g.box.Marker(c)
		if !ok {
			return ch, core.ColorGray
		}
		switch m.Kind {
		case engine.MarkerHit:
			return ch, core.ColorRed
		case engine.MarkerReflection:
			return ch, core.ColorYellow
		default:
			return ch, core.ColorCyan
		}
	}

	switch ch {
	case 'o':
		return ch, core.ColorGreen
	case 'x':
		return ch, core.ColorRed
	case '*':
		return ch, core.ColorMagenta
	default:
		return ch, core.ColorGray
	}
}

// pathCells returns the interior cells of the last ray when path display is on.
func (g *Game) pathCells() map[engine.Coord]bool {
	cells := make(map[engine.Coord]bool)
	if g.lastRay == nil || !g.cfg.Display.ShowPath {
		return cells
	}
	for _, c := range g.lastRay.Path {
		if c.InField() {
			cells[c] = true
		}
	}
	return cells
}

// renderHUD draws score, counters and controls to the right of the board.
func (g *Game) renderHUD(dst *core.Screen, x, y int) {
	dst.DrawTextColored(x, y, fmt.Sprintf("Score:      %d", g.box.CurrentScore()), core.ColorBrightWhite)
	dst.DrawTextColored(x, y+1, fmt.Sprintf("Atoms left: %d", g.box.AtomsRemaining()), core.ColorWhite)
	dst.DrawTextColored(x, y+2, fmt.Sprintf("Rays fired: %d", len(g.box.Shots())), core.ColorWhite)
	dst.DrawTextColored(x, y+3, fmt.Sprintf("Ports used: %d", len(g.box.PortsUsed())), core.ColorWhite)
	dst.DrawTextColored(x, y+4, fmt.Sprintf("Cursor:     %s", g.cursor), core.ColorGray)

	legend := []string{
		"H hit   R reflection",
		"1-9 a-z detour pairs",
		"o found  x wrong guess",
		"",
		"Arrows/hjkl  move",
		"Enter/Space  fire/guess",
		"X            give up",
		"Q            quit",
	}
	for i, line := range legend {
		dst.DrawTextColored(x, y+6+i, line, core.ColorGray)
	}
}

// renderTooSmall shows a message when the window is too small.
func (g *Game) renderTooSmall(dst *core.Screen) {
	midY := dst.Height() / 2
	dst.DrawTextCentered(midY-1, "Window too small", core.ColorOrange)
	dst.DrawTextCentered(midY, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH), core.ColorOrange)
}
