// Package engine implements the Black Box ray tracing and scoring rules.
// It is pure logic: no terminal, storage or timing dependencies.
package engine

import "fmt"

// Grid geometry. The box is a fixed 8x8 field wrapped in a one-cell border.
const (
	GridSize = 10
	FieldMin = 1
	FieldMax = GridSize - 2
)

// Coord is a (row, col) position on the 10x10 grid, 0-indexed.
type Coord struct {
	Row int
	Col int
}

// At is a convenience constructor for Coord.
func At(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Add returns a new Coord offset by (dr, dc).
func (c Coord) Add(dr, dc int) Coord {
	return Coord{Row: c.Row + dr, Col: c.Col + dc}
}

// Step returns the neighbouring Coord in the given direction.
func (c Coord) Step(d Direction) Coord {
	dr, dc := d.Delta()
	return c.Add(dr, dc)
}

// InGrid reports whether c lies within 0..9 on both axes.
func (c Coord) InGrid() bool {
	return c.Row >= 0 && c.Row < GridSize && c.Col >= 0 && c.Col < GridSize
}

// InField reports whether c lies in the 8x8 interior.
func (c Coord) InField() bool {
	return c.Row >= FieldMin && c.Row <= FieldMax && c.Col >= FieldMin && c.Col <= FieldMax
}

// OnBorder reports whether c is part of the border frame (corners included).
func (c Coord) OnBorder() bool {
	return c.InGrid() && !c.InField()
}

// IsCorner reports whether c is one of the four frame corners.
func (c Coord) IsCorner() bool {
	return c.OnBorder() && (c.Row == c.Col || c.Row+c.Col == GridSize-1)
}

// Direction is an axis-aligned ray heading.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Delta returns the row and column offsets for one step.
func (d Direction) Delta() (dr, dc int) {
	switch d {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	}
	return 0, 0
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return "Unknown"
	}
}

// directionOf maps a unit offset back to a heading.
func directionOf(dr, dc int) Direction {
	switch {
	case dr < 0:
		return Up
	case dr > 0:
		return Down
	case dc < 0:
		return Left
	default:
		return Right
	}
}
