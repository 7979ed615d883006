package engine

import "errors"

var (
	// ErrOutOfRange is returned for coordinates outside the 10x10 grid.
	ErrOutOfRange = errors.New("coordinate out of range")

	// ErrInvalidConfiguration is returned when an atom set cannot form a board.
	ErrInvalidConfiguration = errors.New("invalid atom configuration")

	// ErrNotInterior is returned when a guess targets the border frame.
	ErrNotInterior = errors.New("coordinate is not inside the field")
)
