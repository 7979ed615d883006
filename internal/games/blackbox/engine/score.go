package engine

// Scoring rules.
const (
	StartingScore = 25
	PortPenalty   = 1
	GuessPenalty  = 5
)

// ScoreTracker keeps the running score and the ports and cells already paid for.
// Both sets only grow and the score never increases.
type ScoreTracker struct {
	score   int
	ports   map[Coord]bool
	guesses map[Coord]bool

	// Insertion order, for display.
	portOrder  []Coord
	guessOrder []Coord
}

// NewScoreTracker creates a tracker at the starting score.
func NewScoreTracker() *ScoreTracker {
	return &ScoreTracker{
		score:   StartingScore,
		ports:   make(map[Coord]bool),
		guesses: make(map[Coord]bool),
	}
}

// ChargeForPort deducts a point the first time a port is used as an entry or exit.
// Returns true if a deduction was made.
func (s *ScoreTracker) ChargeForPort(c Coord) bool {
	if s.ports[c] {
		return false
	}
	s.ports[c] = true
	s.portOrder = append(s.portOrder, c)
	s.score -= PortPenalty
	return true
}

// ChargeForGuess records the first guess at c, deducting the guess penalty if it
// was wrong. Returns true if this was the first guess at c.
func (s *ScoreTracker) ChargeForGuess(c Coord, correct bool) bool {
	if s.guesses[c] {
		return false
	}
	s.guesses[c] = true
	s.guessOrder = append(s.guessOrder, c)
	if !correct {
		s.score -= GuessPenalty
	}
	return true
}

// Score returns the current score. It may be negative.
func (s *ScoreTracker) Score() int {
	return s.score
}

// PortUsed reports whether c has already been charged as a port.
func (s *ScoreTracker) PortUsed(c Coord) bool {
	return s.ports[c]
}

// Guessed reports whether c has already been guessed.
func (s *ScoreTracker) Guessed(c Coord) bool {
	return s.guesses[c]
}

// Ports returns the charged ports in order of first use.
func (s *ScoreTracker) Ports() []Coord {
	out := make([]Coord, len(s.portOrder))
	copy(out, s.portOrder)
	return out
}

// Guesses returns the guessed cells in order of first guess.
func (s *ScoreTracker) Guesses() []Coord {
	out := make([]Coord, len(s.guessOrder))
	copy(out, s.guessOrder)
	return out
}
