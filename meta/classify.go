// Package meta implements the two meta-solvers (spec 4.G): Governor,
// which classifies a position and dispatches to one engine with a
// fallback ladder, and Sequential, which escalates through a fixed
// engine order until a verified solution is found. Both generalize
// tsp.SolveWithMatrix's validate-then-route-by-enum dispatcher shape.
package meta

import "github.com/katalvlaran/pegsolve/board"

// Class is a Governor classification bucket (spec 4.G step 2).
type Class int

const (
	Small Class = iota
	HighMobility
	Medium
	Hard
)

// String renders the Class's name.
func (c Class) String() string {
	switch c {
	case Small:
		return "small"
	case HighMobility:
		return "high-mobility"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return "unknown"
	}
}

// Classify buckets b by (pegs, |moves|, mobility=|moves|/pegs), exactly
// as spec 4.G step 2 specifies. Classes are checked in the fixed order
// small, high-mobility, medium, hard so a position satisfying more than
// one predicate (e.g. pegs<10 and mobility>1.5) resolves to the first
// match, matching the reference governor.py's if/elif chain.
func Classify(b board.Board) Class {
	pegs := b.PegCount()
	moves := len(b.Moves())
	mobility := 0.0
	if pegs > 0 {
		mobility = float64(moves) / float64(pegs)
	}

	switch {
	case pegs < 10 && mobility > 0.3:
		return Small
	case mobility > 1.5:
		return HighMobility
	case pegs >= 10 && pegs <= 20:
		return Medium
	case pegs > 20 || mobility < 0.5:
		return Hard
	default:
		return Medium
	}
}
