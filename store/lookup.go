package store

import "github.com/katalvlaran/pegsolve/board"

// lookupSymmetryAware fetches the entry stored under b's canonical key
// and rotates its moves back into b's own orientation. Put stores moves
// in canonical D4 orientation (via Symmetry.ApplyMove); recovering them
// for a query board b means applying the inverse of whichever symmetry
// carries b to canonical, which is exactly what
// board.CanonicalWithSymmetry(b) returns the index of.
func lookupSymmetryAware(s *Store, b board.Board) (Entry, bool) {
	key, symIndex := board.CanonicalWithSymmetry(b)

	e, ok := s.rawLookup(key)
	if !ok {
		return Entry{}, false
	}

	sym := board.Symmetries[symIndex]
	moves := make([]board.Move, len(e.Moves))
	for i, m := range e.Moves {
		moves[i] = sym.ApplyInverseMove(m)
	}
	e.Moves = moves

	return e, true
}
