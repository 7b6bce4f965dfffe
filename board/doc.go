// Package board implements the bit-parallel peg-solitaire board.
//
// A Board is a pair of 49-bit masks, (Pegs, Valid), with Pegs a subset of
// Valid. Moves, Apply, IsDead, and the D4 canonicalisation used by the
// English cross are all O(1) or O(popcount) bit operations; there is no
// per-cell loop over all 49 cells on the hot path except in the rare
// full-scan helpers (ReverseMoves) that genuinely need one.
//
// See types.go, moves.go, symmetry.go, reverse.go, english.go.
package board
