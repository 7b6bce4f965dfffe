// Package verify implements the mandatory replay-and-check gate (spec
// 4.E) that every solver output passes through before acceptance: no
// engine is trusted, every path from a solver to a caller goes through
// Verify.
package verify

import (
	"errors"

	"github.com/katalvlaran/pegsolve/board"
	"github.com/katalvlaran/pegsolve/pegerr"
)

// ErrValidationFailed is the sentinel wrapped by VerifyOrError.
var ErrValidationFailed = errors.New("verify: solution failed verification")

// Verify replays moves against start and reports whether the sequence is
// legal start-to-finish and ends at exactly one peg. If target is
// non-nil, the lone remaining peg must sit at *target.
//
// Verify never panics on malformed input: a move whose cells fail any of
// the legality checks (spec 4.E: all three cells in Valid; From, Over
// hold pegs; To is empty; the three cells are a legal jump) simply fails
// verification, it does not index out of range, since board.Cell values
// from a solver are always in [0,49) by construction.
func Verify(start board.Board, moves []board.Move, target *board.Cell) bool {
	cur := start
	for _, m := range moves {
		if !legalMove(cur, m) {
			return false
		}
		cur = cur.Apply(m)
	}

	if cur.PegCount() != 1 {
		return false
	}
	if target == nil {
		return true
	}

	return cur.HasPeg(*target)
}

// legalMove checks spec 4.E's per-move conditions: cells in Valid,
// From/Over hold pegs, To is empty, and the three cells form a genuine
// one-step jump (collinear, equi-spaced, axis-aligned).
func legalMove(b board.Board, m board.Move) bool {
	if !b.IsValid(m.From) || !b.IsValid(m.Over) || !b.IsValid(m.To) {
		return false
	}
	if !b.HasPeg(m.From) || !b.HasPeg(m.Over) {
		return false
	}
	if b.HasPeg(m.To) {
		return false
	}

	return isJumpGeometry(m)
}

// isJumpGeometry reports whether From, Over, To are collinear,
// axis-aligned, and equi-spaced by one cell: Over = From + d, To = From
// + 2d for d in {+1,-1,+7,-7}, with no row wraparound on the
// column-axis steps.
func isJumpGeometry(m board.Move) bool {
	fr, fc := m.From.RowCol()
	or, oc := m.Over.RowCol()
	tr, tc := m.To.RowCol()

	switch {
	case fr == or && or == tr && fc+1 == oc && fc+2 == tc:
		return true
	case fr == or && or == tr && fc-1 == oc && fc-2 == tc:
		return true
	case fc == oc && oc == tc && fr+1 == or && fr+2 == tr:
		return true
	case fc == oc && oc == tc && fr-1 == or && fr-2 == tr:
		return true
	default:
		return false
	}
}

// VerifyOrError is Verify, but returns a *pegerr.Error tagged
// ValidationFailed instead of a bool, for callers (meta-solvers) that
// need to propagate the failure as an error per spec 4.E/7.
func VerifyOrError(start board.Board, moves []board.Move, target *board.Cell) error {
	if Verify(start, moves, target) {
		return nil
	}

	return pegerr.New(pegerr.ValidationFailed, ErrValidationFailed)
}
