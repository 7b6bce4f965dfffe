// Package pegerr defines the cross-cutting error kinds shared by every
// peg-solitaire package: board validation, solver outcomes, and store
// persistence each surface one of a small closed set of Kind values so
// callers can branch with errors.Is/errors.As instead of string matching.
//
// Individual packages still keep their own local sentinel errors for
// conditions that never cross a package boundary (board.ErrCellOutOfRange,
// for example); Kind is reserved for the outcomes spec'd in §7: a position
// is malformed, a search ran out of room, a deadline passed, a produced
// solution failed verification, or the on-disk store could not be read
// or written.
package pegerr

import "errors"

// Kind classifies the outcome of a solve/verify/store operation.
type Kind int

const (
	// InvalidBoard marks a malformed position: pegs not a subset of
	// valid, a cell index outside [0,49), or unparseable notation.
	InvalidBoard Kind = iota

	// NoSolution marks a search that exhausted its space without
	// finding a solution. Only solvers that can prove unsolvability
	// (DFS-memo exhausting all canonical descendants) may attach this
	// to a "provably unsolvable" claim; others just mean "not found".
	NoSolution

	// TimedOut marks a search that reached its deadline before
	// finishing.
	TimedOut

	// ValidationFailed marks a solver output that did not pass the
	// verifier. This is always a solver bug, never a user error, and
	// it escalates out of meta-solvers rather than being swallowed.
	ValidationFailed

	// StoreIO marks a failure to read or write the solution-store
	// file. Never fatal to solving; the caller degrades to an
	// in-memory-only store.
	StoreIO

	// CacheError marks a store file that was readable but corrupt or
	// in an unrecognized shape. Callers degrade to an empty store.
	CacheError
)

// String renders the Kind's name, matching the identifier above.
func (k Kind) String() string {
	switch k {
	case InvalidBoard:
		return "InvalidBoard"
	case NoSolution:
		return "NoSolution"
	case TimedOut:
		return "TimedOut"
	case ValidationFailed:
		return "ValidationFailed"
	case StoreIO:
		return "StoreIO"
	case CacheError:
		return "CacheError"
	default:
		return "Unknown"
	}
}

// Error wraps an underlying error with its Kind, so callers can test
// with errors.Is(err, pegerr.NoSolution-equivalent sentinel) or switch
// on errors.As(err, &pegErr).Kind.
type Error struct {
	Kind Kind
	Err  error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err == nil {
		return e.Kind.String()
	}

	return e.Kind.String() + ": " + e.Err.Error()
}

// Unwrap exposes the wrapped error for errors.Is/errors.As chains.
func (e *Error) Unwrap() error { return e.Err }

// New constructs an *Error of the given kind wrapping err.
func New(k Kind, err error) *Error {
	return &Error{Kind: k, Err: err}
}

// Is reports whether err carries the given Kind, looking through any
// wrapping via errors.As.
func Is(err error, k Kind) bool {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind == k
	}

	return false
}
