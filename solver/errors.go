package solver

import "errors"

// errExhausted and errDeadline are the sentinels every solver in the
// family wraps via pegerr, matching tsp's package-local errors.New
// sentinels (ErrTimeLimit, ErrIncompleteGraph, ...) rather than ad hoc
// fmt.Errorf strings at each call site.
var (
	errExhausted = errors.New("solver: search space exhausted, no solution")
	errDeadline  = errors.New("solver: deadline exceeded")
)
