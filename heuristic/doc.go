// Package heuristic provides the admissible and non-admissible
// evaluation functions used by the solver family: the trivial peg-count
// bound, the Pagoda invariant, distance/mobility/isolation, and the
// combined weighted evaluator used by beam search and aggressive A*.
//
// See pagoda.go, basic.go, evaluator.go.
package heuristic
