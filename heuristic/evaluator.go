package heuristic

import "github.com/katalvlaran/pegsolve/board"

// Evaluator is a tagged capability + scoring function, the "dynamic
// heuristic dispatch" design note (spec 9) modeled as data rather than an
// interface hierarchy: Admissible/EnglishCrossOnly/NeedsPDB let a solver
// pick a compatible Evaluator without a type switch, the same way
// tsp.Options.BoundAlgo/MatchingAlgo select a strategy by enum rather
// than by interface.
type Evaluator struct {
	Name             string
	Admissible       bool
	EnglishCrossOnly bool
	NeedsPDB         bool
	Score            func(board.Board) float64
}

// PegCountEvaluator is h0, admissible everywhere.
var PegCountEvaluator = Evaluator{
	Name:       "peg-count",
	Admissible: true,
	Score:      func(b board.Board) float64 { return float64(PegCountLowerBound(b)) },
}

// softPagodaThreshold is the peg count at or below which the combined
// evaluator switches from a fixed-target Pagoda check to the soft
// (minimum-weight) variant, per spec 4.C.
const softPagodaThreshold = 15

// CombinedEvaluator implements the non-admissible weighted blend used by
// beam search and aggressive A* (spec 4.C):
//
//	10*popcount + sum(distance) - 2*mobility + 15*isolation + 1000*[Pagoda violated]
//
// target is the designated goal cell for the fixed-target Pagoda check;
// pass board.CenterPos when no specific target narrower than "any
// single peg" is required. At or below softPagodaThreshold pegs, the
// soft-Pagoda variant (compare against the minimum weight, not a fixed
// target) is used instead, since a fixed target becomes an overly tight
// constraint once few pegs remain and many cells are live candidates.
func CombinedEvaluator(target board.Cell) Evaluator {
	return Evaluator{
		Name:             "combined",
		Admissible:       false,
		EnglishCrossOnly: false,
		Score: func(b board.Board) float64 {
			score := 10*float64(b.PegCount()) +
				float64(DistanceToCentre(b)) -
				2*float64(Mobility(b)) +
				15*float64(Isolation(b))

			if b.IsEnglishCross() {
				solvable := true
				if b.PegCount() <= softPagodaThreshold {
					solvable = PagodaSolvableSoft(b)
				} else {
					solvable = PagodaSolvableForTarget(b, target)
				}
				if !solvable {
					score += 1000
				}
			}

			return score
		},
	}
}
