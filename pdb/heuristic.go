package pdb

import (
	"github.com/katalvlaran/pegsolve/board"
	"github.com/katalvlaran/pegsolve/heuristic"
)

// HeuristicValue sums each region's table cost for b directly, without
// constructing a heuristic.Evaluator; AStar/IDAStar call this on every
// node expansion so it avoids the closure-call overhead Heuristic's
// returned Evaluator would add.
func (t Tables) HeuristicValue(b board.Board) float64 {
	total := 0
	for r := Region(0); r < numRegions; r++ {
		total += t.Lookup(b.Pegs, r)
	}

	return float64(total)
}

// Heuristic sums each region's table cost to produce an admissible
// lower bound on the number of jumps remaining (spec 4.D, property P7):
// since every region's cost is the exact minimum number of intra-region
// jumps to reach one peg, and the five regions are disjoint, no real
// jump sequence can finish in fewer than the sum of the five minima.
func Heuristic(tables Tables) heuristic.Evaluator {
	return heuristic.Evaluator{
		Name:             "pattern-db",
		Admissible:       true,
		EnglishCrossOnly: true,
		NeedsPDB:         true,
		Score:            tables.HeuristicValue,
	}
}
