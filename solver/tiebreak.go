package solver

import (
	"sort"

	"github.com/katalvlaran/pegsolve/board"
	"github.com/katalvlaran/pegsolve/heuristic"
)

// sortByTieBreak orders moves by destination Manhattan distance to
// centre ascending, then by the jumped-over cell's Pagoda weight
// descending (spec 4.F, DFS-memo step 5; reused by IDAStar). This is
// the single ordering every depth-first engine in the family uses so
// that search behaviour is deterministic and reproducible across runs,
// matching tsp/bb.go's buildNeighborOrder determinism discipline.
func sortByTieBreak(moves []board.Move) {
	sort.SliceStable(moves, func(i, j int) bool {
		di := heuristic.DistanceToCell(moves[i].To, board.CenterPos)
		dj := heuristic.DistanceToCell(moves[j].To, board.CenterPos)
		if di != dj {
			return di < dj
		}
		wi := heuristic.PagodaWeight[moves[i].Over]
		wj := heuristic.PagodaWeight[moves[j].Over]

		return wi > wj
	})
}
