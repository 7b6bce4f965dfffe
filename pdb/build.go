package pdb

import "github.com/katalvlaran/pegsolve/board"

// Table maps a region-local peg mask (a subset of that region's cells)
// to the minimum number of jumps needed to reduce it to one peg using
// only jumps whose three cells lie inside the region. Masks with zero
// or exactly one bit set cost 0; masks that no sequence of in-region
// jumps reduces to one peg (a completely full region, for one, has no
// hole to jump into) are absent from the map, and Lookup treats a miss
// as cost 0, which keeps the sum a lower bound.
type Table map[uint64]int

// Tables holds one Table per Region, indexed by Region.
type Tables [numRegions]Table

// Build computes all five region tables via backward BFS (spec 4.D):
// for each region, every single-peg state is a zero-cost terminal, and
// ReverseMoves (board's backward-search primitive, spec 4.F) walks from
// each terminal to its predecessors -- states with one more peg --
// exactly mirroring the walker-driven layer-by-layer expansion
// bfs.BFS(core.Graph) performs over graph vertices, except the "graph"
// here is the implicit state space of region-local peg masks and edges
// are reverse jumps instead of adjacency-list neighbors.
func Build() Tables {
	var tables Tables
	for r := Region(0); r < numRegions; r++ {
		tables[r] = buildRegion(r)
	}

	return tables
}

// buildRegion runs the multi-source backward BFS for a single region.
func buildRegion(r Region) Table {
	mask := regionMask[r]
	cells := RegionCells[r]

	table := make(Table, 1<<uint(len(cells)))
	queue := make([]uint64, 0, 1<<uint(len(cells)))

	// Seed every single-peg terminal (cost 0) and the all-empty state,
	// which is already "solved" in the sense no reduction is possible.
	for _, c := range cells {
		terminal := uint64(1) << uint(c)
		table[terminal] = 0
		queue = append(queue, terminal)
	}
	table[0] = 0

	for head := 0; head < len(queue); head++ {
		s := queue[head]
		cost := table[s]

		sub := board.Board{Pegs: s, Valid: mask}
		for _, m := range sub.ReverseMoves() {
			pred := sub.Apply(m).Pegs
			if _, seen := table[pred]; seen {
				continue
			}
			table[pred] = cost + 1
			queue = append(queue, pred)
		}
	}

	return table
}

// Lookup returns the table cost for pegs restricted to region r, or 0 if
// the exact submask was never reached by the backward BFS (which can
// only happen for unreachable or already-trivial states).
func (t Tables) Lookup(pegs uint64, r Region) int {
	sub := Project(pegs, r)
	if cost, ok := t[r][sub]; ok {
		return cost
	}

	return 0
}
