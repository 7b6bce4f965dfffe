package pdb

import "github.com/katalvlaran/pegsolve/board"

// Region names the five disjoint cell groups the English board is
// partitioned into for additive pattern-database scoring.
type Region int

const (
	Top Region = iota
	Bottom
	Left
	Right
	Centre
	numRegions
)

// String renders the Region's name.
func (r Region) String() string {
	switch r {
	case Top:
		return "Top"
	case Bottom:
		return "Bottom"
	case Left:
		return "Left"
	case Right:
		return "Right"
	case Centre:
		return "Centre"
	default:
		return "Unknown"
	}
}

// RegionCells lists, per Region, the board cells it owns. Top and Bottom
// are the 2x3 arm blocks nearest the board's top/bottom edges; Left and
// Right are the 2x3 arm blocks nearest the left/right edges; Centre is
// the inner 3x3 block. Every one of the 33 valid English cells appears
// in exactly one region.
var RegionCells = [numRegions][]board.Cell{
	Top:    {2, 3, 4, 9, 10, 11},
	Bottom: {37, 38, 39, 44, 45, 46},
	Left:   {14, 21, 28, 15, 22, 29},
	Right:  {19, 26, 33, 20, 27, 34},
	Centre: {16, 17, 18, 23, 24, 25, 30, 31, 32},
}

// RegionOf maps every valid cell to its owning Region, built once in
// init from RegionCells so the rest of the package never repeats the
// literal cell lists.
var RegionOf [board.NumCells]Region

// regionMask is the bit-mask of cells belonging to each region,
// precomputed for fast Board.Pegs restriction via AND.
var regionMask [numRegions]uint64

func init() {
	for i := range RegionOf {
		RegionOf[i] = -1
	}
	for r, cells := range RegionCells {
		for _, c := range cells {
			RegionOf[c] = Region(r)
			regionMask[r] |= uint64(1) << uint(c)
		}
	}
	assertDisjointAndCovering()
}

// assertDisjointAndCovering verifies, via union-find over the 33 valid
// cells, that the five regions are pairwise disjoint and jointly cover
// every valid cell exactly once. It panics at init time if the literal
// cell lists above were ever edited into an inconsistent partition,
// the same fail-fast discipline prim_kruskal's DisjointSet uses to
// reject a cycle rather than silently union already-connected sets.
func assertDisjointAndCovering() {
	parent := make(map[board.Cell]board.Cell, 33)
	rank := make(map[board.Cell]int, 33)

	var find func(board.Cell) board.Cell
	find = func(c board.Cell) board.Cell {
		if parent[c] != c {
			parent[c] = find(parent[c])
		}
		return parent[c]
	}
	union := func(a, b board.Cell) {
		ra, rb := find(a), find(b)
		if ra == rb {
			return
		}
		if rank[ra] < rank[rb] {
			ra, rb = rb, ra
		}
		parent[rb] = ra
		if rank[ra] == rank[rb] {
			rank[ra]++
		}
	}

	seen := make(map[board.Cell]bool, 33)
	for _, cells := range RegionCells {
		var anchor board.Cell = -1
		for _, c := range cells {
			if seen[c] {
				panic("pdb: region partition assigns a cell to more than one region")
			}
			seen[c] = true
			if _, ok := parent[c]; !ok {
				parent[c] = c
				rank[c] = 0
			}
			if anchor == -1 {
				anchor = c
			} else {
				union(anchor, c)
			}
		}
	}

	total := 0
	for c := board.Cell(0); c < board.NumCells; c++ {
		if board.EnglishValidMask&(uint64(1)<<uint(c)) != 0 {
			total++
			if !seen[c] {
				panic("pdb: region partition omits a valid board cell")
			}
		}
	}
	if total != 33 {
		panic("pdb: English board does not have 33 valid cells")
	}
}

// Project restricts a board's peg mask to the cells owned by r.
func Project(pegs uint64, r Region) uint64 {
	return pegs & regionMask[r]
}
