package heuristic

import "github.com/katalvlaran/pegsolve/board"

// PegCountLowerBound is h0 = popcount(pegs) - 1, the trivial admissible
// bound: every move removes exactly one peg, so at least h0 moves remain.
func PegCountLowerBound(b board.Board) int {
	return b.PegCount() - 1
}

// DistanceToCentre sums the Manhattan distance of every peg to the grid
// centre (3,3), regardless of Valid shape.
func DistanceToCentre(b board.Board) int {
	total := 0
	for pos := 0; pos < board.NumCells; pos++ {
		c := board.Cell(pos)
		if !b.HasPeg(c) {
			continue
		}
		row, col := c.RowCol()
		total += absInt(row-3) + absInt(col-3)
	}

	return total
}

// DistanceToCell returns the Manhattan distance between two cells,
// used by solver move tie-breaks to rank a jump's destination against
// a target cell (spec 4.F, DFS-memo step 5).
func DistanceToCell(a, b board.Cell) int {
	ar, ac := a.RowCol()
	br, bc := b.RowCol()

	return absInt(ar-br) + absInt(ac-bc)
}

// Mobility returns |moves|. The combined evaluator's -2*mobility term
// (spec 4.C) must reward mobility, not penalize it -- matching
// original_source/heuristics/evaluation.py's `score -= num_moves *
// 2.0` -- so Mobility reports the plain move count and lets the -2
// coefficient do the rewarding; a state with more legal jumps scores
// lower.
func Mobility(b board.Board) int {
	return len(b.Moves())
}

// Isolation counts pegs with no 4-neighbour peg.
func Isolation(b board.Board) int {
	count := 0
	for pos := 0; pos < board.NumCells; pos++ {
		c := board.Cell(pos)
		if !b.HasPeg(c) {
			continue
		}
		if !hasNeighborPeg(b, c) {
			count++
		}
	}

	return count
}

func hasNeighborPeg(b board.Board, c board.Cell) bool {
	row, col := c.RowCol()
	deltas := [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	for _, d := range deltas {
		nr, nc := row+d[0], col+d[1]
		if nr < 0 || nr >= board.Width || nc < 0 || nc >= board.Width {
			continue
		}
		n := board.FromRowCol(nr, nc)
		if b.IsValid(n) && b.HasPeg(n) {
			return true
		}
	}

	return false
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
