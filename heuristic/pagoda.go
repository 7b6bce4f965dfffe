package heuristic

import (
	"math/bits"

	"github.com/katalvlaran/pegsolve/board"
)

// PagodaWeight is the classical Pagoda invariant weighting for the
// English cross (spec 4.C), carried over verbatim from the reference
// implementation's PAGODA_WEIGHTS: symmetric, increasing toward the
// centre, centre weight 6. Indexed by board.Cell; zero outside the cross.
var PagodaWeight [board.NumCells]int

func init() {
	weights := map[board.Cell]int{
		2: 1, 3: 2, 4: 1,
		9: 2, 10: 4, 11: 2,
		14: 1, 15: 2, 16: 3, 17: 4, 18: 3, 19: 2, 20: 1,
		21: 2, 22: 4, 23: 4, 24: 6, 25: 4, 26: 4, 27: 2,
		28: 1, 29: 2, 30: 3, 31: 4, 32: 3, 33: 2, 34: 1,
		37: 2, 38: 4, 39: 2,
		44: 1, 45: 2, 46: 1,
	}
	for c, w := range weights {
		PagodaWeight[c] = w
	}
}

// PagodaSum returns Sigma w[pos] for pegs of b. Only meaningful on the
// English cross; callers should guard with b.IsEnglishCross() (the
// weighting is all-zero, and therefore useless, off the cross).
func PagodaSum(b board.Board) int {
	sum := 0
	for mask := b.Pegs; mask != 0; {
		pos := bits.TrailingZeros64(mask)
		mask &= mask - 1
		sum += PagodaWeight[pos]
	}

	return sum
}

// PagodaSolvableForTarget reports whether b's Pagoda sum is large enough
// to possibly reach a single peg at target: Sigma w >= w[target] is
// necessary (not sufficient) because Pagoda never increases under a
// legal move (property P6).
func PagodaSolvableForTarget(b board.Board, target board.Cell) bool {
	return PagodaSum(b) >= PagodaWeight[target]
}

// PagodaSolvableSoft is the "soft" variant used when no specific target
// is fixed: compares against the minimum nonzero weight on the cross
// instead of a single target's weight.
func PagodaSolvableSoft(b board.Board) bool {
	return PagodaSum(b) >= minPagodaWeight
}

var minPagodaWeight = func() int {
	min := PagodaWeight[2]
	for _, w := range PagodaWeight {
		if w > 0 && w < min {
			min = w
		}
	}

	return min
}()
