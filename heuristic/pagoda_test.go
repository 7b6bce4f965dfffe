package heuristic_test

import (
	"testing"

	"github.com/katalvlaran/pegsolve/board"
	"github.com/katalvlaran/pegsolve/heuristic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestP6PagodaMonotoneNonIncreasing checks property P6: Pagoda never
// increases under a legal move on the English cross.
func TestP6PagodaMonotoneNonIncreasing(t *testing.T) {
	b := board.EnglishStart()
	before := heuristic.PagodaSum(b)
	for _, m := range b.Moves() {
		after := b.Apply(m)
		assert.LessOrEqual(t, heuristic.PagodaSum(after), before)
	}
}

// TestS6PagodaBlocked checks scenario S6: a position whose Pagoda sum is
// strictly less than the centre weight is unsolvable to the centre.
func TestS6PagodaBlocked(t *testing.T) {
	// A single peg far from the centre has Pagoda sum 1 (corner weight),
	// far below the centre's weight of 6.
	b, err := board.NewEnglish(uint64(1) << uint(2))
	require.NoError(t, err)

	assert.False(t, heuristic.PagodaSolvableForTarget(b, board.CenterPos))
}

func TestPagodaWeightTableShape(t *testing.T) {
	assert.Equal(t, 6, heuristic.PagodaWeight[board.CenterPos])
	// Only the 33 cross cells carry a nonzero weight.
	count := 0
	for _, w := range heuristic.PagodaWeight {
		if w != 0 {
			count++
		}
	}
	assert.Equal(t, 33, count)
}
