package store_test

import (
	"testing"

	"github.com/katalvlaran/pegsolve/board"
	"github.com/katalvlaran/pegsolve/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// s2Board builds the S2 scenario: the tiny 8-peg central block.
func s2Board(t *testing.T) board.Board {
	t.Helper()
	var pegs uint64
	for _, c := range []int{16, 17, 18, 23, 24, 25, 30, 31} {
		pegs |= uint64(1) << uint(c)
	}
	b, err := board.NewEnglish(pegs)
	require.NoError(t, err)
	return b
}

// s2PartialSolution is three legal jumps within s2Board's 3x3 block,
// each reducing the peg count by one (8 -> 7 -> 6 -> 5).
func s2PartialSolution() []board.Move {
	return []board.Move{
		{From: 30, Over: 31, To: 32},
		{From: 16, Over: 23, To: 30},
		{From: 17, Over: 24, To: 31},
	}
}

func TestBuildFromSolutionSnapshotsEveryFifthMoveAndLast(t *testing.T) {
	b := s2Board(t)
	solution := s2PartialSolution()

	db := store.NewWaypointDatabase()
	db.BuildFromSolution(b, solution)

	stats := db.Stats()
	assert.Equal(t, 1, stats.TotalWaypoints) // fewer than 5 moves: only the final snapshot

	final := b
	for _, m := range solution {
		final = final.Apply(m)
	}
	w, ok := db.FindWaypoint(final)
	require.True(t, ok)
	assert.Empty(t, w.ToGoal)
	assert.Equal(t, solution, w.FromStart)
	assert.Equal(t, 5, w.PegCount)
}

func TestFindByPegCountReturnsMatchingWaypoints(t *testing.T) {
	b := s2Board(t)
	solution := s2PartialSolution()[:2] // 8 -> 7 -> 6

	db := store.NewWaypointDatabase()
	db.BuildFromSolution(b, solution)

	found := db.FindByPegCount(6)
	require.Len(t, found, 1)
	assert.Equal(t, 6, found[0].Board.PegCount())
	assert.Empty(t, found[0].ToGoal) // last move of this (short) solution

	replayed := b
	for _, m := range found[0].FromStart {
		replayed = replayed.Apply(m)
	}
	assert.Equal(t, found[0].Board.Pegs, replayed.Pegs)
}
