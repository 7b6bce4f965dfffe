package store_test

import (
	"path/filepath"
	"testing"

	"github.com/katalvlaran/pegsolve/board"
	"github.com/katalvlaran/pegsolve/store"
	"github.com/katalvlaran/pegsolve/verify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rotateBoard builds a copy of b with every cell mapped through sym,
// used to produce a board symmetric to b without reaching into
// board's unexported transformPegs.
func rotateBoard(t *testing.T, b board.Board, sym board.Symmetry) board.Board {
	t.Helper()
	var pegs, valid uint64
	for c := board.Cell(0); c < board.NumCells; c++ {
		if b.HasPeg(c) {
			pegs |= uint64(1) << uint(sym.ApplyCell(c))
		}
		if b.IsValid(c) {
			valid |= uint64(1) << uint(sym.ApplyCell(c))
		}
	}
	rb, err := board.New(pegs, valid)
	require.NoError(t, err)
	return rb
}

func TestLookupIsSymmetryAware(t *testing.T) {
	path := filepath.Join(t.TempDir(), "solutions.json")
	s, err := store.Open(path)
	require.NoError(t, err)

	b := s1Board(t)
	moves := []board.Move{{From: 16, Over: 17, To: 18}}
	s.Put(b, store.Entry{Moves: moves, Solver: "dfs-memo"})

	rotated := rotateBoard(t, b, board.Symmetries[1]) // R: 90-degree rotation
	got, ok := s.Lookup(rotated)
	require.True(t, ok)
	assert.True(t, verify.Verify(rotated, got.Moves, nil))
}

func TestLookupMissesUnrelatedBoard(t *testing.T) {
	path := filepath.Join(t.TempDir(), "solutions.json")
	s, err := store.Open(path)
	require.NoError(t, err)

	b := s1Board(t)
	s.Put(b, store.Entry{Moves: []board.Move{{From: 16, Over: 17, To: 18}}, Solver: "dfs-memo"})

	other := uint64(1)<<2 | uint64(1)<<9
	ob, err := board.NewEnglish(other)
	require.NoError(t, err)

	_, ok := s.Lookup(ob)
	assert.False(t, ok)
}
