package zobrist_test

import (
	"testing"

	"github.com/katalvlaran/pegsolve/board"
	"github.com/katalvlaran/pegsolve/zobrist"
	"github.com/stretchr/testify/assert"
)

// TestP5IncrementalMatchesFullRecompute checks property P5: the
// incrementally updated hash after a move equals a from-scratch hash of
// the resulting pegs mask.
func TestP5IncrementalMatchesFullRecompute(t *testing.T) {
	start := zobrist.New(board.EnglishStart())
	for _, m := range start.Moves() {
		after := start.Apply(m)
		assert.Equal(t, zobrist.Hash(after.Pegs), after.Hash)

		want := start.Hash ^ zobrist.Table[m.From] ^ zobrist.Table[m.Over] ^ zobrist.Table[m.To]
		assert.Equal(t, want, after.Hash)
	}
}

func TestTableConstantsAreNonZeroAndDistinct(t *testing.T) {
	// Checks that a sample constant is non-zero and that no two cells
	// share a constant -- a smoke test of the seeded table, not a
	// cryptographic claim.
	assert.NotZero(t, zobrist.Table[2])
	seen := map[uint64]bool{}
	for _, v := range zobrist.Table {
		assert.False(t, seen[v], "zobrist table constants should be distinct")
		seen[v] = true
	}
}

func TestHashEmptyBoardIsZero(t *testing.T) {
	assert.Equal(t, uint64(0), zobrist.Hash(0))
}
