package board_test

import (
	"testing"

	"github.com/katalvlaran/pegsolve/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReverseMovesUndoesForwardMove(t *testing.T) {
	start := board.EnglishStart()
	fwd := board.Move{From: 16, Over: 17, To: 18}
	after := start.Apply(fwd)

	var found bool
	for _, rm := range after.ReverseMoves() {
		if rm.From == 18 && rm.Over == 17 && rm.To == 16 {
			found = true
			undone := after.Apply(rm)
			assert.Equal(t, start.Pegs, undone.Pegs)
		}
	}
	require.True(t, found, "expected a reverse move undoing the forward jump")
}

func TestReverseMovesRespectBounds(t *testing.T) {
	// A single peg at a corner of the valid mask has no reverse moves
	// that would step outside the board.
	b, err := board.NewEnglish(uint64(1) << uint(2))
	require.NoError(t, err)
	for _, rm := range b.ReverseMoves() {
		assert.True(t, b.IsValid(rm.Over))
		assert.True(t, b.IsValid(rm.To))
	}
}
