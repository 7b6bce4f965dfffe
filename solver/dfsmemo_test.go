package solver_test

import (
	"testing"

	"github.com/katalvlaran/pegsolve/board"
	"github.com/katalvlaran/pegsolve/solver"
	"github.com/katalvlaran/pegsolve/verify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestS1DFSMemoFindsSingleMoveSolution exercises scenario S1.
func TestS1DFSMemoFindsSingleMoveSolution(t *testing.T) {
	b := s1Board(t)
	res, err := solver.DFSMemo(b, solver.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, []board.Move{{From: 16, Over: 17, To: 18}}, res.Moves)
	assert.True(t, verify.Verify(b, res.Moves, nil))
}

// TestS2DFSMemoFindsSevenMoveSolution exercises scenario S2: a verified
// solution of length 7 exists for the tiny central block.
func TestS2DFSMemoFindsSevenMoveSolution(t *testing.T) {
	b := s2Board(t)
	res, err := solver.DFSMemo(b, solver.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 7, len(res.Moves))
	assert.True(t, verify.Verify(b, res.Moves, nil))
}

// TestS5DFSMemoReportsNoSolution exercises scenario S5: two isolated
// pegs, unsolvable.
func TestS5DFSMemoReportsNoSolution(t *testing.T) {
	b := s5Board(t)
	_, err := solver.DFSMemo(b, solver.DefaultOptions())
	require.Error(t, err)
}

// TestS6PagodaBlockedTerminatesWithoutExpanding exercises scenario S6:
// a Pagoda sum below w[centre] prunes before any move is generated.
func TestS6PagodaBlockedTerminatesWithoutExpanding(t *testing.T) {
	pegs := uint64(1)<<2 | uint64(1)<<44 // weight 1 + weight 1 = 2 < w[centre]=6
	b, err := board.NewEnglish(pegs)
	require.NoError(t, err)

	opts := solver.DefaultOptions()
	target := board.CenterPos
	opts.Target = &target
	res, err := solver.DFSMemo(b, opts)
	require.Error(t, err)
	assert.Equal(t, 1, res.Stats.Visited)
	assert.Equal(t, 1, res.Stats.Pruned)
}
