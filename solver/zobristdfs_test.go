package solver_test

import (
	"testing"

	"github.com/katalvlaran/pegsolve/solver"
	"github.com/katalvlaran/pegsolve/verify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestS1ZobristDFSFindsSolution(t *testing.T) {
	b := s1Board(t)
	res, err := solver.ZobristDFS(b, solver.DefaultOptions())
	require.NoError(t, err)
	assert.True(t, verify.Verify(b, res.Moves, nil))
}

func TestS2ZobristDFSFindsSevenMoveSolution(t *testing.T) {
	b := s2Board(t)
	res, err := solver.ZobristDFS(b, solver.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 7, len(res.Moves))
	assert.True(t, verify.Verify(b, res.Moves, nil))
}

func TestS5ZobristDFSReportsNoSolution(t *testing.T) {
	b := s5Board(t)
	_, err := solver.ZobristDFS(b, solver.DefaultOptions())
	require.Error(t, err)
}
