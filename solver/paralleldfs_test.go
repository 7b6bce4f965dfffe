package solver_test

import (
	"testing"

	"github.com/katalvlaran/pegsolve/solver"
	"github.com/katalvlaran/pegsolve/verify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestS2ParallelDFSFindsVerifiedSolution(t *testing.T) {
	b := s2Board(t)
	opts := solver.DefaultOptions()
	opts.Workers = 4
	res, err := solver.ParallelDFS(b, opts)
	require.NoError(t, err)
	assert.Equal(t, 7, len(res.Moves))
	assert.True(t, verify.Verify(b, res.Moves, nil))
}

func TestS5ParallelDFSReportsNoSolution(t *testing.T) {
	b := s5Board(t)
	_, err := solver.ParallelDFS(b, solver.DefaultOptions())
	require.Error(t, err)
}
