package solver_test

import (
	"testing"

	"github.com/katalvlaran/pegsolve/solver"
	"github.com/katalvlaran/pegsolve/verify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestS1BeamFindsSolution(t *testing.T) {
	b := s1Board(t)
	res, err := solver.Beam(b, solver.DefaultOptions())
	require.NoError(t, err)
	assert.True(t, verify.Verify(b, res.Moves, nil))
}

func TestS2BeamFindsVerifiedSolution(t *testing.T) {
	b := s2Board(t)
	opts := solver.DefaultOptions()
	opts.BeamWidth = 50
	res, err := solver.Beam(b, opts)
	require.NoError(t, err)
	assert.True(t, verify.Verify(b, res.Moves, nil))
}

func TestS5BeamReportsNoSolution(t *testing.T) {
	b := s5Board(t)
	_, err := solver.Beam(b, solver.DefaultOptions())
	require.Error(t, err)
}
