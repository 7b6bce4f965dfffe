package solver_test

import (
	"testing"
	"time"

	"github.com/katalvlaran/pegsolve/board"
	"github.com/katalvlaran/pegsolve/solver"
	"github.com/katalvlaran/pegsolve/verify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestS1BidirectionalFindsSolution(t *testing.T) {
	b := s1Board(t)
	target := board.Cell(18)
	opts := solver.DefaultOptions()
	opts.Target = &target

	res, err := solver.Bidirectional(b, opts)
	require.NoError(t, err)
	assert.True(t, verify.Verify(b, res.Moves, &target))
}

func TestS2BidirectionalAnyTargetFindsSolution(t *testing.T) {
	b := s2Board(t)
	opts := solver.DefaultOptions()
	opts.Deadline = time.Now().Add(10 * time.Second)
	res, err := solver.Bidirectional(b, opts)
	require.NoError(t, err)
	assert.True(t, verify.Verify(b, res.Moves, nil))
}

func TestS5BidirectionalReportsNoSolution(t *testing.T) {
	b := s5Board(t)
	_, err := solver.Bidirectional(b, solver.DefaultOptions())
	require.Error(t, err)
}
