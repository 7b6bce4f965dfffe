package solver_test

import (
	"testing"

	"github.com/katalvlaran/pegsolve/pdb"
	"github.com/katalvlaran/pegsolve/solver"
	"github.com/katalvlaran/pegsolve/verify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestS1AStarFindsShortestSolution(t *testing.T) {
	b := s1Board(t)
	res, err := solver.AStar(b, solver.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 1, len(res.Moves))
	assert.True(t, verify.Verify(b, res.Moves, nil))
}

func TestS2AStarFindsSevenMoveSolution(t *testing.T) {
	b := s2Board(t)
	res, err := solver.AStar(b, solver.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 7, len(res.Moves))
	assert.True(t, verify.Verify(b, res.Moves, nil))
}

func TestS5AStarReportsNoSolution(t *testing.T) {
	b := s5Board(t)
	_, err := solver.AStar(b, solver.DefaultOptions())
	require.Error(t, err)
}

// TestAStarWithPDBAgreesWithPlainAStar checks Pattern-A*'s PDB-guided
// heuristic does not change the optimal solution length it finds.
func TestAStarWithPDBAgreesWithPlainAStar(t *testing.T) {
	b := s2Board(t)
	tables := pdb.Build()

	opts := solver.DefaultOptions()
	opts.PDB = &tables
	res, err := solver.AStar(b, opts)
	require.NoError(t, err)
	assert.Equal(t, 7, len(res.Moves))
}
