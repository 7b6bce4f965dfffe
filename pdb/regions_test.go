package pdb_test

import (
	"testing"

	"github.com/katalvlaran/pegsolve/board"
	"github.com/katalvlaran/pegsolve/pdb"
	"github.com/stretchr/testify/assert"
)

// TestRegionsPartitionEveryValidCellExactlyOnce exercises the same
// disjointness property init() already enforces by panicking, confirming
// it from the public RegionOf table rather than the private union-find.
func TestRegionsPartitionEveryValidCellExactlyOnce(t *testing.T) {
	count := 0
	for c := board.Cell(0); c < board.NumCells; c++ {
		if board.EnglishValidMask&(uint64(1)<<uint(c)) == 0 {
			continue
		}
		count++
		assert.GreaterOrEqual(t, int(pdb.RegionOf[c]), 0, "cell %d has no region", c)
	}
	assert.Equal(t, 33, count)
}

func TestProjectRestrictsToRegionCells(t *testing.T) {
	full := board.EnglishStart().Pegs
	top := pdb.Project(full, pdb.Top)

	for _, c := range pdb.RegionCells[pdb.Top] {
		assert.NotZero(t, top&(uint64(1)<<uint(c)))
	}
	assert.Zero(t, top&(uint64(1)<<uint(pdb.RegionCells[pdb.Centre][0])))
}
