package pdb_test

import (
	"path/filepath"
	"testing"

	"github.com/katalvlaran/pegsolve/pdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoadRoundTrips(t *testing.T) {
	tables := pdb.Build()
	path := filepath.Join(t.TempDir(), "pdb.gob")

	require.NoError(t, pdb.Save(tables, path))

	loaded, err := pdb.Load(path)
	require.NoError(t, err)

	for _, c := range pdb.RegionCells[pdb.Top] {
		mask := uint64(1) << uint(c)
		assert.Equal(t, tables.Lookup(mask, pdb.Top), loaded.Lookup(mask, pdb.Top))
	}
}

func TestLoadOrBuildBuildsWhenMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.gob")

	tables, err := pdb.LoadOrBuild(path)
	require.NoError(t, err)
	assert.Greater(t, len(tables[pdb.Centre]), 0)

	// Second call now loads the just-written file instead of rebuilding.
	again, err := pdb.LoadOrBuild(path)
	require.NoError(t, err)
	assert.Equal(t, len(tables[pdb.Centre]), len(again[pdb.Centre]))
}
