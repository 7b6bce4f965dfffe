package meta_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/katalvlaran/pegsolve/board"
	"github.com/katalvlaran/pegsolve/meta"
	"github.com/katalvlaran/pegsolve/store"
	"github.com/katalvlaran/pegsolve/verify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequentialSolvesS1ViaFirstRungAndStores(t *testing.T) {
	pegs := uint64(1)<<16 | uint64(1)<<17
	b, err := board.NewEnglish(pegs)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "solutions.json")
	st, err := store.Open(path)
	require.NoError(t, err)

	opts := meta.SequentialOptions{Budget: 5 * time.Second}
	res, err := meta.Sequential(b, opts, st, nil)
	require.NoError(t, err)
	assert.True(t, verify.Verify(b, res.Moves, nil))

	_, ok := st.Lookup(b)
	assert.True(t, ok)
}

func TestSequentialReportsErrorWhenUnsolvable(t *testing.T) {
	pegs := uint64(1)<<2 | uint64(1)<<46
	b, err := board.NewEnglish(pegs)
	require.NoError(t, err)

	// Every rung runs, the brute-force rung with its 1-hour floor
	// included, and each fails fast because this dead 2-peg board has
	// no move, so a small budget is enough.
	opts := meta.SequentialOptions{Budget: time.Second}
	_, err = meta.Sequential(b, opts, nil, nil)
	assert.Error(t, err)
}
