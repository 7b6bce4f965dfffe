package meta_test

import (
	"testing"

	"github.com/katalvlaran/pegsolve/board"
	"github.com/katalvlaran/pegsolve/meta"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifySmallPosition(t *testing.T) {
	pegs := uint64(1)<<16 | uint64(1)<<17
	b, err := board.NewEnglish(pegs)
	require.NoError(t, err)
	assert.Equal(t, meta.Small, meta.Classify(b))
}

func TestClassifyHardPosition(t *testing.T) {
	b := board.EnglishStart() // full board minus the centre: 32 pegs, low mobility
	assert.Equal(t, meta.Hard, meta.Classify(b))
}
