package notation_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/pegsolve/board"
	"github.com/katalvlaran/pegsolve/notation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderMatrixEnglishStart(t *testing.T) {
	b := board.EnglishStart()
	out := notation.RenderMatrix(b)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, board.Width)
	for _, line := range lines {
		assert.Equal(t, board.Width, len([]rune(line)))
	}

	// Top-left corner is outside the English cross: absent glyph.
	assert.Equal(t, '▫', []rune(lines[0])[0])
	// Centre is the lone hole in the starting position.
	assert.Equal(t, '○', []rune(lines[3])[3])
	// Every other valid cell on row 0 is a peg.
	assert.Equal(t, '●', []rune(lines[0])[2])
}

func TestParseMatrixRoundTripsWithRenderMatrix(t *testing.T) {
	b := board.EnglishStart()
	got, err := notation.ParseMatrix(notation.RenderMatrix(b))
	require.NoError(t, err)
	assert.Equal(t, b.Pegs, got.Pegs)
	assert.Equal(t, b.Valid, got.Valid)
}

func TestParseMatrixRejectsWrongRowCount(t *testing.T) {
	_, err := notation.ParseMatrix("▫▫▫▫▫▫▫\n")
	assert.Error(t, err)
}

func TestParseMatrixRejectsUnknownGlyph(t *testing.T) {
	bad := strings.Repeat("▫▫▫▫▫▫▫\n", board.Width-1) + "▫▫▫▫▫▫X\n"
	_, err := notation.ParseMatrix(bad)
	assert.Error(t, err)
}
