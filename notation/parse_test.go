package notation_test

import (
	"testing"

	"github.com/katalvlaran/pegsolve/notation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCoordinatesPegsAndHoles(t *testing.T) {
	b, err := notation.ParseCoordinates("A1 B2(hole) C3")
	require.NoError(t, err)

	a1, _ := notation.ParseCell("A1")
	b2, _ := notation.ParseCell("B2")
	c3, _ := notation.ParseCell("C3")

	assert.True(t, b.IsValid(a1))
	assert.True(t, b.HasPeg(a1))
	assert.True(t, b.IsValid(b2))
	assert.False(t, b.HasPeg(b2))
	assert.True(t, b.IsValid(c3))
	assert.True(t, b.HasPeg(c3))
	assert.Equal(t, 2, b.PegCount())
}

func TestParseCoordinatesRejectsEmpty(t *testing.T) {
	_, err := notation.ParseCoordinates("   ")
	assert.Error(t, err)
}

func TestParseCoordinatesRejectsMalformedToken(t *testing.T) {
	_, err := notation.ParseCoordinates("A1 Z9")
	assert.Error(t, err)
}

func TestParseTextBasic(t *testing.T) {
	b, err := notation.ParseText("size=7x7 pegs=A2,A6 empty=D4")
	require.NoError(t, err)

	a2, _ := notation.ParseCell("A2")
	a6, _ := notation.ParseCell("A6")
	d4, _ := notation.ParseCell("D4")

	assert.True(t, b.HasPeg(a2))
	assert.True(t, b.HasPeg(a6))
	assert.False(t, b.HasPeg(d4))
	assert.True(t, b.IsValid(d4))
}

func TestParseTextRejectsWrongSize(t *testing.T) {
	_, err := notation.ParseText("size=8x8 pegs=A1 empty=A2")
	assert.Error(t, err)
}

func TestParseTextRejectsMissingFields(t *testing.T) {
	_, err := notation.ParseText("size=7x7 pegs=A1")
	assert.Error(t, err)
}
