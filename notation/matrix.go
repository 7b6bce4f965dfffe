package notation

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/pegsolve/board"
)

// Glyphs for the board matrix format (spec §6): peg, hole, absent.
const (
	glyphPeg    = '●'
	glyphHole   = '○'
	glyphAbsent = '▫'
)

// RenderMatrix renders b as a 7x7 grid of glyphs, one row per line,
// grounded on matrix.Dense.String()'s row-wise concatenation loop
// (there: numeric cells with a bracket/comma frame; here: a bare
// glyph per cell, no separators, since each glyph is already one
// visually distinct rune).
func RenderMatrix(b board.Board) string {
	out := make([]rune, 0, board.Width*(board.Width+1))
	for row := 0; row < board.Width; row++ {
		for col := 0; col < board.Width; col++ {
			c := board.FromRowCol(row, col)
			switch {
			case !b.IsValid(c):
				out = append(out, glyphAbsent)
			case b.HasPeg(c):
				out = append(out, glyphPeg)
			default:
				out = append(out, glyphHole)
			}
		}
		out = append(out, '\n')
	}

	return string(out)
}

// ParseMatrix is RenderMatrix's inverse (spec §6's "board <-> symbolic
// matrix"): it reads board.Width lines of board.Width glyphs each
// (glyphPeg/glyphHole/glyphAbsent), blank lines around the grid are
// ignored, and rebuilds the Valid/Pegs masks cell by cell.
func ParseMatrix(s string) (board.Board, error) {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if len(lines) != board.Width {
		return board.Board{}, fmt.Errorf("notation: matrix must have %d rows, got %d", board.Width, len(lines))
	}

	var b board.Board
	for row, line := range lines {
		glyphs := []rune(line)
		if len(glyphs) != board.Width {
			return board.Board{}, fmt.Errorf("notation: row %d must have %d glyphs, got %d", row, board.Width, len(glyphs))
		}
		for col, g := range glyphs {
			c := board.FromRowCol(row, col)
			switch g {
			case glyphAbsent:
				// leave both Valid and Pegs clear
			case glyphHole:
				b.Valid |= uint64(1) << uint(c)
			case glyphPeg:
				b.Valid |= uint64(1) << uint(c)
				b.Pegs |= uint64(1) << uint(c)
			default:
				return board.Board{}, fmt.Errorf("notation: unrecognised glyph %q at row %d col %d", g, row, col)
			}
		}
	}

	return b, nil
}
