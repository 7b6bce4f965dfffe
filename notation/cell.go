// Package notation implements the text notations spec §6 defines for
// boards: the coordinate format ("A1 B2(hole) ..."), the size/pegs/
// empty text format, cell names ("A1"-style), and the board-matrix
// glyph rendering. Grounded on original_source/peg_io/notation_parser.py,
// peg_io/parser.py, and peg_io/visualizer.py.
package notation

import (
	"fmt"

	"github.com/katalvlaran/pegsolve/board"
)

// CellName renders c as a column-letter/row-digit pair, column A-G
// left to right and row 1-7 top to bottom (matching
// format_bitboard_solution's fr,fc -> chr(fc+'A')+str(fr+1)).
func CellName(c board.Cell) string {
	row, col := c.RowCol()
	return fmt.Sprintf("%c%d", rune('A'+col), row+1)
}

// ParseCell parses an "A1"-style name into a Cell. Column letters A-G
// are case-insensitive; row digits 1-7.
func ParseCell(s string) (board.Cell, error) {
	if len(s) < 2 {
		return 0, fmt.Errorf("notation: cell %q: too short", s)
	}

	letter := s[0]
	if letter >= 'a' && letter <= 'z' {
		letter -= 'a' - 'A'
	}
	if letter < 'A' || letter > 'G' {
		return 0, fmt.Errorf("notation: cell %q: column out of range A-G", s)
	}
	col := int(letter - 'A')

	var row int
	if _, err := fmt.Sscanf(s[1:], "%d", &row); err != nil {
		return 0, fmt.Errorf("notation: cell %q: bad row digit: %w", s, err)
	}
	if row < 1 || row > board.Width {
		return 0, fmt.Errorf("notation: cell %q: row out of range 1-7", s)
	}

	return board.FromRowCol(row-1, col), nil
}
