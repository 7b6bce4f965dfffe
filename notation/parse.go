package notation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/katalvlaran/pegsolve/board"
)

// coordToken matches one coordinate-format token: a column letter, a
// row digit, and an optional "(hole)" suffix, mirroring
// notation_parser.py's `^([A-G])([1-7])(\(hole\))?$`.
var coordToken = regexp.MustCompile(`(?i)^([A-G])([1-7])(\(hole\))?$`)

// ParseCoordinates parses the coordinate position format: space-
// separated tokens of the form "<Col><Row>" or "<Col><Row>(hole)",
// e.g. "A1 B2(hole) C3". A bare token is a peg; a "(hole)"-suffixed
// token is a hole. valid is the union of pegs and holes.
func ParseCoordinates(s string) (board.Board, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return board.Board{}, fmt.Errorf("notation: empty coordinate description")
	}

	var pegs, valid uint64
	for _, tok := range strings.Fields(s) {
		m := coordToken.FindStringSubmatch(tok)
		if m == nil {
			return board.Board{}, fmt.Errorf("notation: cannot parse token %q", tok)
		}

		c, err := ParseCell(strings.ToUpper(m[1]) + m[2])
		if err != nil {
			return board.Board{}, err
		}

		bit := uint64(1) << uint(c)
		valid |= bit
		if m[3] == "" {
			pegs |= bit
		}
	}

	return board.New(pegs, valid)
}

// sizeRe, pegsRe, emptyRe match the text format's three fields,
// mirroring parser.py's size=/pegs=/empty= regexes.
var (
	sizeRe  = regexp.MustCompile(`size=(\d+)x(\d+)`)
	pegsRe  = regexp.MustCompile(`pegs=\s*([A-Za-z0-9]+(?:\s*,\s*[A-Za-z0-9]+)*)`)
	emptyRe = regexp.MustCompile(`empty=\s*([A-Za-z0-9]+(?:\s*,\s*[A-Za-z0-9]+)*)`)
)

// ParseText parses the text position format: "size=7x7 pegs=A2,A6,...
// empty=D4,...". Size must be 7x7 (the only board this package
// addresses); pegs and empty are comma-separated cell names, with
// whitespace around tokens ignored.
func ParseText(s string) (board.Board, error) {
	sizeM := sizeRe.FindStringSubmatch(s)
	pegsM := pegsRe.FindStringSubmatch(s)
	emptyM := emptyRe.FindStringSubmatch(s)
	if sizeM == nil || pegsM == nil || emptyM == nil {
		return board.Board{}, fmt.Errorf("notation: expected \"size=NxM pegs=A1,A2,... empty=D4,...\", got %q", s)
	}
	if sizeM[1] != "7" || sizeM[2] != "7" {
		return board.Board{}, fmt.Errorf("notation: size must be 7x7, got %sx%s", sizeM[1], sizeM[2])
	}

	var pegs, valid uint64
	for _, tok := range strings.Split(pegsM[1], ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		c, err := ParseCell(tok)
		if err != nil {
			return board.Board{}, err
		}
		bit := uint64(1) << uint(c)
		pegs |= bit
		valid |= bit
	}
	for _, tok := range strings.Split(emptyM[1], ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		c, err := ParseCell(tok)
		if err != nil {
			return board.Board{}, err
		}
		valid |= uint64(1) << uint(c)
	}

	return board.New(pegs, valid)
}
