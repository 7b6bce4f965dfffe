package board

// englishValidPositions is the exact 33-cell English-cross layout,
// carried over from the reference implementation's ENGLISH_VALID_POSITIONS.
var englishValidPositions = [33]Cell{
	2, 3, 4, 9, 10, 11,
	14, 15, 16, 17, 18, 19, 20,
	21, 22, 23, 24, 25, 26, 27,
	28, 29, 30, 31, 32, 33, 34,
	37, 38, 39, 44, 45, 46,
}

// EnglishValidMask is the 33-bit valid mask of the standard English cross.
var EnglishValidMask uint64

// CenterPos is the centre cell of the English cross.
const CenterPos Cell = 24

func init() {
	for _, c := range englishValidPositions {
		EnglishValidMask |= uint64(1) << uint(c)
	}
}

// NewEnglish constructs a Board on the English-cross valid mask with the
// given pegs subset.
func NewEnglish(pegs uint64) (Board, error) {
	return New(pegs, EnglishValidMask)
}

// EnglishStart returns the standard starting position: every cross cell
// occupied except the centre.
func EnglishStart() Board {
	b, _ := NewEnglish(EnglishValidMask &^ (uint64(1) << uint(CenterPos)))

	return b
}

// EnglishGoal returns the canonical 1-peg terminal state at the centre.
func EnglishGoal() Board {
	b, _ := NewEnglish(uint64(1) << uint(CenterPos))

	return b
}
