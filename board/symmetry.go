package board

import "math/bits"

// Symmetry is one element of the dihedral group D4 acting on the 7x7
// grid: Perm maps each cell to its image under the transform, Inv is its
// inverse permutation. Both are precomputed length-49 arrays (spec 9,
// "Bit permutation for symmetry") so applying a symmetry to a board or a
// move is a tight loop over set bits, never a per-cell geometric
// recomputation.
type Symmetry struct {
	Name string
	Perm [NumCells]Cell
	Inv  [NumCells]Cell
}

// Symmetries holds the eight D4 transforms in the fixed order
// {I, R, R2, R3, F, FR, FR2, FR3}: identity, three quarter-rotations, a
// horizontal flip, and that flip followed by each rotation.
var Symmetries [8]Symmetry

func init() {
	identity := identityPerm()
	rotate := rotate90Perm()
	flip := flipHPerm()

	rot := identity
	for i := 0; i < 4; i++ {
		Symmetries[i] = newSymmetry(rotNames[i], rot)
		rot = compose(rotate, rot)
	}

	frot := flip
	for i := 0; i < 4; i++ {
		Symmetries[4+i] = newSymmetry(frotNames[i], frot)
		frot = compose(rotate, frot)
	}
}

var rotNames = [4]string{"I", "R", "R2", "R3"}
var frotNames = [4]string{"F", "FR", "FR2", "FR3"}

func newSymmetry(name string, perm [NumCells]Cell) Symmetry {
	return Symmetry{Name: name, Perm: perm, Inv: invert(perm)}
}

func identityPerm() [NumCells]Cell {
	var p [NumCells]Cell
	for i := range p {
		p[i] = Cell(i)
	}

	return p
}

// rotate90Perm maps (r,c) -> (c, 6-r), a 90-degree rotation of the 7x7
// grid, matching the reference implementation's _rotate_90_pegs.
func rotate90Perm() [NumCells]Cell {
	var p [NumCells]Cell
	for pos := 0; pos < NumCells; pos++ {
		r, c := Cell(pos).RowCol()
		nr, nc := c, 6-r
		p[pos] = FromRowCol(nr, nc)
	}

	return p
}

// flipHPerm maps (r,c) -> (r, 6-c), matching _flip_h_pegs.
func flipHPerm() [NumCells]Cell {
	var p [NumCells]Cell
	for pos := 0; pos < NumCells; pos++ {
		r, c := Cell(pos).RowCol()
		p[pos] = FromRowCol(r, 6-c)
	}

	return p
}

// compose returns the permutation "apply inner, then outer": result[pos]
// = outer[inner[pos]].
func compose(outer, inner [NumCells]Cell) [NumCells]Cell {
	var p [NumCells]Cell
	for pos := 0; pos < NumCells; pos++ {
		p[pos] = outer[inner[pos]]
	}

	return p
}

func invert(perm [NumCells]Cell) [NumCells]Cell {
	var inv [NumCells]Cell
	for pos, dst := range perm {
		inv[dst] = Cell(pos)
	}

	return inv
}

// transformPegs applies perm to every set bit of pegs, bit-scanning
// rather than iterating all 49 cells.
func transformPegs(pegs uint64, perm [NumCells]Cell) uint64 {
	var out uint64
	for mask := pegs; mask != 0; {
		pos := bits.TrailingZeros64(mask)
		mask &= mask - 1
		out |= uint64(1) << uint(perm[pos])
	}

	return out
}

// ApplyCell maps c through the symmetry's forward permutation.
func (s Symmetry) ApplyCell(c Cell) Cell { return s.Perm[c] }

// ApplyMove maps every cell of m through the symmetry's forward
// permutation.
func (s Symmetry) ApplyMove(m Move) Move {
	return Move{From: s.Perm[m.From], Over: s.Perm[m.Over], To: s.Perm[m.To]}
}

// ApplyInverseMove maps every cell of m through the symmetry's inverse
// permutation -- used to translate a move computed on a canonical-form
// board back into the caller's original coordinate frame.
func (s Symmetry) ApplyInverseMove(m Move) Move {
	return Move{From: s.Inv[m.From], Over: s.Inv[m.Over], To: s.Inv[m.To]}
}

// Canonical returns the canonical key of b (spec 3, "State key"): for the
// English cross, the lexicographically minimal pegs value over the 8 D4
// symmetries; for any other valid mask, the identity (pegs itself), since
// symmetries of an arbitrary cut-out are not assumed.
func Canonical(b Board) uint64 {
	key, _ := CanonicalWithSymmetry(b)

	return key
}

// CanonicalWithSymmetry is Canonical plus the index into Symmetries of
// the transform that produced the minimal key (always 0, the identity,
// for non-English-cross boards). Callers that need to replay a solution
// found against the canonical form -- the solution store's
// symmetry-aware lookup -- use this index with Symmetries[idx].ApplyInverseMove
// to translate each stored move back to the queried board's frame.
func CanonicalWithSymmetry(b Board) (key uint64, symIndex int) {
	if !b.IsEnglishCross() {
		return b.Pegs, 0
	}

	best := b.Pegs
	bestIdx := 0
	for i := 1; i < len(Symmetries); i++ {
		candidate := transformPegs(b.Pegs, Symmetries[i].Perm)
		if candidate < best {
			best = candidate
			bestIdx = i
		}
	}

	return best, bestIdx
}
