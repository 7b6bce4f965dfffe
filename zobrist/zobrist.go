// Package zobrist implements incremental 64-bit Zobrist hashing over
// board.Board (spec 4.B): a compile-time-seeded table of per-cell random
// constants, XORed together for a full hash and updated by exactly three
// XORs per move, so Zobrist-DFS never recomputes a hash from scratch on
// backtrack.
package zobrist

import (
	"math/bits"

	"github.com/katalvlaran/pegsolve/board"
)

// seed is fixed so hashes are reproducible across runs and processes,
// matching the reference implementation's random.seed(42): the constant
// itself carries no meaning beyond "pick one and never change it".
const seed = 42

// Table holds one 64-bit constant per cell, built once at package
// initialization from a seeded (never the global) RNG.
var Table [board.NumCells]uint64

func init() {
	rng := newSplitMix64(seed)
	for i := range Table {
		Table[i] = rng.next()
	}
}

// splitMix64 is a small, dependency-free deterministic generator used
// only to seed the Zobrist table; it is not exposed, since nothing
// outside this file needs a general-purpose RNG.
type splitMix64 struct{ state uint64 }

func newSplitMix64(seed uint64) *splitMix64 { return &splitMix64{state: seed} }

func (s *splitMix64) next() uint64 {
	s.state += 0x9E3779B97F4A7C15
	z := s.state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// Hash computes H(pegs) = XOR over set bits p of Table[p].
func Hash(pegs uint64) uint64 {
	var h uint64
	for mask := pegs; mask != 0; {
		pos := bits.TrailingZeros64(mask)
		mask &= mask - 1
		h ^= Table[pos]
	}

	return h
}

// Board pairs a board.Board with its incrementally maintained Zobrist
// hash. Board.Pegs equality is exact; Hash equality is not, since two
// distinct masks can collide. A set keyed by Hash alone, as ZobristDFS's
// memo is, can therefore rarely treat an unseen board as seen (spec 4.B).
type Board struct {
	board.Board
	Hash uint64
}

// New wraps b with its freshly computed Zobrist hash.
func New(b board.Board) Board {
	return Board{Board: b, Hash: Hash(b.Pegs)}
}

// Apply plays m and updates Hash incrementally: three XORs against
// Table[f], Table[o], Table[t], with no full recomputation (spec P5).
func (zb Board) Apply(m board.Move) Board {
	next := zb.Board.Apply(m)
	h := zb.Hash ^ Table[m.From] ^ Table[m.Over] ^ Table[m.To]

	return Board{Board: next, Hash: h}
}
