// Package solver implements the search family (spec 4.F): DFS-memo,
// Zobrist-DFS, A*, IDA*, Beam, Bidirectional BFS, Pattern-A*, and two
// parallel variants (root-split DFS, sliced Beam). Every solver shares
// the Result/Stats/Options shapes below, mirroring tsp.TSResult and
// tsp.Options's flat-struct, functional-free configuration style (the
// teacher corpus never reaches for a builder or option-struct-of-
// closures here, so neither do we).
package solver

import (
	"time"

	"github.com/katalvlaran/pegsolve/board"
	"github.com/katalvlaran/pegsolve/heuristic"
	"github.com/katalvlaran/pegsolve/pdb"
)

// Result is a solver's output: the move sequence from the input board
// to a one-peg terminal state, plus the statistics every solver
// collects regardless of algorithm.
type Result struct {
	Moves []board.Move
	Stats Stats
}

// Stats are the bookkeeping counters common to every solver in the
// family, mirroring tsp's flat TSResult fields (Cost, Iterations, ...)
// rather than a nested per-algorithm stats type.
type Stats struct {
	Visited     int
	Pruned      int
	MaxDepth    int
	Elapsed     time.Duration
	SolutionLen int
}

// Options configures any solver in the family. Not every field is
// consulted by every solver: DFSMemo ignores BeamWidth, Beam ignores
// MaxIDADepth, and so on -- each solver's doc comment states which
// fields it reads, the same "wide shared Options, narrow per-algorithm
// reads" shape as tsp.Options (BoundAlgo/MatchingAlgo/TimeLimit are
// shared but only consulted by the algorithms they apply to).
type Options struct {
	// Deadline is an absolute wall-clock cutoff. The zero Time means no
	// deadline. Solvers use time.Time (not time.Duration) per spec 5's
	// "deadline exceeded predicate," so a meta-solver can derive several
	// engines' Options from one shared remaining-budget computation
	// without each solver re-deriving "now + duration."
	Deadline time.Time

	// Target, if non-nil, restricts a successful solution's final peg
	// to this cell. Nil means "any single peg."
	Target *board.Cell

	// Evaluator scores nodes for Beam/ParallelBeam, which default to
	// heuristic.CombinedEvaluator(board.CenterPos) when Evaluator.Score
	// is nil. AStar and IDAStar do not read it.
	Evaluator heuristic.Evaluator

	// PDB, if non-nil, is consulted by PatternAStar (and by AStar/IDAStar
	// as an additional admissible lower bound) for English-cross boards.
	PDB *pdb.Tables

	// BeamWidth bounds the number of nodes Beam/ParallelBeam retain per
	// layer (spec 4.F "W"). Zero means DefaultBeamWidth.
	BeamWidth int

	// MaxIDADepth bounds IDAStar's bound growth; zero means
	// DefaultMaxIDADepth.
	MaxIDADepth int

	// Workers bounds ParallelDFS/ParallelBeam's goroutine count; zero
	// means runtime.GOMAXPROCS(0).
	Workers int

	// UsePagoda enables the Pagoda prune in DFSMemo/ZobristDFS/IDAStar,
	// on by default for English-cross boards.
	UsePagoda bool
}

// DefaultBeamWidth is the width used when Options.BeamWidth is zero.
const DefaultBeamWidth = 100

// DefaultMaxIDADepth is the bound ceiling used when Options.MaxIDADepth
// is zero; chosen well above any English-cross solution's known length
// (31 jumps at most, one per starting peg beyond the first).
const DefaultMaxIDADepth = 64

// DefaultOptions returns an Options with Pagoda pruning enabled, the
// combined evaluator targeting board.CenterPos, default beam width and
// IDA* depth, and no deadline -- mirroring tsp.DefaultOptions's
// "sane, unbounded by default" stance.
func DefaultOptions() Options {
	return Options{
		Evaluator:   heuristic.CombinedEvaluator(board.CenterPos),
		BeamWidth:   DefaultBeamWidth,
		MaxIDADepth: DefaultMaxIDADepth,
		UsePagoda:   true,
	}
}

// beamWidth returns o.BeamWidth, defaulting to DefaultBeamWidth.
func (o Options) beamWidth() int {
	if o.BeamWidth > 0 {
		return o.BeamWidth
	}
	return DefaultBeamWidth
}

// maxIDADepth returns o.MaxIDADepth, defaulting to DefaultMaxIDADepth.
func (o Options) maxIDADepth() int {
	if o.MaxIDADepth > 0 {
		return o.MaxIDADepth
	}
	return DefaultMaxIDADepth
}

// expired reports whether o.Deadline is set and has passed. A zero
// Deadline never expires.
func (o Options) expired() bool {
	return !o.Deadline.IsZero() && time.Now().After(o.Deadline)
}

// reachesTarget reports whether b (a one-peg board) satisfies o.Target.
func (o Options) reachesTarget(b board.Board) bool {
	if o.Target == nil {
		return true
	}
	return b.HasPeg(*o.Target)
}

// canonicalKey returns board.Canonical(b) for English-cross boards and
// b.Pegs otherwise, matching spec 3's "State key" definition used by
// every memo-based solver.
func canonicalKey(b board.Board) uint64 {
	if b.IsEnglishCross() {
		return board.Canonical(b)
	}
	return b.Pegs
}
