// Package pegsolve is a single-peg endgame solver for peg solitaire.
//
// The board is a bit-parallel 49-bit (pegs, valid) pair (package
// board), with Zobrist hashing (zobrist), Pagoda-weight pruning and
// other node evaluators (heuristic), and a disjoint-region Pattern
// Database (pdb) layered on top.
//
// The solver family (package solver) spans exhaustive memoized DFS,
// Zobrist-keyed DFS, A*/IDA*, Beam search, bidirectional BFS,
// Pattern-Database-guided A*, and root-split/sliced-beam parallel
// variants. Two meta-solvers (package meta) sit above the family:
// Governor classifies a position and dispatches to one engine with a
// fallback ladder; Sequential escalates through a fixed, ordered list
// until a verified solution is found.
//
// Every solver output passes through the verifier (package verify)
// before it is trusted; accepted solutions persist in an on-disk
// solution store with a waypoint index (package store). A progress
// channel (package progress) reports each engine's state-machine
// transitions to an optional consumer. Board notations -- coordinate,
// text, and glyph-matrix -- live in package notation.
package pegsolve
