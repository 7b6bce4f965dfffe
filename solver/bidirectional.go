package solver

import (
	"time"

	"github.com/katalvlaran/pegsolve/board"
	"github.com/katalvlaran/pegsolve/pegerr"
)

// frontierEntry records how a state was reached within one frontier:
// the move taken and the predecessor's key, for path reconstruction.
type frontierEntry struct {
	b      board.Board
	parent uint64
	move   board.Move
	hasPar bool
}

// Bidirectional runs two BFS frontiers (spec 4.F): forward from start
// via board.Board.Moves, backward from the target via board.Board's
// ReverseMoves (spec 4.A/4.F's "reverse move" -- writes pegs at c+d and
// c+2d, clears c). When a frontier reaches a pegs value already present
// in the other frontier's visited map, the forward path and the
// backward path -- each of its moves reoriented to forward-legal play,
// see joinFrontiers -- are concatenated into one forward-legal
// solution. If Options.Target is nil, the backward frontier seeds from
// every 1-peg state instead of one fixed goal.
func Bidirectional(start board.Board, opts Options) (Result, error) {
	t0 := time.Now()
	stats := Stats{}

	fwd := map[uint64]frontierEntry{start.Pegs: {b: start}}
	fwdQueue := []uint64{start.Pegs}

	bwd := map[uint64]frontierEntry{}
	var bwdQueue []uint64
	for _, seed := range backwardSeeds(start, opts.Target) {
		if _, ok := bwd[seed.Pegs]; !ok {
			bwd[seed.Pegs] = frontierEntry{b: seed}
			bwdQueue = append(bwdQueue, seed.Pegs)
		}
	}

	if start.PegCount() == 1 && opts.reachesTarget(start) {
		return Result{Stats: stats}, nil
	}

	for len(fwdQueue) > 0 || len(bwdQueue) > 0 {
		if opts.expired() {
			stats.Elapsed = time.Since(t0)
			return Result{Stats: stats}, pegerr.New(pegerr.TimedOut, errDeadline)
		}

		if len(fwdQueue) > 0 {
			var next []uint64
			for _, key := range fwdQueue {
				stats.Visited++
				entry := fwd[key]
				for _, m := range entry.b.Moves() {
					child := entry.b.Apply(m)
					if _, ok := fwd[child.Pegs]; ok {
						continue
					}
					fwd[child.Pegs] = frontierEntry{b: child, parent: key, move: m, hasPar: true}
					if _, ok := bwd[child.Pegs]; ok {
						moves := joinFrontiers(fwd, bwd, start.Pegs, child.Pegs)
						stats.Elapsed = time.Since(t0)
						stats.SolutionLen = len(moves)
						return Result{Moves: moves, Stats: stats}, nil
					}
					next = append(next, child.Pegs)
				}
			}
			fwdQueue = next
		}

		if len(bwdQueue) > 0 {
			var next []uint64
			for _, key := range bwdQueue {
				stats.Visited++
				entry := bwd[key]
				for _, m := range entry.b.ReverseMoves() {
					child := entry.b.Apply(m)
					if _, ok := bwd[child.Pegs]; ok {
						continue
					}
					bwd[child.Pegs] = frontierEntry{b: child, parent: key, move: m, hasPar: true}
					if _, ok := fwd[child.Pegs]; ok {
						moves := joinFrontiers(fwd, bwd, start.Pegs, child.Pegs)
						stats.Elapsed = time.Since(t0)
						stats.SolutionLen = len(moves)
						return Result{Moves: moves, Stats: stats}, nil
					}
					next = append(next, child.Pegs)
				}
			}
			bwdQueue = next
		}
	}

	stats.Elapsed = time.Since(t0)
	return Result{Stats: stats}, pegerr.New(pegerr.NoSolution, errExhausted)
}

// backwardSeeds enumerates the single-peg boards the backward frontier
// starts from: just *target if set, otherwise every valid cell (any
// 1-peg terminal is acceptable).
func backwardSeeds(start board.Board, target *board.Cell) []board.Board {
	var seeds []board.Board
	if target != nil {
		seeds = append(seeds, board.Board{Pegs: uint64(1) << uint(*target), Valid: start.Valid})
		return seeds
	}
	for pos := 0; pos < board.NumCells; pos++ {
		c := board.Cell(pos)
		if start.IsValid(c) {
			seeds = append(seeds, board.Board{Pegs: uint64(1) << uint(pos), Valid: start.Valid})
		}
	}

	return seeds
}

// joinFrontiers walks meetKey's predecessor chain in both frontiers and
// concatenates: forward path start->meet, then the backward path's
// moves replayed forward (meet->goal).
//
// The backward frontier's stored move for an edge parent->child is the
// one that, applied to parent, grows the peg count to child's (board's
// ReverseMoves, board/reverse.go); the forward-legal move that actually
// shrinks child back down to parent is its orientation reversed -- swap
// From and To and keep Over, since the real jump starts at what
// ReverseMoves calls To and lands at what it calls From. Board.Apply's
// XOR gives the same board either way; the swap only makes the move
// forward-legal, as verify.Verify checks.
func joinFrontiers(fwd, bwd map[uint64]frontierEntry, startKey, meetKey uint64) []board.Move {
	var fwdMoves []board.Move
	for k := meetKey; k != startKey; {
		e := fwd[k]
		fwdMoves = append(fwdMoves, e.move)
		k = e.parent
	}
	for i, j := 0, len(fwdMoves)-1; i < j; i, j = i+1, j-1 {
		fwdMoves[i], fwdMoves[j] = fwdMoves[j], fwdMoves[i]
	}

	var bwdMoves []board.Move
	for k := meetKey; ; {
		e, ok := bwd[k]
		if !ok || !e.hasPar {
			break
		}
		bwdMoves = append(bwdMoves, board.Move{From: e.move.To, Over: e.move.Over, To: e.move.From})
		k = e.parent
	}

	return append(fwdMoves, bwdMoves...)
}
