package solver

import (
	"time"

	"github.com/katalvlaran/pegsolve/board"
	"github.com/katalvlaran/pegsolve/heuristic"
	"github.com/katalvlaran/pegsolve/pegerr"
	"github.com/katalvlaran/pegsolve/zobrist"
)

// zobristWalker is DFSMemo's dfsWalker generalized to key the memo by
// Zobrist hash instead of the D4-canonical key: equality is implicit in
// the hash, at the cost of accepting rare collisions (spec 4.F).
type zobristWalker struct {
	opts  Options
	memo  map[uint64]bool
	stats Stats
	path  []board.Move
}

// ZobristDFS is DFSMemo's shape with a Zobrist-hash memo (spec 4.F,
// "Zobrist-DFS"): identical recursion, cheaper key, no canonicalisation
// cost per node.
func ZobristDFS(start board.Board, opts Options) (Result, error) {
	t0 := time.Now()
	zb := zobrist.New(start)
	w := &zobristWalker{
		opts: opts,
		memo: make(map[uint64]bool),
		path: make([]board.Move, 0, 32),
	}

	found, timedOut := w.search(zb, 0)
	w.stats.Elapsed = time.Since(t0)

	if timedOut {
		return Result{Stats: w.stats}, pegerr.New(pegerr.TimedOut, errDeadline)
	}
	if !found {
		return Result{Stats: w.stats}, pegerr.New(pegerr.NoSolution, errExhausted)
	}

	moves := make([]board.Move, len(w.path))
	copy(moves, w.path)
	w.stats.SolutionLen = len(moves)

	return Result{Moves: moves, Stats: w.stats}, nil
}

func (w *zobristWalker) search(zb zobrist.Board, depth int) (found, timedOut bool) {
	if w.opts.expired() {
		return false, true
	}
	w.stats.Visited++
	if depth > w.stats.MaxDepth {
		w.stats.MaxDepth = depth
	}

	if zb.PegCount() == 1 {
		return w.opts.reachesTarget(zb.Board), false
	}

	if w.memo[zb.Hash] {
		w.stats.Pruned++
		return false, false
	}

	if w.opts.UsePagoda && zb.IsEnglishCross() {
		solvable := true
		if w.opts.Target != nil {
			solvable = heuristic.PagodaSolvableForTarget(zb.Board, *w.opts.Target)
		} else {
			solvable = heuristic.PagodaSolvableSoft(zb.Board)
		}
		if !solvable {
			w.memo[zb.Hash] = true
			w.stats.Pruned++
			return false, false
		}
	}

	moves := zb.Moves()
	if len(moves) == 0 {
		w.memo[zb.Hash] = true
		return false, false
	}
	sortByTieBreak(moves)

	for _, m := range moves {
		w.path = append(w.path, m)
		found, timedOut := w.search(zb.Apply(m), depth+1)
		if found || timedOut {
			return found, timedOut
		}
		w.path = w.path[:len(w.path)-1]
	}

	w.memo[zb.Hash] = true

	return false, false
}
