package solver

import (
	"time"

	"github.com/katalvlaran/pegsolve/board"
	"github.com/katalvlaran/pegsolve/heuristic"
	"github.com/katalvlaran/pegsolve/pegerr"
)

// dfsWalker holds the mutable state of one DFS-memo run, the same
// dedicated-engine-struct shape dfs.dfsWalker and tsp.bbEngine use to
// keep hot-path state out of closures.
type dfsWalker struct {
	opts    Options
	memo    map[uint64]bool // canonical key -> proven unsolvable from here
	stats   Stats
	path    []board.Move
	deadEnd bool
}

// DFSMemo is the recursive depth-first search with a canonical-key memo
// of provably unsolvable states (spec 4.F). It returns pegerr.NoSolution
// when the whole reachable space is exhausted, and pegerr.TimedOut if
// Options.Deadline passes first.
func DFSMemo(start board.Board, opts Options) (Result, error) {
	start0 := time.Now()
	w := &dfsWalker{
		opts: opts,
		memo: make(map[uint64]bool),
		path: make([]board.Move, 0, 32),
	}

	found, timedOut := w.search(start, 0)
	w.stats.Elapsed = time.Since(start0)

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

// search recurses per spec 4.F's six-step DFS-memo body. It returns
// (found, timedOut); on found it leaves w.path holding the solution.
func (w *dfsWalker) search(b board.Board, depth int) (found, timedOut bool) {
	if w.opts.expired() {
		return false, true
	}
	w.stats.Visited++
	if depth > w.stats.MaxDepth {
		w.stats.MaxDepth = depth
	}

	if b.PegCount() == 1 {
		return w.opts.reachesTarget(b), false
	}

	key := canonicalKey(b)
	if w.memo[key] {
		w.stats.Pruned++
		return false, false
	}

	if w.opts.UsePagoda && b.IsEnglishCross() {
		solvable := true
		if w.opts.Target != nil {
			solvable = heuristic.PagodaSolvableForTarget(b, *w.opts.Target)
		} else {
			solvable = heuristic.PagodaSolvableSoft(b)
		}
		if !solvable {
			w.memo[key] = true
			w.stats.Pruned++
			return false, false
		}
	}

	moves := b.Moves()
	if len(moves) == 0 {
		w.memo[key] = true
		return false, false
	}
	sortByTieBreak(moves)

	for _, m := range moves {
		w.path = append(w.path, m)
		found, timedOut := w.search(b.Apply(m), depth+1)
		if found || timedOut {
			return found, timedOut
		}
		w.path = w.path[:len(w.path)-1]
	}

	w.memo[key] = true

	return false, false
}
