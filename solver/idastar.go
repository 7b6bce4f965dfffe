package solver

import (
	"math"
	"time"

	"github.com/katalvlaran/pegsolve/board"
	"github.com/katalvlaran/pegsolve/heuristic"
	"github.com/katalvlaran/pegsolve/pegerr"
)

// idaEngine holds one IDA* run's mutable state, mirroring tsp/bb.go's
// bbEngine: a dedicated struct instead of closures over loop variables.
type idaEngine struct {
	opts      Options
	stats     Stats
	path      []board.Move
	bound     float64
	nextBound float64
	visited   map[uint64]bool // per-iteration cycle cut
	found     bool
	timedOut  bool
}

// IDAStar is iterative deepening on the f-bound (spec 4.F): the bound
// starts at h(start) and grows to the minimum f that exceeded the
// previous bound each iteration, using the Pagoda prune and a
// per-iteration visited set to cut cycles. The search stops with
// NoSolution once the bound exceeds Options.MaxIDADepth.
func IDAStar(start board.Board, opts Options) (Result, error) {
	t0 := time.Now()
	e := &idaEngine{opts: opts}
	e.bound = admissibleHeuristic(start, opts)

	for e.bound <= float64(opts.maxIDADepth()) {
		e.nextBound = math.Inf(1)
		e.visited = make(map[uint64]bool)
		e.path = e.path[:0]

		if e.dfs(start, 0, e.bound) {
			e.found = true
			break
		}
		if e.timedOut {
			break
		}
		if math.IsInf(e.nextBound, 1) {
			break // exhausted: no node exceeded the current bound
		}
		e.bound = e.nextBound
	}

	e.stats.Elapsed = time.Since(t0)
	if e.timedOut {
		return Result{Stats: e.stats}, pegerr.New(pegerr.TimedOut, errDeadline)
	}
	if !e.found {
		return Result{Stats: e.stats}, pegerr.New(pegerr.NoSolution, errExhausted)
	}

	moves := make([]board.Move, len(e.path))
	copy(moves, e.path)
	e.stats.SolutionLen = len(moves)

	return Result{Moves: moves, Stats: e.stats}, nil
}

// dfs performs one bounded depth-first probe, returning true on a found
// solution (left in e.path) and recording the minimum f that exceeded
// bound into e.nextBound otherwise.
func (e *idaEngine) dfs(b board.Board, g int, bound float64) bool {
	if e.opts.expired() {
		e.timedOut = true
		return false
	}
	e.stats.Visited++
	if g > e.stats.MaxDepth {
		e.stats.MaxDepth = g
	}

	f := float64(g) + admissibleHeuristic(b, e.opts)
	if f > bound {
		if f < e.nextBound {
			e.nextBound = f
		}
		return false
	}

	if b.PegCount() == 1 {
		return e.opts.reachesTarget(b)
	}

	key := canonicalKey(b)
	if e.visited[key] {
		e.stats.Pruned++
		return false
	}
	e.visited[key] = true

	if e.opts.UsePagoda && b.IsEnglishCross() {
		solvable := true
		if e.opts.Target != nil {
			solvable = heuristic.PagodaSolvableForTarget(b, *e.opts.Target)
		} else {
			solvable = heuristic.PagodaSolvableSoft(b)
		}
		if !solvable {
			e.stats.Pruned++
			return false
		}
	}

	moves := b.Moves()
	sortByTieBreak(moves)

	for _, m := range moves {
		e.path = append(e.path, m)
		if e.dfs(b.Apply(m), g+1, bound) {
			return true
		}
		if e.timedOut {
			return false
		}
		e.path = e.path[:len(e.path)-1]
	}

	return false
}
