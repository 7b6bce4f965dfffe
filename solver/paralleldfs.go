package solver

import (
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/katalvlaran/pegsolve/board"
	"github.com/katalvlaran/pegsolve/heuristic"
	"github.com/katalvlaran/pegsolve/pegerr"
)

// ParallelDFS enumerates first-level moves and hands them to a pool of up
// to Options.Workers goroutines, which run a private DFSMemo (with its own
// memo) over each first move's subtree (spec
// 4.F "Parallel DFS (root splitting)", spec 5). The first worker to
// find a solution wins; a shared atomic flag lets the others notice
// and stop recursing, though per spec 5 no hard kill is required --
// an already-started recursive call is simply abandoned once it next
// checks the flag.
func ParallelDFS(start board.Board, opts Options) (Result, error) {
	t0 := time.Now()

	roots := start.Moves()
	if len(roots) == 0 {
		return Result{}, pegerr.New(pegerr.NoSolution, errExhausted)
	}
	sortByTieBreak(roots)

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(roots) {
		workers = len(roots)
	}

	var found int32 // atomic: 0 = not yet, 1 = a worker has a result
	var winner Result
	var winnerErr error
	var mu sync.Mutex

	jobs := make(chan board.Move)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for m := range jobs {
				if atomic.LoadInt32(&found) != 0 {
					continue
				}
				res, err := dfsMemoCancelable(start.Apply(m), opts, &found)
				if err == nil {
					if atomic.CompareAndSwapInt32(&found, 0, 1) {
						mu.Lock()
						moves := make([]board.Move, 0, len(res.Moves)+1)
						moves = append(moves, m)
						moves = append(moves, res.Moves...)
						res.Moves = moves
						res.Stats.SolutionLen = len(moves)
						winner = res
						winnerErr = nil
						mu.Unlock()
					}
				}
			}
		}()
	}
	for _, m := range roots {
		jobs <- m
	}
	close(jobs)
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	if atomic.LoadInt32(&found) != 0 {
		winner.Stats.Elapsed = time.Since(t0)
		return winner, nil
	}
	if winnerErr == nil {
		winnerErr = pegerr.New(pegerr.NoSolution, errExhausted)
	}

	return Result{Stats: Stats{Elapsed: time.Since(t0)}}, winnerErr
}

// dfsMemoCancelable is DFSMemo with an additional cooperative-cancel
// check against the shared found flag, so a worker whose sibling just
// won stops expanding instead of running its subtree to exhaustion.
func dfsMemoCancelable(start board.Board, opts Options, found *int32) (Result, error) {
	t0 := time.Now()
	w := &cancelableWalker{
		opts:  opts,
		memo:  make(map[uint64]bool),
		path:  make([]board.Move, 0, 32),
		found: found,
	}

	ok, timedOut := w.search(start, 0)
	w.stats.Elapsed = time.Since(t0)

	if timedOut {
		return Result{Stats: w.stats}, pegerr.New(pegerr.TimedOut, errDeadline)
	}
	if !ok {
		return Result{Stats: w.stats}, pegerr.New(pegerr.NoSolution, errExhausted)
	}

	moves := make([]board.Move, len(w.path))
	copy(moves, w.path)
	w.stats.SolutionLen = len(moves)

	return Result{Moves: moves, Stats: w.stats}, nil
}

type cancelableWalker struct {
	opts  Options
	memo  map[uint64]bool
	stats Stats
	path  []board.Move
	found *int32
}

func (w *cancelableWalker) search(b board.Board, depth int) (found, timedOut bool) {
	if atomic.LoadInt32(w.found) != 0 {
		return false, true // treat "sibling won" like a deadline: unwind without an answer
	}
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
		ok, timedOut := w.search(b.Apply(m), depth+1)
		if ok || timedOut {
			return ok, timedOut
		}
		w.path = w.path[:len(w.path)-1]
	}

	w.memo[key] = true

	return false, false
}
