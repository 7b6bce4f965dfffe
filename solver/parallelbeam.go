package solver

import (
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/katalvlaran/pegsolve/board"
	"github.com/katalvlaran/pegsolve/heuristic"
	"github.com/katalvlaran/pegsolve/pegerr"
)

// ParallelBeam distributes one layer's expansion across Options.Workers
// goroutines, each scoring a slice of the beam; the top-W reduction is
// serial (spec 4.F "Parallel Beam", spec 5). The shared visited set is
// mutex-guarded rather than hash-sharded: the teacher corpus never
// shards a map by key, and a single mutex is simpler and not the
// bottleneck here (expansion, not the set lookup, dominates per layer).
func ParallelBeam(start board.Board, opts Options) (Result, error) {
	t0 := time.Now()
	stats := Stats{}
	evaluator := opts.Evaluator
	if evaluator.Score == nil {
		evaluator = heuristic.CombinedEvaluator(board.CenterPos)
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	var seenMu sync.Mutex
	seen := map[uint64]bool{canonicalKey(start): true}

	beam := []beamNode{{b: start, path: nil, score: evaluator.Score(start)}}

	for depth := 0; len(beam) > 0; depth++ {
		if opts.expired() {
			stats.Elapsed = time.Since(t0)
			return Result{Stats: stats}, pegerr.New(pegerr.TimedOut, errDeadline)
		}
		if depth > stats.MaxDepth {
			stats.MaxDepth = depth
		}

		for _, node := range beam {
			if node.b.PegCount() == 1 && opts.reachesTarget(node.b) {
				stats.Elapsed = time.Since(t0)
				stats.SolutionLen = len(node.path)
				return Result{Moves: node.path, Stats: stats}, nil
			}
		}

		slices := partitionBeam(beam, workers)
		results := make([][]beamNode, len(slices))
		var wg sync.WaitGroup
		for i, slice := range slices {
			wg.Add(1)
			go func(i int, slice []beamNode) {
				defer wg.Done()
				var local []beamNode
				for _, node := range slice {
					if node.b.PegCount() == 1 {
						continue
					}
					for _, m := range node.b.Moves() {
						child := node.b.Apply(m)
						key := canonicalKey(child)

						seenMu.Lock()
						dup := seen[key]
						if !dup {
							seen[key] = true
						}
						seenMu.Unlock()
						if dup {
							continue
						}

						path := make([]board.Move, len(node.path)+1)
						copy(path, node.path)
						path[len(node.path)] = m
						local = append(local, beamNode{b: child, path: path, score: evaluator.Score(child)})
					}
				}
				results[i] = local
			}(i, slice)
		}
		wg.Wait()

		var next []beamNode
		for _, r := range results {
			stats.Visited += len(r)
			next = append(next, r...)
		}
		sort.Slice(next, func(i, j int) bool { return next[i].score < next[j].score })
		if len(next) > opts.beamWidth() {
			stats.Pruned += len(next) - opts.beamWidth()
			next = next[:opts.beamWidth()]
		}
		beam = next
	}

	stats.Elapsed = time.Since(t0)
	return Result{Stats: stats}, pegerr.New(pegerr.NoSolution, errExhausted)
}

// partitionBeam splits beam into up to workers contiguous slices.
func partitionBeam(beam []beamNode, workers int) [][]beamNode {
	if workers < 1 {
		workers = 1
	}
	if workers > len(beam) {
		workers = len(beam)
	}
	if workers == 0 {
		return nil
	}

	chunk := (len(beam) + workers - 1) / workers
	slices := make([][]beamNode, 0, workers)
	for i := 0; i < len(beam); i += chunk {
		end := i + chunk
		if end > len(beam) {
			end = len(beam)
		}
		slices = append(slices, beam[i:end])
	}

	return slices
}
