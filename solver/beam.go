package solver

import (
	"sort"
	"time"

	"github.com/katalvlaran/pegsolve/board"
	"github.com/katalvlaran/pegsolve/heuristic"
	"github.com/katalvlaran/pegsolve/pegerr"
)

// beamNode is one live candidate: the board reached and the path taken
// to reach it from the start.
type beamNode struct {
	b     board.Board
	path  []board.Move
	score float64
}

// Beam is layer-synchronous beam search (spec 4.F): the beam holds up
// to Options.BeamWidth nodes; every layer expands every node,
// deduplicates children by canonical key across the entire run, scores
// them with Options.Evaluator, and keeps the lowest-scoring W. It is
// not complete -- used as a fast non-admissible probe, so it returns
// pegerr.NoSolution if the beam ever empties without reaching a
// terminal state.
func Beam(start board.Board, opts Options) (Result, error) {
	t0 := time.Now()
	stats := Stats{}
	evaluator := opts.Evaluator
	if evaluator.Score == nil {
		evaluator = heuristic.CombinedEvaluator(board.CenterPos)
	}

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

		var next []beamNode
		for _, node := range beam {
			stats.Visited++
			if node.b.PegCount() == 1 {
				continue // wrong target, dead end for this branch
			}
			for _, m := range node.b.Moves() {
				child := node.b.Apply(m)
				key := canonicalKey(child)
				if seen[key] {
					stats.Pruned++
					continue
				}
				seen[key] = true
				path := make([]board.Move, len(node.path)+1)
				copy(path, node.path)
				path[len(node.path)] = m
				next = append(next, beamNode{b: child, path: path, score: evaluator.Score(child)})
			}
		}

		sort.Slice(next, func(i, j int) bool { return next[i].score < next[j].score })
		if len(next) > opts.beamWidth() {
			next = next[:opts.beamWidth()]
		}
		beam = next
	}

	stats.Elapsed = time.Since(t0)
	return Result{Stats: stats}, pegerr.New(pegerr.NoSolution, errExhausted)
}

