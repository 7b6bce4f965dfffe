package solver

import (
	"container/heap"
	"time"

	"github.com/katalvlaran/pegsolve/board"
	"github.com/katalvlaran/pegsolve/heuristic"
	"github.com/katalvlaran/pegsolve/pegerr"
)

// astarNode is one entry in the open set: f = g + h, ordered by f then
// insertion order for FIFO tie-breaking (spec 4.F "(f, insertionCounter)").
type astarNode struct {
	key       uint64
	b         board.Board
	g         int
	f         float64
	seq       int
	heapIndex int
}

// astarQueue implements container/heap.Interface, the idiomatic stdlib
// priority queue (DESIGN.md: no ecosystem heap appears anywhere in the
// corpus to prefer instead, so this is a deliberate stdlib exception).
type astarQueue []*astarNode

func (q astarQueue) Len() int { return len(q) }
func (q astarQueue) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}
	return q[i].seq < q[j].seq
}
func (q astarQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].heapIndex, q[j].heapIndex = i, j
}
func (q *astarQueue) Push(x any) {
	n := x.(*astarNode)
	n.heapIndex = len(*q)
	*q = append(*q, n)
}
func (q *astarQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return item
}

// astarVisited records the best known g and the move/parent used to
// reach a canonical key, for path reconstruction (spec 3's "visited map
// canonicalKey -> (g, parentKey, moveTaken)").
type astarVisited struct {
	g        int
	parent   uint64
	move     board.Move
	hasStart bool
}

// AStar is the classic admissible search (spec 4.F): open set ordered by
// f = g + h, h = max(peg-count bound, PDB bound) on the English cross
// when Options.PDB is set, h = peg-count bound elsewhere. The dead-end
// prune is applied before enqueueing a child; the Pagoda prune is applied
// when a node is popped, before its children are generated.
func AStar(start board.Board, opts Options) (Result, error) {
	t0 := time.Now()
	stats := Stats{}

	startKey := canonicalKey(start)
	visited := map[uint64]astarVisited{startKey: {hasStart: true}}
	byKey := map[uint64]board.Board{startKey: start}

	pq := &astarQueue{}
	heap.Init(pq)
	seq := 0
	push := func(b board.Board, key uint64, g int) {
		h := admissibleHeuristic(b, opts)
		heap.Push(pq, &astarNode{key: key, b: b, g: g, f: float64(g) + h, seq: seq})
		seq++
	}
	push(start, startKey, 0)

	for pq.Len() > 0 {
		if opts.expired() {
			stats.Elapsed = time.Since(t0)
			return Result{Stats: stats}, pegerr.New(pegerr.TimedOut, errDeadline)
		}

		node := heap.Pop(pq).(*astarNode)
		stats.Visited++
		if node.g > stats.MaxDepth {
			stats.MaxDepth = node.g
		}

		if node.b.PegCount() == 1 {
			if !opts.reachesTarget(node.b) {
				stats.Pruned++
				continue
			}
			moves := reconstructPath(visited, startKey, node.key)
			stats.Elapsed = time.Since(t0)
			stats.SolutionLen = len(moves)
			return Result{Moves: moves, Stats: stats}, nil
		}

		if opts.UsePagoda && node.b.IsEnglishCross() {
			solvable := true
			if opts.Target != nil {
				solvable = heuristic.PagodaSolvableForTarget(node.b, *opts.Target)
			} else {
				solvable = heuristic.PagodaSolvableSoft(node.b)
			}
			if !solvable {
				stats.Pruned++
				continue
			}
		}

		for _, m := range node.b.Moves() {
			child := node.b.Apply(m)
			if child.IsDead() && child.PegCount() > 1 {
				stats.Pruned++
				continue
			}
			childKey := canonicalKey(child)
			childG := node.g + 1
			if prev, ok := visited[childKey]; ok && prev.g <= childG {
				continue
			}
			visited[childKey] = astarVisited{g: childG, parent: node.key, move: m}
			byKey[childKey] = child
			push(child, childKey, childG)
		}
	}

	stats.Elapsed = time.Since(t0)
	return Result{Stats: stats}, pegerr.New(pegerr.NoSolution, errExhausted)
}

// admissibleHeuristic returns max(h0, PDB) on the English cross when a
// PDB is attached, h0 elsewhere.
func admissibleHeuristic(b board.Board, opts Options) float64 {
	h0 := float64(b.PegCount() - 1)
	if opts.PDB == nil || !b.IsEnglishCross() {
		return h0
	}
	hp := opts.PDB.HeuristicValue(b)
	if hp > h0 {
		return hp
	}
	return h0
}

// reconstructPath walks parent links from goalKey back to startKey and
// reverses the accumulated moves into forward order.
func reconstructPath(visited map[uint64]astarVisited, startKey, goalKey uint64) []board.Move {
	var rev []board.Move
	for k := goalKey; k != startKey; {
		v := visited[k]
		rev = append(rev, v.move)
		k = v.parent
	}
	moves := make([]board.Move, len(rev))
	for i, m := range rev {
		moves[len(rev)-1-i] = m
	}
	return moves
}
