package store

import (
	"sync"

	"github.com/katalvlaran/pegsolve/board"
)

// Waypoint is one intermediate state snapshotted out of a known
// solution, paired with the path that reached it and the path still
// needed to finish, mirroring waypoints.py's WaypointDatabase entry.
type Waypoint struct {
	Board     board.Board
	FromStart []board.Move
	ToGoal    []board.Move
	PegCount  int
}

// WaypointDatabase indexes waypoints by canonical key and, secondarily,
// by peg count for "find me anything around N pegs" queries. Grounded
// on original_source/peg_io/waypoints.py's WaypointDatabase.
type WaypointDatabase struct {
	mu          sync.RWMutex
	waypoints   map[uint64]Waypoint
	indexByPegs map[int]map[uint64]struct{}
}

// NewWaypointDatabase returns an empty database.
func NewWaypointDatabase() *WaypointDatabase {
	return &WaypointDatabase{
		waypoints:   make(map[uint64]Waypoint),
		indexByPegs: make(map[int]map[uint64]struct{}),
	}
}

// AddWaypoint inserts b (keyed by its canonical key, or its raw pegs
// mask when b is not an English cross) along with the path that
// reaches it and the path remaining to the goal.
func (d *WaypointDatabase) AddWaypoint(b board.Board, fromStart, toGoal []board.Move) {
	key := canonicalStoreKey(b)
	pegCount := b.PegCount()

	d.mu.Lock()
	defer d.mu.Unlock()

	d.waypoints[key] = Waypoint{
		Board:     b,
		FromStart: append([]board.Move(nil), fromStart...),
		ToGoal:    append([]board.Move(nil), toGoal...),
		PegCount:  pegCount,
	}

	if d.indexByPegs[pegCount] == nil {
		d.indexByPegs[pegCount] = make(map[uint64]struct{})
	}
	d.indexByPegs[pegCount][key] = struct{}{}
}

// FindWaypoint looks up the waypoint matching b, if any.
func (d *WaypointDatabase) FindWaypoint(b board.Board) (Waypoint, bool) {
	key := canonicalStoreKey(b)

	d.mu.RLock()
	defer d.mu.RUnlock()
	w, ok := d.waypoints[key]

	return w, ok
}

// FindByPegCount returns every waypoint recorded with exactly pegCount
// pegs remaining.
func (d *WaypointDatabase) FindByPegCount(pegCount int) []Waypoint {
	d.mu.RLock()
	defer d.mu.RUnlock()

	keys := d.indexByPegs[pegCount]
	out := make([]Waypoint, 0, len(keys))
	for key := range keys {
		if w, ok := d.waypoints[key]; ok {
			out = append(out, w)
		}
	}

	return out
}

// defaultWaypointInterval mirrors build_from_solution's default
// interval=5: a waypoint is snapshotted every 5 moves, plus always at
// the final move.
const defaultWaypointInterval = 5

// BuildFromSolution replays solution move by move from start and drops
// a waypoint every defaultWaypointInterval moves (and unconditionally
// at the last move), each holding the prefix played so far and the
// suffix still required to finish.
func (d *WaypointDatabase) BuildFromSolution(start board.Board, solution []board.Move) {
	d.buildFromSolution(start, solution, defaultWaypointInterval)
}

func (d *WaypointDatabase) buildFromSolution(start board.Board, solution []board.Move, interval int) {
	cur := start
	fromStart := make([]board.Move, 0, len(solution))

	for i, m := range solution {
		fromStart = append(fromStart, m)
		cur = cur.Apply(m)

		last := i == len(solution)-1
		if (i+1)%interval == 0 || last {
			var toGoal []board.Move
			if !last {
				toGoal = append([]board.Move(nil), solution[i+1:]...)
			}
			d.AddWaypoint(cur, fromStart, toGoal)
		}
	}
}

// Stats summarises the database's size, mirroring get_stats.
type Stats struct {
	TotalWaypoints int
	ByPegCount     map[int]int
}

// Stats returns current counts.
func (d *WaypointDatabase) Stats() Stats {
	d.mu.RLock()
	defer d.mu.RUnlock()

	byCount := make(map[int]int, len(d.indexByPegs))
	for pegCount, keys := range d.indexByPegs {
		byCount[pegCount] = len(keys)
	}

	return Stats{TotalWaypoints: len(d.waypoints), ByPegCount: byCount}
}
