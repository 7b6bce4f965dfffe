package store

import (
	"sync"
	"time"

	"github.com/katalvlaran/pegsolve/board"
	"github.com/katalvlaran/pegsolve/pegerr"
)

// Entry is one stored solution with its provenance metadata, mirroring
// cache_enhanced.py's SolutionMetadata.
type Entry struct {
	Moves       []board.Move
	Solver      string
	TimeElapsed time.Duration
	Timestamp   time.Time
}

// Store is the in-memory solution table plus its on-disk mirror: a
// primary canonicalKey -> Entry map, guarded by an exclusive writer
// lock and snapshotted to disk atomically (spec 4.H, spec 5 "Shared
// resources"). Readers may hold a stable view during a query since Go
// maps read under RLock are safe for concurrent readers.
type Store struct {
	mu      sync.RWMutex
	path    string
	primary map[uint64]Entry
}

// Open loads path if present (tolerating legacy shapes), or starts
// empty if the file does not exist; a corrupted file is reported as
// pegerr.CacheError and the caller degrades to an empty in-memory store
// rather than failing the whole solve, per spec 7.
func Open(path string) (*Store, error) {
	raw, err := loadFile(path)
	if err != nil {
		return &Store{path: path, primary: make(map[uint64]Entry)}, pegerr.New(pegerr.CacheError, err)
	}

	s := &Store{path: path, primary: make(map[uint64]Entry, len(raw))}
	for keyStr, e := range raw {
		key, err := parseKey(keyStr)
		if err != nil {
			continue // corrupted key, drop rather than fail the whole load
		}
		s.primary[key] = entryFromJSON(e)
	}

	return s, nil
}

// entryFromJSON converts the wire shape into an Entry.
func entryFromJSON(e entryJSON) Entry {
	moves := make([]board.Move, len(e.Moves))
	for i, m := range e.Moves {
		moves[i] = board.Move{From: board.Cell(m[0]), Over: board.Cell(m[1]), To: board.Cell(m[2])}
	}
	ts, _ := time.Parse(time.RFC3339, e.Timestamp)

	return Entry{
		Moves:       moves,
		Solver:      e.Solver,
		TimeElapsed: time.Duration(e.TimeElapsed * float64(time.Second)),
		Timestamp:   ts,
	}
}

// entryToJSON converts an Entry to its wire shape.
func entryToJSON(e Entry) entryJSON {
	moves := make([][3]int, len(e.Moves))
	for i, m := range e.Moves {
		moves[i] = [3]int{int(m.From), int(m.Over), int(m.To)}
	}
	ts := e.Timestamp
	if ts.IsZero() {
		ts = time.Now().UTC()
	}

	return entryJSON{
		Moves:       moves,
		Solver:      e.Solver,
		TimeElapsed: e.TimeElapsed.Seconds(),
		MoveCount:   len(moves),
		Timestamp:   ts.Format(time.RFC3339),
	}
}

// Lookup returns the stored solution for b's canonical key (spec 3 "a
// mapping canonicalKey -> Solution"), symmetry-corrected so the moves
// it returns are legal from b itself, not from whichever symmetric
// orientation was originally stored (see lookupSymmetryAware in
// lookup.go for the correction). ok is false on a miss.
func (s *Store) Lookup(b board.Board) (Entry, bool) {
	return lookupSymmetryAware(s, b)
}

// rawLookup returns the entry stored under key exactly, with no
// symmetry correction; lookup.go's lookupSymmetryAware is built on top
// of this.
func (s *Store) rawLookup(key uint64) (Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.primary[key]

	return e, ok
}

// Put inserts or replaces the solution for b's canonical key. e.Moves
// must be valid when replayed against b itself (as every solver
// returns); Put re-expresses them in the canonical D4 orientation
// before storing, so a later Lookup from any symmetric board can
// recover them via Symmetry.ApplyInverseMove (lookup.go). Additions are
// idempotent: if an entry already exists and is no longer than the new
// one, the existing entry is kept (spec 4.H "if a shorter solution
// arrives for an existing key, replace; otherwise keep the original").
func (s *Store) Put(b board.Board, e Entry) {
	key, symIndex := board.CanonicalWithSymmetry(b)
	sym := board.Symmetries[symIndex]

	canonMoves := make([]board.Move, len(e.Moves))
	for i, m := range e.Moves {
		canonMoves[i] = sym.ApplyMove(m)
	}
	e.Moves = canonMoves

	s.mu.Lock()
	defer s.mu.Unlock()
	if prev, ok := s.primary[key]; ok && len(prev.Moves) <= len(e.Moves) {
		return
	}
	s.primary[key] = e
}

// Save persists the current in-memory table to s.path atomically.
func (s *Store) Save() error {
	s.mu.RLock()
	raw := make(map[string]entryJSON, len(s.primary))
	for key, e := range s.primary {
		raw[keyString(key)] = entryToJSON(e)
	}
	s.mu.RUnlock()

	if err := saveFile(s.path, raw); err != nil {
		return pegerr.New(pegerr.StoreIO, err)
	}

	return nil
}

// canonicalStoreKey is board's canonical key per spec 3's "State key".
func canonicalStoreKey(b board.Board) uint64 {
	if b.IsEnglishCross() {
		return board.Canonical(b)
	}

	return b.Pegs
}
