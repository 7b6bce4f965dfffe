// Package store implements the solution store (spec 4.H): a canonical-
// key-keyed table of verified solutions persisted to a single JSON
// file via atomic write-temp-then-rename, plus a waypoint index derived
// from stored solutions for fast intermediate-state lookup. Grounded on
// original_source/peg_io/cache_enhanced.py (envelope shape, atomic
// write, legacy migration) and waypoints.py (waypoint index).
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// fileVersion is the current on-disk schema version (spec 6).
const fileVersion = 1

// entryJSON is one stored solution's wire representation, matching
// cache_enhanced.py's SolutionMetadata.to_dict exactly: moves as
// [from,over,to] triples, solver name, elapsed seconds, move count,
// and an ISO-8601 timestamp.
type entryJSON struct {
	Moves       [][3]int `json:"moves"`
	Solver      string   `json:"solver"`
	TimeElapsed float64  `json:"time_elapsed"`
	MoveCount   int      `json:"move_count"`
	Timestamp   string   `json:"timestamp"`
}

// fileJSON is the top-level envelope (spec 6): version, last_updated,
// and entries keyed by stringified canonical key.
type fileJSON struct {
	Version     int                  `json:"version"`
	LastUpdated string               `json:"last_updated"`
	Entries     map[string]entryJSON `json:"entries"`
}

// loadFile reads path and returns its entries, tolerating both the
// current envelope and two legacy shapes: a bare map of key -> move list
// (no envelope) and cache_enhanced.py's own `solutions` field name
// from an earlier phase of the reference cache, matching
// _migrate_old_format's behavior of accepting whatever shape is found.
func loadFile(path string) (map[string]entryJSON, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return map[string]entryJSON{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("store: read %s: %w", path, err)
	}

	var withEnvelope fileJSON
	if err := json.Unmarshal(data, &withEnvelope); err == nil && withEnvelope.Version != 0 {
		return withEnvelope.Entries, nil
	}

	// Legacy: version-less envelope with a "solutions" field, or a bare
	// key -> []move list with no envelope at all.
	var legacyEnvelope struct {
		Solutions map[string]entryJSON `json:"solutions"`
	}
	if err := json.Unmarshal(data, &legacyEnvelope); err == nil && legacyEnvelope.Solutions != nil {
		return legacyEnvelope.Solutions, nil
	}

	var bareMoves map[string][][3]int
	if err := json.Unmarshal(data, &bareMoves); err == nil {
		entries := make(map[string]entryJSON, len(bareMoves))
		for key, moves := range bareMoves {
			entries[key] = entryJSON{Moves: moves, Solver: "unknown", MoveCount: len(moves)}
		}
		return entries, nil
	}

	return nil, fmt.Errorf("store: %s: unrecognised cache format", path)
}

// saveFile writes entries to path atomically: a temp file in the same
// directory, then a rename, so a reader never observes a half-written
// file (spec 9 "Solution-store atomicity", cache_enhanced.py's
// tempfile.mkstemp + shutil.move).
func saveFile(path string, entries map[string]entryJSON) error {
	doc := fileJSON{
		Version:     fileVersion,
		LastUpdated: time.Now().UTC().Format(time.RFC3339),
		Entries:     entries,
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".store-*.json.tmp")
	if err != nil {
		return fmt.Errorf("store: create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	enc := json.NewEncoder(tmp)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		tmp.Close()
		return fmt.Errorf("store: encode: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("store: close temp file: %w", err)
	}

	return os.Rename(tmpName, path)
}

// keyString renders a canonical uint64 key as the decimal string used
// as a JSON object key (JSON object keys are always strings).
func keyString(key uint64) string {
	return strconv.FormatUint(key, 10)
}

// parseKey is keyString's inverse.
func parseKey(s string) (uint64, error) {
	return strconv.ParseUint(s, 10, 64)
}
