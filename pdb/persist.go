package pdb

import (
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"
)

// Save gob-encodes tables to path using the same write-to-temp-then-
// rename discipline as the solution store (store/file.go): a reader
// never observes a partially written file, even if the process is
// killed mid-write.
func Save(tables Tables, path string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".pdb-*.tmp")
	if err != nil {
		return fmt.Errorf("pdb: create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op once the rename below succeeds

	enc := gob.NewEncoder(tmp)
	// gob cannot encode a map keyed by a named map type directly inside
	// an array without a concrete intermediate, so tables is flattened
	// to a plain slice of maps for the wire format.
	plain := make([]map[uint64]int, numRegions)
	for i, t := range tables {
		plain[i] = map[uint64]int(t)
	}
	if err := enc.Encode(plain); err != nil {
		tmp.Close()
		return fmt.Errorf("pdb: encode tables: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("pdb: close temp file: %w", err)
	}

	return os.Rename(tmpName, path)
}

// Load decodes a Tables previously written by Save.
func Load(path string) (Tables, error) {
	var tables Tables

	f, err := os.Open(path)
	if err != nil {
		return tables, fmt.Errorf("pdb: open %s: %w", path, err)
	}
	defer f.Close()

	var plain []map[uint64]int
	if err := gob.NewDecoder(f).Decode(&plain); err != nil {
		return tables, fmt.Errorf("pdb: decode %s: %w", path, err)
	}
	if len(plain) != int(numRegions) {
		return tables, fmt.Errorf("pdb: %s has %d regions, want %d", path, len(plain), numRegions)
	}
	for i, m := range plain {
		tables[i] = Table(m)
	}

	return tables, nil
}

// LoadOrBuild loads path if it exists, else builds fresh tables and
// persists them to path for next time.
func LoadOrBuild(path string) (Tables, error) {
	if tables, err := Load(path); err == nil {
		return tables, nil
	}

	tables := Build()
	if err := Save(tables, path); err != nil {
		return tables, err
	}

	return tables, nil
}
