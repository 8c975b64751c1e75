// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store persists submissions and generated output records as flat
// JSON tables keyed by article ID, plus a SQLite ledger of pipeline runs.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/pdiddy/journal-engine/pkg/types"
)

const (
	submissionsFile = "input_data.json"
	outputsFile     = "output_data.json"
)

// Table is one JSON file holding a map of ID to record. Reads are tolerant:
// a missing, empty, or malformed file behaves as an empty table so a corrupt
// write never wedges the service. Writes rewrite the whole file under a
// mutex.
type Table[T any] struct {
	mu   sync.Mutex
	path string
}

// NewTable returns a table backed by the given file path.
func NewTable[T any](path string) *Table[T] {
	return &Table[T]{path: path}
}

func (t *Table[T]) read() map[string]T {
	data, err := os.ReadFile(t.path)
	if err != nil {
		return map[string]T{}
	}
	var m map[string]T
	if err := json.Unmarshal(data, &m); err != nil || m == nil {
		return map[string]T{}
	}
	return m
}

func (t *Table[T]) write(m map[string]T) error {
	if err := os.MkdirAll(filepath.Dir(t.path), 0o755); err != nil {
		return fmt.Errorf("creating store directory: %w", err)
	}
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding table: %w", err)
	}
	tmp := t.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing table: %w", err)
	}
	if err := os.Rename(tmp, t.path); err != nil {
		return fmt.Errorf("replacing table: %w", err)
	}
	return nil
}

// Get returns the record for id and whether it exists.
func (t *Table[T]) Get(id string) (T, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	v, ok := t.read()[id]
	return v, ok
}

// Put inserts or replaces the record for id.
func (t *Table[T]) Put(id string, v T) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	m := t.read()
	m[id] = v
	return t.write(m)
}

// Delete removes the record for id, reporting whether it was present.
func (t *Table[T]) Delete(id string) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	m := t.read()
	if _, ok := m[id]; !ok {
		return false, nil
	}
	delete(m, id)
	return true, t.write(m)
}

// All returns every record keyed by ID.
func (t *Table[T]) All() map[string]T {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.read()
}

// IDs returns the sorted set of record IDs.
func (t *Table[T]) IDs() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	m := t.read()
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Store bundles the two JSON tables and the run ledger under one directory.
type Store struct {
	Submissions *Table[types.SubmissionRecord]
	Outputs     *Table[types.OutputRecord]
	Ledger      *Ledger
}

// Open creates the store directory if needed and opens the run ledger.
func Open(cfg types.StoreConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.DBDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating store directory: %w", err)
	}
	ledger, err := OpenLedger(cfg.DBDir)
	if err != nil {
		return nil, err
	}
	return &Store{
		Submissions: NewTable[types.SubmissionRecord](filepath.Join(cfg.DBDir, submissionsFile)),
		Outputs:     NewTable[types.OutputRecord](filepath.Join(cfg.DBDir, outputsFile)),
		Ledger:      ledger,
	}, nil
}

// Close releases the ledger database.
func (s *Store) Close() error {
	return s.Ledger.Close()
}
