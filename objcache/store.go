// Package objcache is the keyed artifact cache the dataset loader memoizes
// into: assembled matrices and identifier arrays are stored under stable
// component names ("samples", "sample_id", ...) so later calls skip download
// and parsing entirely.
//
// The store is deliberately an explicit get/put service injected into the
// loader rather than ambient file paths; tests swap in Memory, deployments
// choose Dir or SQLite. Concurrent first-time population is not coordinated:
// two processes may both compute and write the same key, and the last write
// wins. That is acceptable because entries are derived deterministically from
// the same published archives.
package objcache

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when a key has not been populated.
//
// Implementations return an error satisfying errors.Is(err, ErrNotFound).
var ErrNotFound = errors.New("cache entry not found")

// Store is a keyed blob cache for serialized dataset artifacts.
type Store interface {
	// Get returns the payload stored under key.
	Get(ctx context.Context, key string) ([]byte, error)
	// Put stores the payload under key, replacing any previous value.
	Put(ctx context.Context, key string, data []byte) error
}

// Memory is a map-backed Store for tests.
type Memory struct {
	entries map[string][]byte
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{entries: make(map[string][]byte)}
}

// Get returns a copy of the payload stored under key.
func (s *Memory) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, ok := s.entries[key]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// Put stores a copy of the payload under key.
func (s *Memory) Put(ctx context.Context, key string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	s.entries[key] = cp
	return nil
}

// Len returns the number of stored entries.
func (s *Memory) Len() int {
	return len(s.entries)
}
