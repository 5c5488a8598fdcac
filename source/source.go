// Package source abstracts where the published dataset archives come from.
//
// The canonical backend is HTTP against the JMLR mirror; MinIO covers
// S3-compatible mirrors for air-gapped setups, and Memory is a test double.
// All backends return the whole archive body in one slice: the archives are
// gzip members that cannot be decompressed from a non-seekable stream without
// buffering, so partial reads buy nothing.
package source

import (
	"context"
	"errors"
)

// ErrNotFound is returned when the named archive does not exist at the source.
//
// Implementations return an error satisfying errors.Is(err, ErrNotFound).
var ErrNotFound = errors.New("archive not found")

// Source fetches published dataset archives by name.
type Source interface {
	// Fetch retrieves the named archive, fully buffered in memory.
	Fetch(ctx context.Context, name string) ([]byte, error)
}

// Memory is a map-backed Source for tests.
type Memory struct {
	archives map[string][]byte
}

// NewMemory creates an empty in-memory source.
func NewMemory() *Memory {
	return &Memory{archives: make(map[string][]byte)}
}

// Put stores an archive under the given name.
func (s *Memory) Put(name string, data []byte) {
	s.archives[name] = data
}

// Fetch returns a copy of the stored archive.
func (s *Memory) Fetch(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, ok := s.archives[name]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}
