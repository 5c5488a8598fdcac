package objcache

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Dir stores each entry as one file under a root directory. Writes go through
// a temp file and rename so a crashed populate never leaves a half-written
// entry behind; concurrent populates of the same key are still uncoordinated
// and the last rename wins.
type Dir struct {
	root string
}

// NewDir creates a Dir store rooted at the given directory. The directory is
// created on first Put.
func NewDir(root string) *Dir {
	return &Dir{root: root}
}

func (s *Dir) path(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return "", fmt.Errorf("objcache: invalid key %q", key)
	}
	return filepath.Join(s.root, key+".bin"), nil
}

// Get reads the entry stored under key.
func (s *Dir) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p, err := s.path(key)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(p)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("objcache: %s: %w", key, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("objcache: %s: %w", key, err)
	}
	return data, nil
}

// Put writes the entry under key, replacing any previous value.
func (s *Dir) Put(ctx context.Context, key string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p, err := s.path(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return fmt.Errorf("objcache: %s: %w", key, err)
	}

	tmp, err := os.CreateTemp(s.root, key+".tmp-*")
	if err != nil {
		return fmt.Errorf("objcache: %s: %w", key, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("objcache: %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("objcache: %s: %w", key, err)
	}
	if err := os.Rename(tmp.Name(), p); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("objcache: %s: %w", key, err)
	}
	return nil
}
