// Package file implements the fallback wardrobe store: one plain text file
// per key inside the data directory. It is also the legacy storage location
// that predates the SQLite store.
package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"wardrobe/internal/wardrobe/repository"
	"wardrobe/pkg/log"
)

type implStore struct {
	dir string
	l   log.Logger
}

// New returns a repository.Store writing each key as a file under dir.
func New(dir string, l log.Logger) (repository.Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &implStore{dir: dir, l: l}, nil
}

// path maps a storage key to a file path. Path separators in keys are
// flattened so a key can never escape the data directory.
func (s *implStore) path(key string) string {
	safe := strings.NewReplacer("/", "_", "\\", "_", "..", "_").Replace(key)
	return filepath.Join(s.dir, safe+".json")
}

func (s *implStore) Get(ctx context.Context, key string) (string, bool, error) {
	data, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return "", false, nil
	}
	if err != nil {
		s.l.Errorf(ctx, "wardrobe/repository/file.Get: %v", err)
		return "", false, repository.ErrFailedToGet
	}
	return string(data), true, nil
}

func (s *implStore) Set(ctx context.Context, key, value string) error {
	path := s.path(key)
	tmp := path + ".tmp"

	// Write-then-rename keeps a crash from truncating the previous snapshot.
	if err := os.WriteFile(tmp, []byte(value), 0o644); err != nil {
		s.l.Errorf(ctx, "wardrobe/repository/file.Set write: %v", err)
		return repository.ErrFailedToSet
	}
	if err := os.Rename(tmp, path); err != nil {
		s.l.Errorf(ctx, "wardrobe/repository/file.Set rename: %v", err)
		return repository.ErrFailedToSet
	}
	return nil
}

func (s *implStore) Delete(ctx context.Context, key string) error {
	err := os.Remove(s.path(key))
	if err != nil && !os.IsNotExist(err) {
		s.l.Errorf(ctx, "wardrobe/repository/file.Delete: %v", err)
		return repository.ErrFailedToDelete
	}
	return nil
}

func (s *implStore) Close() error {
	return nil
}
