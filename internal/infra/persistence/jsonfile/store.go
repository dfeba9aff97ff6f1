// Package jsonfile persists the address book as a JSON document on disk.
package jsonfile

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"casetrack/internal/infra/persistence/codec"
	"casetrack/pkg/domain"
)

var _ domain.PersistentStore = (*Store)(nil)

// Store reads and writes a single JSON file. Writes go through a temp file and a
// rename so a crash never leaves a half-written document.
type Store struct {
	mu   sync.Mutex
	path string
}

// NewStore returns a store for the file at path. The file is not touched until
// the first Load or Save.
func NewStore(path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("jsonfile: path required")
	}
	return &Store{path: filepath.Clean(path)}, nil
}

// Path returns the document location.
func (s *Store) Path() string { return s.path }

// Load reads and validates the document. A missing file yields domain.ErrNoData.
func (s *Store) Load(_ context.Context) ([]domain.Patient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, domain.ErrNoData
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	patients, err := codec.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.path, err)
	}
	return patients, nil
}

// Save writes the document atomically.
func (s *Store) Save(ctx context.Context, patients []domain.Patient) error {
	data, err := codec.Marshal(patients)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("create dirs: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".addressbook-*.json")
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("write temp: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("sync temp: %w", err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return fmt.Errorf("close temp: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		cleanup()
		return fmt.Errorf("rename %s: %w", s.path, err)
	}
	return nil
}

// Driver reports the json driver.
func (s *Store) Driver() domain.StorageDriver { return domain.StorageJSON }

// Close is a no-op; the file is not held open between calls.
func (s *Store) Close() error { return nil }
