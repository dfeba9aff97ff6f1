// Package memory provides an in-memory persistent store for tests and ephemeral
// sessions. It keeps the encoded document so loads re-validate like the durable
// stores do.
package memory

import (
	"context"
	"sync"

	"casetrack/internal/infra/persistence/codec"
	"casetrack/pkg/domain"
)

var _ domain.PersistentStore = (*Store)(nil)

// Store holds the last saved document in memory.
type Store struct {
	mu   sync.RWMutex
	data []byte
}

// NewStore returns an empty store.
func NewStore() *Store { return &Store{} }

// Load decodes the last saved document, or returns domain.ErrNoData.
func (s *Store) Load(_ context.Context) ([]domain.Patient, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.data == nil {
		return nil, domain.ErrNoData
	}
	return codec.Unmarshal(s.data)
}

// Save encodes and keeps patients.
func (s *Store) Save(_ context.Context, patients []domain.Patient) error {
	data, err := codec.Marshal(patients)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.data = data
	s.mu.Unlock()
	return nil
}

// Raw returns a copy of the encoded document, or nil before the first save.
func (s *Store) Raw() []byte {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.data == nil {
		return nil
	}
	return append([]byte(nil), s.data...)
}

// Driver reports the memory driver.
func (s *Store) Driver() domain.StorageDriver { return domain.StorageMemory }

// Close is a no-op.
func (s *Store) Close() error { return nil }
