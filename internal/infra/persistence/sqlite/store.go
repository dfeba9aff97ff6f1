// Package sqlite persists the address book in a single SQLite table as a JSON
// document.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite" // pure go sqlite driver

	"casetrack/internal/infra/persistence/codec"
	"casetrack/pkg/domain"
)

var _ domain.PersistentStore = (*Store)(nil)

const patientsBucket = "patients"

// Store keeps the encoded address book under one bucket of the state table.
type Store struct {
	db   *sql.DB
	mu   sync.Mutex
	path string
}

// NewStore opens (creating when needed) the database at path.
func NewStore(path string) (*Store, error) {
	if path == "" {
		path = "casetrack.db"
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, fmt.Errorf("create dirs: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS state (
		bucket TEXT PRIMARY KEY,
		payload BLOB NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create state table: %w", err)
	}
	return &Store{db: db, path: path}, nil
}

// Load decodes the stored address book. It returns domain.ErrNoData when the
// bucket has never been written.
func (s *Store) Load(ctx context.Context) ([]domain.Patient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var payload []byte
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM state WHERE bucket = ?`, patientsBucket).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNoData
	}
	if err != nil {
		return nil, fmt.Errorf("select %s: %w", patientsBucket, err)
	}
	patients, err := codec.Unmarshal(payload)
	if err != nil {
		return nil, fmt.Errorf("sqlite %s: %w", s.path, err)
	}
	return patients, nil
}

// Save replaces the stored address book within a single transaction.
func (s *Store) Save(ctx context.Context, patients []domain.Patient) (retErr error) {
	data, err := codec.Marshal(patients)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if retErr != nil {
			_ = tx.Rollback()
		}
	}()
	if _, err = tx.ExecContext(ctx, `INSERT INTO state(bucket,payload) VALUES(?,?) ON CONFLICT(bucket) DO UPDATE SET payload=excluded.payload`, patientsBucket, data); err != nil {
		return fmt.Errorf("upsert %s: %w", patientsBucket, err)
	}
	return tx.Commit()
}

// Driver reports the sqlite driver.
func (s *Store) Driver() domain.StorageDriver { return domain.StorageSQLite }

// Close releases the database handle.
func (s *Store) Close() error { return s.db.Close() }
