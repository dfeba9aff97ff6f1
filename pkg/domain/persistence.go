package domain

import (
	"context"
	"errors"
)

// ErrNoData is returned by PersistentStore.Load when nothing has been saved yet.
var ErrNoData = errors.New("no saved address book")

// StorageDriver identifies a concrete persistent storage implementation.
type StorageDriver string

const (
	StorageMemory StorageDriver = "memory" // in-memory only (tests / ephemeral)
	StorageJSON   StorageDriver = "json"   // JSON document on disk
	StorageSQLite StorageDriver = "sqlite" // embedded sqlite file
)

// PersistentStore is a minimal abstraction over durable backends. Load returns
// the stored patients in order; Save replaces the stored contents.
type PersistentStore interface {
	Load(ctx context.Context) ([]Patient, error)
	Save(ctx context.Context, patients []Patient) error
	Driver() StorageDriver
	Close() error
}
