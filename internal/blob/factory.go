package blob

import (
	"fmt"

	"casetrack/internal/blob/core"
	"casetrack/internal/config"
	"casetrack/internal/infra/blob/fs"
	memorystore "casetrack/internal/infra/blob/memory"
)

// Open selects a Store implementation from cfg. An empty driver means fs.
func Open(cfg config.BackupConfig) (Store, error) {
	driver := Driver(cfg.Driver)
	if driver == "" {
		driver = DriverFilesystem
	}
	switch driver {
	case DriverFilesystem:
		return NewFilesystem(cfg.Root)
	case DriverMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown blob driver %s", driver)
	}
}

// NewFilesystem constructs a filesystem-backed Store rooted at root.
func NewFilesystem(root string) (Store, error) {
	s, err := fs.New(root)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// NewMemory returns an in-memory Store suitable for tests.
func NewMemory() Store { return memorystore.New() }

var (
	_ core.Store = (*fs.Store)(nil)
	_ core.Store = (*memorystore.Store)(nil)
)
