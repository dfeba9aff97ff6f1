package core

import (
	"fmt"

	"casetrack/internal/config"
	"casetrack/internal/infra/persistence/jsonfile"
	"casetrack/internal/infra/persistence/memory"
	"casetrack/internal/infra/persistence/sqlite"
)

// OpenPersistentStore selects a backend from cfg. An empty driver means json.
func OpenPersistentStore(cfg config.StorageConfig) (PersistentStore, error) {
	driver := StorageDriver(cfg.Driver)
	if driver == "" {
		driver = StorageJSON
	}
	switch driver {
	case StorageMemory:
		return memory.NewStore(), nil
	case StorageJSON:
		js, err := jsonfile.NewStore(cfg.JSONPath)
		if err != nil {
			return nil, err
		}
		return js, nil
	case StorageSQLite:
		ss, err := sqlite.NewStore(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return ss, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %s", driver)
	}
}
