package core

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"casetrack/internal/config"
)

func TestOpenPersistentStoreDrivers(t *testing.T) {
	dir := t.TempDir()
	cases := []struct {
		cfg  config.StorageConfig
		want StorageDriver
	}{
		{config.StorageConfig{Driver: "memory"}, StorageMemory},
		{config.StorageConfig{JSONPath: filepath.Join(dir, "book.json")}, StorageJSON},
		{config.StorageConfig{Driver: "json", JSONPath: filepath.Join(dir, "book.json")}, StorageJSON},
		{config.StorageConfig{Driver: "sqlite", SQLitePath: filepath.Join(dir, "book.db")}, StorageSQLite},
	}
	for _, tc := range cases {
		store, err := OpenPersistentStore(tc.cfg)
		require.NoError(t, err)
		assert.Equal(t, tc.want, store.Driver())
		_, err = store.Load(context.Background())
		assert.ErrorIs(t, err, ErrNoData)
		require.NoError(t, store.Close())
	}
}

func TestOpenPersistentStoreErrors(t *testing.T) {
	_, err := OpenPersistentStore(config.StorageConfig{Driver: "postgres"})
	require.Error(t, err)

	_, err = OpenPersistentStore(config.StorageConfig{Driver: "json"})
	require.Error(t, err)
}
