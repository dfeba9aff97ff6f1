package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"casetrack/internal/blob/blobtest"
	"casetrack/internal/blob/core"
)

func TestFilesystemStoreContract(t *testing.T) {
	blobtest.RunContract(t, func(t *testing.T) core.Store {
		s, err := New(t.TempDir())
		require.NoError(t, err)
		return s
	})
}

func TestFilesystemLayout(t *testing.T) {
	root := filepath.Join(t.TempDir(), "backups")
	s, err := New(root)
	require.NoError(t, err)
	assert.Equal(t, root, s.Root())
	assert.Equal(t, core.DriverFilesystem, s.Driver())

	_, err = s.Put(context.Background(), "2026/a.json", strings.NewReader("{}"), core.PutOptions{})
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(root, "2026", "a.json"))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(root, "2026", "a.json.meta"))
	require.NoError(t, err)

	entries, err := os.ReadDir(filepath.Join(root, "2026"))
	require.NoError(t, err)
	assert.Len(t, entries, 2, "no temp files left behind")
}

func TestFilesystemRejectsMetaSuffix(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)
	_, err = s.Put(context.Background(), "x.meta", strings.NewReader("{}"), core.PutOptions{})
	require.ErrorIs(t, err, core.ErrInvalidKey)
}

func TestFilesystemCorruptSidecar(t *testing.T) {
	root := t.TempDir()
	s, err := New(root)
	require.NoError(t, err)
	_, err = s.Put(context.Background(), "a", strings.NewReader("{}"), core.PutOptions{})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.meta"), []byte("not json"), 0o600))

	_, err = s.Head(context.Background(), "a")
	require.Error(t, err)
	_, err = s.List(context.Background(), "")
	require.Error(t, err)
}
