// Package blobtest holds the behaviour every blob driver must share.
package blobtest

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"casetrack/internal/blob/core"
)

// RunContract exercises a fresh store returned by newStore.
func RunContract(t *testing.T, newStore func(t *testing.T) core.Store) {
	t.Helper()
	ctx := context.Background()

	t.Run("put get head", func(t *testing.T) {
		s := newStore(t)
		info, err := s.Put(ctx, "backups/a.json", strings.NewReader(`{"patients":[]}`),
			core.PutOptions{ContentType: "application/json", Metadata: map[string]string{"patients": "0"}})
		require.NoError(t, err)
		assert.Equal(t, "backups/a.json", info.Key)
		assert.Equal(t, int64(15), info.Size)
		assert.NotEmpty(t, info.ETag)

		got, rc, err := s.Get(ctx, "backups/a.json")
		require.NoError(t, err)
		body, err := io.ReadAll(rc)
		require.NoError(t, rc.Close())
		require.NoError(t, err)
		assert.Equal(t, `{"patients":[]}`, string(body))
		assert.Equal(t, "0", got.Metadata["patients"])
		assert.Equal(t, info.ETag, got.ETag)

		head, err := s.Head(ctx, "backups/a.json")
		require.NoError(t, err)
		assert.Equal(t, "application/json", head.ContentType)
	})

	t.Run("put is create only", func(t *testing.T) {
		s := newStore(t)
		_, err := s.Put(ctx, "k", strings.NewReader("1"), core.PutOptions{})
		require.NoError(t, err)
		_, err = s.Put(ctx, "k", strings.NewReader("2"), core.PutOptions{})
		require.ErrorIs(t, err, core.ErrExists)
	})

	t.Run("missing keys", func(t *testing.T) {
		s := newStore(t)
		_, _, err := s.Get(ctx, "nope")
		require.ErrorIs(t, err, core.ErrNotFound)
		_, err = s.Head(ctx, "nope")
		require.ErrorIs(t, err, core.ErrNotFound)
		removed, err := s.Delete(ctx, "nope")
		require.NoError(t, err)
		assert.False(t, removed)
	})

	t.Run("invalid keys", func(t *testing.T) {
		s := newStore(t)
		_, err := s.Put(ctx, "../escape", strings.NewReader("x"), core.PutOptions{})
		require.ErrorIs(t, err, core.ErrInvalidKey)
		_, _, err = s.Get(ctx, "/abs")
		require.ErrorIs(t, err, core.ErrInvalidKey)
	})

	t.Run("list and delete", func(t *testing.T) {
		s := newStore(t)
		for _, k := range []string{"backups/b", "backups/a", "other/c"} {
			_, err := s.Put(ctx, k, strings.NewReader(k), core.PutOptions{})
			require.NoError(t, err)
		}
		infos, err := s.List(ctx, "backups/")
		require.NoError(t, err)
		require.Len(t, infos, 2)
		assert.Equal(t, "backups/a", infos[0].Key)
		assert.Equal(t, "backups/b", infos[1].Key)

		all, err := s.List(ctx, "")
		require.NoError(t, err)
		assert.Len(t, all, 3)

		removed, err := s.Delete(ctx, "backups/a")
		require.NoError(t, err)
		assert.True(t, removed)
		infos, err = s.List(ctx, "backups/")
		require.NoError(t, err)
		assert.Len(t, infos, 1)
	})

	t.Run("metadata is copied", func(t *testing.T) {
		s := newStore(t)
		meta := map[string]string{"patients": "3"}
		_, err := s.Put(ctx, "m", strings.NewReader("x"), core.PutOptions{Metadata: meta})
		require.NoError(t, err)
		meta["patients"] = "99"
		head, err := s.Head(ctx, "m")
		require.NoError(t, err)
		head.Metadata["patients"] = "42"
		again, err := s.Head(ctx, "m")
		require.NoError(t, err)
		assert.Equal(t, "3", again.Metadata["patients"])
	})
}
