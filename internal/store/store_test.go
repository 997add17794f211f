package store

import (
	"context"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exerciseStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	_, err := s.Load(ctx, "SongQueue")
	assert.ErrorIs(t, err, ErrAbsent)

	require.NoError(t, s.Save(ctx, "SongQueue", []byte(`["Swing Cheese"]`)))
	got, err := s.Load(ctx, "SongQueue")
	require.NoError(t, err)
	assert.Equal(t, `["Swing Cheese"]`, string(got))

	require.NoError(t, s.Save(ctx, "SongQueue", []byte(`[]`)))
	got, err = s.Load(ctx, "SongQueue")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(got))
}

func TestMemory(t *testing.T) {
	s := NewMemory()
	defer s.Close()
	exerciseStore(t, s)

	t.Run("loaded blob is a copy", func(t *testing.T) {
		ctx := context.Background()
		require.NoError(t, s.Save(ctx, "k", []byte("abc")))
		b, err := s.Load(ctx, "k")
		require.NoError(t, err)
		b[0] = 'x'
		again, _ := s.Load(ctx, "k")
		assert.Equal(t, "abc", string(again))
	})
}

func TestFileStore(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "state")
	s, err := NewFileStore(dir)
	require.NoError(t, err)
	exerciseStore(t, s)

	t.Run("rejects path-like keys", func(t *testing.T) {
		err := s.Save(context.Background(), "../escape", []byte("x"))
		assert.Error(t, err)
	})

	t.Run("survives reopen", func(t *testing.T) {
		ctx := context.Background()
		require.NoError(t, s.Save(ctx, "AccountList", []byte("[]")))
		again, err := NewFileStore(dir)
		require.NoError(t, err)
		b, err := again.Load(ctx, "AccountList")
		require.NoError(t, err)
		assert.Equal(t, "[]", string(b))
	})
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	s, err := Open(ctx, "memory://")
	require.NoError(t, err)
	assert.IsType(t, &Memory{}, s)

	dir := t.TempDir()
	s, err = Open(ctx, "file://"+dir)
	require.NoError(t, err)
	assert.IsType(t, &FileStore{}, s)

	_, err = Open(ctx, "ftp://example.com/x")
	assert.ErrorIs(t, err, ErrUnsupportedScheme)
}

func TestOpenSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jukebox.db")
	s, err := Open(context.Background(), "sqlite://"+path)
	if err != nil && strings.Contains(err.Error(), "CGO_ENABLED=0") {
		t.Skip("sqlite3 driver needs cgo")
	}
	require.NoError(t, err)
	defer s.Close()
	exerciseStore(t, s)
}

func TestPortOr(t *testing.T) {
	u, err := url.Parse("mysql://root:pw@db:3307/jukebox")
	require.NoError(t, err)
	assert.Equal(t, "3307", portOr(u, "3306"))

	u, err = url.Parse("mysql://root:pw@db/jukebox")
	require.NoError(t, err)
	assert.Equal(t, "3306", portOr(u, "3306"))
}
