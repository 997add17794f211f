package jukebox

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog(t *testing.T) {
	c := NewCatalog()
	require.NoError(t, SeedCatalog(c, DefaultSongs()))
	assert.Equal(t, 7, c.Len())

	s, ok := c.Lookup("Untameable Fire")
	require.True(t, ok)
	assert.Equal(t, 282, s.Seconds)
	assert.Equal(t, "Pierre Langer", s.Artist)

	_, ok = c.Lookup("untameable fire")
	assert.False(t, ok)

	c.RecordSelection("Swing Cheese")
	c.RecordSelection("Swing Cheese")
	s, _ = c.Lookup("Swing Cheese")
	assert.Equal(t, 2, s.TimesSelected)

	c.ResetDailyCounts()
	s, _ = c.Lookup("Swing Cheese")
	assert.Equal(t, 0, s.TimesSelected)

	assert.ErrorIs(t, c.Add(s), ErrSongExists)
	assert.Equal(t, "Pokemon Capture", c.List()[0].Title)
	assert.Equal(t, "Untameable Fire", c.List()[6].Title)
}

func TestLoadCatalogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	body := `songs:
  - title: Swing Cheese
    time: "0:15"
    artist: FreePlay Music
    file: SwingCheese.mp3
  - title: Long Seconds
    time: "1:75"
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	songs, err := LoadCatalogFile(path)
	require.NoError(t, err)
	require.Len(t, songs, 2)
	assert.Equal(t, 15, songs[0].Seconds)
	assert.Equal(t, 135, songs[1].Seconds)

	t.Run("empty file", func(t *testing.T) {
		empty := filepath.Join(t.TempDir(), "empty.yaml")
		require.NoError(t, os.WriteFile(empty, []byte("songs: []\n"), 0o644))
		_, err := LoadCatalogFile(empty)
		assert.ErrorIs(t, err, ErrEmptyCatalog)
	})

	t.Run("bad duration", func(t *testing.T) {
		bad := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(bad, []byte("songs:\n  - title: X\n    time: soon\n"), 0o644))
		_, err := LoadCatalogFile(bad)
		assert.Error(t, err)
	})
}
