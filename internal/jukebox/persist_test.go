package jukebox

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/iliyamo/jukebox/internal/model"
	"github.com/iliyamo/jukebox/internal/store"
)

func TestSaveAndRestore(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()

	j, _ := newTestJukebox(t)
	require.Equal(t, model.Admitted, evaluate(t, j, "Chris", "Swing Cheese", day))
	require.Equal(t, model.Admitted, evaluate(t, j, "Devon", "Danse Macabre", day))
	_, err := j.AddOrUpdateAccount("Victor", "hey", false)
	require.NoError(t, err)
	require.True(t, j.RemoveAccount("Ryan"))
	require.NoError(t, j.Save(ctx, st))

	// A fresh process seeds defaults and then restores over them.
	ledger := NewLedger(bcrypt.MinCost, DefaultBalanceSeconds)
	require.NoError(t, SeedAccounts(ledger))
	catalog := NewCatalog()
	require.NoError(t, SeedCatalog(catalog, DefaultSongs()))
	player := &recordingPlayer{}
	restored := New(ledger, catalog, player, WithRolloverDate(day.AddDate(0, 0, -3)))

	keys, err := restored.Restore(ctx, st)
	require.NoError(t, err)
	assert.Equal(t, []string{KeyAccounts, KeySongs, KeyQueue}, keys)

	assert.True(t, restored.Verify("Victor", "hey"))
	_, err = restored.Account("Ryan")
	assert.ErrorIs(t, err, ErrAccountNotFound)

	chris, err := restored.Account("Chris")
	require.NoError(t, err)
	assert.Equal(t, DefaultBalanceSeconds-15, chris.BalanceSeconds)
	assert.Equal(t, 1, chris.SelectionsToday)

	assert.Equal(t, []string{"Swing Cheese", "Danse Macabre"}, restored.QueueOrder())
	assert.True(t, restored.RolloverDate().Equal(dayOf(day)))

	var swing model.Song
	for _, s := range restored.Songs() {
		if s.Title == "Swing Cheese" {
			swing = s
		}
	}
	assert.Equal(t, 1, swing.TimesSelected)
	assert.Equal(t, 15, swing.Seconds)

	assert.Empty(t, player.Started())
	restored.Resume()
	assert.Equal(t, []string{"Swing Cheese"}, player.Started())
}

func TestRestoreFromEmptyStoreKeepsDefaults(t *testing.T) {
	j, player := newTestJukebox(t)
	keys, err := j.Restore(context.Background(), store.NewMemory())
	require.NoError(t, err)
	assert.Empty(t, keys)
	assert.Len(t, j.Accounts(), 5)
	assert.Len(t, j.Songs(), 7)

	j.Resume()
	assert.Empty(t, player.Started())
}

func TestRestoreRejectsCorruptBlob(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()
	require.NoError(t, st.Save(ctx, KeyAccounts, []byte("{not json")))

	j, _ := newTestJukebox(t)
	_, err := j.Restore(ctx, st)
	assert.Error(t, err)
	assert.True(t, j.Verify("Chris", "1"))
}

func TestDayOf(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*3600)
	got := dayOf(time.Date(2024, 3, 14, 23, 59, 0, 0, loc))
	assert.Equal(t, time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC), got)
}
