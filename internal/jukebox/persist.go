package jukebox

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/iliyamo/jukebox/internal/model"
	"github.com/iliyamo/jukebox/internal/store"
)

// Blob names used in the store.
const (
	KeyAccounts = "AccountList"
	KeySongs    = "SongList"
	KeyQueue    = "SongQueue"
)

// BlobStore is the load/save collaborator used for persistence.
type BlobStore interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
}

// songList is the SongList document.  The rollover date travels with the
// songs so restored daily counts keep the day they belong to.
type songList struct {
	RolloverDate string       `json:"rollover_date"`
	Songs        []model.Song `json:"songs"`
}

// Save writes the accounts, the catalog and the queue to st.  It is called
// on an explicit save request, not on every change.
func (j *Jukebox) Save(ctx context.Context, st BlobStore) error {
	j.mu.Lock()
	accounts := j.ledger.List()
	songs := songList{RolloverDate: j.rollover.Format(time.DateOnly), Songs: j.catalog.List()}
	queue := j.queue.Order()
	j.mu.Unlock()

	blobs := []struct {
		key string
		v   any
	}{
		{KeyAccounts, accounts},
		{KeySongs, songs},
		{KeyQueue, queue},
	}
	for _, b := range blobs {
		data, err := json.Marshal(b.v)
		if err != nil {
			return fmt.Errorf("encode %s: %w", b.key, err)
		}
		if err := st.Save(ctx, b.key, data); err != nil {
			return fmt.Errorf("save %s: %w", b.key, err)
		}
	}
	log.Printf("jukebox: saved %d accounts, %d songs, %d queued", len(accounts), len(songs.Songs), len(queue))
	return nil
}

// Restore replaces the in-memory state with whatever st holds.  A missing
// blob leaves the corresponding collection as it was, so callers seed the
// defaults first.  It returns the names of the blobs that were restored.
// Playback is not started; call Resume afterwards.
func (j *Jukebox) Restore(ctx context.Context, st BlobStore) ([]string, error) {
	var restored []string

	var accounts []model.Account
	ok, err := loadJSON(ctx, st, KeyAccounts, &accounts)
	if err != nil {
		return nil, err
	}
	if ok {
		j.mu.Lock()
		j.ledger.accounts = make(map[string]*model.Account, len(accounts))
		for _, a := range accounts {
			j.ledger.put(a)
		}
		j.mu.Unlock()
		restored = append(restored, KeyAccounts)
	}

	var songs songList
	ok, err = loadJSON(ctx, st, KeySongs, &songs)
	if err != nil {
		return restored, err
	}
	if ok {
		cat := NewCatalog()
		for _, s := range songs.Songs {
			if secs, perr := model.ParseDuration(s.Time); perr == nil {
				s.Seconds = secs
			}
			if err := cat.Add(s); err != nil {
				return restored, fmt.Errorf("restore %s: %w", KeySongs, err)
			}
		}
		j.mu.Lock()
		j.catalog = cat
		if d, perr := time.Parse(time.DateOnly, songs.RolloverDate); perr == nil {
			j.rollover = d
		}
		j.mu.Unlock()
		restored = append(restored, KeySongs)
	}

	var queue []string
	ok, err = loadJSON(ctx, st, KeyQueue, &queue)
	if err != nil {
		return restored, err
	}
	if ok {
		j.mu.Lock()
		j.queue.replace(queue)
		j.mu.Unlock()
		restored = append(restored, KeyQueue)
	}
	return restored, nil
}

func loadJSON(ctx context.Context, st BlobStore, key string, v any) (bool, error) {
	data, err := st.Load(ctx, key)
	if errors.Is(err, store.ErrAbsent) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("load %s: %w", key, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

// RolloverDate returns the date of the last daily reset.
func (j *Jukebox) RolloverDate() time.Time {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.rollover
}
