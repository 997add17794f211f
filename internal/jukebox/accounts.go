package jukebox

import "github.com/iliyamo/jukebox/internal/model"

// Verify reports whether username exists and password is its current
// password.
func (j *Jukebox) Verify(username, password string) bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.ledger.Verify(username, password)
}

// IsAdmin reports whether username is an administrator.
func (j *Jukebox) IsAdmin(username string) (bool, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.ledger.IsAdmin(username)
}

// AddOrUpdateAccount registers username or updates its password and role.
func (j *Jukebox) AddOrUpdateAccount(username, password string, admin bool) (model.AccountChange, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.ledger.AddOrUpdate(username, password, admin)
}

// RemoveAccount deletes username unless it is unknown or protected.
func (j *Jukebox) RemoveAccount(username string) bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.ledger.Remove(username)
}

// Account returns a snapshot of one account.
func (j *Jukebox) Account(username string) (model.Account, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	a, ok := j.ledger.Get(username)
	if !ok {
		return model.Account{}, ErrAccountNotFound
	}
	return a, nil
}

// Accounts returns a snapshot of every account.
func (j *Jukebox) Accounts() []model.Account {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.ledger.List()
}

// Songs returns the catalog with today's selection counts.
func (j *Jukebox) Songs() []model.Song {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.catalog.List()
}

// QueueOrder returns the titles waiting to play, head first.  Every call
// reflects the current queue.
func (j *Jukebox) QueueOrder() []string {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.queue.Order()
}

// NowPlaying returns the song at the head of the queue.
func (j *Jukebox) NowPlaying() (model.Song, bool) {
	j.mu.Lock()
	defer j.mu.Unlock()
	title, ok := j.queue.Head()
	if !ok {
		return model.Song{}, false
	}
	if s, found := j.catalog.Lookup(title); found {
		return s, true
	}
	return model.Song{Title: title}, true
}

// DailyCaps returns the user and song limits in force.
func (j *Jukebox) DailyCaps() (user, song int) {
	return j.userCap, j.songCap
}
