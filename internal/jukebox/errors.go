package jukebox

import "errors"

// ErrAccountNotFound is returned when an operation names a username the
// ledger does not know.  Handlers translate it into 404 or 401.
var ErrAccountNotFound = errors.New("account not found")

// ErrSongExists is returned when a catalog already holds a song with the
// same title.
var ErrSongExists = errors.New("song already exists")

// ErrEmptyCatalog is returned when a catalog file defines no songs.
var ErrEmptyCatalog = errors.New("catalog has no songs")
