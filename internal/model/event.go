package model

import (
	"time"

	"github.com/google/uuid"
)

// Event kinds published by the jukebox.
const (
	EventSongQueued   = "song.queued"
	EventSongStarted  = "song.started"
	EventSongFinished = "song.finished"
	EventCountsReset  = "counts.reset"
)

// Event is a jukebox state change sent to downstream consumers.  Username
// and BalanceSeconds are only set for song.queued.
type Event struct {
	ID             string    `json:"id"`
	Kind           string    `json:"kind"`
	Title          string    `json:"title,omitempty"`
	Username       string    `json:"username,omitempty"`
	BalanceSeconds int       `json:"balance_seconds,omitempty"`
	QueueLength    int       `json:"queue_length"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// NewEvent stamps an event with a fresh ID and the current UTC time.
func NewEvent(kind, title string, queueLength int) Event {
	return Event{
		ID:          uuid.NewString(),
		Kind:        kind,
		Title:       title,
		QueueLength: queueLength,
		OccurredAt:  time.Now().UTC(),
	}
}
