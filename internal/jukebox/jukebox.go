// Package jukebox implements the credit-limited song queue: the account
// ledger, the song catalog, admission control with daily rollover and the
// FIFO play queue driven by playback-finished notifications.
package jukebox

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/iliyamo/jukebox/internal/model"
)

// Default daily caps for users and songs.
const (
	DefaultUserDailyCap = 3
	DefaultSongDailyCap = 3
)

// Player starts playback of a song.  Implementations report completion
// asynchronously, once per started song, on the channel handed to Run.
type Player interface {
	Start(song model.Song)
}

// Publisher delivers jukebox events to downstream consumers.
type Publisher interface {
	Publish(ctx context.Context, ev model.Event) error
}

// Option customises a Jukebox.
type Option func(*Jukebox)

// WithDailyCaps overrides the per-user and per-song daily limits.
func WithDailyCaps(user, song int) Option {
	return func(j *Jukebox) {
		j.userCap = user
		j.songCap = song
	}
}

// WithPublisher sends every state change event to p.
func WithPublisher(p Publisher) Option {
	return func(j *Jukebox) { j.publisher = p }
}

// WithRolloverDate sets the date of the last daily reset.  It defaults to
// the day the Jukebox is built.
func WithRolloverDate(d time.Time) Option {
	return func(j *Jukebox) { j.rollover = dayOf(d) }
}

// Jukebox owns the ledger, the catalog, the play queue and the rollover
// cursor.  It is the only mutator of balances, selection counts and the
// queue.  All methods are safe to call from the HTTP handlers and from the
// playback goroutine at the same time.
type Jukebox struct {
	mu        sync.Mutex
	ledger    *Ledger
	catalog   *Catalog
	queue     *PlayQueue
	rollover  time.Time
	player    Player
	publisher Publisher
	userCap   int
	songCap   int
}

// New assembles a Jukebox around an already seeded ledger and catalog.
func New(ledger *Ledger, catalog *Catalog, player Player, opts ...Option) *Jukebox {
	j := &Jukebox{
		ledger:   ledger,
		catalog:  catalog,
		queue:    NewPlayQueue(),
		rollover: dayOf(time.Now()),
		player:   player,
		userCap:  DefaultUserDailyCap,
		songCap:  DefaultSongDailyCap,
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Evaluate decides whether username may add title to the queue on the date
// today.  The checks run in a fixed order: daily rollover, unknown song,
// balance, user cap, song cap.  On admission the song's duration is debited,
// both daily counters are incremented and the title is appended to the
// queue; playback starts at once if the queue was idle.
//
// The only error is ErrAccountNotFound; rejections are Outcome values.
func (j *Jukebox) Evaluate(username, title string, today time.Time) (model.Outcome, error) {
	j.mu.Lock()
	outcome, events, err := j.evaluateLocked(username, title, today)
	j.mu.Unlock()

	if err != nil {
		return outcome, err
	}
	log.Printf("jukebox: %s requested %q: %s", username, title, outcome)
	j.emit(events)
	return outcome, nil
}

func (j *Jukebox) evaluateLocked(username, title string, today time.Time) (model.Outcome, []model.Event, error) {
	acc, ok := j.ledger.accounts[username]
	if !ok {
		return 0, nil, ErrAccountNotFound
	}

	var events []model.Event
	if j.rollOver(today) {
		events = append(events, model.NewEvent(model.EventCountsReset, "", j.queue.Len()))
	}

	song, ok := j.catalog.Lookup(title)
	if !ok {
		return model.RejectedUnknownItem, events, nil
	}
	if acc.BalanceSeconds < song.Seconds {
		return model.RejectedInsufficientBalance, events, nil
	}
	if acc.SelectionsToday >= j.userCap {
		return model.RejectedUserDailyLimitReached, events, nil
	}
	if song.TimesSelected >= j.songCap {
		return model.RejectedItemDailyLimitReached, events, nil
	}

	j.ledger.charge(username, song.Seconds)
	j.catalog.RecordSelection(title)
	first := j.queue.enqueueIfFirst(title)

	queued := model.NewEvent(model.EventSongQueued, title, j.queue.Len())
	queued.Username = username
	queued.BalanceSeconds = acc.BalanceSeconds
	events = append(events, queued)

	if first {
		j.player.Start(song)
		events = append(events, model.NewEvent(model.EventSongStarted, title, j.queue.Len()))
	}
	return model.Admitted, events, nil
}

// rollOver resets every per-day counter when today is a later date than
// the cursor and moves the cursor forward.  However many days were
// skipped, it resets once.
func (j *Jukebox) rollOver(today time.Time) bool {
	d := dayOf(today)
	if !d.After(j.rollover) {
		return false
	}
	j.ledger.ResetDailyCounts()
	j.catalog.ResetDailyCounts()
	log.Printf("jukebox: daily counts reset (%s -> %s)", j.rollover.Format(time.DateOnly), d.Format(time.DateOnly))
	j.rollover = d
	return true
}

// OnPlaybackFinished drops the song at the head of the queue and starts the
// next one, if any.  A call on an idle jukebox does nothing.
func (j *Jukebox) OnPlaybackFinished() {
	j.mu.Lock()
	finished, ok := j.queue.Head()
	if !ok {
		j.mu.Unlock()
		return
	}
	events := []model.Event{model.NewEvent(model.EventSongFinished, finished, j.queue.Len()-1)}
	if next, more := j.queue.advance(); more {
		j.startLocked(next)
		events = append(events, model.NewEvent(model.EventSongStarted, next, j.queue.Len()))
	}
	j.mu.Unlock()

	j.emit(events)
}

// Resume starts the head of a restored queue.  It does nothing when the
// queue is empty.
func (j *Jukebox) Resume() {
	j.mu.Lock()
	head, ok := j.queue.Head()
	if ok {
		j.startLocked(head)
	}
	n := j.queue.Len()
	j.mu.Unlock()

	if ok {
		j.emit([]model.Event{model.NewEvent(model.EventSongStarted, head, n)})
	}
}

func (j *Jukebox) startLocked(title string) {
	song, ok := j.catalog.Lookup(title)
	if !ok {
		log.Printf("jukebox: queued song %q is not in the catalog; playing it as empty", title)
		song = model.Song{Title: title}
	}
	j.player.Start(song)
}

// Run forwards playback-finished notifications to OnPlaybackFinished until
// ctx is done or finished is closed.
func (j *Jukebox) Run(ctx context.Context, finished <-chan string) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case title, ok := <-finished:
			if !ok {
				return nil
			}
			log.Printf("jukebox: finished playing %q", title)
			j.OnPlaybackFinished()
		}
	}
}

func (j *Jukebox) emit(events []model.Event) {
	if j.publisher == nil || len(events) == 0 {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	for _, ev := range events {
		if err := j.publisher.Publish(ctx, ev); err != nil {
			log.Printf("jukebox: publish %s failed: %v", ev.Kind, err)
		}
	}
}

// dayOf strips the clock from t, keeping its calendar date.
func dayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
