// Package playback stands in for the audio player.  It does not decode
// audio; it waits out each song's duration and then reports completion.
package playback

import (
	"log"
	"sync"
	"time"

	"github.com/iliyamo/jukebox/internal/model"
)

// Simulator plays songs by arming a timer for their duration.  Each started
// song produces exactly one title on Finished.
type Simulator struct {
	mu       sync.Mutex
	speed    float64
	finished chan string
	timers   map[*time.Timer]struct{}
	closed   bool
	done     chan struct{}
	inflight sync.WaitGroup // armed timers whose callback has not returned
}

// NewSimulator returns a player whose clock runs speed times faster than
// real time.  A speed of 0 or less means real time.
func NewSimulator(speed float64) *Simulator {
	if speed <= 0 {
		speed = 1
	}
	return &Simulator{
		speed:    speed,
		finished: make(chan string, 16),
		timers:   make(map[*time.Timer]struct{}),
		done:     make(chan struct{}),
	}
}

// Start begins playing song.  It never blocks.
func (s *Simulator) Start(song model.Song) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	d := time.Duration(float64(song.Seconds) * float64(time.Second) / s.speed)
	log.Printf("playback: now playing %q (%s by %s, %s)", song.Title, song.Time, song.Artist, d)

	s.inflight.Add(1)
	var t *time.Timer
	t = time.AfterFunc(d, func() {
		defer s.inflight.Done()
		s.mu.Lock()
		_, live := s.timers[t]
		delete(s.timers, t)
		s.mu.Unlock()
		if !live {
			return
		}
		select {
		case s.finished <- song.Title:
		case <-s.done:
		}
	})
	s.timers[t] = struct{}{}
}

// Finished delivers the title of each song whose playback ended.
func (s *Simulator) Finished() <-chan string { return s.finished }

// Close stops pending songs and releases completions nobody is reading.
// No further completions are sent.
func (s *Simulator) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	close(s.done)
	for t := range s.timers {
		if t.Stop() {
			s.inflight.Done()
		}
		delete(s.timers, t)
	}
}
