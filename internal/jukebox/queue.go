package jukebox

// PlayQueue is the FIFO of admitted song titles.  The head is the song
// currently playing; an empty queue means the jukebox is idle.  Titles may
// repeat.
type PlayQueue struct {
	titles []string
}

func NewPlayQueue() *PlayQueue { return &PlayQueue{} }

// enqueueIfFirst appends title and reports whether the queue was empty just
// before, in which case the caller must start playback of the new head.
func (q *PlayQueue) enqueueIfFirst(title string) bool {
	wasEmpty := len(q.titles) == 0
	q.titles = append(q.titles, title)
	return wasEmpty
}

// advance drops the head.  It returns the new head and true when one is
// left to play.  Advancing an empty queue does nothing.
func (q *PlayQueue) advance() (string, bool) {
	if len(q.titles) == 0 {
		return "", false
	}
	q.titles[0] = ""
	q.titles = q.titles[1:]
	return q.Head()
}

// Head returns the song currently at the front.
func (q *PlayQueue) Head() (string, bool) {
	if len(q.titles) == 0 {
		return "", false
	}
	return q.titles[0], true
}

// Order returns a fresh copy of the queue in play order.
func (q *PlayQueue) Order() []string {
	out := make([]string, len(q.titles))
	copy(out, q.titles)
	return out
}

func (q *PlayQueue) Len() int { return len(q.titles) }

// replace swaps in a restored queue.
func (q *PlayQueue) replace(titles []string) {
	q.titles = append([]string(nil), titles...)
}
