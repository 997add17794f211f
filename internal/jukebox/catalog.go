package jukebox

import "github.com/iliyamo/jukebox/internal/model"

// Catalog holds every playable song keyed by title and remembers the order
// songs were added in for listing.
type Catalog struct {
	songs map[string]*model.Song
	order []string
}

func NewCatalog() *Catalog {
	return &Catalog{songs: make(map[string]*model.Song)}
}

// Add registers a song.  Titles are unique.
func (c *Catalog) Add(s model.Song) error {
	if _, ok := c.songs[s.Title]; ok {
		return ErrSongExists
	}
	song := s
	c.songs[s.Title] = &song
	c.order = append(c.order, s.Title)
	return nil
}

// Lookup returns a copy of the song with the given title.
func (c *Catalog) Lookup(title string) (model.Song, bool) {
	s, ok := c.songs[title]
	if !ok {
		return model.Song{}, false
	}
	return *s, true
}

// RecordSelection increments the daily selection count of title.  Callers
// must have passed every admission check first.
func (c *Catalog) RecordSelection(title string) {
	if s, ok := c.songs[title]; ok {
		s.TimesSelected++
	}
}

// ResetDailyCounts zeroes every song's selection count.
func (c *Catalog) ResetDailyCounts() {
	for _, s := range c.songs {
		s.TimesSelected = 0
	}
}

// List returns copies of all songs in insertion order.
func (c *Catalog) List() []model.Song {
	out := make([]model.Song, 0, len(c.order))
	for _, t := range c.order {
		out = append(out, *c.songs[t])
	}
	return out
}

func (c *Catalog) Len() int { return len(c.order) }
