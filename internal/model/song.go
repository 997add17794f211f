package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Song is a playable catalog item.  Title is the immutable key; Seconds is
// derived once from Time when the song is constructed.
type Song struct {
	Title         string `json:"title" yaml:"title"`
	Artist        string `json:"artist" yaml:"artist"`
	Time          string `json:"time" yaml:"time"` // "m:ss"
	File          string `json:"file" yaml:"file"`
	Seconds       int    `json:"seconds" yaml:"-"`
	TimesSelected int    `json:"times_selected" yaml:"-"`
}

// NewSong builds a Song and derives its duration from the "minutes:seconds"
// play time.
func NewSong(title, playTime, artist, file string) (Song, error) {
	secs, err := ParseDuration(playTime)
	if err != nil {
		return Song{}, fmt.Errorf("song %q: %w", title, err)
	}
	return Song{Title: title, Artist: artist, Time: playTime, File: file, Seconds: secs}, nil
}

// ParseDuration converts "m:ss" into whole seconds as minutes*60 + seconds.
// The seconds part is not range checked, so "1:75" yields 135.
func ParseDuration(s string) (int, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid play time %q: want minutes:seconds", s)
	}
	mins, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid minutes in %q: %w", s, err)
	}
	sec, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid seconds in %q: %w", s, err)
	}
	return mins*60 + sec, nil
}
