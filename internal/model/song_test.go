package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"0:05", 5},
		{"4:42", 282},
		{"0:00", 0},
		{"1:75", 135},
		{" 2:30 ", 150},
	}
	for _, tt := range tests {
		got, err := ParseDuration(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	for _, bad := range []string{"", "5", "a:05", "1:b", "1:2:3"} {
		_, err := ParseDuration(bad)
		assert.Error(t, err, bad)
	}
}

func TestNewSong(t *testing.T) {
	s, err := NewSong("Pokemon Capture", "0:05", "Pikachu", "Capture.mp3")
	require.NoError(t, err)
	assert.Equal(t, 5, s.Seconds)
	assert.Equal(t, 0, s.TimesSelected)

	_, err = NewSong("Broken", "five", "", "")
	assert.Error(t, err)
}

func TestOutcomeMessage(t *testing.T) {
	assert.Equal(t, "The song 'Swing Cheese' has been added to the queue!", Admitted.Message("Swing Cheese", 0))
	assert.Equal(t, "You may only play a total of 3 songs per day.", RejectedUserDailyLimitReached.Message("x", 3))
	assert.Equal(t, "This song may not be selected more than 3 times per day.", RejectedItemDailyLimitReached.Message("x", 3))
	assert.Equal(t, "Not enough time remaining in account.", RejectedInsufficientBalance.Message("x", 3))
	assert.Equal(t, "song_daily_limit", RejectedItemDailyLimitReached.String())
}
