package queue

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/jukebox/internal/model"
)

func TestFormatEvent(t *testing.T) {
	ev := model.Event{
		ID:             "abc",
		Kind:           model.EventSongQueued,
		Title:          "Swing Cheese",
		Username:       "Chris",
		BalanceSeconds: 89985,
		QueueLength:    2,
		OccurredAt:     time.Date(2024, 3, 14, 10, 0, 0, 0, time.UTC),
	}
	assert.Equal(t,
		`[2024-03-14T10:00:00Z] song.queued | id=abc | queue_length=2 | song="Swing Cheese" | user=Chris | balance=89985s`+"\n",
		FormatEvent(ev))

	reset := model.Event{ID: "r", Kind: model.EventCountsReset, OccurredAt: ev.OccurredAt}
	assert.Equal(t, "[2024-03-14T10:00:00Z] counts.reset | id=r | queue_length=0\n", FormatEvent(reset))
}

func TestHandleMessageAppends(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	for _, title := range []string{"Swing Cheese", "Loping Sting"} {
		body, err := json.Marshal(model.NewEvent(model.EventSongStarted, title, 1))
		require.NoError(t, err)
		require.NoError(t, handleMessage(dir, body))
	}

	b, err := os.ReadFile(filepath.Join(dir, "jukebox.log"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `song="Swing Cheese"`)
	assert.Contains(t, lines[1], `song="Loping Sting"`)
}

func TestHandleMessageRejectsGarbage(t *testing.T) {
	dir := t.TempDir()
	assert.Error(t, handleMessage(dir, []byte("nope")))
	assert.Error(t, handleMessage(dir, []byte(`{"id":"x"}`)))
}
