package playback

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/jukebox/internal/model"
)

func TestSimulatorReportsEachSongOnce(t *testing.T) {
	sim := NewSimulator(1000)
	defer sim.Close()

	sim.Start(model.Song{Title: "Pokemon Capture", Seconds: 5})

	select {
	case title := <-sim.Finished():
		assert.Equal(t, "Pokemon Capture", title)
	case <-time.After(2 * time.Second):
		t.Fatal("no completion reported")
	}

	select {
	case title := <-sim.Finished():
		t.Fatalf("unexpected second completion for %q", title)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestSimulatorCloseCancelsPending(t *testing.T) {
	sim := NewSimulator(1)
	sim.Start(model.Song{Title: "Untameable Fire", Seconds: 282})
	sim.Close()
	sim.Start(model.Song{Title: "Swing Cheese", Seconds: 0})

	select {
	case title := <-sim.Finished():
		require.Failf(t, "completion after close", "got %q", title)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestSimulatorCloseReleasesUnreadCompletions(t *testing.T) {
	sim := NewSimulator(1)
	for i := 0; i < cap(sim.finished)+4; i++ {
		sim.Start(model.Song{Title: "Loping Sting"})
	}

	// nobody reads Finished; the buffer fills and the rest wait
	require.Eventually(t, func() bool {
		return len(sim.finished) == cap(sim.finished)
	}, 2*time.Second, 5*time.Millisecond)

	sim.Close()

	released := make(chan struct{})
	go func() {
		sim.inflight.Wait()
		close(released)
	}()
	select {
	case <-released:
	case <-time.After(2 * time.Second):
		t.Fatal("completion callbacks still blocked after Close")
	}
	assert.Equal(t, cap(sim.finished), len(sim.finished))
}
