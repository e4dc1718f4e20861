package state

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlayerPlayPauseCycle(t *testing.T) {
	var buf bytes.Buffer
	p := NewPlayer(&buf)
	assert.Equal(t, "Stopped", p.StateName())

	p.ClickPlay()
	assert.Equal(t, "Playing", p.StateName())
	assert.Contains(t, buf.String(), "Playing: Track 1")

	p.ClickPlay()
	assert.Equal(t, "Stopped", p.StateName())
	assert.Contains(t, buf.String(), "Paused.")
}

func TestPlayerTrackNavigationWraps(t *testing.T) {
	var buf bytes.Buffer
	p := NewPlayer(&buf)
	p.ClickPlay()

	p.ClickNext()
	assert.Equal(t, "Track 2", p.CurrentTrack())
	p.ClickNext()
	p.ClickNext()
	assert.Equal(t, "Track 1", p.CurrentTrack(), "next wraps past the end")

	p.ClickPrev()
	assert.Equal(t, "Track 3", p.CurrentTrack(), "previous wraps past the start")
}

func TestPlayerLockIgnoresButtons(t *testing.T) {
	var buf bytes.Buffer
	p := NewPlayer(&buf)
	p.ClickPlay()
	p.ClickLock()
	assert.Equal(t, "Locked", p.StateName())

	buf.Reset()
	p.ClickPlay()
	p.ClickNext()
	p.ClickPrev()
	assert.Equal(t, "Locked", p.StateName())
	assert.Equal(t, "Track 1", p.CurrentTrack(), "locked buttons must not act")
	assert.Contains(t, buf.String(), "Locked... Do nothing.")
}

func TestPlayerUnlockRestoresPriorMode(t *testing.T) {
	var buf bytes.Buffer

	// Locked while playing unlocks to Playing.
	p := NewPlayer(&buf)
	p.ClickPlay()
	p.ClickLock()
	p.ClickLock()
	assert.Equal(t, "Playing", p.StateName())

	// Locked while stopped unlocks to Stopped.
	p = NewPlayer(&buf)
	p.ClickLock()
	p.ClickLock()
	assert.Equal(t, "Stopped", p.StateName())
}

func TestPlayerStoppedIgnoresTrackButtons(t *testing.T) {
	var buf bytes.Buffer
	p := NewPlayer(&buf)

	p.ClickNext()
	p.ClickPrev()
	assert.Equal(t, "Track 1", p.CurrentTrack())
	assert.Equal(t, "Stopped", p.StateName())
}
