package state

import (
	"fmt"
	"io"
)

// PlayerState handles the music player's four buttons.
type PlayerState interface {
	Name() string
	ClickPlay(p *Player)
	ClickLock(p *Player)
	ClickNext(p *Player)
	ClickPrev(p *Player)
}

// Player is the music player context.
type Player struct {
	out      io.Writer
	state    PlayerState
	playing  bool
	playlist []string
	track    int
}

// NewPlayer returns a stopped player with a default playlist.
func NewPlayer(out io.Writer) *Player {
	return &Player{
		out:      out,
		state:    Stopped{},
		playlist: []string{"Track 1", "Track 2", "Track 3"},
	}
}

// StateName returns the active state's name.
func (p *Player) StateName() string { return p.state.Name() }

// CurrentTrack returns the title of the selected track.
func (p *Player) CurrentTrack() string { return p.playlist[p.track] }

func (p *Player) setState(s PlayerState) { p.state = s }

// Button presses delegate to the active state.

func (p *Player) ClickPlay() { p.state.ClickPlay(p) }
func (p *Player) ClickLock() { p.state.ClickLock(p) }
func (p *Player) ClickNext() { p.state.ClickNext(p) }
func (p *Player) ClickPrev() { p.state.ClickPrev(p) }

func (p *Player) startPlayback() {
	p.playing = true
	fmt.Fprintf(p.out, "Playing: %s\n", p.playlist[p.track])
}

func (p *Player) stopPlayback() {
	p.playing = false
	fmt.Fprintln(p.out, "Playback stopped.")
}

func (p *Player) nextTrack() {
	p.track = (p.track + 1) % len(p.playlist)
	fmt.Fprintf(p.out, "Next track: %s\n", p.playlist[p.track])
}

func (p *Player) prevTrack() {
	p.track = (p.track - 1 + len(p.playlist)) % len(p.playlist)
	fmt.Fprintf(p.out, "Previous track: %s\n", p.playlist[p.track])
}

// Stopped is the idle state. Play starts playback; track buttons do nothing.
type Stopped struct{}

func (Stopped) Name() string { return "Stopped" }

func (Stopped) ClickPlay(p *Player) {
	p.startPlayback()
	p.setState(Playing{})
}

func (Stopped) ClickLock(p *Player) {
	p.setState(Locked{})
	fmt.Fprintln(p.out, "Locked (while stopped)")
}

func (Stopped) ClickNext(p *Player) {
	fmt.Fprintln(p.out, "Stopped... Do nothing.")
}

func (Stopped) ClickPrev(p *Player) {
	fmt.Fprintln(p.out, "Stopped... Do nothing.")
}

// Playing is the active state. Play pauses; track buttons skip.
type Playing struct{}

func (Playing) Name() string { return "Playing" }

func (Playing) ClickPlay(p *Player) {
	p.stopPlayback()
	p.setState(Stopped{})
	fmt.Fprintln(p.out, "Paused.")
}

func (Playing) ClickLock(p *Player) {
	p.setState(Locked{})
	fmt.Fprintln(p.out, "Locked (while playing)")
}

func (Playing) ClickNext(p *Player) { p.nextTrack() }
func (Playing) ClickPrev(p *Player) { p.prevTrack() }

// Locked ignores every button except lock, which unlocks back to Playing or
// Stopped depending on whether playback was running.
type Locked struct{}

func (Locked) Name() string { return "Locked" }

func (Locked) ClickPlay(p *Player) {
	fmt.Fprintln(p.out, "Locked... Do nothing.")
}

func (Locked) ClickLock(p *Player) {
	if p.playing {
		p.setState(Playing{})
		fmt.Fprintln(p.out, "Unlocked -> Playing")
	} else {
		p.setState(Stopped{})
		fmt.Fprintln(p.out, "Unlocked -> Stopped")
	}
}

func (Locked) ClickNext(p *Player) {
	fmt.Fprintln(p.out, "Locked... Do nothing.")
}

func (Locked) ClickPrev(p *Player) {
	fmt.Fprintln(p.out, "Locked... Do nothing.")
}
