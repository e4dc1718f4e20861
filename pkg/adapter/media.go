package adapter

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrUnknownMediaType is returned when no adapter handles the given tag.
var ErrUnknownMediaType = errors.New("unknown media type")

// MediaPlayer is the target interface the client programs against.
type MediaPlayer interface {
	// Play plays the named file of the given media type and returns a
	// playback summary.
	Play(mediaType, file string) (string, error)
}

// The deck types below are the adaptees: existing players with
// incompatible, format-specific method names.

// MP3Deck plays MP3 files only.
type MP3Deck struct {
	Out io.Writer
}

func (d MP3Deck) PlayMP3(file string) string {
	fmt.Fprintf(d.Out, "🎵 Playing MP3 file: %s\n", file)
	return "MP3: " + file
}

// MP4Deck plays MP4 files only.
type MP4Deck struct {
	Out io.Writer
}

func (d MP4Deck) PlayMP4(file string) string {
	fmt.Fprintf(d.Out, "🎬 Playing MP4 file: %s\n", file)
	return "MP4: " + file
}

// VLCDeck plays VLC files only.
type VLCDeck struct {
	Out io.Writer
}

func (d VLCDeck) PlayVLC(file string) string {
	fmt.Fprintf(d.Out, "🎥 Playing VLC file: %s\n", file)
	return "VLC: " + file
}

// MP3Adapter adapts MP3Deck to the MediaPlayer interface.
type MP3Adapter struct {
	Deck MP3Deck
}

func (a MP3Adapter) Play(mediaType, file string) (string, error) {
	if !strings.EqualFold(mediaType, "mp3") {
		return "", fmt.Errorf("mp3 adapter cannot play %q files: %w", mediaType, ErrUnknownMediaType)
	}
	return a.Deck.PlayMP3(file), nil
}

// MP4Adapter adapts MP4Deck to the MediaPlayer interface.
type MP4Adapter struct {
	Deck MP4Deck
}

func (a MP4Adapter) Play(mediaType, file string) (string, error) {
	if !strings.EqualFold(mediaType, "mp4") {
		return "", fmt.Errorf("mp4 adapter cannot play %q files: %w", mediaType, ErrUnknownMediaType)
	}
	return a.Deck.PlayMP4(file), nil
}

// VLCAdapter adapts VLCDeck to the MediaPlayer interface.
type VLCAdapter struct {
	Deck VLCDeck
}

func (a VLCAdapter) Play(mediaType, file string) (string, error) {
	if !strings.EqualFold(mediaType, "vlc") {
		return "", fmt.Errorf("vlc adapter cannot play %q files: %w", mediaType, ErrUnknownMediaType)
	}
	return a.Deck.PlayVLC(file), nil
}

// AudioPlayer dispatches to the adapter matching the media type tag.
// Tags match case-insensitively; an unrecognized tag plays nothing.
type AudioPlayer struct {
	mp3 MP3Adapter
	mp4 MP4Adapter
	vlc VLCAdapter
}

// NewAudioPlayer returns a player whose decks narrate to out.
func NewAudioPlayer(out io.Writer) *AudioPlayer {
	return &AudioPlayer{
		mp3: MP3Adapter{Deck: MP3Deck{Out: out}},
		mp4: MP4Adapter{Deck: MP4Deck{Out: out}},
		vlc: VLCAdapter{Deck: VLCDeck{Out: out}},
	}
}

func (p *AudioPlayer) Play(mediaType, file string) (string, error) {
	switch strings.ToLower(mediaType) {
	case "mp3":
		return p.mp3.Play(mediaType, file)
	case "mp4":
		return p.mp4.Play(mediaType, file)
	case "vlc":
		return p.vlc.Play(mediaType, file)
	default:
		return "", fmt.Errorf("invalid media type %q: %w", mediaType, ErrUnknownMediaType)
	}
}
