package observer

import (
	"fmt"
	"io"
)

// UploadObserver receives new-video notifications from a Channel.
type UploadObserver interface {
	Update(channel, title string)
}

// Channel is a video channel subject. Uploading a video notifies every
// subscriber in subscription order.
type Channel struct {
	name        string
	out         io.Writer
	subscribers []UploadObserver
	videos      []string
}

// NewChannel returns a channel that narrates subscription activity to out.
func NewChannel(name string, out io.Writer) *Channel {
	return &Channel{name: name, out: out}
}

func (c *Channel) Name() string { return c.name }

// Videos returns the titles uploaded so far, in order.
func (c *Channel) Videos() []string {
	return append([]string(nil), c.videos...)
}

// Subscribe attaches o, suppressing duplicates.
func (c *Channel) Subscribe(o UploadObserver) bool {
	for _, existing := range c.subscribers {
		if existing == o {
			return false
		}
	}
	c.subscribers = append(c.subscribers, o)
	fmt.Fprintf(c.out, "Channel '%s': Attached a new subscriber.\n", c.name)
	return true
}

// Unsubscribe detaches o; a no-op when absent.
func (c *Channel) Unsubscribe(o UploadObserver) bool {
	for i, existing := range c.subscribers {
		if existing == o {
			c.subscribers = append(c.subscribers[:i], c.subscribers[i+1:]...)
			fmt.Fprintf(c.out, "Channel '%s': Detached a subscriber.\n", c.name)
			return true
		}
	}
	return false
}

// Notify tells every subscriber about a video title.
func (c *Channel) Notify(title string) {
	fmt.Fprintf(c.out, "Channel '%s': Notifying %d subscribers...\n", c.name, len(c.subscribers))
	for _, s := range c.subscribers {
		s.Update(c.name, title)
	}
}

// Upload records the video and notifies subscribers.
func (c *Channel) Upload(title string) {
	fmt.Fprintf(c.out, "\nChannel '%s' is uploading video: '%s'\n", c.name, title)
	c.videos = append(c.videos, title)
	c.Notify(title)
}

// Viewer is a named channel subscriber.
type Viewer struct {
	Name string
	Out  io.Writer
}

func (v *Viewer) Update(channel, title string) {
	fmt.Fprintf(v.Out, "  [Notification] Hey %s, %s just uploaded '%s'!\n", v.Name, channel, title)
}
