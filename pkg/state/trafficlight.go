package state

import (
	"fmt"
	"io"
	"time"
)

// LightState is one phase of the traffic light cycle. Handle narrates the
// phase and transitions the light to its successor.
type LightState interface {
	Color() string
	Duration() time.Duration
	Handle(l *Light)
}

// Light is the traffic light context. The cycle is Red, Green, Yellow,
// then Red again, forever.
type Light struct {
	out   io.Writer
	state LightState
}

// NewLight returns a light starting at Red.
func NewLight(out io.Writer) *Light {
	return &Light{out: out, state: Red{}}
}

// Color returns the active phase's color.
func (l *Light) Color() string { return l.state.Color() }

// Duration returns the active phase's nominal duration.
func (l *Light) Duration() time.Duration { return l.state.Duration() }

func (l *Light) setState(s LightState) { l.state = s }

// Advance narrates the current phase and moves to the next one.
func (l *Light) Advance() { l.state.Handle(l) }

// Run drives the light through full red-green-yellow cycles.
func (l *Light) Run(cycles int) {
	for cycle := 1; cycle <= cycles; cycle++ {
		fmt.Fprintf(l.out, "--- Cycle %d ---\n", cycle)
		for i := 0; i < 3; i++ {
			fmt.Fprintf(l.out, "\n[%s] Duration: %ds\n", l.Color(), int(l.Duration().Seconds()))
			l.Advance()
		}
		fmt.Fprintln(l.out)
	}
}

// Red stops traffic, then hands over to Green.
type Red struct{}

func (Red) Color() string           { return "RED" }
func (Red) Duration() time.Duration { return 30 * time.Second }

func (Red) Handle(l *Light) {
	fmt.Fprintln(l.out, "🔴 RED LIGHT - STOP")
	fmt.Fprintln(l.out, "   All vehicles must stop")
	l.setState(Green{})
}

// Green lets traffic through, then hands over to Yellow.
type Green struct{}

func (Green) Color() string           { return "GREEN" }
func (Green) Duration() time.Duration { return 25 * time.Second }

func (Green) Handle(l *Light) {
	fmt.Fprintln(l.out, "🟢 GREEN LIGHT - GO")
	fmt.Fprintln(l.out, "   Vehicles may proceed")
	l.setState(Yellow{})
}

// Yellow warns traffic, then hands over to Red.
type Yellow struct{}

func (Yellow) Color() string           { return "YELLOW" }
func (Yellow) Duration() time.Duration { return 5 * time.Second }

func (Yellow) Handle(l *Light) {
	fmt.Fprintln(l.out, "🟡 YELLOW LIGHT - CAUTION")
	fmt.Fprintln(l.out, "   Prepare to stop")
	l.setState(Red{})
}
