// Package demo holds the narrated demonstration drivers for every pattern
// in the corpus, plus the registry the CLI runs them from. Each demo
// constructs variants from one library package, wires them into a context,
// and exercises them in a fixed sequence against the runner's writer, so a
// demo's entire observable effect is deterministic text.
package demo

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/patternbook/internal/ui"
)

// Registry errors.
var (
	ErrDemoNotFound  = errors.New("demo not found")
	ErrDuplicateDemo = errors.New("demo already registered")
)

// Demo is one runnable demonstration.
type Demo struct {
	// Name identifies the demo as <pattern>/<example>, e.g. "strategy/payment".
	Name string
	// Pattern is the pattern family, e.g. "strategy".
	Pattern string
	// Title is the human-readable banner title.
	Title string
	// Run writes the demo narration to the runner.
	Run func(r *Runner) error
}

// Runner carries the output sink, styles, and logger a demo runs against.
type Runner struct {
	Out    io.Writer
	Styles ui.Styles
	Log    *zap.Logger
}

// NewRunner builds a runner. A nil logger is replaced with a no-op one.
func NewRunner(out io.Writer, styles ui.Styles, log *zap.Logger) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{Out: out, Styles: styles, Log: log}
}

// printf writes formatted narration.
func (r *Runner) printf(format string, args ...any) {
	fmt.Fprintf(r.Out, format, args...)
}

// println writes narration lines.
func (r *Runner) println(args ...any) {
	fmt.Fprintln(r.Out, args...)
}

// banner writes the demo's opening banner.
func (r *Runner) banner(title string) {
	fmt.Fprintln(r.Out, r.Styles.Banner(title))
	fmt.Fprintln(r.Out)
}

// step writes a numbered section heading.
func (r *Runner) step(title string) {
	fmt.Fprintln(r.Out, r.Styles.Step(title))
}

// footer writes the closing key-benefit lines between heavy rules.
func (r *Runner) footer(lines ...string) {
	fmt.Fprintln(r.Out, r.Styles.Rule())
	for _, line := range lines {
		fmt.Fprintln(r.Out, line)
	}
	fmt.Fprintln(r.Out, r.Styles.Rule())
}

// Registry is an ordered collection of demos, keyed by name.
type Registry struct {
	demos  []Demo
	byName map[string]int
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]int)}
}

// Register adds a demo, preserving registration order.
// Returns ErrDuplicateDemo if the name is already taken.
func (reg *Registry) Register(d Demo) error {
	if _, ok := reg.byName[d.Name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateDemo, d.Name)
	}
	reg.byName[d.Name] = len(reg.demos)
	reg.demos = append(reg.demos, d)
	return nil
}

// Get returns the demo with the given name.
// Returns ErrDemoNotFound if no demo has that name.
func (reg *Registry) Get(name string) (Demo, error) {
	i, ok := reg.byName[name]
	if !ok {
		return Demo{}, fmt.Errorf("%w: %q", ErrDemoNotFound, name)
	}
	return reg.demos[i], nil
}

// Names returns all demo names in registration order.
func (reg *Registry) Names() []string {
	names := make([]string, len(reg.demos))
	for i, d := range reg.demos {
		names[i] = d.Name
	}
	return names
}

// Patterns returns the pattern families in order of first registration.
func (reg *Registry) Patterns() []string {
	var patterns []string
	seen := make(map[string]bool)
	for _, d := range reg.demos {
		if !seen[d.Pattern] {
			seen[d.Pattern] = true
			patterns = append(patterns, d.Pattern)
		}
	}
	return patterns
}

// ByPattern returns the demos of one pattern family in registration order.
func (reg *Registry) ByPattern(pattern string) []Demo {
	var out []Demo
	for _, d := range reg.demos {
		if d.Pattern == pattern {
			out = append(out, d)
		}
	}
	return out
}

// Run executes one demo by name.
func (reg *Registry) Run(r *Runner, name string) error {
	d, err := reg.Get(name)
	if err != nil {
		return err
	}
	r.Log.Debug("running demo", zap.String("demo", d.Name))
	if err := d.Run(r); err != nil {
		return fmt.Errorf("run demo %q: %w", d.Name, err)
	}
	r.Log.Debug("demo finished", zap.String("demo", d.Name))
	return nil
}

// RunAll executes every registered demo in registration order, stopping at
// the first failure.
func (reg *Registry) RunAll(r *Runner) error {
	for _, d := range reg.demos {
		if err := reg.Run(r, d.Name); err != nil {
			return err
		}
		fmt.Fprintln(r.Out)
	}
	return nil
}
