// Package ui provides the terminal styling for patternbook demo output.
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// DefaultWidth is the separator width used when the config does not set one.
const DefaultWidth = 60

// Semantic colors shared across demos.
var (
	accent = lipgloss.Color("#8BC34A")
	muted  = lipgloss.Color("#6c7086")
	danger = lipgloss.Color("#e53935")
)

// Styles renders the decorative parts of demo narration: banners, rules,
// and step headings. With color disabled everything degrades to plain text.
type Styles struct {
	width  int
	banner lipgloss.Style
	rule   lipgloss.Style
	step   lipgloss.Style
	errLn  lipgloss.Style
}

// New builds a style set. Width controls separator length; color toggles
// lipgloss rendering.
func New(color bool, width int) Styles {
	if width <= 0 {
		width = DefaultWidth
	}
	s := Styles{width: width}
	if color {
		s.banner = lipgloss.NewStyle().Bold(true).Foreground(accent)
		s.rule = lipgloss.NewStyle().Foreground(muted)
		s.step = lipgloss.NewStyle().Bold(true)
		s.errLn = lipgloss.NewStyle().Foreground(danger)
	} else {
		plain := lipgloss.NewStyle()
		s.banner = plain
		s.rule = plain
		s.step = plain
		s.errLn = plain
	}
	return s
}

// Width returns the configured separator width.
func (s Styles) Width() int { return s.width }

// Banner renders a title between two heavy rules.
func (s Styles) Banner(title string) string {
	rule := s.Rule()
	return rule + "\n" + s.banner.Render(title) + "\n" + rule
}

// Rule returns a heavy separator line.
func (s Styles) Rule() string {
	return s.rule.Render(strings.Repeat("=", s.width))
}

// ThinRule returns a light separator line.
func (s Styles) ThinRule() string {
	return s.rule.Render(strings.Repeat("-", s.width))
}

// Step renders a numbered section heading followed by a light rule.
func (s Styles) Step(title string) string {
	return s.step.Render(title) + "\n" + s.ThinRule()
}

// Error renders an error line.
func (s Styles) Error(msg string) string {
	return s.errLn.Render("❌ Error: " + msg)
}
