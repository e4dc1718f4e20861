package decorator

// Text is the component interface for formattable text.
type Text interface {
	Render() string
}

// plain is the base component holding raw text.
type plain struct {
	text string
}

// Plain returns an unformatted text component.
func Plain(s string) Text { return plain{text: s} }

func (p plain) Render() string { return p.text }

// wrapped applies a fixed pair of markers around an inner component.
type wrapped struct {
	inner  Text
	marker string
}

func (w wrapped) Render() string { return w.marker + w.inner.Render() + w.marker }

// Bold wraps t in ** markers.
func Bold(t Text) Text { return wrapped{inner: t, marker: "**"} }

// Italic wraps t in * markers.
func Italic(t Text) Text { return wrapped{inner: t, marker: "*"} }

// Underline wraps t in __ markers.
func Underline(t Text) Text { return wrapped{inner: t, marker: "__"} }

// Strikethrough wraps t in ~~ markers.
func Strikethrough(t Text) Text { return wrapped{inner: t, marker: "~~"} }

// Code wraps t in backticks.
func Code(t Text) Text { return wrapped{inner: t, marker: "`"} }
