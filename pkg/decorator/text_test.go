package decorator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTextFormatting(t *testing.T) {
	tests := []struct {
		name string
		text Text
		want string
	}{
		{name: "plain", text: Plain("Hello, World!"), want: "Hello, World!"},
		{name: "bold", text: Bold(Plain("Hello, World!")), want: "**Hello, World!**"},
		{
			name: "bold italic",
			text: Italic(Bold(Plain("Hello, World!"))),
			want: "***Hello, World!***",
		},
		{
			name: "bold italic underline",
			text: Underline(Italic(Bold(Plain("Hello, World!")))),
			want: "__***Hello, World!***__",
		},
		{
			name: "strikethrough",
			text: Strikethrough(Plain("Old Price: $100")),
			want: "~~Old Price: $100~~",
		},
		{name: "code", text: Code(Plain("print('Hello')")), want: "`print('Hello')`"},
		{
			name: "bold italic code",
			text: Code(Italic(Bold(Plain("function_name")))),
			want: "`***function_name***`",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.text.Render())
		})
	}
}
