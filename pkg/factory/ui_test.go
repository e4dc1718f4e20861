package factory

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUIFactoryResolution(t *testing.T) {
	tests := []struct {
		name     string
		platform Platform
		want     Factory
		wantErr  error
	}{
		{name: "windows", platform: Windows, want: WindowsFactory{}},
		{name: "macos", platform: MacOS, want: MacOSFactory{}},
		{name: "linux", platform: Linux, want: LinuxFactory{}},
		{name: "unknown", platform: Platform("beos"), wantErr: ErrUnknownOS},
		{name: "empty", platform: Platform(""), wantErr: ErrUnknownOS},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewUIFactory(tt.platform)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSameKeySameFamily(t *testing.T) {
	first, err := NewUIFactory(MacOS)
	require.NoError(t, err)
	second, err := NewUIFactory(MacOS)
	require.NoError(t, err)

	assert.IsType(t, first, second)
	assert.Equal(t, first.NewButton().Render(), second.NewButton().Render())
}

func TestProductFamiliesRenderConsistently(t *testing.T) {
	tests := []struct {
		name     string
		platform Platform
		glyph    string
	}{
		{name: "windows family", platform: Windows, glyph: "🪟"},
		{name: "macos family", platform: MacOS, glyph: "🍎"},
		{name: "linux family", platform: Linux, glyph: "🐧"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := NewUIFactory(tt.platform)
			require.NoError(t, err)

			// Every product of one family carries the same platform glyph.
			assert.Contains(t, f.NewButton().Render(), tt.glyph)
			assert.Contains(t, f.NewDialog().Render(), tt.glyph)
			assert.Contains(t, f.NewMenu().Render(), tt.glyph)
		})
	}
}

func TestAppRendersWholeFamily(t *testing.T) {
	app, err := NewApp(Linux)
	require.NoError(t, err)

	var buf bytes.Buffer
	app.RenderUI(&buf)
	app.Interact(&buf)

	out := buf.String()
	assert.Contains(t, out, "Linux Menu Bar")
	assert.Contains(t, out, "[Linux Button]")
	assert.Contains(t, out, "Linux Dialog Window")
	assert.Contains(t, out, "GTK/Qt")
}

func TestAppUnknownPlatform(t *testing.T) {
	_, err := NewApp(Platform("plan9"))
	assert.ErrorIs(t, err, ErrUnknownOS)
}
