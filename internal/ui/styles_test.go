package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlainStylesRenderBareText(t *testing.T) {
	s := New(false, 60)

	assert.Equal(t, strings.Repeat("=", 60), s.Rule())
	assert.Equal(t, strings.Repeat("-", 60), s.ThinRule())
	assert.Contains(t, s.Banner("Strategy Pattern"), "Strategy Pattern")
	assert.Contains(t, s.Step("1. Credit Card Payment:"), "1. Credit Card Payment:")
	assert.Equal(t, "❌ Error: boom", s.Error("boom"))
}

func TestZeroWidthFallsBackToDefault(t *testing.T) {
	s := New(false, 0)
	assert.Equal(t, DefaultWidth, s.Width())
	assert.Len(t, s.Rule(), DefaultWidth)
}

func TestBannerBracketsTitle(t *testing.T) {
	s := New(false, 20)

	lines := strings.Split(s.Banner("Title"), "\n")
	assert.Len(t, lines, 3)
	assert.Equal(t, strings.Repeat("=", 20), lines[0])
	assert.Equal(t, "Title", lines[1])
	assert.Equal(t, strings.Repeat("=", 20), lines[2])
}
