package state

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLightCyclesForever(t *testing.T) {
	var buf bytes.Buffer
	l := NewLight(&buf)

	var colors []string
	for i := 0; i < 7; i++ {
		colors = append(colors, l.Color())
		l.Advance()
	}
	assert.Equal(t,
		[]string{"RED", "GREEN", "YELLOW", "RED", "GREEN", "YELLOW", "RED"},
		colors)
}

func TestLightDurations(t *testing.T) {
	var buf bytes.Buffer
	l := NewLight(&buf)

	assert.Equal(t, 30.0, l.Duration().Seconds())
	l.Advance()
	assert.Equal(t, 25.0, l.Duration().Seconds())
	l.Advance()
	assert.Equal(t, 5.0, l.Duration().Seconds())
}

func TestLightRunNarratesCycles(t *testing.T) {
	var buf bytes.Buffer
	l := NewLight(&buf)

	l.Run(2)

	out := buf.String()
	assert.Contains(t, out, "--- Cycle 1 ---")
	assert.Contains(t, out, "--- Cycle 2 ---")
	assert.Equal(t, 2, strings.Count(out, "🔴 RED LIGHT - STOP"))
	assert.Equal(t, 2, strings.Count(out, "🟢 GREEN LIGHT - GO"))
	assert.Equal(t, 2, strings.Count(out, "🟡 YELLOW LIGHT - CAUTION"))
	// A full run leaves the light back at Red.
	assert.Equal(t, "RED", l.Color())
}
