package e2e

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripANSI(t *testing.T) {
	assert.Equal(t, "high 3", StripANSI("\x1b[31mhigh\x1b[0m \x1b[1;1H3"))
	assert.Equal(t, "", StripANSI("\x1b[?1049h\x1b[2J"))
}

func TestScreenRedrawOverwritesPreviousFrame(t *testing.T) {
	first := "\x1b[Hline one is long\x1b[K\nsecond\x1b[K\nthird\x1b[K\x1b[0J"
	second := "\x1b[Hshort\x1b[K\nnext\x1b[K\x1b[0J"

	s := NewScreen(5, 30)
	s.Write(first)
	s.Write(second)

	assert.Equal(t, "short", s.Line(0))
	assert.Equal(t, "next", s.Line(1))
	assert.Equal(t, "", s.Line(2))
	assert.False(t, s.ContainsText("third"))
}

func TestScreenAlternateBuffer(t *testing.T) {
	s := ParseScreen("before\x1b[?1049h\x1b[Hdashboard", 3, 20)
	assert.True(t, s.Alternate())
	assert.Equal(t, "dashboard", s.Line(0))
	assert.False(t, s.ContainsText("before"))

	s.Write("\x1b[?1049l")
	assert.False(t, s.Alternate())
}

func TestScreenCursorMovement(t *testing.T) {
	s := ParseScreen("\x1b[2;3Hab\x1b[1D\x1b[1AX\x1b[5CY", 3, 12)
	assert.Equal(t, "   X     Y", s.Line(0))
	assert.Equal(t, "  ab", s.Line(1))
	assert.Equal(t, "", s.Line(7))
}

func TestScreenScrollsAtBottom(t *testing.T) {
	s := ParseScreen("a\nb\nc\nd", 3, 5)
	assert.Equal(t, []string{"b", "c", "d"}, s.Lines())
	assert.Equal(t, "b\nc\nd", s.Render())
}

func TestScreenWrapsLongLines(t *testing.T) {
	s := ParseScreen("abcdefg", 3, 4)
	assert.Equal(t, "abcd", s.Line(0))
	assert.Equal(t, "efg", s.Line(1))
}
