package ui

import (
	"testing"

	"github.com/STBoyden/ptgui/engine/colors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLabelIsInert(t *testing.T) {
	fb := &fakeBackend{}
	l := NewLabel("Main Menu", 20, Pt(0, 0), fb)
	before := l.Color()

	assert.False(t, l.IsHovered(Pt(10, 10)))
	l.IsClicked(Pt(10, 10), true)
	assert.Equal(t, before, l.Color())
	assert.Equal(t, colors.Theme(colors.StateActive), l.Color())
}

func TestLabelDraw(t *testing.T) {
	fb := &fakeBackend{}
	l := NewLabel("Menu", 20, Pt(5, 10), fb)
	require.Equal(t, Sz(50, 50), l.Size())

	l.Draw(fb)

	require.Equal(t, []string{"rect", "line", "text"}, fb.ops())
	rule := fb.calls[1]
	assert.Equal(t, 5, rule.x)
	assert.Equal(t, 60, rule.y, "rule runs along the bottom edge")
	assert.Equal(t, 60, rule.w)
	assert.Equal(t, 0, rule.h)
	assert.Equal(t, colors.Black, rule.color)
	assert.Equal(t, []string{"Menu"}, fb.texts())
}

func TestLabelSetText(t *testing.T) {
	fb := &fakeBackend{}
	l := NewLabel("a", 20, Pt(0, 0), fb)
	l.SetText("abcdef")
	assert.Equal(t, Sz(70, 50), l.Size())
	assert.Equal(t, "abcdef", l.Text())
}
