package ui

import (
	"testing"

	"github.com/STBoyden/ptgui/engine/colors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestButtonWidthFitsText(t *testing.T) {
	fb := &fakeBackend{}
	b := NewButton("Hi", "greet", 20, Pt(0, 0), fb)

	assert.Equal(t, fb.MeasureText("Hi", 20)+10, b.Size().W)
	assert.Equal(t, 50, b.Size().H)

	b.Resize(Sz(b.Size().W, 80))
	b.SetText("Longer")
	assert.Equal(t, fb.MeasureText("Longer", 20)+10, b.Size().W)
	assert.Equal(t, 80, b.Size().H)
	assert.Equal(t, "Longer", b.Text())
}

func TestButtonSetTextKeepsFontSize(t *testing.T) {
	fb := &fakeBackend{}
	b := NewButton("a", "", 40, Pt(0, 0), fb)
	b.SetText("abcd")
	assert.Equal(t, fb.MeasureText("abcd", 40)+10, b.Size().W)
}

func TestButtonHoverColor(t *testing.T) {
	fb := &fakeBackend{}
	b := NewButton("Hi", "", 20, Pt(10, 10), fb)
	require.Equal(t, colors.Theme(colors.StateDefault), b.Color())

	assert.True(t, b.IsHovered(Pt(15, 30)))
	assert.Equal(t, colors.Theme(colors.StateHovered), b.Color())

	assert.False(t, b.IsHovered(Pt(10, 30)))
	assert.Equal(t, colors.Theme(colors.StateDefault), b.Color())
}

func TestButtonIsClickedIsEdgeTriggered(t *testing.T) {
	fb := &fakeBackend{}
	b := NewButton("Hi", "greet", 20, Pt(0, 0), fb)

	assert.Equal(t, "greet", b.IsClicked(Pt(5, 5), true))
	assert.Equal(t, "", b.IsClicked(Pt(5, 5), false), "held without a fresh press")
	assert.Equal(t, "", b.IsClicked(Pt(500, 5), true), "press outside")
}

func TestButtonDraw(t *testing.T) {
	fb := &fakeBackend{}
	b := NewButton("Hi", "", 20, Pt(10, 20), fb)
	fb.hover(Pt(15, 25))

	b.Draw(fb)

	require.Equal(t, []string{"rect", "text"}, fb.ops())
	rect, text := fb.calls[0], fb.calls[1]
	assert.Equal(t, call{op: "rect", x: 10, y: 20, w: b.Size().W + 10, h: 50, color: colors.Theme(colors.StateHovered)}, rect)
	assert.Equal(t, 20, text.x)
	assert.Equal(t, 20+50-30, text.y)
	assert.Equal(t, colors.Theme(colors.StateText), text.color)
}

func TestNewButtonWithSize(t *testing.T) {
	b := NewButtonWithSize("x", "go", 20, Pt(1, 2), Sz(300, 40), &fakeBackend{})
	assert.Equal(t, Sz(300, 40), b.Size())
	assert.Equal(t, Pt(1, 2), b.Position())
	assert.Equal(t, "go", b.Action())
}
