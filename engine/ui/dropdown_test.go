package ui

import (
	"testing"

	"github.com/STBoyden/ptgui/engine/colors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// header "Menu" at the origin measures 50x50.
func newMenu(fb *fakeBackend) *Dropdown {
	return NewDropdown("Menu", 20, Pt(0, 0), fb)
}

func TestDropdownToggle(t *testing.T) {
	fb := &fakeBackend{}
	d := newMenu(fb)
	require.False(t, d.Shown())

	d.IsClicked(Pt(25, 25), true)
	assert.True(t, d.Shown())

	d.IsClicked(Pt(300, 300), true)
	assert.True(t, d.Shown(), "click elsewhere keeps it open")

	d.IsClicked(Pt(25, 25), false)
	assert.True(t, d.Shown(), "hover without a press")

	d.IsClicked(Pt(25, 25), true)
	assert.False(t, d.Shown())
}

func TestDropdownHeaderColor(t *testing.T) {
	fb := &fakeBackend{}
	d := newMenu(fb)

	d.IsHovered(Pt(25, 25))
	assert.Equal(t, colors.Theme(colors.StateHovered), d.Color())

	d.IsHovered(Pt(300, 300))
	assert.Equal(t, colors.Theme(colors.StateDefault), d.Color())

	d.SetShown(true)
	d.IsHovered(Pt(300, 300))
	assert.Equal(t, colors.Theme(colors.StateActive), d.Color(), "active persists while open")
}

func TestDropdownChildLayout(t *testing.T) {
	fb := &fakeBackend{}
	d := newMenu(fb).
		AddButton("Go", "go").
		AddSlider(0, 100, 50).
		AddLabel("Info")

	ws := d.Widgets()
	require.Len(t, ws, 3)
	assert.Equal(t, Pt(50, 0), ws[0].Position(), "first child sits right of the header")
	assert.Equal(t, Pt(50, 50), ws[1].Position())
	assert.Equal(t, Pt(50, 100), ws[2].Position())
	assert.Equal(t, Sz(250+120, 50), ws[1].Size())
}

func TestDropdownClosedHidesChildren(t *testing.T) {
	fb := &fakeBackend{}
	d := newMenu(fb).AddButton("Go", "go")
	fb.click(Pt(60, 25))

	d.Draw(fb)

	assert.Equal(t, []string{"Menu"}, fb.texts())
	assert.Empty(t, d.Actions())
}

func TestDropdownOpenBubblesChildActions(t *testing.T) {
	fb := &fakeBackend{}
	d := newMenu(fb).AddButton("Go", "go")
	d.SetShown(true)
	fb.click(Pt(60, 25))

	d.Draw(fb)
	assert.Equal(t, []string{"Menu", "Go"}, fb.texts())
	assert.Equal(t, []string{"go"}, d.Actions())

	fb.hover(Pt(60, 25))
	d.Draw(fb)
	assert.Empty(t, d.Actions(), "actions do not survive into the next frame")
}

func TestDropdownOpenDragsChildSlider(t *testing.T) {
	fb := &fakeBackend{}
	d := newMenu(fb).AddSlider(0, 100, 0)
	d.SetShown(true)
	fb.mouse = Pt(1000, 20)
	fb.down = true

	d.Draw(fb)
	v, err := d.SliderValue(0)
	require.NoError(t, err)
	assert.Equal(t, float32(0), v, "pointer outside the slider")

	fb.mouse = Pt(400, 20)
	d.Draw(fb)
	v, err = d.SliderValue(0)
	require.NoError(t, err)
	assert.Equal(t, float32(100), v)
}

func TestDropdownNestedQueriesAreShallow(t *testing.T) {
	fb := &fakeBackend{}
	d := newMenu(fb).AddDropdown("Sub").AddButton("x", "")
	d.Dropdowns()[0].AddDropdown("Deep")

	assert.Len(t, d.Dropdowns(), 1)
	assert.Len(t, d.Dropdowns()[0].Dropdowns(), 1)
	assert.Equal(t, "Deep", d.Dropdowns()[0].Dropdowns()[0].Text())
}

func TestDropdownNestedOpenChain(t *testing.T) {
	fb := &fakeBackend{}
	d := newMenu(fb).AddDropdown("Sub")
	sub := d.Dropdowns()[0]
	sub.AddButton("Deep", "deep")
	d.SetShown(true)
	sub.SetShown(true)

	deep := sub.Widgets()[0]
	fb.click(deep.Position().Add(Pt(5, 5)))
	d.Draw(fb)

	assert.Equal(t, []string{"deep"}, d.Actions())
}

func TestDropdownResizeShiftsChildren(t *testing.T) {
	fb := &fakeBackend{}
	d := newMenu(fb).AddButton("Go", "").AddSlider(0, 1, 0)
	slider := d.Widgets()[1].(*Slider)
	box := slider.BoxPosition()

	d.Resize(Sz(80, 50))

	assert.Equal(t, Pt(80, 0), d.Widgets()[0].Position())
	assert.Equal(t, Pt(80, 50), slider.Position())
	assert.Equal(t, box.Add(Pt(30, 0)), slider.BoxPosition())

	d.SetPosition(Pt(10, 10))
	assert.Equal(t, Pt(90, 10), d.Widgets()[0].Position())
}

func TestDropdownFixWidths(t *testing.T) {
	fb := &fakeBackend{}
	d := newMenu(fb).AddButton("abcde", "").AddButton("abcdefgh", "").SetFixWidths(true)

	d.Draw(fb)

	for _, w := range d.Widgets() {
		assert.Equal(t, 90, w.Size().W)
	}
}

func TestDropdownSliderValueIndex(t *testing.T) {
	fb := &fakeBackend{}
	d := newMenu(fb).AddSlider(0, 10, 4).AddButton("x", "").AddSlider(0, 10, 7)

	v, err := d.SliderValueInt(1)
	require.NoError(t, err)
	assert.Equal(t, 7, v)

	_, err = d.SliderValue(2)
	assert.ErrorIs(t, err, ErrSliderIndex)
	assert.Equal(t, KindIndex, KindOf(err))
}
