package surface

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/STBoyden/ptgui/engine/colors"
	"github.com/STBoyden/ptgui/engine/core"
	"github.com/STBoyden/ptgui/engine/gfx/renderer2d"
	"github.com/STBoyden/ptgui/engine/text"
	"github.com/STBoyden/ptgui/engine/ui"
)

type screen struct {
	frames int
	last   *image.RGBA
}

func (p *screen) Present(img *image.RGBA) {
	p.frames++
	p.last = img
}

func newSurface(t *testing.T) (*Surface, *core.Input, *screen) {
	t.Helper()
	f, err := text.Default()
	require.NoError(t, err)
	t.Cleanup(f.Close)

	in := core.NewInput()
	out := &screen{}
	return New(renderer2d.New(320, 200, f), in, out), in, out
}

type counter struct{ hits map[string]int }

func count(c *counter, action string) { c.hits[action]++ }

func TestSurfaceDrivesHandler(t *testing.T) {
	s, in, out := newSurface(t)
	h := ui.NewHandler[counter](colors.White, s).
		AddButton("Go", "go").
		SetActionFunc(count)
	btn := h.Widgets()[0].(*ui.Button)
	st := counter{hits: map[string]int{}}

	in.Handle(core.EventMouseMove{X: 5, Y: 5})
	in.Handle(core.EventMouseButton{Button: core.MouseLeft, Down: true})

	frame, err := h.Draw(s)
	require.NoError(t, err)
	frame.DrawText("60 FPS", 200, 0, 20, colors.Black)
	require.NoError(t, frame.End())
	require.NoError(t, s.Err())
	in.EndFrame()
	h.ExecuteActions(&st)

	assert.Equal(t, 1, st.hits["go"])
	assert.Equal(t, 1, out.frames)
	require.NotNil(t, out.last)

	hovered := colors.Theme(colors.StateHovered).NRGBA()
	px := out.last.RGBAAt(2, 2)
	assert.Equal(t, hovered.R, px.R, "hovered button is painted with the hover color")
	bg := out.last.RGBAAt(btn.Size().W+30, 150)
	assert.Equal(t, uint8(255), bg.R)

	assert.Equal(t, 2, s.Stats().TextCount)

	frame, err = h.Draw(s)
	require.NoError(t, err)
	require.NoError(t, frame.End())
	h.ExecuteActions(&st)
	assert.Equal(t, 1, st.hits["go"], "held button does not fire again")
}

func TestSurfaceCursorScale(t *testing.T) {
	s, in, _ := newSurface(t)
	s.SetCursorScale(2, 2)
	in.Handle(core.EventMouseMove{X: 10.6, Y: 3})

	c := s.BeginDrawing()
	assert.Equal(t, ui.Pt(21, 6), c.MousePosition())
	assert.False(t, c.IsMouseButtonDown())
	s.EndDrawing()
}

func TestSurfaceSliderDrag(t *testing.T) {
	s, in, _ := newSurface(t)
	h := ui.NewHandler[struct{}](colors.White, s).AddSlider(0, 10, 0)

	in.Handle(core.EventMouseMove{X: 300, Y: 20})
	in.Handle(core.EventMouseButton{Button: core.MouseLeft, Down: true})
	frame, err := h.Draw(s)
	require.NoError(t, err)
	require.NoError(t, frame.End())

	v, err := h.SliderValue(0)
	require.NoError(t, err)
	assert.Equal(t, float32(10), v)
}
