// Package surface backs ui.Backend with the software renderer, the engine's
// input state and a presenter that puts finished frames on screen.
package surface

import (
	"image"

	"github.com/STBoyden/ptgui/engine/colors"
	"github.com/STBoyden/ptgui/engine/core"
	"github.com/STBoyden/ptgui/engine/gfx/renderer2d"
	"github.com/STBoyden/ptgui/engine/ui"
)

// Presenter receives each finished frame. core.Renderer satisfies it.
type Presenter interface {
	Present(img *image.RGBA)
}

type Surface struct {
	r2d    *renderer2d.Renderer2D
	in     *core.Input
	out    Presenter
	sx, sy float64
	err    error
}

func New(r2d *renderer2d.Renderer2D, in *core.Input, out Presenter) *Surface {
	return &Surface{r2d: r2d, in: in, out: out, sx: 1, sy: 1}
}

// SetCursorScale converts window cursor coordinates into framebuffer pixels.
func (s *Surface) SetCursorScale(sx, sy float64) { s.sx, s.sy = sx, sy }

func (s *Surface) Resize(w, h int) { s.r2d.Resize(w, h) }

func (s *Surface) Stats() renderer2d.Statistics { return s.r2d.Stats() }

// Err returns the first drawing error since the last call and clears it.
func (s *Surface) Err() error {
	err := s.err
	s.err = nil
	return err
}

func (s *Surface) MeasureText(text string, fontSize int) int {
	return s.r2d.MeasureText(text, fontSize)
}

func (s *Surface) BeginDrawing() ui.Canvas {
	s.r2d.BeginScene()
	return canvas{s}
}

func (s *Surface) EndDrawing() {
	img := s.r2d.EndScene()
	if s.out != nil {
		s.out.Present(img)
	}
}

type canvas struct{ s *Surface }

func (c canvas) MeasureText(text string, fontSize int) int { return c.s.MeasureText(text, fontSize) }
func (c canvas) ClearBackground(col colors.Color)          { c.s.r2d.Clear(col) }

func (c canvas) DrawRectangle(x, y, w, h int, col colors.Color) {
	c.s.r2d.DrawQuad(x, y, w, h, col)
}

func (c canvas) DrawLine(x0, y0, x1, y1 int, thickness float32, col colors.Color) {
	c.s.r2d.DrawLine(float32(x0), float32(y0), float32(x1), float32(y1), thickness, col)
}

func (c canvas) DrawText(text string, x, y, fontSize int, col colors.Color) {
	if err := c.s.r2d.DrawText(text, x, y, fontSize, col); err != nil && c.s.err == nil {
		c.s.err = err
	}
}

func (c canvas) MousePosition() ui.Point {
	x, y := c.s.in.Mouse()
	return ui.Pt(int(x*c.s.sx), int(y*c.s.sy))
}

func (c canvas) IsMouseButtonPressed() bool { return c.s.in.IsButtonPressed(core.MouseLeft) }
func (c canvas) IsMouseButtonDown() bool    { return c.s.in.IsButtonDown(core.MouseLeft) }
