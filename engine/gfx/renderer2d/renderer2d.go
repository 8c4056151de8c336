package renderer2d

import (
	"image"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/STBoyden/ptgui/engine/colors"
	"github.com/STBoyden/ptgui/engine/text"
)

// Statistics captures the counts generated during a renderer frame.
type Statistics struct {
	DrawCalls int
	QuadCount int
	LineCount int
	TextCount int
}

// Renderer2D rasterizes 2D primitives into an RGBA image. Origin is top-left.
type Renderer2D struct {
	target *image.RGBA
	raster *vector.Rasterizer
	font   *text.Font
	stats  Statistics
}

// New creates a renderer with a w x h target.
func New(w, h int, font *text.Font) *Renderer2D {
	rd := &Renderer2D{font: font}
	rd.Resize(w, h)
	return rd
}

// Resize reallocates the target. Contents are discarded.
func (rd *Renderer2D) Resize(w, h int) {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	if rd.target != nil && rd.target.Bounds().Dx() == w && rd.target.Bounds().Dy() == h {
		return
	}
	rd.target = image.NewRGBA(image.Rect(0, 0, w, h))
	rd.raster = vector.NewRasterizer(w, h)
}

func (rd *Renderer2D) Size() (int, int) {
	b := rd.target.Bounds()
	return b.Dx(), b.Dy()
}

func (rd *Renderer2D) BeginScene() { rd.stats = Statistics{} }

// EndScene returns the finished frame. The image is reused by the next scene.
func (rd *Renderer2D) EndScene() *image.RGBA { return rd.target }

// Stats returns the current frame statistics snapshot.
func (rd *Renderer2D) Stats() Statistics { return rd.stats }

func (rd *Renderer2D) Clear(c colors.Color) {
	draw.Draw(rd.target, rd.target.Bounds(), image.NewUniform(c.NRGBA()), image.Point{}, draw.Src)
	rd.stats.DrawCalls++
}

// DrawQuad fills the axis-aligned rect at (x, y) with size w x h, clipped to the target.
func (rd *Renderer2D) DrawQuad(x, y, w, h int, c colors.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	r := image.Rect(x, y, x+w, y+h).Intersect(rd.target.Bounds())
	if !r.Empty() {
		draw.Draw(rd.target, r, image.NewUniform(c.NRGBA()), image.Point{}, draw.Over)
	}
	rd.stats.DrawCalls++
	rd.stats.QuadCount++
}

// DrawLine strokes a segment of the given thickness with square ends flush to the endpoints.
func (rd *Renderer2D) DrawLine(x0, y0, x1, y1, thickness float32, c colors.Color) {
	dx, dy := x1-x0, y1-y0
	length := float32(math.Hypot(float64(dx), float64(dy)))
	if length == 0 || thickness <= 0 {
		return
	}
	// half-thickness normal
	nx := -dy / length * thickness / 2
	ny := dx / length * thickness / 2

	w, h := rd.Size()
	rd.raster.Reset(w, h)
	rd.raster.MoveTo(x0+nx, y0+ny)
	rd.raster.LineTo(x1+nx, y1+ny)
	rd.raster.LineTo(x1-nx, y1-ny)
	rd.raster.LineTo(x0-nx, y0-ny)
	rd.raster.ClosePath()
	rd.raster.DrawOp = draw.Over
	rd.raster.Draw(rd.target, rd.target.Bounds(), image.NewUniform(c.NRGBA()), image.Point{})

	rd.stats.DrawCalls++
	rd.stats.LineCount++
}

// DrawText draws s with its top-left corner at (x, y).
func (rd *Renderer2D) DrawText(s string, x, y, size int, c colors.Color) error {
	if s == "" {
		return nil
	}
	if err := text.DrawText(rd.target, rd.font, x, y, s, size, c.NRGBA()); err != nil {
		return err
	}
	rd.stats.DrawCalls++
	rd.stats.TextCount++
	return nil
}

func (rd *Renderer2D) MeasureText(s string, size int) int {
	return text.MeasureText(rd.font, s, size)
}
