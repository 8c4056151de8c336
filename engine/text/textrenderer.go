package text

import (
	"image"
	"image/color"
	"image/draw"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// DrawText draws s with its top-left corner at (x, y). Positive Y goes downward.
// Each '\n' starts a new line one LineHeight lower.
func DrawText(dst draw.Image, f *Font, x, y int, s string, size int, c color.Color) error {
	face, err := f.Face(size)
	if err != nil {
		return err
	}

	m := face.Metrics()
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(c), Face: face}
	baseY := fixed.I(y) + m.Ascent // move origin to top left

	for _, line := range strings.Split(s, "\n") {
		d.Dot = fixed.Point26_6{X: fixed.I(x), Y: baseY}
		d.DrawString(line)
		baseY += m.Height
	}
	return nil
}

// MeasureText returns the pixel width of the widest line of s at size.
func MeasureText(f *Font, s string, size int) int {
	face, err := f.Face(size)
	if err != nil {
		return 0
	}

	var width fixed.Int26_6
	for _, line := range strings.Split(s, "\n") {
		if w := font.MeasureString(face, line); w > width {
			width = w
		}
	}
	return width.Ceil()
}

// LineHeight is the baseline-to-baseline distance at size.
func LineHeight(f *Font, size int) int {
	face, err := f.Face(size)
	if err != nil {
		return 0
	}
	return face.Metrics().Height.Ceil()
}
