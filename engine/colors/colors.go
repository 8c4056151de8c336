package colors

import "image/color"

type Color [4]float32

var (
	White     = Color{1, 1, 1, 1}
	Red       = Color{1, 0, 0, 1}
	Green     = Color{0, 1, 0, 1}
	Blue      = Color{0, 0, 1, 1}
	Black     = Color{0, 0, 0, 1}
	Magenta   = Color{1, 0, 1, 1}
	Cyan      = Color{0, 1, 1, 1}
	Yellow    = Color{1, 1, 0, 1}
	Gray      = RGBA8(130, 130, 130, 255)
	DarkGray  = RGBA8(80, 80, 80, 255)
	LightGray = RGBA8(200, 200, 200, 255)
	RayWhite  = RGBA8(245, 245, 245, 255)
	Blank     = Color{0, 0, 0, 0}
)

// RGBA8 builds a Color from 8-bit channels.
func RGBA8(r, g, b, a uint8) Color {
	return Color{float32(r) / 255, float32(g) / 255, float32(b) / 255, float32(a) / 255}
}

func (c Color) WithAlpha(a float32) Color {
	c[3] = a
	return c
}

// NRGBA converts to a non-premultiplied image/color value, clamping each channel.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: channel(c[0]), G: channel(c[1]), B: channel(c[2]), A: channel(c[3])}
}

func channel(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
