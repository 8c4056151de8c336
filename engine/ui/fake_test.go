package ui

import "github.com/STBoyden/ptgui/engine/colors"

type call struct {
	op         string
	x, y, w, h int
	text       string
	color      colors.Color
}

// fakeBackend records draw calls and serves a scripted pointer state.
// Text is measured as fontSize/2 pixels per byte.
type fakeBackend struct {
	mouse   Point
	pressed bool
	down    bool

	calls []call
	begun int
	ended int
}

func (f *fakeBackend) MeasureText(text string, fontSize int) int { return len(text) * fontSize / 2 }

func (f *fakeBackend) BeginDrawing() Canvas {
	f.begun++
	f.calls = f.calls[:0]
	return f
}

func (f *fakeBackend) EndDrawing() { f.ended++ }

func (f *fakeBackend) ClearBackground(c colors.Color) {
	f.calls = append(f.calls, call{op: "clear", color: c})
}

func (f *fakeBackend) DrawRectangle(x, y, w, h int, c colors.Color) {
	f.calls = append(f.calls, call{op: "rect", x: x, y: y, w: w, h: h, color: c})
}

func (f *fakeBackend) DrawLine(x0, y0, x1, y1 int, _ float32, c colors.Color) {
	f.calls = append(f.calls, call{op: "line", x: x0, y: y0, w: x1 - x0, h: y1 - y0, color: c})
}

func (f *fakeBackend) DrawText(text string, x, y, _ int, c colors.Color) {
	f.calls = append(f.calls, call{op: "text", x: x, y: y, text: text, color: c})
}

func (f *fakeBackend) MousePosition() Point       { return f.mouse }
func (f *fakeBackend) IsMouseButtonPressed() bool { return f.pressed }
func (f *fakeBackend) IsMouseButtonDown() bool    { return f.down }

// click positions the pointer and reports a fresh press that is still held.
func (f *fakeBackend) click(p Point) {
	f.mouse = p
	f.pressed = true
	f.down = true
}

// hover positions the pointer with the button up.
func (f *fakeBackend) hover(p Point) {
	f.mouse = p
	f.pressed = false
	f.down = false
}

func (f *fakeBackend) ops() []string {
	out := make([]string, 0, len(f.calls))
	for _, c := range f.calls {
		out = append(out, c.op)
	}
	return out
}

func (f *fakeBackend) texts() []string {
	var out []string
	for _, c := range f.calls {
		if c.op == "text" {
			out = append(out, c.text)
		}
	}
	return out
}
