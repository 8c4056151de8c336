package ui

import "github.com/STBoyden/ptgui/engine/colors"

// ===== Engine-facing capability surface =====

// Measurer reports the rendered width of text at a font size, in pixels.
// Widgets size themselves with the same measurer the backend draws with.
type Measurer interface {
	MeasureText(text string, fontSize int) int
}

// Canvas is the drawing scope of one frame plus the pointer state sampled for it.
type Canvas interface {
	Measurer
	ClearBackground(c colors.Color)
	DrawRectangle(x, y, w, h int, c colors.Color)
	DrawLine(x0, y0, x1, y1 int, thickness float32, c colors.Color)
	DrawText(text string, x, y, fontSize int, c colors.Color)

	MousePosition() Point
	// IsMouseButtonPressed is true only on the frame the primary button went down.
	IsMouseButtonPressed() bool
	// IsMouseButtonDown is true on every frame the primary button is held.
	IsMouseButtonDown() bool
}

// Backend opens and closes frames.
type Backend interface {
	Measurer
	BeginDrawing() Canvas
	EndDrawing()
}

// Action applies one action token to caller-owned state.
type Action[T any] func(state *T, action string)

// Hook draws external content before any widget, so widgets are never painted over.
type Hook func(c Canvas)

// input is the pointer snapshot used for one hit-test pass.
type input struct {
	mouse   Point
	pressed bool
	down    bool
}

func sampleInput(c Canvas) input {
	return input{
		mouse:   c.MousePosition(),
		pressed: c.IsMouseButtonPressed(),
		down:    c.IsMouseButtonDown(),
	}
}
