package ui

import "github.com/STBoyden/ptgui/engine/colors"

// scope is a guarded view of a Canvas. Once released every call is dropped
// and the first rejected operation is remembered.
type scope struct {
	canvas   Canvas
	released bool
	err      error
}

func newScope(c Canvas) *scope { return &scope{canvas: c} }

func (s *scope) live(op string) bool {
	if !s.released {
		return true
	}
	if s.err == nil {
		s.err = &Error{Op: op, Kind: KindReleased, Err: ErrSurfaceReleased}
	}
	return false
}

func (s *scope) release() { s.released = true }

// Err returns the first operation rejected after release, if any.
func (s *scope) Err() error { return s.err }

func (s *scope) MeasureText(text string, fontSize int) int {
	if !s.live("MeasureText") {
		return 0
	}
	return s.canvas.MeasureText(text, fontSize)
}

func (s *scope) ClearBackground(c colors.Color) {
	if s.live("ClearBackground") {
		s.canvas.ClearBackground(c)
	}
}

func (s *scope) DrawRectangle(x, y, w, h int, c colors.Color) {
	if s.live("DrawRectangle") {
		s.canvas.DrawRectangle(x, y, w, h, c)
	}
}

func (s *scope) DrawLine(x0, y0, x1, y1 int, thickness float32, c colors.Color) {
	if s.live("DrawLine") {
		s.canvas.DrawLine(x0, y0, x1, y1, thickness, c)
	}
}

func (s *scope) DrawText(text string, x, y, fontSize int, c colors.Color) {
	if s.live("DrawText") {
		s.canvas.DrawText(text, x, y, fontSize, c)
	}
}

func (s *scope) MousePosition() Point {
	if !s.live("MousePosition") {
		return Point{}
	}
	return s.canvas.MousePosition()
}

func (s *scope) IsMouseButtonPressed() bool {
	return s.live("IsMouseButtonPressed") && s.canvas.IsMouseButtonPressed()
}

func (s *scope) IsMouseButtonDown() bool {
	return s.live("IsMouseButtonDown") && s.canvas.IsMouseButtonDown()
}

// Frame is the remainder of a frame handed back to the caller after the
// handler has drawn. It is a Canvas until End is called.
type Frame struct {
	*scope
	backend Backend
}

// End closes the frame on the backend. Any later use of the frame, including
// a second End, is rejected with ErrSurfaceReleased.
func (f *Frame) End() error {
	if !f.live("Frame.End") {
		return f.err
	}
	f.release()
	f.backend.EndDrawing()
	return nil
}
