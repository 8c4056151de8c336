package ui

import (
	"slices"

	"github.com/STBoyden/ptgui/engine/colors"
)

const (
	autoSliderTrack  = 250
	fixedSliderTrack = 100
)

// Handler owns a top-level widget collection and runs the per-frame
// draw, hit-test and dispatch cycle against caller state of type T.
type Handler[T any] struct {
	actions    []string
	hooks      []Hook
	action     Action[T]
	clearColor colors.Color
	fixWidths  bool
	widgets    []Widget
	m          Measurer
	frame      *Frame
}

// NewHandler creates an empty Handler. m must measure text exactly as the
// backend later draws it.
func NewHandler[T any](clearColor colors.Color, m Measurer) *Handler[T] {
	return &Handler[T]{clearColor: clearColor, m: m}
}

// Widgets returns the top-level widgets in draw order.
func (h *Handler[T]) Widgets() []Widget { return h.widgets }

// Actions returns a copy of the tokens collected by the last Draw and not yet executed.
func (h *Handler[T]) Actions() []string { return slices.Clone(h.actions) }

// SetActionFunc sets the function called once per collected action token.
func (h *Handler[T]) SetActionFunc(fn Action[T]) *Handler[T] {
	h.action = fn
	return h
}

// SetFixWidths makes all top-level widgets share the widest one's width.
func (h *Handler[T]) SetFixWidths(value bool) *Handler[T] {
	h.fixWidths = value
	return h
}

// AddHook registers fn to draw every frame before any widget.
func (h *Handler[T]) AddHook(fn Hook) *Handler[T] {
	h.hooks = append(h.hooks, fn)
	return h
}

func (h *Handler[T]) ClearHooks() *Handler[T] {
	h.hooks = nil
	return h
}

func (h *Handler[T]) add(w Widget) *Handler[T] {
	h.widgets = append(h.widgets, w)
	return h
}

func (h *Handler[T]) next() Point { return stack{}.next(h.widgets) }

func (h *Handler[T]) AddButton(text, action string) *Handler[T] {
	return h.AddButtonWithPosition(text, action, h.next())
}

func (h *Handler[T]) AddButtonWithPosition(text, action string, position Point) *Handler[T] {
	return h.add(NewButton(text, action, defaultFontSize, position, h.m))
}

func (h *Handler[T]) AddSlider(min, max int, initial float32) *Handler[T] {
	return h.add(NewSlider(min, max, initial, h.next(), autoSliderTrack))
}

func (h *Handler[T]) AddSliderWithPosition(min, max int, initial float32, position Point) *Handler[T] {
	return h.add(NewSlider(min, max, initial, position, fixedSliderTrack))
}

func (h *Handler[T]) AddLabel(text string) *Handler[T] {
	return h.AddLabelWithPosition(text, h.next())
}

func (h *Handler[T]) AddLabelWithPosition(text string, position Point) *Handler[T] {
	return h.add(NewLabel(text, defaultFontSize, position, h.m))
}

func (h *Handler[T]) AddDropdown(text string) *Handler[T] {
	return h.AddDropdownWithPosition(text, h.next())
}

func (h *Handler[T]) AddDropdownWithPosition(text string, position Point) *Handler[T] {
	return h.add(NewDropdown(text, defaultFontSize, position, h.m))
}

// Dropdowns returns the top-level dropdowns for further configuration.
func (h *Handler[T]) Dropdowns() []*Dropdown { return dropdowns(h.widgets) }

// SliderValue returns the value of the index'th top-level slider.
func (h *Handler[T]) SliderValue(index int) (float32, error) {
	return sliderValue("Handler.SliderValue", h.widgets, index)
}

func (h *Handler[T]) SliderValueInt(index int) (int, error) {
	v, err := sliderValue("Handler.SliderValueInt", h.widgets, index)
	return int(v), err
}

// ExecuteActions drains the collected actions through the action function in
// the order they were collected.
func (h *Handler[T]) ExecuteActions(state *T) *Handler[T] {
	if h.action != nil {
		for _, a := range h.actions {
			h.action(state, a)
		}
	}
	h.actions = h.actions[:0]
	return h
}

// Draw runs one frame: clear, hooks, width normalization, then draw and
// hit-test every widget in order. The canvas is handed back as a Frame the
// caller must End. A frame from an earlier Draw that was never ended is ended
// here before the next one opens, so it can no longer reach the canvas.
func (h *Handler[T]) Draw(b Backend) (*Frame, error) {
	if h.action == nil && countButtons(h.widgets) > 0 {
		return nil, &Error{Op: "Handler.Draw", Kind: KindConfiguration, Err: ErrNoActionFunc}
	}

	if h.frame != nil && !h.frame.released {
		h.frame.release()
		h.frame.backend.EndDrawing()
	}
	h.frame = nil

	canvas := b.BeginDrawing()
	s := newScope(canvas)

	h.actions = h.actions[:0]

	s.ClearBackground(h.clearColor)
	for _, fn := range h.hooks {
		fn(s)
	}

	if h.fixWidths {
		fixWidths(h.widgets)
	}

	in := sampleInput(s)
	for _, w := range h.widgets {
		w.Draw(s)
		h.actions = hitTest(w, in, h.actions)
	}

	s.release()
	h.frame = &Frame{scope: newScope(canvas), backend: b}
	return h.frame, nil
}
