package ui

// Widget is the closed set of drawable kinds: *Button, *Slider, *Label and *Dropdown.
type Widget interface {
	Position() Point
	Size() Size
	Resize(size Size)
	SetPosition(p Point)
	Draw(c Canvas)
	isWidget()
}

func (*Button) isWidget()   {}
func (*Slider) isWidget()   {}
func (*Label) isWidget()    {}
func (*Dropdown) isWidget() {}

// hitTest feeds one frame of pointer input to w and appends any action it emits.
// Buttons and dropdown headers are edge-triggered, sliders level-triggered.
func hitTest(w Widget, in input, actions []string) []string {
	switch w := w.(type) {
	case *Button:
		if a := w.IsClicked(in.mouse, in.pressed); a != "" {
			actions = append(actions, a)
		}
	case *Slider:
		w.IsClicked(in.mouse, in.down)
	case *Label:
		w.IsClicked(in.mouse, in.pressed)
	case *Dropdown:
		w.IsClicked(in.mouse, in.pressed)
		actions = append(actions, w.actions...)
	}
	return actions
}

// fixWidths resizes every widget to the widest one's width, keeping heights.
func fixWidths(widgets []Widget) {
	widest := -1
	for _, w := range widgets {
		if sz := w.Size(); sz.W > widest {
			widest = sz.W
		}
	}
	for _, w := range widgets {
		if sz := w.Size(); sz.W != widest {
			w.Resize(Size{W: widest, H: sz.H})
		}
	}
}

// countButtons counts buttons in widgets, descending into dropdowns.
func countButtons(widgets []Widget) int {
	n := 0
	for _, w := range widgets {
		switch w := w.(type) {
		case *Button:
			n++
		case *Dropdown:
			n += countButtons(w.widgets)
		}
	}
	return n
}

func sliders(widgets []Widget) []*Slider {
	var out []*Slider
	for _, w := range widgets {
		if s, ok := w.(*Slider); ok {
			out = append(out, s)
		}
	}
	return out
}

func dropdowns(widgets []Widget) []*Dropdown {
	var out []*Dropdown
	for _, w := range widgets {
		if d, ok := w.(*Dropdown); ok {
			out = append(out, d)
		}
	}
	return out
}

func sliderValue(op string, widgets []Widget, index int) (float32, error) {
	ss := sliders(widgets)
	if index < 0 || index >= len(ss) {
		return 0, indexError(op, index, len(ss))
	}
	return ss[index].Value(), nil
}

// stack tracks automatic placement: each widget goes directly below the
// previous one, stepping by the first widget's height.
type stack struct {
	origin Point
}

func (st stack) next(widgets []Widget) Point {
	if len(widgets) == 0 {
		return st.origin
	}
	prev := widgets[len(widgets)-1].Position()
	return Point{X: prev.X, Y: prev.Y + widgets[0].Size().H}
}
