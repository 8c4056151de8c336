package ui

import (
	"slices"

	"github.com/STBoyden/ptgui/engine/colors"
)

// dropdownSliderTrack is the track width of sliders added to a dropdown.
const dropdownSliderTrack = 250

// Dropdown is a header button that reveals a nested widget column to its
// right while open. Clicking the header toggles it; nothing else does.
type Dropdown struct {
	text      string
	fontSize  int
	position  Point
	size      Size
	color     colors.Color
	textColor colors.Color
	shown     bool
	fixWidths bool
	widgets   []Widget
	actions   []string
	m         Measurer
}

func NewDropdown(text string, fontSize int, position Point, m Measurer) *Dropdown {
	return &Dropdown{
		text:      text,
		fontSize:  fontSize,
		position:  position,
		size:      Size{W: m.MeasureText(text, fontSize) + textPadding, H: defaultWidgetHeight},
		color:     colors.Theme(colors.StateDefault),
		textColor: colors.Theme(colors.StateText),
		m:         m,
	}
}

func (d *Dropdown) Text() string        { return d.text }
func (d *Dropdown) Position() Point     { return d.position }
func (d *Dropdown) Size() Size          { return d.size }
func (d *Dropdown) Color() colors.Color { return d.color }
func (d *Dropdown) Shown() bool         { return d.shown }
func (d *Dropdown) SetShown(shown bool) { d.shown = shown }

// Widgets returns the dropdown's direct children in draw order.
func (d *Dropdown) Widgets() []Widget { return d.widgets }

// Actions returns a copy of the tokens bubbled up by children during the last draw.
func (d *Dropdown) Actions() []string { return slices.Clone(d.actions) }

func (d *Dropdown) origin() Point {
	return Point{X: d.position.X + d.size.W, Y: d.position.Y}
}

func (d *Dropdown) stack() stack { return stack{origin: d.origin()} }

// Resize changes the header size and shifts the children to stay flush with
// the header's right edge.
func (d *Dropdown) Resize(size Size) {
	before := d.origin()
	d.size = size
	d.shiftChildren(d.origin().Sub(before))
}

// SetPosition moves the header and every child by the same delta.
func (d *Dropdown) SetPosition(p Point) {
	before := d.origin()
	d.position = p
	d.shiftChildren(d.origin().Sub(before))
}

func (d *Dropdown) shiftChildren(delta Point) {
	if delta == (Point{}) {
		return
	}
	for _, w := range d.widgets {
		w.SetPosition(w.Position().Add(delta))
	}
}

// SetFixWidths makes all direct children share the widest child's width.
func (d *Dropdown) SetFixWidths(value bool) *Dropdown {
	d.fixWidths = value
	return d
}

// AddWidget appends an already constructed widget.
func (d *Dropdown) AddWidget(w Widget) *Dropdown {
	d.widgets = append(d.widgets, w)
	return d
}

func (d *Dropdown) AddButton(text, action string) *Dropdown {
	return d.AddButtonWithPosition(text, action, d.stack().next(d.widgets))
}

func (d *Dropdown) AddButtonWithPosition(text, action string, position Point) *Dropdown {
	return d.AddWidget(NewButton(text, action, defaultFontSize, position, d.m))
}

func (d *Dropdown) AddSlider(min, max int, initial float32) *Dropdown {
	return d.AddSliderWithPosition(min, max, initial, d.stack().next(d.widgets))
}

func (d *Dropdown) AddSliderWithPosition(min, max int, initial float32, position Point) *Dropdown {
	return d.AddWidget(NewSlider(min, max, initial, position, dropdownSliderTrack))
}

func (d *Dropdown) AddLabel(text string) *Dropdown {
	return d.AddLabelWithPosition(text, d.stack().next(d.widgets))
}

func (d *Dropdown) AddLabelWithPosition(text string, position Point) *Dropdown {
	return d.AddWidget(NewLabel(text, defaultFontSize, position, d.m))
}

func (d *Dropdown) AddDropdown(text string) *Dropdown {
	return d.AddDropdownWithPosition(text, d.stack().next(d.widgets))
}

func (d *Dropdown) AddDropdownWithPosition(text string, position Point) *Dropdown {
	return d.AddWidget(NewDropdown(text, defaultFontSize, position, d.m))
}

// Dropdowns returns the direct child dropdowns; nested ones are not included.
func (d *Dropdown) Dropdowns() []*Dropdown { return dropdowns(d.widgets) }

// SliderValue returns the value of the index'th direct child slider.
func (d *Dropdown) SliderValue(index int) (float32, error) {
	return sliderValue("Dropdown.SliderValue", d.widgets, index)
}

func (d *Dropdown) SliderValueInt(index int) (int, error) {
	v, err := sliderValue("Dropdown.SliderValueInt", d.widgets, index)
	return int(v), err
}

// Draw paints the header and, while open, draws and hit-tests the children,
// collecting their actions for the parent.
func (d *Dropdown) Draw(c Canvas) {
	in := sampleInput(c)
	d.IsHovered(in.mouse)

	d.actions = d.actions[:0]

	c.DrawRectangle(d.position.X, d.position.Y, d.size.W+textPadding, d.size.H, d.color)
	c.DrawText(d.text, d.position.X+textPadding, d.position.Y+d.size.H-30, d.fontSize, d.textColor)

	if d.fixWidths {
		fixWidths(d.widgets)
	}

	if !d.shown {
		return
	}
	for _, w := range d.widgets {
		w.Draw(c)
		d.actions = hitTest(w, in, d.actions)
	}
}

// IsHovered reports whether mouse is over the header. The active color is
// kept while open even when the pointer is elsewhere.
func (d *Dropdown) IsHovered(mouse Point) bool {
	if IsInside(d.position, d.size, mouse) {
		d.color = colors.Theme(colors.StateHovered)
		return true
	}
	if d.shown {
		d.color = colors.Theme(colors.StateActive)
	} else {
		d.color = colors.Theme(colors.StateDefault)
	}
	return false
}

// IsClicked toggles the dropdown on a press inside the header.
func (d *Dropdown) IsClicked(mouse Point, pressed bool) {
	if pressed && IsInside(d.position, d.size, mouse) {
		d.shown = !d.shown
		d.color = colors.Theme(colors.StateActive)
	}
}
