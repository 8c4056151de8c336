package ui

import "github.com/STBoyden/ptgui/engine/colors"

const ruleThickness = 3.5

// Label is a static heading: a filled box, an underline rule and text.
type Label struct {
	text     string
	fontSize int
	position Point
	size     Size
	color    colors.Color
	m        Measurer
}

func NewLabel(text string, fontSize int, position Point, m Measurer) *Label {
	l := NewLabelWithSize(text, fontSize, position, Size{}, m)
	l.size = Size{W: m.MeasureText(text, fontSize) + textPadding, H: defaultWidgetHeight}
	return l
}

func NewLabelWithSize(text string, fontSize int, position Point, size Size, m Measurer) *Label {
	return &Label{
		text:     text,
		fontSize: fontSize,
		position: position,
		size:     size,
		color:    colors.Theme(colors.StateActive),
		m:        m,
	}
}

func (l *Label) Text() string        { return l.text }
func (l *Label) Position() Point     { return l.position }
func (l *Label) Size() Size          { return l.size }
func (l *Label) Color() colors.Color { return l.color }
func (l *Label) Resize(size Size)    { l.size = size }
func (l *Label) SetPosition(p Point) { l.position = p }

func (l *Label) SetText(text string) *Label {
	l.text = text
	l.Resize(Size{W: l.m.MeasureText(text, l.fontSize) + textPadding, H: l.size.H})
	return l
}

func (l *Label) Draw(c Canvas) {
	x, y := l.position.X, l.position.Y
	bottom := y + l.size.H

	c.DrawRectangle(x, y, l.size.W+textPadding, l.size.H, l.color)
	c.DrawLine(x, bottom, x+l.size.W+textPadding, bottom, ruleThickness, colors.Black)
	c.DrawText(l.text, x+textPadding, bottom-30, l.fontSize, colors.Theme(colors.StateText))
}

// IsHovered is always false; labels never react to the pointer.
func (l *Label) IsHovered(Point) bool { return false }

// IsClicked does nothing.
func (l *Label) IsClicked(Point, bool) {}
