package ui

import "github.com/STBoyden/ptgui/engine/colors"

const (
	defaultFontSize     = 20
	defaultWidgetHeight = 50
	textPadding         = 10
)

// Button is a clickable text box that emits its action token when pressed.
type Button struct {
	text     string
	action   string
	fontSize int
	position Point
	size     Size
	color    colors.Color
	m        Measurer
}

// NewButton creates a Button whose width fits text at fontSize.
func NewButton(text, action string, fontSize int, position Point, m Measurer) *Button {
	b := NewButtonWithSize(text, action, fontSize, position, Size{}, m)
	b.size = Size{W: m.MeasureText(text, fontSize) + textPadding, H: defaultWidgetHeight}
	return b
}

// NewButtonWithSize creates a Button with an explicit size.
func NewButtonWithSize(text, action string, fontSize int, position Point, size Size, m Measurer) *Button {
	return &Button{
		text:     text,
		action:   action,
		fontSize: fontSize,
		position: position,
		size:     size,
		color:    colors.Theme(colors.StateDefault),
		m:        m,
	}
}

func (b *Button) Text() string        { return b.text }
func (b *Button) Action() string      { return b.action }
func (b *Button) FontSize() int       { return b.fontSize }
func (b *Button) Position() Point     { return b.position }
func (b *Button) Size() Size          { return b.size }
func (b *Button) Color() colors.Color { return b.color }
func (b *Button) Resize(size Size)    { b.size = size }
func (b *Button) SetPosition(p Point) { b.position = p }

// SetText replaces the text and refits the width. The height is kept.
func (b *Button) SetText(text string) *Button {
	b.text = text
	b.Resize(Size{W: b.m.MeasureText(text, b.fontSize) + textPadding, H: b.size.H})
	return b
}

func (b *Button) Draw(c Canvas) {
	b.IsHovered(c.MousePosition())

	c.DrawRectangle(b.position.X, b.position.Y, b.size.W+textPadding, b.size.H, b.color)
	c.DrawText(b.text, b.position.X+textPadding, b.position.Y+b.size.H-30, b.fontSize, colors.Theme(colors.StateText))
}

// IsHovered reports whether mouse is over the button and updates its color.
func (b *Button) IsHovered(mouse Point) bool {
	if IsInside(b.position, b.size, mouse) {
		b.color = colors.Theme(colors.StateHovered)
		return true
	}
	b.color = colors.Theme(colors.StateDefault)
	return false
}

// IsClicked returns the action token when the button is hovered on the frame
// the primary button went down, and "" otherwise.
func (b *Button) IsClicked(mouse Point, pressed bool) string {
	if b.IsHovered(mouse) && pressed {
		return b.action
	}
	return ""
}
