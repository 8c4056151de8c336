package ui

import (
	"math"
	"strconv"

	"github.com/STBoyden/ptgui/engine/colors"
)

const (
	sliderExtraWidth = 120 // room for the value readout
	sliderBoxWidth   = 30
	sliderInset      = 10
	sliderTrackTop   = 7
	sliderTrackInset = 15 // widget height minus track height
	sliderTextSize   = 32
	sliderTextOffset = 105
)

// Slider selects a float32 in [min, max] by dragging a box along a track.
//
// The box's left edge travels from the track start to track end minus the box
// width; value and box position are linear in each other over that travel.
// Both directions use the same travel, so the box can reach either end and
// a value maps back to itself after a drag. Interpolating over the full track
// width instead would leave the last box width unreachable.
type Slider struct {
	min, max int
	value    float32

	position Point
	size     Size

	trackPos  Point
	trackSize Size
	boxPos    Point
	boxSize   Size

	background colors.Color
	trackColor colors.Color
	boxColor   colors.Color
	textColor  colors.Color
}

// NewSlider creates a Slider with a trackWidth pixel track. initial is clamped to [min, max].
func NewSlider(min, max int, initial float32, position Point, trackWidth int) *Slider {
	s := &Slider{
		min:        min,
		max:        max,
		value:      clampf(initial, float32(min), float32(max)),
		position:   position,
		size:       Size{W: trackWidth + sliderExtraWidth, H: defaultWidgetHeight},
		trackPos:   Point{X: position.X + sliderInset, Y: position.Y + sliderTrackTop},
		trackSize:  Size{W: trackWidth, H: defaultWidgetHeight - sliderTrackInset},
		boxSize:    Size{W: sliderBoxWidth, H: defaultWidgetHeight - sliderTrackInset},
		background: colors.Theme(colors.StateDefault),
		trackColor: colors.LightGray,
		boxColor:   colors.Theme(colors.StateText),
		textColor:  colors.Theme(colors.StateText),
	}
	s.boxPos = s.trackPos
	s.setPositionFromValue()
	return s
}

func clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (s *Slider) Value() float32         { return s.value }
func (s *Slider) ValueInt() int          { return int(s.value) }
func (s *Slider) Position() Point        { return s.position }
func (s *Slider) Size() Size             { return s.size }
func (s *Slider) BoxPosition() Point     { return s.boxPos }
func (s *Slider) BoxColor() colors.Color { return s.boxColor }

// travel is how far the box's left edge can move.
func (s *Slider) travel() int {
	if t := s.trackSize.W - s.boxSize.W; t > 0 {
		return t
	}
	return 0
}

func (s *Slider) setPositionFromValue() {
	span := float32(s.max - s.min)
	if span == 0 {
		s.boxPos.X = s.trackPos.X
		return
	}
	t := (s.value - float32(s.min)) / span
	s.boxPos.X = s.trackPos.X + int(math.Round(float64(t*float32(s.travel()))))
}

func (s *Slider) updateValue() {
	travel := s.travel()
	if travel == 0 {
		s.value = float32(s.min)
		return
	}
	t := float32(s.boxPos.X-s.trackPos.X) / float32(travel)
	s.value = clampf(t*float32(s.max-s.min)+float32(s.min), float32(s.min), float32(s.max))
}

// SetValue clamps v into range and moves the box to match.
func (s *Slider) SetValue(v float32) {
	s.value = clampf(v, float32(s.min), float32(s.max))
	s.setPositionFromValue()
}

// Resize changes the overall size; the track and box follow proportionally.
// The value is kept and the box re-snaps to it on the new track.
func (s *Slider) Resize(size Size) {
	s.size = size
	s.trackSize = Size{W: size.W - sliderExtraWidth, H: size.H - sliderTrackInset}
	s.boxSize.H = size.H - sliderTrackInset
	s.setPositionFromValue()
}

// SetPosition moves the slider, its track and its box together.
func (s *Slider) SetPosition(p Point) {
	d := p.Sub(s.position)
	s.position = p
	s.trackPos = s.trackPos.Add(d)
	s.boxPos = s.boxPos.Add(d)
}

func (s *Slider) Draw(c Canvas) {
	s.IsHovered(c.MousePosition())

	c.DrawRectangle(s.position.X, s.position.Y, s.size.W, s.size.H, s.background)
	c.DrawText(strconv.FormatFloat(float64(s.value), 'f', 2, 32),
		s.position.X+s.size.W-sliderTextOffset, s.position.Y+sliderInset, sliderTextSize, s.textColor)
	c.DrawRectangle(s.trackPos.X, s.trackPos.Y, s.trackSize.W, s.trackSize.H, s.trackColor)
	c.DrawRectangle(s.boxPos.X, s.boxPos.Y, s.boxSize.W, s.boxSize.H, s.boxColor)
}

// IsHovered tests the drag box only and highlights it.
func (s *Slider) IsHovered(mouse Point) bool {
	if IsInside(s.boxPos, s.boxSize, mouse) {
		s.boxColor = colors.Theme(colors.StateHovered)
		return true
	}
	s.boxColor = colors.Theme(colors.StateText)
	return false
}

// IsClicked drags the box while the button is held anywhere over the slider.
func (s *Slider) IsClicked(mouse Point, held bool) {
	if !held {
		return
	}
	if !IsInside(s.boxPos, s.boxSize, mouse) && !IsInside(s.position, s.size, mouse) {
		return
	}

	s.boxPos.X = mouse.X - s.boxSize.W/2
	if right := s.trackPos.X + s.trackSize.W; s.boxPos.X+s.boxSize.W > right {
		s.boxPos.X = right - s.boxSize.W
	}
	if s.boxPos.X < s.trackPos.X {
		s.boxPos.X = s.trackPos.X
	}

	s.updateValue()
}
