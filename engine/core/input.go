package core

// Input tracks held state plus the presses that began since the last EndFrame.
type Input struct {
	keys           map[Key]bool
	keysPressed    map[Key]bool
	buttons        map[MouseButton]bool
	buttonsPressed map[MouseButton]bool
	mouseX, mouseY float64
}

func NewInput() *Input {
	return &Input{
		keys:           map[Key]bool{},
		keysPressed:    map[Key]bool{},
		buttons:        map[MouseButton]bool{},
		buttonsPressed: map[MouseButton]bool{},
	}
}

func (in *Input) Handle(ev Event) {
	switch e := ev.(type) {
	case EventKey:
		if e.Down && !in.keys[e.Key] {
			in.keysPressed[e.Key] = true
		}
		in.keys[e.Key] = e.Down
	case EventMouseButton:
		if e.Down && !in.buttons[e.Button] {
			in.buttonsPressed[e.Button] = true
		}
		in.buttons[e.Button] = e.Down
	case EventMouseMove:
		in.mouseX, in.mouseY = e.X, e.Y
	}
}

// EndFrame clears the per-frame edges. Held state is kept.
func (in *Input) EndFrame() {
	clear(in.keysPressed)
	clear(in.buttonsPressed)
}

func (in *Input) IsKeyPressed(k Key) bool            { return in.keysPressed[k] }
func (in *Input) IsButtonDown(b MouseButton) bool    { return in.buttons[b] }
func (in *Input) IsButtonPressed(b MouseButton) bool { return in.buttonsPressed[b] }
func (in *Input) Mouse() (float64, float64)          { return in.mouseX, in.mouseY }
