package colors

// State selects an entry in the fixed widget theme.
type State int

const (
	StateDefault State = iota
	StateHovered
	StateActive
	StateText
)

func (s State) String() string {
	switch s {
	case StateHovered:
		return "hovered"
	case StateActive:
		return "active"
	case StateText:
		return "text"
	default:
		return "default"
	}
}

// Theme returns the widget color for s. Hovered and active share a shade.
func Theme(s State) Color {
	switch s {
	case StateHovered, StateActive:
		return DarkGray
	case StateText:
		return RayWhite
	default:
		return Gray
	}
}
