package session

// State is the controller position in the menu/game cycle
type State uint8

const (
	StateMenu State = iota
	StateAbout
	StatePlaying
	StateExit
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StateAbout:
		return "about"
	case StatePlaying:
		return "playing"
	case StateExit:
		return "exit"
	default:
		return "unknown"
	}
}

// Menu choices as typed by the user
const (
	choiceStart = 1
	choiceAbout = 2
	choiceExit  = 3
)
