package types

// Command is a discrete input symbol produced by a frontend.
type Command int

const (
	CommandNone Command = iota
	CommandUp
	CommandDown
	CommandLeft
	CommandRight
	CommandTogglePause
	CommandReset
	CommandQuit
)

// Direction returns the steering direction carried by c, if any.
func (c Command) Direction() (Direction, bool) {
	switch c {
	case CommandUp:
		return UP, true
	case CommandDown:
		return DOWN, true
	case CommandLeft:
		return LEFT, true
	case CommandRight:
		return RIGHT, true
	}
	return NONE, false
}

func (c Command) String() string {
	switch c {
	case CommandUp:
		return "up"
	case CommandDown:
		return "down"
	case CommandLeft:
		return "left"
	case CommandRight:
		return "right"
	case CommandTogglePause:
		return "pause"
	case CommandReset:
		return "reset"
	case CommandQuit:
		return "quit"
	default:
		return "none"
	}
}
