package server

// State is a step of the server lifecycle.
type State int32

const (
	StateUnstarted State = iota
	StateBuilding
	StateListening
	StateShuttingDown
	StateStopped
	StateDisabled
)

// String returns the lower-case state name.
func (s State) String() string {
	switch s {
	case StateUnstarted:
		return "unstarted"
	case StateBuilding:
		return "building"
	case StateListening:
		return "listening"
	case StateShuttingDown:
		return "shutting_down"
	case StateStopped:
		return "stopped"
	case StateDisabled:
		return "disabled"
	default:
		return "unknown"
	}
}
