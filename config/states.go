package config

// StateID names a behavior state of an enemy state machine
type StateID int

const (
	StateNone StateID = iota

	FlameIdle
	FlameJump

	PatrolIdle
	PatrolLeft
	PatrolRight
)

var stateNames = map[StateID]string{
	StateNone:   "none",
	FlameIdle:   "idle",
	FlameJump:   "jump",
	PatrolIdle:  "idle",
	PatrolLeft:  "left",
	PatrolRight: "right",
}

func (s StateID) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}
