package components

import (
	"github.com/automoto/starpuff/config"
	"github.com/yohamta/donburi"
)

// StateData tracks a named behavior state and how long it has run, in ticks.
// Duration is zero for states that end on a condition instead of a delay.
type StateData struct {
	CurrentState  config.StateID
	PreviousState config.StateID
	StateTimer    int
	Duration      int
}

var State = donburi.NewComponentType[StateData]()

// Enter switches to a new state and restarts the timer
func (s *StateData) Enter(next config.StateID, duration int) {
	s.PreviousState = s.CurrentState
	s.CurrentState = next
	s.StateTimer = 0
	s.Duration = duration
}

// Elapsed reports whether a delayed state has run its full duration
func (s *StateData) Elapsed() bool {
	return s.Duration > 0 && s.StateTimer >= s.Duration
}
