package components

import "github.com/yohamta/donburi"

// Timer runs Fire on its owner after Remaining ticks
type Timer struct {
	Remaining int
	Fire      func(owner *donburi.Entry)
}

// TimerData holds the pending timers of one entity. They are dropped
// together with the entity, so nothing fires for a destroyed owner.
type TimerData struct {
	Pending []Timer
}

var Timers = donburi.NewComponentType[TimerData]()
