package systems

import (
	"github.com/automoto/starpuff/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// After schedules fn to run on owner in the given number of ticks.
// The timer belongs to owner and is dropped if owner is destroyed first.
func After(owner *donburi.Entry, ticks int, fn func(owner *donburi.Entry)) {
	if owner == nil || !owner.Valid() {
		return
	}
	if !owner.HasComponent(components.Timers) {
		donburi.Add(owner, components.Timers, &components.TimerData{})
	}
	timers := components.Timers.Get(owner)
	timers.Pending = append(timers.Pending, components.Timer{Remaining: ticks, Fire: fn})
}

// UpdateTimers counts down every pending timer and fires the ones that are due
func UpdateTimers(ecs *ecs.ECS) {
	var owners []*donburi.Entry
	components.Timers.Each(ecs.World, func(e *donburi.Entry) {
		if len(components.Timers.Get(e).Pending) > 0 {
			owners = append(owners, e)
		}
	})

	for _, e := range owners {
		if !e.Valid() {
			continue
		}
		timers := components.Timers.Get(e)
		var keep, due []components.Timer
		for _, t := range timers.Pending {
			t.Remaining--
			if t.Remaining <= 0 {
				due = append(due, t)
			} else {
				keep = append(keep, t)
			}
		}
		timers.Pending = keep

		for _, t := range due {
			if !e.Valid() {
				break
			}
			t.Fire(e)
		}
	}
}
