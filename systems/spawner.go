package systems

import (
	"github.com/automoto/starpuff/components"
	cfg "github.com/automoto/starpuff/config"
	"github.com/automoto/starpuff/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFlyerSpawners releases a flyer on a spawner's first tick and then once every interval.
func UpdateFlyerSpawners(ecs *ecs.ECS) {
	type spawn struct{ x, y float64 }
	var due []spawn

	components.FlyerSpawner.Each(ecs.World, func(e *donburi.Entry) {
		s := components.FlyerSpawner.Get(e)
		if s.Elapsed == 0 {
			due = append(due, spawn{s.X, s.Y})
		}
		s.Elapsed++
		if s.Interval > 0 && s.Elapsed >= s.Interval {
			s.Elapsed = 0
		}
	})

	speeds := cfg.Flyer.Speeds
	for _, s := range due {
		speed := speeds[Rand().IntN(len(speeds))]
		factory.CreateFlyer(ecs, s.x, s.y, speed)
	}
}
