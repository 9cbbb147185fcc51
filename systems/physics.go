package systems

import (
	"github.com/automoto/starpuff/components"
	cfg "github.com/automoto/starpuff/config"
	"github.com/automoto/starpuff/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics integrates one tick of motion for every body and resolves
// non-static bodies against the level terrain.
func UpdatePhysics(ecs *ecs.ECS) {
	var bodies []*donburi.Entry
	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.Object) {
			bodies = append(bodies, e)
		}
	})

	dt := cfg.Dt()
	for _, e := range bodies {
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e)
		if obj.Object == nil {
			continue
		}

		dx := (physics.SpeedX + physics.MoveX) * dt
		physics.MoveX = 0

		if physics.Static {
			obj.X += dx
			obj.Y += physics.SpeedY * dt
			obj.Update()
			continue
		}

		physics.SpeedY = gamemath.ClampFall(physics.SpeedY+physics.Gravity*dt, physics.MaxFallSpeed)

		obj.X += resolveObjectHorizontalCollision(physics, obj.Object, dx)
		obj.Y += resolveObjectVerticalCollision(physics, obj.Object, physics.SpeedY*dt)
		obj.Update()
	}
}
