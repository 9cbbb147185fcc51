package systems

import (
	"github.com/automoto/starpuff/components"
	cfg "github.com/automoto/starpuff/config"
	"github.com/automoto/starpuff/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEnemies advances the state machines of hopping and walking enemies.
// Flyers have no state and only move.
func UpdateEnemies(ecs *ecs.ECS) {
	components.Flame.Each(ecs.World, func(e *donburi.Entry) {
		updateFlame(e)
	})
	components.Patroller.Each(ecs.World, func(e *donburi.Entry) {
		updatePatroller(e)
	})
}

func updateFlame(e *donburi.Entry) {
	state := components.State.Get(e)
	physics := components.Physics.Get(e)
	state.StateTimer++

	switch state.CurrentState {
	case cfg.FlameIdle:
		if state.Elapsed() {
			state.Enter(cfg.FlameJump, 0)
			physics.SpeedY = -cfg.Flame.JumpForce
			physics.OnGround = nil
		}
	case cfg.FlameJump:
		if physics.Grounded() {
			state.Enter(cfg.FlameIdle, cfg.Seconds(cfg.Flame.IdleDelay))
		}
	}
}

func updatePatroller(e *donburi.Entry) {
	guy := components.Patroller.Get(e)
	state := components.State.Get(e)
	physics := components.Physics.Get(e)
	anim := components.Animation.Get(e)
	state.StateTimer++

	if state.Elapsed() {
		r := guy.Rand
		if r == nil {
			r = Rand()
		}
		next := cfg.PatrolLeft
		if state.CurrentState == cfg.PatrolLeft {
			next = cfg.PatrolRight
		}
		state.Enter(next, components.PatrolDuration(r, next))
	}

	switch state.CurrentState {
	case cfg.PatrolLeft:
		physics.MoveX -= cfg.Patroller.Speed
		anim.FlipX = false
		anim.Play(cfg.ClipPatrollerWalk)
	case cfg.PatrolRight:
		physics.MoveX += cfg.Patroller.Speed
		anim.FlipX = true
		anim.Play(cfg.ClipPatrollerWalk)
	default:
		anim.Play(cfg.ClipPatrollerIdle)
	}
}

// UpdateFlyers removes flyers and stars that travelled too far outside the view
func UpdateFlyers(ecs *ecs.ECS) {
	left, right, ok := viewBounds(ecs)
	if !ok {
		return
	}
	margin := cfg.Flyer.DespawnDistance

	var gone []*donburi.Entry
	collect := func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		if obj.X+obj.W < left-margin || obj.X > right+margin {
			gone = append(gone, e)
		}
	}
	components.Flyer.Each(ecs.World, collect)
	tags.Projectile.Each(ecs.World, collect)

	for _, e := range gone {
		Destroy(ecs.World, e)
	}
}

// viewBounds returns the horizontal extent of the camera view in world units.
// Without a camera the whole level counts as visible.
func viewBounds(ecs *ecs.ECS) (left, right float64, ok bool) {
	if entry, found := components.Camera.First(ecs.World); found {
		camera := components.Camera.Get(entry)
		zoom := camera.Zoom
		if zoom <= 0 {
			zoom = 1
		}
		half := float64(cfg.C.Width) / 2 / zoom
		return camera.Position.X - half, camera.Position.X + half, true
	}
	if entry, found := components.Level.First(ecs.World); found {
		level := components.Level.Get(entry)
		if level.CurrentLevel != nil {
			return 0, float64(level.CurrentLevel.Width), true
		}
	}
	return 0, 0, false
}
