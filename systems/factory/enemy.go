package factory

import (
	"math/rand/v2"

	"github.com/automoto/starpuff/archetypes"
	"github.com/automoto/starpuff/components"
	cfg "github.com/automoto/starpuff/config"
	"github.com/automoto/starpuff/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newEnemyObject(x, y float64, hb cfg.Hitbox) *resolv.Object {
	bx, by, bw, bh := hb.Place(x, y)
	obj := resolv.NewObject(bx, by, bw, bh, tags.ResolvEnemy)
	obj.SetShape(resolv.NewRectangle(0, 0, bw, bh))
	return obj
}

// CreateFlame spawns a hopping enemy in its idle state
func CreateFlame(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	flame := archetypes.Flame.Spawn(ecs)
	addToSpace(ecs, flame, newEnemyObject(x, y, cfg.Flame.Hitbox))

	components.Physics.SetValue(flame, components.PhysicsData{
		Gravity:      cfg.Physics.Gravity,
		MaxFallSpeed: cfg.Physics.MaxFallSpeed,
	})
	components.State.SetValue(flame, components.StateData{
		CurrentState:  cfg.FlameIdle,
		PreviousState: cfg.StateNone,
		Duration:      cfg.Seconds(cfg.Flame.IdleDelay),
	})
	components.Animation.Get(flame).Play(cfg.ClipFlame)

	return flame
}

// CreatePatroller spawns a walking enemy. r drives its random state durations.
func CreatePatroller(ecs *ecs.ECS, x, y float64, r *rand.Rand) *donburi.Entry {
	guy := archetypes.Patroller.Spawn(ecs)
	addToSpace(ecs, guy, newEnemyObject(x, y, cfg.Patroller.Hitbox))

	components.Patroller.SetValue(guy, components.PatrollerData{Rand: r})
	components.Physics.SetValue(guy, components.PhysicsData{
		Gravity:      cfg.Physics.Gravity,
		MaxFallSpeed: cfg.Physics.MaxFallSpeed,
	})
	components.State.SetValue(guy, components.StateData{
		CurrentState:  cfg.PatrolIdle,
		PreviousState: cfg.StateNone,
		Duration:      components.PatrolDuration(r, cfg.PatrolIdle),
	})
	components.Animation.Get(guy).Play(cfg.ClipPatrollerIdle)

	return guy
}

// CreateFlyer spawns an enemy that flies left at a constant speed and ignores gravity
func CreateFlyer(ecs *ecs.ECS, x, y, speed float64) *donburi.Entry {
	bird := archetypes.Flyer.Spawn(ecs)
	addToSpace(ecs, bird, newEnemyObject(x, y, cfg.Flyer.Hitbox))

	components.Flyer.SetValue(bird, components.FlyerData{Speed: speed})
	components.Physics.SetValue(bird, components.PhysicsData{
		SpeedX: -speed,
		Static: true,
	})
	components.Animation.Get(bird).Play(cfg.ClipFlyer)

	return bird
}

// CreateFlyerSpawner emits a flyer from x,y every spawn interval
func CreateFlyerSpawner(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	spawner := archetypes.FlyerSpawner.Spawn(ecs)
	components.FlyerSpawner.SetValue(spawner, components.FlyerSpawnerData{
		X:        x,
		Y:        y,
		Interval: cfg.Seconds(cfg.Flyer.SpawnInterval),
	})
	return spawner
}
