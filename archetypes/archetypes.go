package archetypes

import (
	"github.com/automoto/starpuff/components"
	cfg "github.com/automoto/starpuff/config"
	"github.com/automoto/starpuff/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Platform = newArchetype(
		tags.Platform,
		components.Object,
	)
	Exit = newArchetype(
		tags.Exit,
		components.Object,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Health,
		components.Animation,
		components.Physics,
		components.Opacity,
		components.Blink,
		components.Timers,
	)
	InhaleZone = newArchetype(
		tags.InhaleZone,
		components.InhaleZone,
		components.Object,
	)
	InhaleEffect = newArchetype(
		tags.InhaleEffect,
		components.InhaleEffect,
		components.Animation,
		components.Opacity,
	)
	Flame = newArchetype(
		tags.Enemy,
		components.Flame,
		components.Object,
		components.Animation,
		components.Physics,
		components.State,
	)
	Patroller = newArchetype(
		tags.Enemy,
		components.Patroller,
		components.Object,
		components.Animation,
		components.Physics,
		components.State,
	)
	Flyer = newArchetype(
		tags.Enemy,
		components.Flyer,
		components.Object,
		components.Animation,
		components.Physics,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Projectile,
		components.Object,
		components.Animation,
		components.Physics,
	)
	FlyerSpawner = newArchetype(
		tags.FlyerSpawner,
		components.FlyerSpawner,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
		components.Contacts,
		components.EventLog,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Input = newArchetype(
		components.Input,
	)
	HUD = newArchetype(
		components.HUD,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
