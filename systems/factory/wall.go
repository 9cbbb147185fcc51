package factory

import (
	"github.com/automoto/starpuff/archetypes"
	"github.com/automoto/starpuff/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlatform adds static terrain that actors stand on and stars break against
func CreatePlatform(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	platform := archetypes.Platform.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvPlatform)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	addToSpace(ecs, platform, obj)

	return platform
}

// CreateExit adds the region that ends the level when the player touches it
func CreateExit(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	exit := archetypes.Exit.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvExit)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	addToSpace(ecs, exit, obj)

	return exit
}
