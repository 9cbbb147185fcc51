package factory

import (
	"github.com/automoto/starpuff/archetypes"
	"github.com/automoto/starpuff/components"
	"github.com/automoto/starpuff/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

func CreateCamera(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.SetValue(camera, components.CameraData{
		Position: math.NewVec2(x, y),
		Zoom:     config.Camera.Zoom,
	})
	return camera
}
