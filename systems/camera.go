package systems

import (
	"github.com/automoto/starpuff/components"
	"github.com/automoto/starpuff/config"
	"github.com/automoto/starpuff/tags"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// UpdateCamera follows the player using the level's hand-tuned offsets.
// The camera holds its last position once the player is gone.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	x, y := playerOrigin(playerEntry)

	camera.Position = CameraTarget(levelTuning(e).Camera, x, y)
}

// CameraTarget returns where the camera centers for a player origin at x,y
func CameraTarget(tuning config.LevelCamera, x, y float64) math.Vec2 {
	targetX := x
	if tuning.FollowMaxX > 0 && targetX > tuning.FollowMaxX {
		targetX = tuning.FollowMaxX
	}
	targetX += tuning.OffsetX

	targetY := tuning.FixedY
	if tuning.FollowY && y > tuning.FollowYBelow {
		targetY = y + tuning.OffsetY
	}

	return math.NewVec2(targetX, targetY)
}

// WorldToScreen converts a world position into screen pixels for the camera
func WorldToScreen(camera *components.CameraData, x, y float64) (float64, float64) {
	zoom := camera.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	sx := (x-camera.Position.X)*zoom + float64(config.C.Width)/2
	sy := (y-camera.Position.Y)*zoom + float64(config.C.Height)/2
	return sx, sy
}
