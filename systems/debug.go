package systems

import (
	"image/color"

	"github.com/automoto/starpuff/components"
	cfg "github.com/automoto/starpuff/config"
	"github.com/automoto/starpuff/fonts"
	"github.com/automoto/starpuff/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var debugColors = map[tags.Category]color.RGBA{
	tags.CategoryPlayer:     {0, 0, 255, 255},
	tags.CategoryEnemy:      {255, 0, 0, 255},
	tags.CategoryPlatform:   {100, 100, 100, 255},
	tags.CategoryExit:       {255, 200, 0, 255},
	tags.CategoryProjectile: {0, 255, 0, 255},
	tags.CategoryInhaleZone: {0, 255, 255, 255},
}

// UpdateDebug toggles the overlay with the debug key
func UpdateDebug(ecs *ecs.ECS) {
	input := InputOf(ecs)
	if input != nil && input.JustPressed(cfg.ActionDebug) {
		cfg.Debug.Hitboxes = !cfg.Debug.Hitboxes
	}
}

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Hitboxes {
		return
	}

	// Get camera for world-space rendering.
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	zoom := camera.Zoom
	if zoom == 0 {
		zoom = 1.0
	}

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			c, ok := debugColors[tags.CategoryOf(obj)]
			if !ok {
				c = cfg.Colors.Hitbox
			}
			x, y := WorldToScreen(camera, obj.X, obj.Y)
			vector.StrokeRect(screen, float32(x), float32(y), float32(obj.W*zoom), float32(obj.H*zoom), 1, c, false)
		}
	}

	logEntry, ok := components.EventLog.First(ecs.World)
	if !ok || !fonts.Loaded(fonts.Small) {
		return
	}
	lines := components.EventLog.Get(logEntry).Lines
	face := fonts.Small.Get()
	y := screen.Bounds().Dy() - 10 - 14*(len(lines)-1)
	for _, line := range lines {
		text.Draw(screen, line, face, 10, y, cfg.Colors.HUDText)
		y += 14
	}
}
