package systems

import (
	"image/color"

	"github.com/automoto/starpuff/components"
	cfg "github.com/automoto/starpuff/config"
	"github.com/automoto/starpuff/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawLevel clears to the background color and draws platforms and exits
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Colors.Background)

	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)

	// Safety check for zero zoom
	zoom := camera.Zoom
	if zoom == 0 {
		zoom = 1.0
	}

	drawSolid := func(e *donburi.Entry, clr color.Color) {
		o := components.Object.Get(e)
		x, y := WorldToScreen(camera, o.X, o.Y)
		vector.FillRect(screen, float32(x), float32(y), float32(o.W*zoom), float32(o.H*zoom), clr, false)
	}

	tags.Platform.Each(ecs.World, func(e *donburi.Entry) {
		drawSolid(e, cfg.Colors.Platform)
	})
	tags.Exit.Each(ecs.World, func(e *donburi.Entry) {
		drawSolid(e, cfg.Colors.Exit)
	})
}
