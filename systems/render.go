package systems

import (
	"image/color"

	"github.com/automoto/starpuff/assets"
	"github.com/automoto/starpuff/components"
	cfg "github.com/automoto/starpuff/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// DrawActors renders every animated entity at its sprite origin. Without a
// sprite sheet each actor is drawn as a colored box over its hit-box.
func DrawActors(ecs *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	sheet := assets.Sheet()

	components.Animation.Each(ecs.World, func(e *donburi.Entry) {
		opacity := 1.0
		if e.HasComponent(components.Opacity) {
			opacity = components.Opacity.Get(e).Value
		}
		if opacity <= 0 {
			return
		}

		x, y, ok := spriteOrigin(e)
		if !ok {
			return
		}
		anim := components.Animation.Get(e)

		if sheet != nil && anim.Frame() >= 0 {
			drawFrame(screen, camera, sheet.Frame(anim.Frame()), x, y, anim.FlipX, opacity)
			return
		}
		drawPlaceholder(screen, camera, e, x, y, opacity)
	})
}

func drawFrame(screen *ebiten.Image, camera *components.CameraData, img *ebiten.Image, x, y float64, flip bool, opacity float64) {
	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()

	// Flip around the frame's vertical center
	if flip {
		w := float64(img.Bounds().Dx())
		drawOp.GeoM.Scale(-1, 1)
		drawOp.GeoM.Translate(w, 0)
	}

	zoom := camera.Zoom
	if zoom == 0 {
		zoom = 1.0
	}
	drawOp.GeoM.Scale(cfg.C.Scale*zoom, cfg.C.Scale*zoom)

	sx, sy := WorldToScreen(camera, x, y)
	drawOp.GeoM.Translate(sx, sy)
	drawOp.ColorScale.ScaleAlpha(float32(opacity))

	screen.DrawImage(img, drawOp)
}

func drawPlaceholder(screen *ebiten.Image, camera *components.CameraData, e *donburi.Entry, x, y float64, opacity float64) {
	zoom := camera.Zoom
	if zoom == 0 {
		zoom = 1.0
	}

	var w, h float64
	if e.HasComponent(components.Object) {
		o := components.Object.Get(e)
		x, y, w, h = o.X, o.Y, o.W, o.H
	} else {
		w = cfg.World(cfg.Inhale.Width)
		h = cfg.World(float64(cfg.Player.FrameSize) / 2)
	}

	sx, sy := WorldToScreen(camera, x, y)
	vector.FillRect(screen, float32(sx), float32(sy), float32(w*zoom), float32(h*zoom), fade(placeholderColor(e), opacity), false)
}

// spriteOrigin returns the top-left corner of an entity's sprite in world units
func spriteOrigin(e *donburi.Entry) (float64, float64, bool) {
	if e.HasComponent(components.InhaleEffect) {
		fx := components.InhaleEffect.Get(e)
		return fx.X, fx.Y, true
	}
	if !e.HasComponent(components.Object) {
		return 0, 0, false
	}
	o := components.Object.Get(e)
	if o.Object == nil {
		return 0, 0, false
	}
	x, y := hitboxFor(e).Origin(o.X, o.Y)
	return x, y, true
}

func hitboxFor(e *donburi.Entry) cfg.Hitbox {
	switch {
	case e.HasComponent(components.Player):
		return cfg.Player.Hitbox
	case e.HasComponent(components.Flame):
		return cfg.Flame.Hitbox
	case e.HasComponent(components.Patroller):
		return cfg.Patroller.Hitbox
	case e.HasComponent(components.Flyer):
		return cfg.Flyer.Hitbox
	case e.HasComponent(components.Projectile):
		return cfg.Projectile.Hitbox
	}
	return cfg.Hitbox{}
}

func placeholderColor(e *donburi.Entry) color.RGBA {
	switch {
	case e.HasComponent(components.Player):
		return cfg.Colors.Player
	case e.HasComponent(components.Flame):
		return cfg.Colors.Flame
	case e.HasComponent(components.Patroller):
		return cfg.Colors.Patroller
	case e.HasComponent(components.Flyer):
		return cfg.Colors.Flyer
	case e.HasComponent(components.Projectile):
		return cfg.Colors.Projectile
	}
	return cfg.Colors.Inhale
}

// fade scales a color by opacity, keeping it premultiplied
func fade(c color.RGBA, opacity float64) color.RGBA {
	if opacity >= 1 {
		return c
	}
	return color.RGBA{
		R: uint8(float64(c.R) * opacity),
		G: uint8(float64(c.G) * opacity),
		B: uint8(float64(c.B) * opacity),
		A: uint8(float64(c.A) * opacity),
	}
}
