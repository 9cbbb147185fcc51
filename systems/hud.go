package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/starpuff/archetypes"
	"github.com/automoto/starpuff/components"
	cfg "github.com/automoto/starpuff/config"
	"github.com/automoto/starpuff/fonts"
	"github.com/automoto/starpuff/session"
	"github.com/automoto/starpuff/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudBarWidth  = 130
	hudBarHeight = 13
	hudMargin    = 10
	hudLineGap   = 22
)

// BindHUD keeps the cached HUD text in sync with the session.
// The returned cancel must be called when the scene is left.
func BindHUD(ecs *ecs.ECS, sess *session.Session) (cancel func()) {
	entry, ok := components.HUD.First(ecs.World)
	if !ok {
		entry = archetypes.HUD.Spawn(ecs)
	}
	hud := components.HUD.Get(entry)
	return sess.Subscribe(func(s session.Snapshot) {
		hud.LivesText = fmt.Sprintf("Lives: %d", s.Lives)
		hud.LevelText = fmt.Sprintf("Level: %d", s.Level)
	})
}

// DrawHUD renders the player's health and the session counters in the top-left corner
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	y := hudMargin

	if playerEntry, ok := tags.Player.First(ecs.World); ok {
		hp := components.Health.Get(playerEntry)

		vector.FillRect(screen,
			float32(hudMargin), float32(y),
			float32(hudBarWidth), float32(hudBarHeight),
			color.RGBA{40, 40, 40, 255}, false)

		ratio := float32(0)
		if hp.Max > 0 {
			ratio = float32(hp.Current) / float32(hp.Max)
		}
		vector.FillRect(screen,
			float32(hudMargin), float32(y),
			float32(hudBarWidth)*ratio, float32(hudBarHeight),
			color.RGBA{40, 220, 40, 255}, false)

		y += hudBarHeight
		drawHUDLine(screen, fonts.Regular, fmt.Sprintf("HP: %d", hp.Current), y+hudLineGap)
		y += hudLineGap
	}

	entry, ok := components.HUD.First(ecs.World)
	if !ok {
		return
	}
	hud := components.HUD.Get(entry)
	drawHUDLine(screen, fonts.Regular, hud.LivesText, y+hudLineGap)
	drawHUDLine(screen, fonts.Bold, hud.LevelText, y+2*hudLineGap)
}

func drawHUDLine(screen *ebiten.Image, face fonts.FontName, s string, y int) {
	if s == "" || !fonts.Loaded(face) {
		return
	}
	text.Draw(screen, s, face.Get(), hudMargin, y, cfg.Colors.HUDText)
}
