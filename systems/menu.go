package systems

import (
	"fmt"

	cfg "github.com/automoto/starpuff/config"
	"github.com/automoto/starpuff/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateMenu creates the keyboard and gamepad handler for the title screen
func NewUpdateMenu(onPlay, onQuit func()) ecs.System {
	return func(e *ecs.ECS) {
		input := getOrCreateInput(e)

		if input.JustPressed(cfg.ActionMenuSelect) || input.JustPressed(cfg.ActionJump) {
			onPlay()
			return
		}
		if input.JustPressed(cfg.ActionMenuBack) && onQuit != nil {
			onQuit()
		}
	}
}

// DrawMenu renders the title screen backdrop and the key hint
func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Colors.Background)
	drawHint(screen, fmt.Sprintf("%s: Play   %s: Quit",
		cfg.Input.KeyLabel(cfg.ActionMenuSelect), cfg.Input.KeyLabel(cfg.ActionMenuBack)))
}

func drawHint(screen *ebiten.Image, hint string) {
	if !fonts.Loaded(fonts.Small) {
		return
	}
	width := screen.Bounds().Dx()
	height := screen.Bounds().Dy()
	hintWidth := len(hint) * 7
	hintX := (width - hintWidth) / 2
	text.Draw(screen, hint, fonts.Small.Get(), hintX, height-12, cfg.Colors.HUDText)
}
