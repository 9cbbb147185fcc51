package systems

import (
	cfg "github.com/automoto/starpuff/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateGameOver creates the handler that returns from the game over screen
func NewUpdateGameOver(onMenu func()) ecs.System {
	return func(e *ecs.ECS) {
		input := getOrCreateInput(e)
		if input.JustPressed(cfg.ActionMenuSelect) || input.JustPressed(cfg.ActionMenuBack) {
			onMenu()
		}
	}
}

// DrawGameOver renders the game over backdrop and the key hint
func DrawGameOver(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Colors.GameOver)
	drawHint(screen, cfg.Input.KeyLabel(cfg.ActionMenuSelect)+": Menu")
}
