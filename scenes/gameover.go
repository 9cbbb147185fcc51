package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/starpuff/config"
	"github.com/automoto/starpuff/systems"
	"github.com/automoto/starpuff/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GameOverScene displays the game over screen
type GameOverScene struct {
	ecs          *ecs.ECS
	gameOverUI   *ui.GameOverUI
	sceneChanger SceneChanger
	deps         *Deps
	level        int
	once         sync.Once
	left         bool
}

// NewGameOverScene creates a game over screen for a run that ended on level
func NewGameOverScene(sc SceneChanger, deps *Deps, level int) *GameOverScene {
	return &GameOverScene{sceneChanger: sc, deps: deps, level: level}
}

// Level is the level the fatal death happened on
func (gs *GameOverScene) Level() int {
	return gs.level
}

func (gs *GameOverScene) Update() {
	gs.once.Do(gs.configure)
	gs.ecs.Update()
	if !gs.left {
		gs.gameOverUI.Update()
	}
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
	gs.gameOverUI.UI.Draw(screen)
}

func (gs *GameOverScene) configure() {
	gs.ecs = ecs.NewECS(donburi.NewWorld())
	gs.gameOverUI = ui.NewGameOverUI(gs.level, gs.toMenu)

	gs.ecs.AddSystem(systems.UpdateInput)
	gs.ecs.AddSystem(systems.NewUpdateGameOver(gs.toMenu))

	gs.ecs.AddRenderer(cfg.Default, systems.DrawGameOver)
}

func (gs *GameOverScene) toMenu() {
	if gs.left {
		return
	}
	gs.left = true
	gs.sceneChanger.ChangeScene(NewMenuScene(gs.sceneChanger, gs.deps))
}
