package scenes

import (
	"image/color"
	"log"
	"sync"

	cfg "github.com/automoto/starpuff/config"
	"github.com/automoto/starpuff/systems"
	"github.com/automoto/starpuff/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// MenuScene displays the title screen
type MenuScene struct {
	ecs          *ecs.ECS
	menuUI       *ui.MenuUI
	sceneChanger SceneChanger
	deps         *Deps
	once         sync.Once
	left         bool
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger, deps *Deps) *MenuScene {
	return &MenuScene{sceneChanger: sc, deps: deps}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
	if !ms.left {
		ms.menuUI.Update()
	}
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
	ms.menuUI.UI.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())
	ms.menuUI = ui.NewMenuUI(ms.play)

	ms.ecs.AddSystem(systems.UpdateInput)
	ms.ecs.AddSystem(systems.NewUpdateMenu(ms.play, ms.sceneChanger.Quit))

	ms.ecs.AddRenderer(cfg.Default, systems.DrawMenu)
}

// play starts a new run from the first level
func (ms *MenuScene) play() {
	if ms.left {
		return
	}
	ms.left = true
	ms.deps.Session.Reset()
	log.Printf("Starting run at level %d", ms.deps.Session.Level)
	ms.sceneChanger.ChangeScene(NewPlatformerScene(ms.sceneChanger, ms.deps))
}
