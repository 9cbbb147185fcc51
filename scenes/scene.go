package scenes

import (
	"github.com/automoto/starpuff/assets"
	"github.com/automoto/starpuff/config"
	"github.com/automoto/starpuff/session"
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene is anything the game loop can update and draw
type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene Scene)
	Quit()
}

// Deps are shared by every scene for the lifetime of the process
type Deps struct {
	Session *session.Session
	Levels  *assets.LevelLoader

	// Tuning is nil unless level tuning hot reload is enabled
	Tuning *config.TuningWatcher
}
