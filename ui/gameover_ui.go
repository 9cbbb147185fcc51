package ui

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
)

// GameOverUI reports the level the run ended on and leads back to the menu
type GameOverUI struct {
	UI *ebitenui.UI

	OnMenu func()

	levelLabel *widget.Label
	faces      faces
}

func NewGameOverUI(level int, onMenu func()) *GameOverUI {
	ui := &GameOverUI{
		OnMenu: onMenu,
		faces:  loadFaces(),
	}
	ui.buildUI(level)
	return ui
}

func (ui *GameOverUI) buildUI(level int) {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	content := centeredColumn()
	content.AddChild(newLabel("GAME OVER", &ui.faces.title, color.RGBA{255, 120, 150, 255}))

	ui.levelLabel = newLabel("", &ui.faces.normal, color.RGBA{230, 230, 230, 255})
	ui.SetLevel(level)
	content.AddChild(ui.levelLabel)

	content.AddChild(newButton("Menu", &ui.faces.normal, func() {
		if ui.OnMenu != nil {
			ui.OnMenu()
		}
	}))
	rootContainer.AddChild(content)

	ui.UI = &ebitenui.UI{Container: rootContainer}
}

// SetLevel updates the reached-level line
func (ui *GameOverUI) SetLevel(level int) {
	ui.levelLabel.Label = LevelReachedText(level)
}

func (ui *GameOverUI) Update() {
	ui.UI.Update()
}

// LevelReachedText is the summary line shown under the title
func LevelReachedText(level int) string {
	return fmt.Sprintf("Reached level %d", level)
}
