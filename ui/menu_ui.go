package ui

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
)

// MenuUI is the title screen with a single Play button
type MenuUI struct {
	UI *ebitenui.UI

	OnPlay func()

	faces faces
}

func NewMenuUI(onPlay func()) *MenuUI {
	ui := &MenuUI{
		OnPlay: onPlay,
		faces:  loadFaces(),
	}
	ui.buildUI()
	return ui
}

func (ui *MenuUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	content := centeredColumn()
	content.AddChild(newLabel("STARPUFF", &ui.faces.title, color.RGBA{70, 30, 45, 255}))
	content.AddChild(newButton("Play", &ui.faces.normal, func() {
		if ui.OnPlay != nil {
			ui.OnPlay()
		}
	}))
	rootContainer.AddChild(content)

	ui.UI = &ebitenui.UI{Container: rootContainer}
}

func (ui *MenuUI) Update() {
	ui.UI.Update()
}
