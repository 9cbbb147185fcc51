package components

import "github.com/yohamta/donburi"

// HUDData caches the meta-game text so it is only rebuilt when the session changes
type HUDData struct {
	LivesText string
	LevelText string
}

var HUD = donburi.NewComponentType[HUDData]()
