package components

import (
	"github.com/automoto/starpuff/assets"
	"github.com/automoto/starpuff/config"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	CurrentLevel *assets.Level
	Number       int
	Tuning       config.LevelTuning
}

var Level = donburi.NewComponentType[LevelData]()
