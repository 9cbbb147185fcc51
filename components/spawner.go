package components

import "github.com/yohamta/donburi"

// FlyerSpawnerData emits a flyer at X,Y whenever Elapsed is zero, then every Interval ticks
type FlyerSpawnerData struct {
	X, Y     float64
	Interval int
	Elapsed  int
}

var FlyerSpawner = donburi.NewComponentType[FlyerSpawnerData]()
