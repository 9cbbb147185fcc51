package components

import "github.com/yohamta/donburi"

// InhaleZoneData links the capture region to the player that owns it
type InhaleZoneData struct {
	Owner donburi.Entity
}

// InhaleEffectData is the visual swirl shown while inhaling.
// It is positioned from the owner each tick but is not destroyed with it.
type InhaleEffectData struct {
	Owner donburi.Entity
	X, Y  float64
}

var InhaleZone = donburi.NewComponentType[InhaleZoneData]()
var InhaleEffect = donburi.NewComponentType[InhaleEffectData]()
