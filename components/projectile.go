package components

import "github.com/yohamta/donburi"

type ProjectileData struct {
	Direction Direction
}

var Projectile = donburi.NewComponentType[ProjectileData]()
