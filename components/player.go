package components

import (
	"github.com/yohamta/donburi"
)

// Direction is the horizontal facing of an actor
type Direction int

const (
	DirectionLeft  Direction = -1
	DirectionRight Direction = 1
)

func (d Direction) Sign() float64 {
	return float64(d)
}

func (d Direction) String() string {
	if d == DirectionLeft {
		return "left"
	}
	return "right"
}

// PlayerData holds the ability state of the player.
// IsInhaling and IsFull are never both true.
type PlayerData struct {
	Direction  Direction
	IsInhaling bool
	IsFull     bool
	JumpsLeft  int

	InhaleZone   donburi.Entity
	InhaleEffect donburi.Entity
}

var Player = donburi.NewComponentType[PlayerData]()
