package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// PhysicsData holds velocities in world units per second.
// MoveX is a per-tick horizontal intent and is cleared after integration.
type PhysicsData struct {
	SpeedX       float64
	SpeedY       float64
	MoveX        float64
	Gravity      float64
	MaxFallSpeed float64
	OnGround     *resolv.Object

	// Static bodies ignore gravity and pass through terrain
	Static bool
}

var Physics = donburi.NewComponentType[PhysicsData]()

func (p *PhysicsData) Grounded() bool {
	return p.OnGround != nil
}
