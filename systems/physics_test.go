package systems

import (
	"math"
	"testing"

	"github.com/automoto/starpuff/assets"
	"github.com/automoto/starpuff/components"
	cfg "github.com/automoto/starpuff/config"
	"github.com/automoto/starpuff/systems/factory"
)

func TestBodiesLandOnPlatforms(t *testing.T) {
	floor := assets.Collider{X: 0, Y: 600, Width: 2048, Height: 64}
	e := newTestWorld(floor)
	flame := factory.CreateFlame(e, 400, 300)
	obj := objectOf(flame)
	physics := components.Physics.Get(flame)

	for i := 0; i < cfg.C.TPS*2 && !physics.Grounded(); i++ {
		UpdatePhysics(e)
	}

	if !physics.Grounded() {
		t.Fatal("flame never landed")
	}
	if bottom := obj.Y + obj.H; math.Abs(bottom-floor.Y) > 1e-6 {
		t.Errorf("flame bottom at %v, want %v", bottom, floor.Y)
	}
	if physics.SpeedY != 0 {
		t.Errorf("vertical speed = %v after landing", physics.SpeedY)
	}
}

func TestFallSpeedIsCapped(t *testing.T) {
	e := newTestWorld()
	flame := factory.CreateFlame(e, 400, 0)
	physics := components.Physics.Get(flame)

	for i := 0; i < cfg.C.TPS*3; i++ {
		UpdatePhysics(e)
		if physics.SpeedY > cfg.Physics.MaxFallSpeed {
			t.Fatalf("fall speed %v above cap", physics.SpeedY)
		}
	}
}

func TestWallsStopWalking(t *testing.T) {
	floor := assets.Collider{X: 0, Y: 400, Width: 2048, Height: 64}
	wall := assets.Collider{X: 600, Y: 0, Width: 32, Height: 400}
	e := newTestWorld(floor, wall)

	player := factory.CreatePlayer(e, 400, 300)
	obj := objectOf(player)

	for i := 0; i < cfg.C.TPS; i++ {
		HandleMoveInput(player, components.DirectionRight)
		UpdatePhysics(e)
	}

	if right := obj.X + obj.W; right > wall.X+1e-6 {
		t.Fatalf("player right edge %v inside wall at %v", right, wall.X)
	}
	if right := obj.X + obj.W; wall.X-right > 1e-6 {
		t.Fatalf("player stopped %v short of the wall", wall.X-right)
	}
}

func TestMoveIntentIsClearedEachTick(t *testing.T) {
	e := newTestWorld()
	player := factory.CreatePlayer(e, 400, 300)

	HandleMoveInput(player, components.DirectionRight)
	UpdatePhysics(e)

	if mx := components.Physics.Get(player).MoveX; mx != 0 {
		t.Fatalf("move intent = %v after integration", mx)
	}
}
