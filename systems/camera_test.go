package systems

import (
	"testing"

	"github.com/automoto/starpuff/components"
	"github.com/automoto/starpuff/config"
	"github.com/automoto/starpuff/systems/factory"
	"github.com/yohamta/donburi/features/math"
)

func TestCameraTarget(t *testing.T) {
	level1 := config.LevelCamera{OffsetX: 500, FollowMaxX: 432, FixedY: 800}
	level2 := config.LevelCamera{
		OffsetX: 500, FollowMaxX: 1950, FixedY: 502,
		FollowY: true, FollowYBelow: 702, OffsetY: -200,
	}

	tests := []struct {
		name   string
		tuning config.LevelCamera
		x, y   float64
		expect math.Vec2
	}{
		{"follows x", level1, 100, 300, math.NewVec2(600, 800)},
		{"stops at follow max", level1, 1000, 300, math.NewVec2(932, 800)},
		{"fixed y above threshold", level2, 100, 600, math.NewVec2(600, 502)},
		{"follows y below threshold", level2, 100, 900, math.NewVec2(600, 700)},
		{"no follow limit", config.LevelCamera{OffsetX: 10}, 5000, 0, math.NewVec2(5010, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CameraTarget(tt.tuning, tt.x, tt.y); got != tt.expect {
				t.Errorf("CameraTarget(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.expect)
			}
		})
	}
}

func TestCameraHoldsAfterPlayerDies(t *testing.T) {
	e := newTestWorld()
	player := factory.CreatePlayer(e, 100, 300)
	camera := factory.CreateCamera(e, 0, 0)

	UpdateCamera(e)
	pos := components.Camera.Get(camera).Position
	if pos.X != 600 {
		t.Fatalf("camera x = %v, want 600", pos.X)
	}

	Destroy(e.World, player)
	UpdateCamera(e)
	if got := components.Camera.Get(camera).Position; got != pos {
		t.Fatalf("camera moved to %v without a player", got)
	}
}

func TestWorldToScreenCentersTheCamera(t *testing.T) {
	camera := &components.CameraData{Position: math.NewVec2(600, 800), Zoom: 0.5}

	sx, sy := WorldToScreen(camera, 600, 800)
	if sx != float64(config.C.Width)/2 || sy != float64(config.C.Height)/2 {
		t.Fatalf("camera center drawn at %v,%v", sx, sy)
	}

	sx, _ = WorldToScreen(camera, 700, 800)
	if sx != float64(config.C.Width)/2+50 {
		t.Fatalf("zoom not applied: %v", sx)
	}
}
