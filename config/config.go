package config

import (
	"image/color"
	"math"
)

// Config contains engine-wide settings
type Config struct {
	Width  int
	Height int
	TPS    int

	// Scale converts sprite-local and tile-space units into world units
	Scale float64
}

// Hitbox is a collision rectangle expressed in sprite-local pixels.
// Multiply by C.Scale to get world units.
type Hitbox struct {
	OffsetX, OffsetY float64
	Width, Height    float64
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	Speed     float64
	JumpForce float64
	MaxJumps  int

	Health int

	FrameSize int
	Hitbox    Hitbox

	// Ability
	IdleRestoreDelay   float64 // seconds after a shot before idle pose returns
	BlinkStep          float64 // seconds per half of the damage blink
	ProjectileOffsetX  float64
	ProjectileOffsetY  float64
	InhaleEffectOffset float64 // world units from the player's origin
}

// InhaleConfig describes the capture region carried by the player
type InhaleConfig struct {
	OffsetLeftX  float64
	OffsetRightX float64
	OffsetY      float64
	Width        float64
	Height       float64
	PullSpeed    float64
}

// FlameConfig configures the hopping enemy
type FlameConfig struct {
	Hitbox    Hitbox
	IdleDelay float64
	JumpForce float64
}

// PatrollerConfig configures the walking enemy
type PatrollerConfig struct {
	Hitbox  Hitbox
	Speed   float64
	IdleMin float64
	IdleMax float64
	WalkMin float64
	WalkMax float64
}

// FlyerConfig configures the flying enemy and its spawner
type FlyerConfig struct {
	Hitbox          Hitbox
	Speeds          []float64
	SpawnInterval   float64
	DespawnDistance float64
}

type ProjectileConfig struct {
	Hitbox Hitbox
	Speed  float64
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Gravity      float64
	MaxFallSpeed float64
}

type CameraConfig struct {
	Zoom float64
}

// SessionConfig holds meta-game defaults
type SessionConfig struct {
	StartingLives int
	StartingLevel int
	Levels        []string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu     bool // Skip menu and go directly to game
	Hitboxes     bool
	StartLevel   int
	SpriteSheet  string
	WatchTuning  bool
	EventLogSize int
}

// ColorConfig holds fallback colors used when no sprite sheet is available
type ColorConfig struct {
	Background color.RGBA
	GameOver   color.RGBA
	Platform   color.RGBA
	Exit       color.RGBA
	Player     color.RGBA
	Flame      color.RGBA
	Patroller  color.RGBA
	Flyer      color.RGBA
	Projectile color.RGBA
	Inhale     color.RGBA
	Hitbox     color.RGBA
	HUDText    color.RGBA
}

var C *Config
var Player PlayerConfig
var Inhale InhaleConfig
var Flame FlameConfig
var Patroller PatrollerConfig
var Flyer FlyerConfig
var Projectile ProjectileConfig
var Physics PhysicsConfig
var Camera CameraConfig
var Session SessionConfig
var Debug DebugConfig
var Colors ColorConfig

func init() {
	C = &Config{
		Width:  1024,
		Height: 576,
		TPS:    60,
		Scale:  4,
	}

	Player = PlayerConfig{
		Speed:     300,
		JumpForce: 640,
		MaxJumps:  10,
		Health:    3,
		FrameSize: 16,
		Hitbox:    Hitbox{OffsetX: 4, OffsetY: 5.9, Width: 8, Height: 10},

		IdleRestoreDelay:   0.2,
		BlinkStep:          0.05,
		ProjectileOffsetX:  80,
		ProjectileOffsetY:  5,
		InhaleEffectOffset: 60,
	}

	Inhale = InhaleConfig{
		OffsetLeftX:  -14,
		OffsetRightX: 14,
		OffsetY:      8,
		Width:        20,
		Height:       4,
		PullSpeed:    800,
	}

	Flame = FlameConfig{
		Hitbox:    Hitbox{OffsetX: 4, OffsetY: 6, Width: 8, Height: 10},
		IdleDelay: 1.5,
		JumpForce: 1000,
	}

	Patroller = PatrollerConfig{
		Hitbox:  Hitbox{OffsetX: 2, OffsetY: 3.9, Width: 12, Height: 12},
		Speed:   100,
		IdleMin: 0.5,
		IdleMax: 1.0,
		WalkMin: 0.8,
		WalkMax: 2.0,
	}

	Flyer = FlyerConfig{
		Hitbox:          Hitbox{OffsetX: 4, OffsetY: 6, Width: 8, Height: 10},
		Speeds:          []float64{100, 150, 200, 250, 300},
		SpawnInterval:   10,
		DespawnDistance: 400,
	}

	Projectile = ProjectileConfig{
		Hitbox: Hitbox{OffsetX: 5, OffsetY: 4, Width: 6, Height: 6},
		Speed:  800,
	}

	Physics = PhysicsConfig{
		Gravity:      1800,
		MaxFallSpeed: 1500,
	}

	Camera = CameraConfig{
		Zoom: 0.7,
	}

	Session = SessionConfig{
		StartingLives: 3,
		StartingLevel: 1,
		Levels:        []string{"level-1", "level-2"},
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		SkipMenu:     false,
		StartLevel:   1,
		SpriteSheet:  "assets/images/" + SpriteSheetFileName,
		EventLogSize: 8,
	}

	Colors = ColorConfig{
		Background: color.RGBA{R: 247, G: 215, B: 219, A: 255},
		GameOver:   color.RGBA{R: 40, G: 20, B: 30, A: 255},
		Platform:   color.RGBA{R: 70, G: 60, B: 50, A: 255},
		Exit:       color.RGBA{R: 250, G: 220, B: 60, A: 255},
		Player:     color.RGBA{R: 255, G: 150, B: 190, A: 255},
		Flame:      color.RGBA{R: 255, G: 110, B: 30, A: 255},
		Patroller:  color.RGBA{R: 110, G: 70, B: 200, A: 255},
		Flyer:      color.RGBA{R: 60, G: 160, B: 60, A: 255},
		Projectile: color.RGBA{R: 255, G: 255, B: 120, A: 255},
		Inhale:     color.RGBA{R: 255, G: 255, B: 255, A: 160},
		Hitbox:     color.RGBA{R: 255, G: 0, B: 0, A: 180},
		HUDText:    color.RGBA{R: 70, G: 30, B: 45, A: 255},
	}
}

// Seconds converts a duration in seconds into whole ticks
func Seconds(s float64) int {
	return int(math.Round(s * float64(C.TPS)))
}

// Dt is the fixed simulation step in seconds
func Dt() float64 {
	return 1 / float64(C.TPS)
}

// World scales a sprite-local or tile-space length into world units
func World(v float64) float64 {
	return v * C.Scale
}

// Place returns the world rectangle of a hit-box whose sprite origin is at x,y
func (h Hitbox) Place(x, y float64) (rx, ry, w, ht float64) {
	return x + World(h.OffsetX), y + World(h.OffsetY), World(h.Width), World(h.Height)
}

// Origin recovers the sprite origin from the hit-box's world position
func (h Hitbox) Origin(objX, objY float64) (float64, float64) {
	return objX - World(h.OffsetX), objY - World(h.OffsetY)
}
