package config

// Clip names registered against the sprite sheet
const (
	ClipPlayerIdle      = "kirbIdle"
	ClipPlayerInhaling  = "kirbInhaling"
	ClipPlayerFull      = "kirbFull"
	ClipInhaleEffect    = "kirbInhaleEffect"
	ClipShootingStar    = "shootingStar"
	ClipFlame           = "flame"
	ClipPatrollerIdle   = "guyIdle"
	ClipPatrollerWalk   = "guyWalk"
	ClipFlyer           = "bird"
	SpriteSheetColumns  = 9
	SpriteSheetRows     = 10
	SpriteSheetFileName = "kirby-like.png"
)

// AnimationDef is either a single frame (First == Last) or a range
// played at Speed frames per second.
type AnimationDef struct {
	First int
	Last  int
	Speed float32
	Loop  bool
}

// Animations maps a clip name to its frames on the shared sheet
var Animations = map[string]AnimationDef{
	ClipPlayerIdle:     {First: 0, Last: 0},
	ClipPlayerInhaling: {First: 1, Last: 1},
	ClipPlayerFull:     {First: 2, Last: 2},
	ClipInhaleEffect:   {First: 3, Last: 8, Speed: 15, Loop: true},
	ClipShootingStar:   {First: 9, Last: 9},
	ClipFlame:          {First: 36, Last: 37, Speed: 4, Loop: true},
	ClipPatrollerIdle:  {First: 18, Last: 18},
	ClipPatrollerWalk:  {First: 18, Last: 19, Speed: 4, Loop: true},
	ClipFlyer:          {First: 27, Last: 28, Speed: 4, Loop: true},
}

// TicksPerFrame converts a clip speed in frames per second into
// the number of ticks each frame stays on screen.
func (d AnimationDef) TicksPerFrame() float32 {
	if d.Speed <= 0 {
		return 0
	}
	return float32(C.TPS) / d.Speed
}
