package components

import (
	"math/rand/v2"

	"github.com/automoto/starpuff/config"
	"github.com/yohamta/donburi"
)

// Inhalable is implemented by every enemy variant that the player can capture
type Inhalable interface {
	IsInhalable() bool
	SetInhalable(bool)
}

// InhalableFlag is embedded by enemy variants to satisfy Inhalable
type InhalableFlag struct {
	inhalable bool
}

func (f *InhalableFlag) IsInhalable() bool {
	return f.inhalable
}

func (f *InhalableFlag) SetInhalable(v bool) {
	f.inhalable = v
}

// FlameData hops in place on a fixed cadence
type FlameData struct {
	InhalableFlag
}

// PatrollerData walks left and right for random durations
type PatrollerData struct {
	InhalableFlag
	Rand *rand.Rand
}

// FlyerData moves left at a constant speed
type FlyerData struct {
	InhalableFlag
	Speed float64
}

var (
	Flame     = donburi.NewComponentType[FlameData]()
	Patroller = donburi.NewComponentType[PatrollerData]()
	Flyer     = donburi.NewComponentType[FlyerData]()
)

// InhalableOf returns the capture capability of an enemy entry
func InhalableOf(e *donburi.Entry) (Inhalable, bool) {
	switch {
	case e == nil || !e.Valid():
		return nil, false
	case e.HasComponent(Flame):
		return Flame.Get(e), true
	case e.HasComponent(Patroller):
		return Patroller.Get(e), true
	case e.HasComponent(Flyer):
		return Flyer.Get(e), true
	}
	return nil, false
}

// RandomTicks draws a duration uniformly from [lo, hi) seconds and truncates
// it to ticks, so the result always stays inside [lo*TPS, hi*TPS).
func RandomTicks(r *rand.Rand, lo, hi float64) int {
	s := lo + r.Float64()*(hi-lo)
	return int(s * float64(config.C.TPS))
}

// PatrolDuration draws the length of the next patrol state in ticks
func PatrolDuration(r *rand.Rand, state config.StateID) int {
	if state == config.PatrolIdle {
		return RandomTicks(r, config.Patroller.IdleMin, config.Patroller.IdleMax)
	}
	return RandomTicks(r, config.Patroller.WalkMin, config.Patroller.WalkMax)
}
