package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// OpacityData is the alpha applied when drawing an entity
type OpacityData struct {
	Value float64
}

var Opacity = donburi.NewComponentType[OpacityData]()

// BlinkData drives opacity from a tween sequence. It stays attached to avoid
// archetype changes; Sequence is nil when no blink is running.
type BlinkData struct {
	Sequence *gween.Sequence
}

func (b *BlinkData) Active() bool {
	return b.Sequence != nil
}

var Blink = donburi.NewComponentType[BlinkData]()
