package components

import (
	"github.com/automoto/starpuff/assets/animations"
	"github.com/automoto/starpuff/config"
	"github.com/yohamta/donburi"
)

type AnimationData struct {
	Clip             string
	CurrentAnimation *animations.Animation
	FlipX            bool
}

// Play switches to a named clip, restarting it only when the clip changes
func (a *AnimationData) Play(clip string) {
	if a.Clip == clip && a.CurrentAnimation != nil {
		return
	}
	def, ok := config.Animations[clip]
	if !ok {
		a.Clip = clip
		a.CurrentAnimation = nil
		return
	}
	a.Clip = clip
	a.CurrentAnimation = animations.NewAnimation(def.First, def.Last, 1, def.TicksPerFrame())
	a.CurrentAnimation.FreezeOnComplete = !def.Loop
}

// Frame returns the sheet index currently displayed
func (a *AnimationData) Frame() int {
	if a.CurrentAnimation == nil {
		return -1
	}
	return a.CurrentAnimation.Frame()
}

var Animation = donburi.NewComponentType[AnimationData]()
