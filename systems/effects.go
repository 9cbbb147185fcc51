package systems

import (
	"github.com/automoto/starpuff/components"
	cfg "github.com/automoto/starpuff/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects advances blink tweens and sprite animations
func UpdateEffects(ecs *ecs.ECS) {
	updateBlinks(ecs)
	updateAnimations(ecs)
}

// startBlink fades the entry out and back in over two linear steps
func startBlink(e *donburi.Entry) {
	if !e.HasComponent(components.Blink) {
		return
	}
	step := float32(cfg.Player.BlinkStep)
	seq := gween.NewSequence()
	seq.Add(
		gween.New(1, 0, step, ease.Linear),
		gween.New(0, 1, step, ease.Linear),
	)
	components.Blink.Get(e).Sequence = seq
	if e.HasComponent(components.Opacity) {
		components.Opacity.Get(e).Value = 1
	}
}

func updateBlinks(ecs *ecs.ECS) {
	dt := float32(cfg.Dt())
	components.Blink.Each(ecs.World, func(e *donburi.Entry) {
		blink := components.Blink.Get(e)
		if !blink.Active() {
			return
		}
		value, _, done := blink.Sequence.Update(dt)
		if done {
			value = 1
			blink.Sequence = nil
		}
		if e.HasComponent(components.Opacity) {
			components.Opacity.Get(e).Value = float64(value)
		}
	})
}

func updateAnimations(ecs *ecs.ECS) {
	components.Animation.Each(ecs.World, func(e *donburi.Entry) {
		anim := components.Animation.Get(e)
		if anim.CurrentAnimation != nil {
			anim.CurrentAnimation.Update()
		}
	})
}
