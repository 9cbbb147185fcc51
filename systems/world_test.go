package systems

import (
	"github.com/automoto/starpuff/assets"
	"github.com/automoto/starpuff/components"
	"github.com/automoto/starpuff/systems/factory"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// newTestWorld builds a headless level with a collision space and the given
// static geometry, using level-1's tuning.
func newTestWorld(colliders ...assets.Collider) *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())
	level := &assets.Level{
		Name:      "level-1",
		Width:     2048,
		Height:    1536,
		Colliders: colliders,
		Spawns:    map[string][]assets.Point{},
	}
	factory.CreateSpace(e, level.Width, level.Height, 32, 32)
	factory.CreateLevel(e, level, 1)
	return e
}

func testSpace(e *ecs.ECS) *resolv.Space {
	entry, _ := components.Space.First(e.World)
	return components.Space.Get(entry)
}

func objectOf(entry *donburi.Entry) *resolv.Object {
	return components.Object.Get(entry).Object
}

// moveTo places an entry's collision box at x,y
func moveTo(entry *donburi.Entry, x, y float64) {
	obj := objectOf(entry)
	obj.X = x
	obj.Y = y
	obj.Update()
}

func countDeaths(e *ecs.ECS) *[]DeathCause {
	var causes []DeathCause
	PlayerDied.Subscribe(e.World, func(w donburi.World, ev PlayerDiedEvent) {
		causes = append(causes, ev.Cause)
	})
	return &causes
}
