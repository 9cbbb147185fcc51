package systems

import (
	"log"

	"github.com/automoto/starpuff/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Destroy removes an entity and its collision object. The player's inhale
// zone goes with it. Destroying an entry that is already gone is a no-op.
func Destroy(w donburi.World, e *donburi.Entry) {
	if e == nil || !e.Valid() {
		return
	}

	if e.HasComponent(components.Player) {
		zone := components.Player.Get(e).InhaleZone
		if w.Valid(zone) {
			Destroy(w, w.Entry(zone))
		}
	}

	if e.HasComponent(components.Object) {
		obj := components.Object.Get(e)
		if obj.Object != nil && obj.Space != nil {
			obj.Space.Remove(obj.Object)
		}
	}

	w.Remove(e.Entity())
}

// killPlayer ends the player's life. The entity is gone before this returns,
// so nothing else this tick can act on it.
func killPlayer(ecs *ecs.ECS, player *donburi.Entry, cause DeathCause) {
	if player == nil || !player.Valid() {
		return
	}
	setInhaleEffectVisible(ecs.World, components.Player.Get(player), false)

	log.Printf("Player died (%s)", cause)
	Destroy(ecs.World, player)
	PlayerDied.Publish(ecs.World, PlayerDiedEvent{Cause: cause})
}

// entryOf resolves an entity, returning nil when it no longer exists
func entryOf(w donburi.World, e donburi.Entity) *donburi.Entry {
	if !w.Valid(e) {
		return nil
	}
	return w.Entry(e)
}
