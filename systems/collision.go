package systems

import (
	"github.com/automoto/starpuff/components"
	"github.com/automoto/starpuff/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// collisionRule pairs the category that runs the check with the category it checks against
type collisionRule struct {
	A, B tags.Category
}

// handler reacts to one collision event. Returning false re-arms the contact
// so it begins again on the next tick it is still overlapping.
type handler func(ecs *ecs.ECS, ev CollisionEvent, a, b *donburi.Entry) bool

// Rules are evaluated in this order each tick. The inhale zone goes first so
// an enemy is already inhalable when the player touches it in the same tick.
var collisionRules = []collisionRule{
	{tags.CategoryInhaleZone, tags.CategoryEnemy},
	{tags.CategoryPlayer, tags.CategoryEnemy},
	{tags.CategoryPlayer, tags.CategoryExit},
	{tags.CategoryProjectile, tags.CategoryEnemy},
	{tags.CategoryProjectile, tags.CategoryPlatform},
}

var collisionHandlers = map[collisionRule]handler{
	{tags.CategoryInhaleZone, tags.CategoryEnemy}:    onZoneEnemy,
	{tags.CategoryPlayer, tags.CategoryEnemy}:        onPlayerEnemy,
	{tags.CategoryPlayer, tags.CategoryExit}:         onPlayerExit,
	{tags.CategoryProjectile, tags.CategoryEnemy}:    onProjectileEnemy,
	{tags.CategoryProjectile, tags.CategoryPlatform}: onProjectilePlatform,
}

// UpdateCollisions finds overlaps for every rule, turns changes since the last
// tick into begin and end events, and dispatches them.
func UpdateCollisions(ecs *ecs.ECS) {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	levelEntry, ok := components.Contacts.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)
	contacts := components.Contacts.Get(levelEntry)
	if contacts.Active == nil {
		contacts.Active = make(map[components.ContactKey]struct{})
	}

	current, order := findContacts(space)

	var pending []CollisionEvent
	for _, key := range contacts.Order {
		if _, still := current[key]; !still {
			pending = append(pending, eventFor(key, PhaseEnd))
		}
	}
	for _, key := range order {
		if _, seen := contacts.Active[key]; !seen {
			pending = append(pending, eventFor(key, PhaseBegin))
		}
	}

	for _, ev := range pending {
		if !dispatchCollision(ecs, ev) {
			key := components.ContactKey{Rule: ruleIndex(ev.CatA, ev.CatB), A: ev.A, B: ev.B}
			delete(current, key)
		}
	}

	contacts.Active = current
	contacts.Order = contacts.Order[:0]
	for _, key := range order {
		if _, ok := current[key]; ok {
			contacts.Order = append(contacts.Order, key)
		}
	}

	Collision.ProcessEvents(ecs.World)
}

// findContacts lists every overlapping pair under every rule in a stable order
func findContacts(space *resolv.Space) (map[components.ContactKey]struct{}, []components.ContactKey) {
	current := make(map[components.ContactKey]struct{})
	var order []components.ContactKey

	objects := space.Objects()
	for i, rule := range collisionRules {
		aTag := rule.A.ResolvTag()
		bTag := rule.B.ResolvTag()

		for _, a := range objects {
			if !a.HasTags(aTag) {
				continue
			}
			aEntry, ok := a.Data.(*donburi.Entry)
			if !ok {
				continue
			}
			check := a.Check(0, 0, bTag)
			if check == nil {
				continue
			}
			for _, b := range check.ObjectsByTags(bTag) {
				if !components.Overlaps(a, b) {
					continue
				}
				bEntry, ok := b.Data.(*donburi.Entry)
				if !ok {
					continue
				}
				key := components.ContactKey{Rule: i, A: aEntry.Entity(), B: bEntry.Entity()}
				if _, dup := current[key]; dup {
					continue
				}
				current[key] = struct{}{}
				order = append(order, key)
			}
		}
	}

	return current, order
}

func eventFor(key components.ContactKey, phase Phase) CollisionEvent {
	rule := collisionRules[key.Rule]
	return CollisionEvent{Phase: phase, A: key.A, B: key.B, CatA: rule.A, CatB: rule.B}
}

func ruleIndex(a, b tags.Category) int {
	for i, rule := range collisionRules {
		if rule.A == a && rule.B == b {
			return i
		}
	}
	return -1
}

// dispatchCollision runs the handler for one event. Events whose entities no
// longer exist are dropped. It returns false when the contact should re-arm.
func dispatchCollision(ecs *ecs.ECS, ev CollisionEvent) bool {
	a := entryOf(ecs.World, ev.A)
	b := entryOf(ecs.World, ev.B)
	if a == nil && b != nil && ev.Phase == PhaseEnd && ev.CatA == tags.CategoryInhaleZone {
		// The zone went away with its player; the enemy is no longer in reach
		if inhalable, ok := components.InhalableOf(b); ok {
			inhalable.SetInhalable(false)
		}
		return true
	}
	if a == nil || b == nil {
		return true
	}

	Collision.Publish(ecs.World, ev)

	h, ok := collisionHandlers[collisionRule{ev.CatA, ev.CatB}]
	if !ok {
		return true
	}
	return h(ecs, ev, a, b)
}

func onZoneEnemy(_ *ecs.ECS, ev CollisionEvent, _, enemy *donburi.Entry) bool {
	if inhalable, ok := components.InhalableOf(enemy); ok {
		inhalable.SetInhalable(ev.Phase == PhaseBegin)
	}
	return true
}

func onPlayerEnemy(ecs *ecs.ECS, ev CollisionEvent, player, enemy *donburi.Entry) bool {
	if ev.Phase != PhaseBegin {
		return true
	}
	return OnEnemyCollision(ecs, player, enemy) != OutcomeIgnored
}

func onPlayerExit(ecs *ecs.ECS, ev CollisionEvent, player, _ *donburi.Entry) bool {
	if ev.Phase == PhaseBegin {
		OnExitCollision(ecs, player)
	}
	return true
}

func onProjectileEnemy(ecs *ecs.ECS, ev CollisionEvent, star, enemy *donburi.Entry) bool {
	if ev.Phase == PhaseBegin {
		Destroy(ecs.World, enemy)
		Destroy(ecs.World, star)
	}
	return true
}

func onProjectilePlatform(ecs *ecs.ECS, ev CollisionEvent, star, _ *donburi.Entry) bool {
	if ev.Phase == PhaseBegin {
		Destroy(ecs.World, star)
	}
	return true
}
