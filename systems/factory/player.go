package factory

import (
	"github.com/automoto/starpuff/archetypes"
	"github.com/automoto/starpuff/components"
	cfg "github.com/automoto/starpuff/config"
	"github.com/automoto/starpuff/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player with its sprite origin at x,y, together with
// the inhale zone it carries.
func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	bx, by, bw, bh := cfg.Player.Hitbox.Place(x, y)
	obj := resolv.NewObject(bx, by, bw, bh, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, bw, bh))
	addToSpace(ecs, player, obj)

	zone := createInhaleZone(ecs, player, x, y)

	components.Player.SetValue(player, components.PlayerData{
		Direction:  components.DirectionRight,
		JumpsLeft:  cfg.Player.MaxJumps,
		InhaleZone: zone.Entity(),
	})
	components.Physics.SetValue(player, components.PhysicsData{
		Gravity:      cfg.Physics.Gravity,
		MaxFallSpeed: cfg.Physics.MaxFallSpeed,
	})
	components.Health.SetValue(player, components.HealthData{
		Current: cfg.Player.Health,
		Max:     cfg.Player.Health,
	})
	components.Opacity.SetValue(player, components.OpacityData{Value: 1})

	anim := components.Animation.Get(player)
	anim.Play(cfg.ClipPlayerIdle)

	return player
}

func createInhaleZone(ecs *ecs.ECS, player *donburi.Entry, x, y float64) *donburi.Entry {
	zone := archetypes.InhaleZone.Spawn(ecs)

	w := cfg.World(cfg.Inhale.Width)
	h := cfg.World(cfg.Inhale.Height)
	obj := resolv.NewObject(
		x+cfg.World(cfg.Inhale.OffsetRightX),
		y+cfg.World(cfg.Inhale.OffsetY),
		w, h,
		tags.ResolvInhaleZone,
	)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	addToSpace(ecs, zone, obj)

	components.InhaleZone.SetValue(zone, components.InhaleZoneData{Owner: player.Entity()})
	return zone
}

// CreateInhaleEffect spawns the swirl drawn in front of the player while inhaling.
// It lives for the whole level and is only hidden, never destroyed, with the player.
func CreateInhaleEffect(ecs *ecs.ECS, player *donburi.Entry) *donburi.Entry {
	effect := archetypes.InhaleEffect.Spawn(ecs)

	components.InhaleEffect.SetValue(effect, components.InhaleEffectData{Owner: player.Entity()})
	components.Opacity.SetValue(effect, components.OpacityData{Value: 0})
	components.Animation.Get(effect).Play(cfg.ClipInhaleEffect)

	components.Player.Get(player).InhaleEffect = effect.Entity()
	return effect
}
