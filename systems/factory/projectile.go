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

// CreateProjectile spawns a shooting star with its sprite origin at x,y
// travelling horizontally in dir.
func CreateProjectile(ecs *ecs.ECS, x, y float64, dir components.Direction) *donburi.Entry {
	star := archetypes.Projectile.Spawn(ecs)

	bx, by, bw, bh := cfg.Projectile.Hitbox.Place(x, y)
	obj := resolv.NewObject(bx, by, bw, bh, tags.ResolvProjectile)
	obj.SetShape(resolv.NewRectangle(0, 0, bw, bh))
	addToSpace(ecs, star, obj)

	components.Projectile.SetValue(star, components.ProjectileData{Direction: dir})
	components.Physics.SetValue(star, components.PhysicsData{
		SpeedX: dir.Sign() * cfg.Projectile.Speed,
		Static: true,
	})

	anim := components.Animation.Get(star)
	anim.Play(cfg.ClipShootingStar)
	anim.FlipX = dir == components.DirectionLeft

	return star
}
