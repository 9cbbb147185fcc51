package tags

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

var (
	Player       = donburi.NewTag().SetName("Player")
	InhaleZone   = donburi.NewTag().SetName("InhaleZone")
	InhaleEffect = donburi.NewTag().SetName("InhaleEffect")
	Enemy        = donburi.NewTag().SetName("Enemy")
	Platform     = donburi.NewTag().SetName("Platform")
	Exit         = donburi.NewTag().SetName("Exit")
	Projectile   = donburi.NewTag().SetName("Projectile")
	FlyerSpawner = donburi.NewTag().SetName("FlyerSpawner")
)

// Resolv tags for physics collision
const (
	ResolvPlayer     = "player"
	ResolvEnemy      = "enemy"
	ResolvPlatform   = "platform"
	ResolvExit       = "exit"
	ResolvProjectile = "shootingStar"
	ResolvInhaleZone = "inhaleZone"
)

// Category is the collidable kind carried by every resolv object in a level
type Category int

const (
	CategoryNone Category = iota
	CategoryPlayer
	CategoryEnemy
	CategoryPlatform
	CategoryExit
	CategoryProjectile
	CategoryInhaleZone
)

var categoryTags = map[Category]string{
	CategoryPlayer:     ResolvPlayer,
	CategoryEnemy:      ResolvEnemy,
	CategoryPlatform:   ResolvPlatform,
	CategoryExit:       ResolvExit,
	CategoryProjectile: ResolvProjectile,
	CategoryInhaleZone: ResolvInhaleZone,
}

// Categories lists every collidable category in a stable order
var Categories = []Category{
	CategoryPlayer,
	CategoryEnemy,
	CategoryPlatform,
	CategoryExit,
	CategoryProjectile,
	CategoryInhaleZone,
}

// ResolvTag returns the resolv tag used to filter objects of this category
func (c Category) ResolvTag() string {
	return categoryTags[c]
}

func (c Category) String() string {
	if t, ok := categoryTags[c]; ok {
		return t
	}
	return "none"
}

// CategoryOf recovers the category of a resolv object from its tags
func CategoryOf(obj *resolv.Object) Category {
	if obj == nil {
		return CategoryNone
	}
	for _, c := range Categories {
		if obj.HasTags(c.ResolvTag()) {
			return c
		}
	}
	return CategoryNone
}
