package components

import (
	"github.com/automoto/starpuff/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Overlaps reports whether two axis-aligned boxes intersect.
// Touching edges do not count as overlap.
func Overlaps(a, b *resolv.Object) bool {
	if a == nil || b == nil {
		return false
	}
	return gamemath.Overlap(a.X, a.X+a.W, b.X, b.X+b.W) &&
		gamemath.Overlap(a.Y, a.Y+a.H, b.Y, b.Y+b.H)
}
