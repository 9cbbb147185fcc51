package systems

import (
	"github.com/automoto/starpuff/components"
	"github.com/automoto/starpuff/shared/gamemath"
	"github.com/automoto/starpuff/tags"
	"github.com/solarlune/resolv"
)

// surfaceEpsilon absorbs rounding left over from snapping onto a surface
const surfaceEpsilon = 1e-6

// resolveObjectHorizontalCollision clamps a horizontal move so the object stops
// flush against any platform it would run into. It returns the allowed move.
func resolveObjectHorizontalCollision(physics *components.PhysicsData, object *resolv.Object, dx float64) float64 {
	if dx == 0 {
		return 0
	}

	check := object.Check(dx, 0, tags.ResolvPlatform)
	if check == nil {
		return dx
	}

	for _, solid := range check.ObjectsByTags(tags.ResolvPlatform) {
		if !shouldStopHorizontalMovement(object, solid, dx) {
			continue
		}
		dx = gamemath.SweepX(object.X, object.W, dx, solid.X, solid.W)
		physics.SpeedX = 0
	}

	return dx
}

// shouldStopHorizontalMovement reports whether solid blocks a move of dx
func shouldStopHorizontalMovement(object, solid *resolv.Object, dx float64) bool {
	if !gamemath.Overlap(object.Y+surfaceEpsilon, object.Y+object.H-surfaceEpsilon, solid.Y, solid.Y+solid.H) {
		return false
	}
	nx := object.X + dx
	return gamemath.Overlap(nx, nx+object.W, solid.X, solid.X+solid.W)
}

// resolveObjectVerticalCollision lands falling objects on platforms and stops
// rising ones at ceilings. It returns the allowed move and sets OnGround.
func resolveObjectVerticalCollision(physics *components.PhysicsData, object *resolv.Object, dy float64) float64 {
	physics.OnGround = nil

	checkDistance := dy
	if dy >= 0 {
		checkDistance++
	}

	check := object.Check(0, checkDistance, tags.ResolvPlatform)
	if check == nil {
		return dy
	}

	for _, solid := range check.ObjectsByTags(tags.ResolvPlatform) {
		if !gamemath.Overlap(object.X, object.X+object.W, solid.X, solid.X+solid.W) {
			continue
		}

		if dy >= 0 {
			gap := solid.Y - (object.Y + object.H)
			if gap < -surfaceEpsilon || gap > checkDistance {
				continue
			}
			// Snap onto the nearest surface under the object
			if physics.OnGround == nil || gap < dy {
				dy = gap
				physics.OnGround = solid
			}
			physics.SpeedY = 0
			continue
		}

		gap := solid.Y + solid.H - object.Y
		if gap > surfaceEpsilon || gap < dy {
			continue
		}
		dy = gap
		physics.SpeedY = 0
	}

	return dy
}
