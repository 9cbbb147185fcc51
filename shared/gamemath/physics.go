// Package gamemath holds the axis-aligned motion math shared by the physics
// and collision systems. Everything here works on plain float64 spans.
package gamemath

// ClampFall caps a downward speed at limit. Upward speeds pass through.
func ClampFall(speedY, limit float64) float64 {
	if limit > 0 && speedY > limit {
		return limit
	}
	return speedY
}

// Overlap reports whether the open spans [a0,a1) and [b0,b1) intersect.
// Spans that only touch do not overlap.
func Overlap(a0, a1, b0, b1 float64) bool {
	return a0 < b1 && b0 < a1
}

// SweepX limits a horizontal move of a span starting at x with width w so it
// stops flush against a blocker spanning [bx, bx+bw).
func SweepX(x, w, dx, bx, bw float64) float64 {
	if dx > 0 {
		return min(dx, max(bx-(x+w), 0))
	}
	if dx < 0 {
		return max(dx, min(bx+bw-x, 0))
	}
	return 0
}
