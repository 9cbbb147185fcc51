// Package leveldata parses TMX level maps into plain collider and spawn data.
// It has no dependencies on ebitengine, donburi, or resolv.
package leveldata

// Object group names read from a level map
const (
	GroupColliders   = "colliders"
	GroupSpawnPoints = "spawnpoints"

	// ExitName marks a collider as the level exit
	ExitName = "exit"
)

// MapData holds everything read from a TMX level file, in map pixels.
type MapData struct {
	Colliders   []Rect
	SpawnPoints map[string][]Point
	MapWidth    int
	MapHeight   int
}

// Rect is a collider from the colliders object group.
type Rect struct {
	X, Y, W, H float64
	Exit       bool
}

// Point is a named spawn location.
type Point struct {
	X, Y float64
}
