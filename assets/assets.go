package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"

	"github.com/automoto/starpuff/config"
	"github.com/automoto/starpuff/shared/leveldata"
)

var (
	//go:embed levels/*.tmx
	assetFS embed.FS
)

// Spawn point names used by the level maps
const (
	SpawnPlayer    = "player"
	SpawnFlame     = "flame"
	SpawnPatroller = "guy"
	SpawnFlyer     = "bird"
)

var (
	ErrMissingSpawn = errors.New("missing spawn point")
	ErrUnknownLevel = errors.New("unknown level")
)

type ColliderKind int

const (
	ColliderPlatform ColliderKind = iota
	ColliderExit
)

// Collider is static level geometry in world units
type Collider struct {
	X, Y, Width, Height float64
	Kind                ColliderKind
}

// Point is a spawn position in world units
type Point struct {
	X, Y float64
}

type Level struct {
	Name      string
	Colliders []Collider
	Spawns    map[string][]Point
	Width     int
	Height    int
}

// SpawnPoints returns the ordered spawn list for an entity type
func (l *Level) SpawnPoints(kind string) []Point {
	return l.Spawns[kind]
}

// PlayerSpawn returns the first player spawn point
func (l *Level) PlayerSpawn() (Point, error) {
	points := l.Spawns[SpawnPlayer]
	if len(points) == 0 {
		return Point{}, fmt.Errorf("level %s: %w: %s", l.Name, ErrMissingSpawn, SpawnPlayer)
	}
	return points[0], nil
}

type LevelLoader struct {
	fsys fs.FS
	dir  string
}

// NewLevelLoader reads levels embedded in the binary
func NewLevelLoader() *LevelLoader {
	return &LevelLoader{fsys: assetFS, dir: "levels"}
}

// NewLevelLoaderFS reads levels from any file system, e.g. os.DirFS or fstest.MapFS
func NewLevelLoaderFS(fsys fs.FS, dir string) *LevelLoader {
	return &LevelLoader{fsys: fsys, dir: dir}
}

// LoadLevel parses a level by name and converts it to world units.
// A level without a player spawn cannot be played and returns ErrMissingSpawn.
func (l *LevelLoader) LoadLevel(name string) (*Level, error) {
	tmxPath := path.Join(l.dir, name+".tmx")
	if _, err := fs.Stat(l.fsys, tmxPath); err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrUnknownLevel, name, err)
	}

	data, err := leveldata.Load(l.fsys, tmxPath)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", name, err)
	}

	level := &Level{
		Name:   name,
		Width:  int(config.World(float64(data.MapWidth))),
		Height: int(config.World(float64(data.MapHeight))),
		Spawns: make(map[string][]Point, len(data.SpawnPoints)),
	}

	for _, r := range data.Colliders {
		kind := ColliderPlatform
		if r.Exit {
			kind = ColliderExit
		}
		level.Colliders = append(level.Colliders, Collider{
			X:      config.World(r.X),
			Y:      config.World(r.Y),
			Width:  config.World(r.W),
			Height: config.World(r.H),
			Kind:   kind,
		})
	}

	for kind, points := range data.SpawnPoints {
		scaled := make([]Point, 0, len(points))
		for _, p := range points {
			scaled = append(scaled, Point{X: config.World(p.X), Y: config.World(p.Y)})
		}
		level.Spawns[kind] = scaled
	}

	if _, err := level.PlayerSpawn(); err != nil {
		return nil, err
	}

	return level, nil
}
