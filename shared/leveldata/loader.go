package leveldata

import (
	"fmt"
	"io/fs"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Load parses a TMX file into colliders and spawn points. It takes an fs.FS
// so callers can pass embed.FS or os.DirFS.
func Load(fsys fs.FS, tmxPath string) (*MapData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	data := &MapData{
		MapWidth:    levelMap.Width * levelMap.TileWidth,
		MapHeight:   levelMap.Height * levelMap.TileHeight,
		SpawnPoints: make(map[string][]Point),
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case GroupColliders:
			for _, o := range og.Objects {
				data.Colliders = append(data.Colliders, Rect{
					X:    o.X,
					Y:    o.Y,
					W:    o.Width,
					H:    o.Height,
					Exit: o.Name == ExitName,
				})
			}
		case GroupSpawnPoints:
			for _, o := range og.Objects {
				name := strings.TrimSpace(o.Name)
				if name == "" {
					return nil, fmt.Errorf("%s: spawn point %d has no name", tmxPath, o.ID)
				}
				data.SpawnPoints[name] = append(data.SpawnPoints[name], Point{X: o.X, Y: o.Y})
			}
		}
	}

	return data, nil
}
