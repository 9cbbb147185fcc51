package factory

import (
	"math/rand/v2"

	"github.com/automoto/starpuff/archetypes"
	"github.com/automoto/starpuff/assets"
	"github.com/automoto/starpuff/components"
	"github.com/automoto/starpuff/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel registers the level entry and builds its static geometry.
// The space must exist before this is called.
func CreateLevel(ecs *ecs.ECS, level *assets.Level, number int) *donburi.Entry {
	entry := archetypes.Level.Spawn(ecs)

	components.Level.SetValue(entry, components.LevelData{
		CurrentLevel: level,
		Number:       number,
		Tuning:       config.LevelFor(level.Name),
	})
	components.Contacts.SetValue(entry, components.ContactsData{
		Active: make(map[components.ContactKey]struct{}),
	})
	components.EventLog.SetValue(entry, components.EventLogData{
		Max: config.Debug.EventLogSize,
	})

	for _, c := range level.Colliders {
		switch c.Kind {
		case assets.ColliderExit:
			CreateExit(ecs, c.X, c.Y, c.Width, c.Height)
		default:
			CreatePlatform(ecs, c.X, c.Y, c.Width, c.Height)
		}
	}

	return entry
}

// cellSize is the resolv grid cell edge in world units
const cellSize = 32

// PopulateLevel builds a complete playable world for a loaded level: the
// collision space, static geometry, the player with its inhale effect, every
// enemy spawn, and a camera over the player. It returns the player entry.
func PopulateLevel(ecs *ecs.ECS, level *assets.Level, number int, r *rand.Rand) (*donburi.Entry, error) {
	spawn, err := level.PlayerSpawn()
	if err != nil {
		return nil, err
	}

	CreateSpace(ecs, level.Width, level.Height, cellSize, cellSize)
	CreateLevel(ecs, level, number)

	player := CreatePlayer(ecs, spawn.X, spawn.Y)
	CreateInhaleEffect(ecs, player)

	for _, p := range level.SpawnPoints(assets.SpawnFlame) {
		CreateFlame(ecs, p.X, p.Y)
	}
	for _, p := range level.SpawnPoints(assets.SpawnPatroller) {
		CreatePatroller(ecs, p.X, p.Y, r)
	}
	for _, p := range level.SpawnPoints(assets.SpawnFlyer) {
		CreateFlyerSpawner(ecs, p.X, p.Y)
	}

	CreateCamera(ecs, spawn.X, spawn.Y)
	return player, nil
}
