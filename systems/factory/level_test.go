package factory

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/automoto/starpuff/assets"
	"github.com/automoto/starpuff/components"
	"github.com/automoto/starpuff/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func count(w donburi.World, c interface {
	Each(donburi.World, func(*donburi.Entry))
}) int {
	n := 0
	c.Each(w, func(*donburi.Entry) { n++ })
	return n
}

func TestPopulateLevel(t *testing.T) {
	level, err := assets.NewLevelLoader().LoadLevel("level-1")
	if err != nil {
		t.Fatal(err)
	}
	e := ecs.NewECS(donburi.NewWorld())

	player, err := PopulateLevel(e, level, 1, rand.New(rand.NewPCG(1, 1)))
	if err != nil {
		t.Fatal(err)
	}

	if n := count(e.World, tags.Player); n != 1 {
		t.Errorf("players = %d", n)
	}
	if n := count(e.World, components.Flame); n != len(level.SpawnPoints(assets.SpawnFlame)) {
		t.Errorf("flames = %d", n)
	}
	if n := count(e.World, components.Patroller); n != len(level.SpawnPoints(assets.SpawnPatroller)) {
		t.Errorf("patrollers = %d", n)
	}
	if n := count(e.World, components.FlyerSpawner); n != len(level.SpawnPoints(assets.SpawnFlyer)) {
		t.Errorf("spawners = %d", n)
	}
	if n := count(e.World, components.Flyer); n != 0 {
		t.Errorf("flyers at start = %d, want 0", n)
	}
	if n := count(e.World, tags.Platform) + count(e.World, tags.Exit); n != len(level.Colliders) {
		t.Errorf("static colliders = %d, want %d", n, len(level.Colliders))
	}
	if _, ok := components.Camera.First(e.World); !ok {
		t.Error("no camera")
	}

	p := components.Player.Get(player)
	if !e.World.Valid(p.InhaleZone) || !e.World.Valid(p.InhaleEffect) {
		t.Error("player is missing its inhale zone or effect")
	}
	if op := components.Opacity.Get(e.World.Entry(p.InhaleEffect)).Value; op != 0 {
		t.Errorf("inhale effect visible at start: %v", op)
	}
}

func TestPopulateLevelNeedsPlayerSpawn(t *testing.T) {
	level := &assets.Level{Name: "empty", Width: 640, Height: 320, Spawns: map[string][]assets.Point{}}
	e := ecs.NewECS(donburi.NewWorld())

	_, err := PopulateLevel(e, level, 1, rand.New(rand.NewPCG(1, 1)))
	if !errors.Is(err, assets.ErrMissingSpawn) {
		t.Fatalf("err = %v, want ErrMissingSpawn", err)
	}
	if _, ok := components.Space.First(e.World); ok {
		t.Error("world was built for a level without a player")
	}
}
