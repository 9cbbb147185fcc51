package systems

import (
	"testing"

	"github.com/automoto/starpuff/assets"
	"github.com/automoto/starpuff/components"
	cfg "github.com/automoto/starpuff/config"
	"github.com/automoto/starpuff/systems/factory"
	"github.com/automoto/starpuff/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"pgregory.net/rapid"
)

func TestEnemyInhalableWhileInZone(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		e := newTestWorld()
		player := factory.CreatePlayer(e, 500, 500)
		zone := e.World.Entry(components.Player.Get(player).InhaleZone)

		x := rapid.Float64Range(300, 900).Draw(rt, "x")
		y := rapid.Float64Range(300, 700).Draw(rt, "y")
		bird := factory.CreateFlyer(e, x, y, 0)

		UpdateCollisions(e)

		want := components.Overlaps(objectOf(zone), objectOf(bird))
		if got := components.Flyer.Get(bird).IsInhalable(); got != want {
			rt.Fatalf("inhalable = %v, overlap = %v", got, want)
		}

		moveTo(bird, 1800, 1200)
		UpdateCollisions(e)
		if components.Flyer.Get(bird).IsInhalable() {
			rt.Fatal("still inhalable after leaving the zone")
		}
	})
}

// inhaleFloor is a platform whose top sits at y=400
var inhaleFloor = assets.Collider{X: 0, Y: 400, Width: 1200, Height: 32, Kind: assets.ColliderPlatform}

// holdInhale presses the inhale key and keeps it held for every later tick
func holdInhale(e *ecs.ECS) {
	in, _ := ensureInput(e)
	in.Previous = in.Current
	in.Current[cfg.ActionInhale] = true
}

// stepGameplay runs the gameplay systems in scene order, without polling devices
func stepGameplay(e *ecs.ECS) {
	UpdatePlayer(e)
	UpdateInhalePull(e)
	UpdateEnemies(e)
	UpdatePhysics(e)
	UpdatePlayerFrame(e)
	UpdateCollisions(e)
}

func assertSwallowed(t *testing.T, player, enemy *donburi.Entry) {
	t.Helper()
	if enemy.Valid() {
		t.Fatal("enemy still alive")
	}
	p := components.Player.Get(player)
	if !p.IsFull {
		t.Error("player not full")
	}
	if p.IsInhaling {
		t.Error("player still inhaling")
	}
	if hp := components.Health.Get(player).Current; hp != cfg.Player.Health {
		t.Errorf("health = %d, want %d", hp, cfg.Player.Health)
	}
}

func TestHeldInhalePullsEnemyIntoPlayer(t *testing.T) {
	e := newTestWorld(inhaleFloor)
	// origin chosen so the hit-box bottom rests on the floor
	player := factory.CreatePlayer(e, 400, 400-cfg.World(cfg.Player.Hitbox.OffsetY+cfg.Player.Hitbox.Height))
	flame := factory.CreateFlame(e, 460, 400-cfg.World(cfg.Flame.Hitbox.OffsetY+cfg.Flame.Hitbox.Height))

	if components.Overlaps(objectOf(player), objectOf(flame)) {
		t.Fatal("enemy starts touching the player")
	}
	holdInhale(e)

	for i := 0; i < cfg.C.TPS && flame.Valid(); i++ {
		stepGameplay(e)
	}

	assertSwallowed(t, player, flame)

	// keeping the key held while full must not start a second inhale
	stepGameplay(e)
	if components.Player.Get(player).IsInhaling {
		t.Fatal("full player started inhaling again")
	}
}

func TestEnemyTouchingPlayerAndZoneOnFirstTickIsSwallowed(t *testing.T) {
	e := newTestWorld(inhaleFloor)
	player := factory.CreatePlayer(e, 400, 400-cfg.World(cfg.Player.Hitbox.OffsetY+cfg.Player.Hitbox.Height))
	zone := e.World.Entry(components.Player.Get(player).InhaleZone)
	flame := factory.CreateFlame(e, 424, 400-cfg.World(cfg.Flame.Hitbox.OffsetY+cfg.Flame.Hitbox.Height))

	if !components.Overlaps(objectOf(player), objectOf(flame)) || !components.Overlaps(objectOf(zone), objectOf(flame)) {
		t.Fatal("enemy must start inside both the player and the inhale zone")
	}
	holdInhale(e)

	stepGameplay(e)

	assertSwallowed(t, player, flame)
}

func TestEnemyNoLongerInhalableWhenPlayerDies(t *testing.T) {
	e := newTestWorld()
	player := factory.CreatePlayer(e, 500, 500)
	zone := e.World.Entry(components.Player.Get(player).InhaleZone)
	zx, zy := objectOf(zone).X, objectOf(zone).Y
	bird := factory.CreateFlyer(e, zx, zy-20, 0)

	UpdateCollisions(e)
	if !components.Flyer.Get(bird).IsInhalable() {
		t.Fatal("enemy in zone not inhalable")
	}

	Destroy(e.World, player)
	UpdateCollisions(e)
	if components.Flyer.Get(bird).IsInhalable() {
		t.Fatal("enemy kept inhalable after the zone was removed")
	}
}

func TestPlayerTouchingExitPublishesOnce(t *testing.T) {
	e := newTestWorld(assets.Collider{X: 400, Y: 300, Width: 64, Height: 128, Kind: assets.ColliderExit})
	exits := 0
	LevelExit.Subscribe(e.World, func(w donburi.World, ev LevelExitEvent) { exits++ })

	factory.CreatePlayer(e, 380, 300)
	for i := 0; i < 3; i++ {
		UpdateCollisions(e)
	}
	LevelExit.ProcessEvents(e.World)

	if exits != 1 {
		t.Fatalf("exit events = %d, want 1", exits)
	}
}

func TestStarDestroysEnemy(t *testing.T) {
	e := newTestWorld()
	flame := factory.CreateFlame(e, 600, 300)
	star := factory.CreateProjectile(e, 600, 300, components.DirectionRight)

	UpdateCollisions(e)

	if flame.Valid() || star.Valid() {
		t.Fatalf("flame valid=%v star valid=%v, want both gone", flame.Valid(), star.Valid())
	}
}

func TestStarBreaksOnPlatform(t *testing.T) {
	e := newTestWorld(assets.Collider{X: 600, Y: 250, Width: 64, Height: 128})
	star := factory.CreateProjectile(e, 580, 260, components.DirectionRight)

	UpdateCollisions(e)

	if star.Valid() {
		t.Fatal("star passed through a platform")
	}
	if _, ok := tags.Platform.First(e.World); !ok {
		t.Fatal("platform was removed with the star")
	}
}

func TestBlinkingContactRearms(t *testing.T) {
	e := newTestWorld()
	player := factory.CreatePlayer(e, 100, 100)
	components.Health.Get(player).Current = 3

	first := factory.CreateFlyer(e, 100, 100, 0)
	UpdateCollisions(e)
	Destroy(e.World, first)

	// Touching a second enemy during the blink does nothing until it ends
	factory.CreateFlyer(e, 100, 100, 0)
	UpdateCollisions(e)
	if hp := components.Health.Get(player).Current; hp != 2 {
		t.Fatalf("health = %d during blink, want 2", hp)
	}

	for i := 0; i < 30 && components.Blink.Get(player).Active(); i++ {
		UpdateEffects(e)
		UpdateCollisions(e)
	}
	if hp := components.Health.Get(player).Current; hp != 1 {
		t.Fatalf("health = %d after blink with enemy still touching, want 1", hp)
	}
}

func TestCollisionEventsReachTheLog(t *testing.T) {
	e := newTestWorld()
	Collision.Subscribe(e.World, LogCollision)

	flame := factory.CreateFlame(e, 600, 300)
	factory.CreateProjectile(e, 600, 300, components.DirectionRight)
	UpdateCollisions(e)

	entry, _ := components.EventLog.First(e.World)
	lines := components.EventLog.Get(entry).Lines
	if len(lines) != 1 || lines[0] != "begin shootingStar x enemy" {
		t.Fatalf("log = %q", lines)
	}
	if flame.Valid() {
		t.Fatal("flame survived")
	}
}
