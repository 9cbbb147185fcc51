package systems

import (
	"math"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/automoto/starpuff/components"
	cfg "github.com/automoto/starpuff/config"
	"github.com/automoto/starpuff/systems/factory"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"pgregory.net/rapid"
)

func TestFlameJumpsAfterIdleDelay(t *testing.T) {
	e := newTestWorld()
	flame := factory.CreateFlame(e, 400, 300)
	state := components.State.Get(flame)
	physics := components.Physics.Get(flame)

	delay := cfg.Seconds(cfg.Flame.IdleDelay)
	if delay != 90 {
		t.Fatalf("idle delay = %d ticks, want 90", delay)
	}

	for i := 1; i < delay; i++ {
		UpdateEnemies(e)
		if state.CurrentState != cfg.FlameIdle {
			t.Fatalf("left idle after %d ticks", i)
		}
	}
	UpdateEnemies(e)
	if state.CurrentState != cfg.FlameJump {
		t.Fatalf("state = %s after %d ticks, want jump", state.CurrentState, delay)
	}
	if physics.SpeedY != -cfg.Flame.JumpForce {
		t.Fatalf("jump speed = %v", physics.SpeedY)
	}

	UpdateEnemies(e)
	if state.CurrentState != cfg.FlameJump {
		t.Fatal("landed while airborne")
	}

	physics.OnGround = resolv.NewObject(0, 0, 10, 10)
	UpdateEnemies(e)
	if state.CurrentState != cfg.FlameIdle {
		t.Fatalf("state = %s on first grounded tick, want idle", state.CurrentState)
	}
	if state.Duration != delay {
		t.Fatalf("next idle lasts %d ticks", state.Duration)
	}
}

func TestPatrollerCyclesLeftAndRight(t *testing.T) {
	e := newTestWorld()
	guy := factory.CreatePatroller(e, 400, 300, rand.New(rand.NewPCG(1, 2)))
	state := components.State.Get(guy)
	physics := components.Physics.Get(guy)

	var seen []cfg.StateID
	last := state.CurrentState
	for i := 0; i < 2000; i++ {
		physics.MoveX = 0
		UpdateEnemies(e)

		if state.CurrentState != last {
			seen = append(seen, state.CurrentState)
			last = state.CurrentState
		}
		switch state.CurrentState {
		case cfg.PatrolLeft:
			if physics.MoveX != -cfg.Patroller.Speed {
				t.Fatalf("left move = %v", physics.MoveX)
			}
		case cfg.PatrolRight:
			if physics.MoveX != cfg.Patroller.Speed {
				t.Fatalf("right move = %v", physics.MoveX)
			}
		}
	}

	if len(seen) < 4 {
		t.Fatalf("only %d state changes in 2000 ticks", len(seen))
	}
	if seen[0] != cfg.PatrolLeft {
		t.Fatalf("first patrol state = %s, want left", seen[0])
	}
	for i := 1; i < len(seen); i++ {
		if seen[i] == seen[i-1] || seen[i] == cfg.PatrolIdle {
			t.Fatalf("unexpected sequence %v", seen)
		}
	}
}

func TestFlyerKeepsConstantSpeed(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		speed := rapid.Float64Range(50, 400).Draw(rt, "speed")
		ticks := rapid.IntRange(1, 3*cfg.C.TPS).Draw(rt, "ticks")

		e := newTestWorld()
		bird := factory.CreateFlyer(e, 1500, 300, speed)
		obj := objectOf(bird)
		x0, y0 := obj.X, obj.Y

		for i := 0; i < ticks; i++ {
			UpdatePhysics(e)
		}

		want := speed * float64(ticks) / float64(cfg.C.TPS)
		if moved := x0 - obj.X; math.Abs(moved-want) > 1e-6 {
			rt.Fatalf("moved %v in %d ticks, want %v", moved, ticks, want)
		}
		if obj.Y != y0 {
			rt.Fatalf("flyer fell from %v to %v", y0, obj.Y)
		}
		if sy := components.Physics.Get(bird).SpeedY; sy != 0 {
			rt.Fatalf("vertical speed = %v", sy)
		}
		if sx := components.Physics.Get(bird).SpeedX; sx != -speed {
			rt.Fatalf("horizontal speed drifted to %v", sx)
		}
	})
}

func TestFlyersFarOutsideTheViewAreRemoved(t *testing.T) {
	e := newTestWorld()
	factory.CreateCamera(e, 1000, 300)

	gone := factory.CreateFlyer(e, -400, 300, 200)
	kept := factory.CreateFlyer(e, 1000, 300, 200)
	star := factory.CreateProjectile(e, 3000, 300, components.DirectionRight)

	UpdateFlyers(e)

	if gone.Valid() {
		t.Error("flyer far left of the view was kept")
	}
	if !kept.Valid() {
		t.Error("visible flyer was removed")
	}
	if star.Valid() {
		t.Error("star far right of the view was kept")
	}
}

func TestSpawnerReleasesFirstFlyerImmediately(t *testing.T) {
	e := newTestWorld()
	SeedRandom(7)
	spawner := factory.CreateFlyerSpawner(e, 1800, 200)
	interval := components.FlyerSpawner.Get(spawner).Interval

	flyers := func() int {
		n := 0
		components.Flyer.Each(e.World, func(*donburi.Entry) { n++ })
		return n
	}

	UpdateFlyerSpawners(e)
	bird, ok := components.Flyer.First(e.World)
	if !ok {
		t.Fatal("no flyer on the first tick")
	}
	speed := components.Flyer.Get(bird).Speed
	if !slices.Contains(cfg.Flyer.Speeds, speed) {
		t.Fatalf("speed %v not one of %v", speed, cfg.Flyer.Speeds)
	}
	if sx := components.Physics.Get(bird).SpeedX; sx != -speed {
		t.Fatalf("flyer moves at %v, want %v", sx, -speed)
	}

	for i := 1; i < interval; i++ {
		UpdateFlyerSpawners(e)
	}
	if n := flyers(); n != 1 {
		t.Fatalf("%d flyers before the interval elapsed, want 1", n)
	}

	UpdateFlyerSpawners(e)
	if n := flyers(); n != 2 {
		t.Fatalf("%d flyers after one interval, want 2", n)
	}

	for i := 0; i < interval; i++ {
		UpdateFlyerSpawners(e)
	}
	if n := flyers(); n != 3 {
		t.Fatalf("%d flyers after two intervals, want 3", n)
	}
}
