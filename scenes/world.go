package scenes

import (
	"image/color"
	"log"
	"sync"

	cfg "github.com/automoto/starpuff/config"
	"github.com/automoto/starpuff/components"
	"github.com/automoto/starpuff/session"
	"github.com/automoto/starpuff/systems"
	"github.com/automoto/starpuff/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Transition is what a level scene does once its outcome is known
type Transition int

const (
	TransitionNone Transition = iota
	TransitionRestart
	TransitionNextLevel
	TransitionGameOver
)

func (t Transition) String() string {
	switch t {
	case TransitionRestart:
		return "restart"
	case TransitionNextLevel:
		return "next level"
	case TransitionGameOver:
		return "game over"
	}
	return "none"
}

// Decide applies a level outcome to the session. A death costs one life and
// wins over an exit reached in the same tick. It returns the transition and
// the level the next scene is about.
func Decide(sess *session.Session, died, exited bool) (Transition, int) {
	switch {
	case died:
		level := sess.Level
		if sess.LoseLife() {
			return TransitionGameOver, level
		}
		return TransitionRestart, sess.Level
	case exited:
		sess.Advance()
		return TransitionNextLevel, sess.Level
	}
	return TransitionNone, sess.Level
}

type PlatformerScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	deps         *Deps
	once         sync.Once

	levelName string
	died      bool
	exited    bool
	left      bool
	cancelHUD func()
}

// NewPlatformerScene creates the scene for the level the session currently names
func NewPlatformerScene(sc SceneChanger, deps *Deps) *PlatformerScene {
	return &PlatformerScene{sceneChanger: sc, deps: deps}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	if ps.left {
		return
	}

	ps.pollTuning()
	ps.ecs.Update()

	systems.PlayerDied.ProcessEvents(ps.ecs.World)
	systems.LevelExit.ProcessEvents(ps.ecs.World)

	t, level := Decide(ps.deps.Session, ps.died, ps.exited)
	if t == TransitionNone {
		return
	}
	ps.leave()
	log.Printf("Level %s: %s", ps.levelName, t)

	switch t {
	case TransitionGameOver:
		ps.sceneChanger.ChangeScene(NewGameOverScene(ps.sceneChanger, ps.deps, level))
	default:
		ps.sceneChanger.ChangeScene(NewPlatformerScene(ps.sceneChanger, ps.deps))
	}
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

// leave runs once, before the scene hands control to the next one
func (ps *PlatformerScene) leave() {
	ps.left = true
	if ps.cancelHUD != nil {
		ps.cancelHUD()
		ps.cancelHUD = nil
	}
}

func (ps *PlatformerScene) configure() {
	sess := ps.deps.Session
	ps.levelName = cfg.LevelName(sess.Level)

	level, err := ps.deps.Levels.LoadLevel(ps.levelName)
	if err != nil {
		log.Printf("Failed to load level %d: %v", sess.Level, err)
		panic(err)
	}

	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateDebug)
	ecs.AddSystem(systems.UpdatePlayer)
	ecs.AddSystem(systems.UpdateInhalePull)
	ecs.AddSystem(systems.UpdateEnemies)
	ecs.AddSystem(systems.UpdateFlyerSpawners)
	ecs.AddSystem(systems.UpdatePhysics)
	ecs.AddSystem(systems.UpdatePlayerFrame)
	ecs.AddSystem(systems.UpdateCollisions)
	ecs.AddSystem(systems.UpdateFlyers)
	ecs.AddSystem(systems.UpdateTimers)
	ecs.AddSystem(systems.UpdateEffects)
	ecs.AddSystem(systems.UpdateCamera)

	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawActors)
	ecs.AddRenderer(cfg.HUD, systems.DrawHUD)
	ecs.AddRenderer(cfg.HUD, systems.DrawDebug)

	ps.ecs = ecs

	if _, err := factory.PopulateLevel(ecs, level, sess.Level, systems.Rand()); err != nil {
		panic(err)
	}

	systems.PlayerDied.Subscribe(ecs.World, func(w donburi.World, ev systems.PlayerDiedEvent) {
		ps.died = true
	})
	systems.LevelExit.Subscribe(ecs.World, func(w donburi.World, ev systems.LevelExitEvent) {
		ps.exited = true
	})
	systems.Collision.Subscribe(ecs.World, systems.LogCollision)

	ps.cancelHUD = systems.BindHUD(ecs, sess)
	log.Printf("Entered level %d (%s), lives %d", sess.Level, ps.levelName, sess.Lives)
}

// pollTuning applies edits to the level tuning file while the game runs
func (ps *PlatformerScene) pollTuning() {
	if ps.deps.Tuning == nil {
		return
	}
	changed, err := ps.deps.Tuning.Poll()
	if err != nil {
		log.Printf("Tuning watcher: %v", err)
	}
	if !changed {
		return
	}
	if err := cfg.ReloadLevelTuning(); err != nil {
		log.Printf("Tuning reload failed, keeping previous values: %v", err)
		return
	}
	if entry, ok := components.Level.First(ps.ecs.World); ok {
		components.Level.Get(entry).Tuning = cfg.LevelFor(ps.levelName)
	}
	log.Printf("Reloaded level tuning for %s", ps.levelName)
}
