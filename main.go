package main

import (
	"flag"
	"log"

	"github.com/automoto/starpuff/assets"
	"github.com/automoto/starpuff/config"
	"github.com/automoto/starpuff/fonts"
	"github.com/automoto/starpuff/scenes"
	"github.com/automoto/starpuff/session"
	"github.com/automoto/starpuff/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Game struct {
	scene scenes.Scene
	quit  bool
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene scenes.Scene) {
	g.scene = scene
}

// Quit ends the game loop after the current tick
func (g *Game) Quit() {
	g.quit = true
}

func NewGame(deps *scenes.Deps) *Game {
	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	g := &Game{}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewPlatformerScene(g, deps)
	} else {
		g.scene = scenes.NewMenuScene(g, deps)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	if g.quit {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	debug := flag.Bool("debug", false, "show hit-boxes and hot reload level tuning")
	skipMenu := flag.Bool("skipmenu", config.Debug.SkipMenu, "start playing without the title screen")
	level := flag.Int("level", config.Debug.StartLevel, "level to start on")
	sheet := flag.String("sheet", config.Debug.SpriteSheet, "path to the sprite sheet")
	seed := flag.Uint64("seed", 0, "seed for spawns and patrol timing (0 picks one)")
	flag.Parse()

	config.Debug.Hitboxes = *debug
	config.Debug.WatchTuning = *debug
	config.Debug.SkipMenu = *skipMenu
	config.Debug.StartLevel = *level
	config.Debug.SpriteSheet = *sheet

	if *seed != 0 {
		systems.SeedRandom(*seed)
	}

	if err := assets.LoadSpriteSheet(config.Debug.SpriteSheet); err != nil {
		log.Printf("Warning: %v; drawing placeholder shapes", err)
	}

	sess := session.New(len(config.Session.Levels))
	sess.SetLevel(config.Debug.StartLevel)

	deps := &scenes.Deps{
		Session: sess,
		Levels:  assets.NewLevelLoader(),
	}

	if config.Debug.WatchTuning {
		w, err := config.WatchLevelTuning()
		if err != nil {
			log.Printf("Warning: level tuning hot reload disabled: %v", err)
		} else {
			defer w.Close()
			deps.Tuning = w
		}
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("starpuff")
	ebiten.SetTPS(config.C.TPS)

	if err := ebiten.RunGame(NewGame(deps)); err != nil {
		log.Fatal(err)
	}
}
