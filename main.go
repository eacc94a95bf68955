package main

import (
	"errors"
	"flag"
	"log"

	"github.com/automoto/chargebots/assets"
	"github.com/automoto/chargebots/config"
	"github.com/automoto/chargebots/fonts"
	"github.com/automoto/chargebots/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

// sizedScene is implemented by scenes whose logical size differs from the
// startup window.
type sizedScene interface {
	ScreenSize() (int, int)
}

type Game struct {
	config *config.Config
	scene  Scene
	quit   bool
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

// Quit ends the run loop after the current frame.
func (g *Game) Quit() {
	g.quit = true
}

func NewGame(c *config.Config) *Game {
	g := &Game{config: c}

	if c.Debug.SkipMenu {
		g.scene = scenes.NewWorldScene(g, c, c)
	} else {
		g.scene = scenes.NewMenuScene(g, c)
	}

	return g
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	if s, ok := g.scene.(sizedScene); ok {
		return s.ScreenSize()
	}
	return g.config.World.Width, g.config.World.Height
}

func main() {
	configPath := flag.String("config", "", "config file (yaml, toml or json)")
	ruleset := flag.String("ruleset", "", "ruleset to run: v1, v2, v3 or v4")
	layout := flag.String("layout", "", "embedded spawn layout, or \"none\" for random spawns")
	seed := flag.Int64("seed", 0, "random seed, 0 seeds from the clock")
	skipMenu := flag.Bool("skip-menu", false, "start the world directly")
	debug := flag.Bool("debug", false, "draw collision outlines")
	flag.Parse()

	c, err := config.Load(*configPath, config.Default())
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *ruleset != "" {
		if err := c.ApplyRuleset(config.RulesetID(*ruleset)); err != nil {
			log.Fatalf("Invalid -ruleset: %v", err)
		}
	}
	if *layout != "" {
		c.Layout = *layout
	}
	if *seed != 0 {
		c.Seed = *seed
	}
	c.Debug.SkipMenu = c.Debug.SkipMenu || *skipMenu
	c.Debug.Overlay = c.Debug.Overlay || *debug

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	// Missing sprites or a broken layout are fatal before the loop starts.
	assets.MustLoadSprites(c)
	if _, err := scenes.NewWorld(c); err != nil {
		log.Fatalf("Invalid world: %v", err)
	}

	ebiten.SetWindowSize(c.World.Width, c.World.Height)
	ebiten.SetWindowTitle("chargebots")
	ebiten.SetTPS(c.World.FPS)

	if err := ebiten.RunGame(NewGame(c)); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
