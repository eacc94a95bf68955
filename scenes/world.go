package scenes

import (
	"fmt"
	"log"
	"sync"

	"github.com/automoto/chargebots/assets"
	cfg "github.com/automoto/chargebots/config"
	"github.com/automoto/chargebots/simulation"
	"github.com/automoto/chargebots/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// WorldScene runs one ruleset until Esc returns to the menu.
type WorldScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	base         *cfg.Config
	config       *cfg.Config
	once         sync.Once
}

// NewWorldScene creates a world scene for config c. base is handed back to
// the menu on Esc.
func NewWorldScene(sc SceneChanger, base, c *cfg.Config) *WorldScene {
	return &WorldScene{sceneChanger: sc, base: base, config: c}
}

// ScreenSize reports the logical screen size of the running ruleset.
func (ws *WorldScene) ScreenSize() (int, int) {
	return ws.config.World.Width, ws.config.World.Height
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	ws.ecs.Update()

	if systems.GetAction(ws.ecs, cfg.ActionBack).JustPressed {
		ws.sceneChanger.ChangeScene(NewMenuScene(ws.sceneChanger, ws.base))
	}
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	screen.Fill(ws.config.World.Background)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

func (ws *WorldScene) configure() {
	world, err := NewWorld(ws.config)
	if err != nil {
		// Startup validates the same config, so this only fires on a broken build.
		log.Fatalf("Failed to build world: %v", err)
	}

	ebiten.SetWindowSize(ws.config.World.Width, ws.config.World.Height)
	assets.MustLoadSprites(ws.config)

	e := ecs.NewECS(world)

	// Input is sampled before any simulation stage.
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdateDebug)
	systems.AddSimulation(e)

	e.AddRenderer(systems.LayerWorld, systems.DrawActors)
	e.AddRenderer(systems.LayerWorld, systems.DrawDebug)
	e.AddRenderer(systems.LayerHUD, systems.DrawHUD)
	e.AddRenderer(systems.LayerHUD, systems.DrawNotices)

	ws.ecs = e

	log.Printf("World started: %s, %dx%d", ws.config.Ruleset.Title(), ws.config.World.Width, ws.config.World.Height)
}

// NewWorld builds a populated world for c: settings singleton, optional spawn
// layout, player and robots.
func NewWorld(c *cfg.Config) (donburi.World, error) {
	layout, err := assets.LoadLayout(c.Layout)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}

	world := donburi.NewWorld()
	s := simulation.NewSettings(world, c)
	if err := simulation.Populate(world, s, layout); err != nil {
		return nil, fmt.Errorf("populate %s: %w", c.Ruleset, err)
	}
	return world, nil
}
