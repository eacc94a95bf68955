package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/chargebots/config"
	"github.com/automoto/chargebots/systems"
	"github.com/automoto/chargebots/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
	Quit()
}

// MenuScene lists the rulesets and starts a world scene for the chosen one.
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	base         *cfg.Config
	menuUI       *ui.MenuUI
	once         sync.Once
}

// NewMenuScene creates a new menu scene. base carries the file, env and flag
// settings every started world inherits.
func NewMenuScene(sc SceneChanger, base *cfg.Config) *MenuScene {
	return &MenuScene{sceneChanger: sc, base: base}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
	ms.menuUI.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.menuUI.UI.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	ms.menuUI = ui.NewMenuUI(ms.base.Ruleset, ms.start, ms.sceneChanger.Quit)

	ms.ecs.AddSystem(systems.UpdateInput)
	ms.ecs.AddSystem(ms.updateKeys)
}

func (ms *MenuScene) updateKeys(e *ecs.ECS) {
	switch {
	case systems.GetAction(e, cfg.ActionMoveUp).JustPressed:
		ms.menuUI.Move(-1)
	case systems.GetAction(e, cfg.ActionMoveDown).JustPressed:
		ms.menuUI.Move(1)
	case systems.GetAction(e, cfg.ActionSelect).JustPressed:
		ms.menuUI.Start()
	}
}

func (ms *MenuScene) start(id cfg.RulesetID) {
	c, err := WithRuleset(ms.base, id)
	if err != nil {
		// Rulesets come from the menu's own list.
		panic(err)
	}
	ms.sceneChanger.ChangeScene(NewWorldScene(ms.sceneChanger, ms.base, c))
}

// WithRuleset returns a copy of base switched to the given ruleset.
func WithRuleset(base *cfg.Config, id cfg.RulesetID) (*cfg.Config, error) {
	c := *base
	if err := c.ApplyRuleset(id); err != nil {
		return nil, err
	}
	return &c, nil
}
