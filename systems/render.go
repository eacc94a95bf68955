package systems

import (
	"github.com/automoto/chargebots/assets"
	"github.com/automoto/chargebots/components"
	"github.com/automoto/chargebots/simulation"
	"github.com/automoto/chargebots/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// DrawActors renders the player, then robots in spawn order. Each sprite is
// followed by its charge bar so a bar is never hidden under its own owner.
func DrawActors(e *ecs.ECS, screen *ebiten.Image) {
	prefix := simulation.MustSettings(e.World).Config.ChargeBar.SpritePrefix

	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		drawActor(entry, screen, prefix)
	})
	for _, entry := range simulation.RobotsInOrder(e.World) {
		drawActor(entry, screen, prefix)
	}
}

func drawActor(entry *donburi.Entry, screen *ebiten.Image, barPrefix string) {
	o := components.Object.Get(entry)
	drawImageAt(screen, assets.Image(components.Sprite.Get(entry).Key), o.X, o.Y)

	if !entry.HasComponent(components.ChargeBar) {
		return
	}
	bar := components.ChargeBar.Get(entry)
	if !bar.Visible {
		return
	}
	drawImageAt(screen, assets.Image(assets.BarKey(barPrefix, bar.Level)), bar.X, bar.Y)
}

func drawImageAt(screen, img *ebiten.Image, x, y float64) {
	if img == nil {
		return
	}
	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Translate(x, y)
	screen.DrawImage(img, drawOp)
}
