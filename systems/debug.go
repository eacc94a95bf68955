package systems

import (
	"image/color"

	"github.com/automoto/chargebots/components"
	cfg "github.com/automoto/chargebots/config"
	"github.com/automoto/chargebots/simulation"
	"github.com/automoto/chargebots/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDebug toggles the collision overlay.
func UpdateDebug(e *ecs.ECS) {
	if GetAction(e, cfg.ActionDebug).JustPressed {
		s := simulation.MustSettings(e.World)
		s.Debug = !s.Debug
	}
}

func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	settings := simulation.MustSettings(e.World)
	if !settings.Debug {
		return
	}

	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	for _, obj := range space.Objects() {
		// Determine color based on tags
		var c color.Color = cfg.Cyan
		if obj.HasTags(tags.ResolvWall) {
			c = cfg.DarkGray
		} else if obj.HasTags(tags.ResolvPlayer) {
			c = cfg.Blue
		} else if obj.HasTags(tags.ResolvRobot) {
			c = cfg.Red
		}

		x, y := float32(obj.X), float32(obj.Y)
		w, h := float32(obj.W), float32(obj.H)
		vector.FillRect(screen, x, y, w, 1, c, false)     // Top
		vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
		vector.FillRect(screen, x, y, 1, h, c, false)     // Left
		vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
	}

	// Charge bars are not in the space; outline them separately.
	components.ChargeBar.Each(e.World, func(entry *donburi.Entry) {
		bar := components.ChargeBar.Get(entry)
		if bar.Visible {
			vector.StrokeRect(screen, float32(bar.X), float32(bar.Y), float32(bar.W), float32(bar.H), 1, cfg.Green, false)
		}
	})
}
