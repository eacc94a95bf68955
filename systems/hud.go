package systems

import (
	"image/color"

	cfg "github.com/automoto/chargebots/config"
	"github.com/automoto/chargebots/fonts"
	"github.com/automoto/chargebots/simulation"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // freetype faces need the v1 text API
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudMargin     = 10
	hudLineHeight = 18
	hudWidth      = 190
)

// DrawHUD renders the live robot counts and the elapsed simulated time.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	lines := simulation.StatusLines(e.World)

	vector.FillRect(screen,
		float32(hudMargin-4), float32(hudMargin-4),
		float32(hudWidth), float32(len(lines)*hudLineHeight+8),
		cfg.BlackOverlay, false)

	for i, line := range lines {
		face, c := fonts.Regular.Get(), color.Color(cfg.White)
		if i == 0 {
			face, c = fonts.Bold.Get(), cfg.Cyan
		}
		text.Draw(screen, line, face, hudMargin, hudMargin+(i+1)*hudLineHeight-4, c)
	}
}
