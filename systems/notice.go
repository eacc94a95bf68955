package systems

import (
	"image/color"

	"github.com/automoto/chargebots/components"
	"github.com/automoto/chargebots/fonts"
	"github.com/automoto/chargebots/simulation"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // freetype faces need the v1 text API
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const noticeLineHeight = 16

// DrawNotices renders the newest shutdown notices in the bottom-left corner,
// oldest at the top, each at its current fade alpha.
func DrawNotices(e *ecs.ECS, screen *ebiten.Image) {
	c := simulation.MustSettings(e.World).Config

	var notices []*components.NoticeData
	components.Notice.Each(e.World, func(entry *donburi.Entry) {
		notices = append(notices, components.Notice.Get(entry))
	})
	if n := c.Notice.MaxShown; n > 0 && len(notices) > n {
		notices = notices[len(notices)-n:]
	}

	face := fonts.Small.Get()
	baseY := screen.Bounds().Dy() - hudMargin - (len(notices)-1)*noticeLineHeight
	for i, n := range notices {
		tc := c.Notice.TextColor
		tc.A = uint8(float32(tc.A) * clamp01(n.Alpha))
		text.Draw(screen, n.Text, face, hudMargin, baseY+i*noticeLineHeight, premultiply(tc))
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// premultiply converts a straight-alpha color to the premultiplied form
// color.RGBA expects.
func premultiply(c color.RGBA) color.RGBA {
	a := uint16(c.A)
	return color.RGBA{
		R: uint8(uint16(c.R) * a / 255),
		G: uint8(uint16(c.G) * a / 255),
		B: uint8(uint16(c.B) * a / 255),
		A: c.A,
	}
}
