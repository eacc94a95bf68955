package simulation

import (
	"github.com/automoto/chargebots/components"
	cfg "github.com/automoto/chargebots/config"
	"github.com/automoto/chargebots/shared/gamemath"
	"github.com/automoto/chargebots/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// UpdatePlayer moves the player from the current input snapshot.
func UpdatePlayer(w donburi.World) {
	s := MustSettings(w)
	input := GetOrCreateInput(w)
	spf := s.Config.World.SPF()
	width, height := float64(s.Config.World.Width), float64(s.Config.World.Height)

	tags.Player.Each(w, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		obj := components.Object.Get(e)
		movePlayer(obj.Object, input, gamemath.Step(player.Speed, spf), width, height)
	})
}

// movePlayer handles each axis on its own: a pressed key moves the player one
// step unless the rectangle already touches that side. Diagonals are not
// normalized. The final clamp stops the player flush against the edge instead
// of overshooting it.
func movePlayer(o *resolv.Object, input *components.InputData, step, width, height float64) {
	if o.X > 0 && input.Current[cfg.ActionMoveLeft] {
		o.X -= step
	}
	if o.X+o.W < width && input.Current[cfg.ActionMoveRight] {
		o.X += step
	}
	if o.Y > 0 && input.Current[cfg.ActionMoveUp] {
		o.Y -= step
	}
	if o.Y+o.H < height && input.Current[cfg.ActionMoveDown] {
		o.Y += step
	}

	o.X = gamemath.ClampSpan(o.X, o.W, width)
	o.Y = gamemath.ClampSpan(o.Y, o.H, height)
}
