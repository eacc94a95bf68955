package simulation

import (
	"math/rand"

	"github.com/automoto/chargebots/components"
	"github.com/automoto/chargebots/shared/gamemath"
	"github.com/solarlune/resolv"
)

// updateWander re-rolls the heading when the countdown runs out, moves one
// step and bounces off any edge it has reached. The bounce check runs every
// frame regardless of the countdown.
func updateWander(wd *components.WanderData, o *resolv.Object, speed, spf, width, height float64, rng *rand.Rand) {
	wd.Remaining -= spf
	if wd.Remaining < 0 {
		wd.Remaining = wd.Duration
		wd.Direction = gamemath.RandomUnitDirection(rng)
	}

	step := gamemath.Step(speed, spf)
	o.X += wd.Direction.X * step
	o.Y += wd.Direction.Y * step

	o.X, wd.Direction.X = gamemath.Reflect(o.X, o.W, width, wd.Direction.X)
	o.Y, wd.Direction.Y = gamemath.Reflect(o.Y, o.H, height, wd.Direction.Y)
}
