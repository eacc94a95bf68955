package simulation

import (
	"github.com/automoto/chargebots/components"
	"github.com/automoto/chargebots/shared/gamemath"
	"github.com/solarlune/resolv"
)

// updatePatrol moves along the current leg and flips legs every Duration
// seconds. Patrols ignore the world bounds and may walk off screen.
func updatePatrol(p *components.PatrolData, o *resolv.Object, speed, spf float64) {
	v := p.Vector()
	step := gamemath.Step(speed, spf)
	o.X += v.X * step
	o.Y += v.Y * step

	// Half a frame of slack so float accumulation of spf still flips on the
	// frame where Elapsed reaches Duration.
	p.Elapsed += spf
	if p.Elapsed >= p.Duration-spf/2 {
		p.Elapsed = 0
		p.State = p.State.Next()
	}
}
