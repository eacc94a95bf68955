package components

import (
	"github.com/automoto/chargebots/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ChargeBarData tracks an entity's battery and where its indicator is drawn.
// Charge always stays within [0, Max].
type ChargeBarData struct {
	Charge float64
	Max    float64

	// Display state, refreshed by Update.
	Level   int
	X, Y    float64 // top-left of the bar
	W, H    float64
	Visible bool
}

// NewChargeBar returns a bar holding start charge, clamped to [0, max].
// A negative start means "full".
func NewChargeBar(max, start float64) ChargeBarData {
	if start < 0 {
		start = max
	}
	return ChargeBarData{
		Charge: gamemath.Clamp(start, 0, max),
		Max:    max,
	}
}

// AddCharge adds x, saturating at Max.
func (c *ChargeBarData) AddCharge(x float64) {
	c.Charge = gamemath.AddCharge(c.Charge, x, c.Max)
}

// SubtractCharge removes x, saturating at 0.
func (c *ChargeBarData) SubtractCharge(x float64) {
	c.Charge = gamemath.SubtractCharge(c.Charge, x)
}

// Empty reports whether the charge has run out.
func (c *ChargeBarData) Empty() bool {
	return c.Charge == 0
}

// Update recomputes the display level and places the bar so its bottom-center
// sits offset pixels above the owner's top-center. The owner is only read.
func (c *ChargeBarData) Update(owner *resolv.Object, levels int, offset float64) {
	c.Level = gamemath.ChargeLevel(c.Charge, c.Max, levels)
	c.X = owner.X + owner.W/2 - c.W/2
	c.Y = owner.Y - offset - c.H
}

var ChargeBar = donburi.NewComponentType[ChargeBarData]()
