package components

import (
	"testing"

	cfg "github.com/automoto/chargebots/config"
	"github.com/solarlune/resolv"
	"github.com/stretchr/testify/assert"
)

func TestChargeBarClamps(t *testing.T) {
	bar := NewChargeBar(30, -1)
	assert.Equal(t, 30.0, bar.Charge)

	bar.AddCharge(5)
	assert.Equal(t, 30.0, bar.Charge)

	bar.SubtractCharge(12.5)
	assert.Equal(t, 17.5, bar.Charge)

	bar.SubtractCharge(100)
	assert.Equal(t, 0.0, bar.Charge)
	assert.True(t, bar.Empty())

	bar.AddCharge(3)
	assert.Equal(t, 3.0, bar.Charge)

	assert.Equal(t, 30.0, NewChargeBar(30, 45).Charge)
	assert.Equal(t, 0.0, NewChargeBar(30, 0).Charge)
}

func TestChargeBarUpdate(t *testing.T) {
	owner := resolv.NewObject(100, 200, 48, 48)
	before := *owner

	bar := NewChargeBar(30, 15)
	bar.W, bar.H = 40, 6
	bar.Update(owner, 31, 4)

	assert.Equal(t, 15, bar.Level)
	assert.Equal(t, 104.0, bar.X) // 100 + 24 - 20
	assert.Equal(t, 190.0, bar.Y) // 200 - 4 - 6
	assert.Equal(t, owner.X+owner.W/2, bar.X+bar.W/2)
	assert.Equal(t, before.X, owner.X)
	assert.Equal(t, before.Y, owner.Y)

	bar.AddCharge(30)
	bar.Update(owner, 31, 4)
	assert.Equal(t, 30, bar.Level)
}

func TestPatrolStateAlternates(t *testing.T) {
	s := PatrolOut
	want := []PatrolState{PatrolBack, PatrolOut, PatrolBack, PatrolOut}
	for _, w := range want {
		s = s.Next()
		assert.Equal(t, w, s)
	}
	assert.Equal(t, "out", PatrolOut.String())
	assert.Equal(t, "back", PatrolBack.String())
}

func TestNewPatrol(t *testing.T) {
	p := NewPatrol(Vector{X: 1, Y: -1}, 2)
	assert.Equal(t, Vector{X: -1, Y: 1}, p.Back)
	assert.Equal(t, p.Out, p.Vector())
	p.State = PatrolBack
	assert.Equal(t, p.Back, p.Vector())
}

func TestInputActions(t *testing.T) {
	var in InputData
	in.Current[cfg.ActionMoveLeft] = true
	assert.Equal(t, ActionState{Pressed: true, JustPressed: true}, in.Action(cfg.ActionMoveLeft))

	in.Advance()
	assert.Equal(t, ActionState{JustReleased: true}, in.Action(cfg.ActionMoveLeft))

	in.Current[cfg.ActionMoveLeft] = true
	in.Advance()
	in.Current[cfg.ActionMoveLeft] = true
	assert.Equal(t, ActionState{Pressed: true}, in.Action(cfg.ActionMoveLeft))
}
