package gamemath

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampSpan(t *testing.T) {
	tests := []struct {
		name             string
		pos, size, limit float64
		want             float64
	}{
		{"inside", 10, 20, 100, 10},
		{"past left", -5, 20, 100, 0},
		{"past right", 90, 20, 100, 80},
		{"exactly at right", 80, 20, 100, 80},
		{"larger than limit", 10, 200, 100, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClampSpan(tt.pos, tt.size, tt.limit))
		})
	}
}

func TestReflect(t *testing.T) {
	tests := []struct {
		name             string
		pos, dir         float64
		wantPos, wantDir float64
	}{
		{"free", 50, 1, 50, 1},
		{"crossed left moving left", -3, -Diagonal, 0, Diagonal},
		{"at left moving right", 0, 1, 0, 1},
		{"crossed right moving right", 85, 1, 80, -1},
		{"past right moving left", 85, -1, 80, -1},
		{"zero component", -2, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, dir := Reflect(tt.pos, 20, 100, tt.dir)
			assert.Equal(t, tt.wantPos, pos)
			assert.Equal(t, tt.wantDir, dir)
		})
	}
}

func TestDirections(t *testing.T) {
	for _, d := range UnitDirections {
		assert.InDelta(t, 1.0, d.Length(), 1e-12)
	}
	for i, d := range GridDirections {
		assert.InDelta(t, UnitDirections[i].X, d.Normalized().X, 1e-12)
		assert.InDelta(t, UnitDirections[i].Y, d.Normalized().Y, 1e-12)
	}

	rng := rand.New(rand.NewSource(7))
	seen := map[Vector]bool{}
	for i := 0; i < 500; i++ {
		seen[RandomUnitDirection(rng)] = true
	}
	assert.Len(t, seen, 8)
}

func TestVectorNeg(t *testing.T) {
	v := Vector{X: 1, Y: -1}
	assert.Equal(t, Vector{X: -1, Y: 1}, v.Neg())
	assert.Equal(t, v, v.Neg().Neg())
	assert.Equal(t, Vector{}, Vector{}.Normalized())
}

func TestChargeArithmetic(t *testing.T) {
	assert.Equal(t, 30.0, AddCharge(25, 10, 30))
	assert.Equal(t, 0.0, SubtractCharge(2, 5))
	assert.Equal(t, 0.0, SubtractCharge(1e-3, 1e-3-1e-12))
	assert.InDelta(t, 1.5, SubtractCharge(2, 0.5), 1e-12)
}

func TestChargeLevel(t *testing.T) {
	tests := []struct {
		charge, max float64
		want        int
	}{
		{0, 30, 0},
		{30, 30, 30},
		{15, 30, 15},
		{29.99, 30, 30},
		{0.5, 50, 0},
		{50, 50, 30},
		{25, 50, 15},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ChargeLevel(tt.charge, tt.max, 31), "charge %v/%v", tt.charge, tt.max)
	}
	assert.Equal(t, 0, ChargeLevel(5, 0, 31))
	assert.Equal(t, 30, ChargeLevel(45, 30, 31))
}

func TestVectorScale(t *testing.T) {
	assert.Equal(t, Vector{X: 3, Y: -6}, Vector{X: 1, Y: -2}.Scale(3))
	assert.InDelta(t, 1.0, Vector{X: 3, Y: 4}.Normalized().Length(), 1e-12)
}
