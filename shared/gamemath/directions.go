package gamemath

import (
	"math"
	"math/rand"
)

// Diagonal is the per-axis component of a unit diagonal step.
var Diagonal = math.Sqrt2 / 2

// GridDirections are the 8 compass directions with components in {-1, 0, 1}.
// Diagonals are not normalized.
var GridDirections = [8]Vector{
	{X: 1, Y: 0},
	{X: -1, Y: 0},
	{X: 0, Y: 1},
	{X: 0, Y: -1},
	{X: 1, Y: 1},
	{X: 1, Y: -1},
	{X: -1, Y: 1},
	{X: -1, Y: -1},
}

// UnitDirections are GridDirections with the diagonals normalized.
var UnitDirections = [8]Vector{
	{X: 1, Y: 0},
	{X: -1, Y: 0},
	{X: 0, Y: 1},
	{X: 0, Y: -1},
	{X: Diagonal, Y: Diagonal},
	{X: Diagonal, Y: -Diagonal},
	{X: -Diagonal, Y: Diagonal},
	{X: -Diagonal, Y: -Diagonal},
}

// RandomUnitDirection picks one of UnitDirections uniformly.
func RandomUnitDirection(rng *rand.Rand) Vector {
	return UnitDirections[rng.Intn(len(UnitDirections))]
}

// RandomGridDirection picks one of GridDirections uniformly.
func RandomGridDirection(rng *rand.Rand) Vector {
	return GridDirections[rng.Intn(len(GridDirections))]
}
