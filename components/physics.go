package components

import "github.com/automoto/chargebots/shared/gamemath"

// Vector represents a 2D vector.
type Vector = gamemath.Vector
