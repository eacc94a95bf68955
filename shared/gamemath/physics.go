// Package gamemath holds the pure movement and resource arithmetic shared by
// the simulation. It has no dependencies on ebitengine or donburi.
package gamemath

// Clamp clamps v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Step returns the distance covered in one frame at speed pixels/second.
func Step(speed, spf float64) float64 {
	return speed * spf
}

// ClampSpan moves the span [pos, pos+size) so it lies inside [0, limit].
// Spans larger than limit are pinned to 0.
func ClampSpan(pos, size, limit float64) float64 {
	if pos+size > limit {
		pos = limit - size
	}
	if pos < 0 {
		pos = 0
	}
	return pos
}

// Reflect flips dir when the span [pos, pos+size) has reached an edge of
// [0, limit] and dir still points toward that edge. The returned position is
// pulled back inside the bounds. A component moving away from the edge is
// left untouched.
func Reflect(pos, size, limit, dir float64) (newPos, newDir float64) {
	switch {
	case pos <= 0 && dir < 0:
		return 0, -dir
	case pos+size >= limit && dir > 0:
		return limit - size, -dir
	}
	return ClampSpan(pos, size, limit), dir
}
