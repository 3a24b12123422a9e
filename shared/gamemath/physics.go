package gamemath

import (
	gomath "math"

	"github.com/yohamta/donburi/features/math"
)

// MoveTowards moves current toward target by at most maxDelta.
func MoveTowards(current, target, maxDelta float64) float64 {
	if gomath.Abs(target-current) <= maxDelta {
		return target
	}
	if target > current {
		return current + maxDelta
	}
	return current - maxDelta
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// ClampMagnitude scales v down so its length does not exceed max.
func ClampMagnitude(v math.Vec2, max float64) math.Vec2 {
	l := gomath.Hypot(v.X, v.Y)
	if l <= max || l == 0 {
		return v
	}
	s := max / l
	return math.Vec2{X: v.X * s, Y: v.Y * s}
}

// Length returns the euclidean length of v.
func Length(v math.Vec2) float64 {
	return gomath.Hypot(v.X, v.Y)
}

// Sign returns -1 for negative values and 1 otherwise.
func Sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	return 1
}

// Rect is an axis-aligned box with its origin at the bottom-left corner.
type Rect struct {
	X, Y, W, H float64
}

// Overlaps reports whether two boxes share a region of positive area.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W &&
		r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Grow returns r expanded by d on every side.
func (r Rect) Grow(d float64) Rect {
	return Rect{X: r.X - d, Y: r.Y - d, W: r.W + 2*d, H: r.H + 2*d}
}

// Union returns the smallest box containing both r and o.
func (r Rect) Union(o Rect) Rect {
	minX := gomath.Min(r.X, o.X)
	minY := gomath.Min(r.Y, o.Y)
	maxX := gomath.Max(r.X+r.W, o.X+o.W)
	maxY := gomath.Max(r.Y+r.H, o.Y+o.H)
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// Center returns the midpoint of r.
func (r Rect) Center() math.Vec2 {
	return math.Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}
