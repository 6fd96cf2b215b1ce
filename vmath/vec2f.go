package vmath

import (
	"math"
)

// Vec2F is a float64 2D vector in world units
// Gameplay ignores depth, so positions, offsets and directions all use it
type Vec2F struct {
	X, Y float64
}

func V2FAdd(a, b Vec2F) Vec2F {
	return Vec2F{a.X + b.X, a.Y + b.Y}
}

func V2FSub(a, b Vec2F) Vec2F {
	return Vec2F{a.X - b.X, a.Y - b.Y}
}

func V2FScale(v Vec2F, s float64) Vec2F {
	return Vec2F{v.X * s, v.Y * s}
}

func V2FDot(a, b Vec2F) float64 {
	return a.X*b.X + a.Y*b.Y
}

func V2FMagSq(v Vec2F) float64 {
	return v.X*v.X + v.Y*v.Y
}

func V2FMag(v Vec2F) float64 {
	return math.Sqrt(V2FMagSq(v))
}

// V2FNormalize returns the unit vector, zero vector stays zero
func V2FNormalize(v Vec2F) Vec2F {
	mag := V2FMag(v)
	if mag == 0 {
		return Vec2F{}
	}
	inv := 1.0 / mag
	return Vec2F{v.X * inv, v.Y * inv}
}

// IsZero reports whether both components are exactly zero
func (v Vec2F) IsZero() bool {
	return v.X == 0 && v.Y == 0
}
