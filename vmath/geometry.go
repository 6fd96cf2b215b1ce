package vmath

import (
	"math"
)

// triangleEpsilon is the barycentric tolerance for boundary points
// and the relative area threshold below which a triangle counts as degenerate
const triangleEpsilon = 1e-9

// Radians converts degrees to radians
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// ScaledVectorTo returns the direction from -> to scaled to length scale
// Coincident points yield the zero vector instead of NaN
func ScaledVectorTo(from, to Vec2F, scale float64) Vec2F {
	return V2FScale(V2FNormalize(V2FSub(to, from)), scale)
}

// RotateV2F rotates v by angle radians, counter-clockwise positive
func RotateV2F(v Vec2F, angle float64) Vec2F {
	sin, cos := math.Sincos(angle)
	return Vec2F{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// InTriangle reports whether p lies inside or on the boundary of triangle abc
// Degenerate (near zero area) triangles contain nothing
func InTriangle(p, a, b, c Vec2F) bool {
	v0 := V2FSub(c, a)
	v1 := V2FSub(b, a)
	v2 := V2FSub(p, a)

	dot00 := V2FDot(v0, v0)
	dot01 := V2FDot(v0, v1)
	dot02 := V2FDot(v0, v2)
	dot11 := V2FDot(v1, v1)
	dot12 := V2FDot(v1, v2)

	// denom = |v0|²|v1|²sin²θ, compared relative to the edge lengths
	denom := dot00*dot11 - dot01*dot01
	if !(denom > triangleEpsilon*dot00*dot11) {
		return false
	}

	inv := 1.0 / denom
	u := (dot11*dot02 - dot01*dot12) * inv
	v := (dot00*dot12 - dot01*dot02) * inv

	return u >= -triangleEpsilon && v >= -triangleEpsilon && u+v <= 1+triangleEpsilon
}

// AABBOverlap reports strict overlap of two axis-aligned boxes given centers and half extents
// Boxes that only touch along an edge do not overlap
func AABBOverlap(a, aHalf, b, bHalf Vec2F) bool {
	return math.Abs(a.X-b.X) < aHalf.X+bHalf.X &&
		math.Abs(a.Y-b.Y) < aHalf.Y+bHalf.Y
}
