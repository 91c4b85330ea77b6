// Package geom provides the 2D vector math and collision primitives used by
// the simulation. All functions are pure; positions are pixel coordinates on
// a toroidal playfield.
package geom

import "math"

// Vec2 is a 2D vector in pixel units.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by a scalar.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Len returns the vector magnitude.
func (v Vec2) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// LenSq returns the squared magnitude. Use this when comparing distances
// to avoid the sqrt cost.
func (v Vec2) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Perp returns the vector rotated 90 degrees counter-clockwise: (-y, x).
func (v Vec2) Perp() Vec2 {
	return Vec2{X: -v.Y, Y: v.X}
}

// FromAngle converts an angle in radians to a unit direction vector.
func FromAngle(rad float64) Vec2 {
	return Vec2{X: math.Cos(rad), Y: math.Sin(rad)}
}

// Wrap reduces a position onto a w x h toroidal field. Each axis lands in
// [0, dim) for any input, including large negative coordinates (true modulo,
// not truncated remainder).
func Wrap(p Vec2, w, h float64) Vec2 {
	if w > 0 {
		p.X = math.Mod(p.X, w)
		if p.X < 0 {
			p.X += w
		}
	}
	if h > 0 {
		p.Y = math.Mod(p.Y, h)
		if p.Y < 0 {
			p.Y += h
		}
	}
	return p
}

// CirclesOverlap reports whether two circles overlap, comparing squared
// center distance against the squared radius sum. Distances are raw
// Euclidean; overlap is not tested across the toroidal seam.
func CirclesOverlap(a Vec2, ra float64, b Vec2, rb float64) bool {
	minDist := ra + rb
	return a.Sub(b).LenSq() < minDist*minDist
}

// PointInCircle reports whether point p lies strictly inside the circle at c.
func PointInCircle(p, c Vec2, radius float64) bool {
	return p.Sub(c).LenSq() < radius*radius
}
