package vmath

import "math"

// Vec2 is a 2D vector with float64 components
type Vec2 struct {
	X, Y float64
}

// Common direction vectors
var (
	Vec2Zero  = Vec2{0, 0}
	Vec2One   = Vec2{1, 1}
	Vec2Up    = Vec2{0, 1}
	Vec2Down  = Vec2{0, -1}
	Vec2Left  = Vec2{-1, 0}
	Vec2Right = Vec2{1, 0}
)

func (a Vec2) Add(b Vec2) Vec2 { return Vec2{a.X + b.X, a.Y + b.Y} }

func (a Vec2) Sub(b Vec2) Vec2 { return Vec2{a.X - b.X, a.Y - b.Y} }

func (a Vec2) Scale(s float64) Vec2 { return Vec2{a.X * s, a.Y * s} }

func (a Vec2) Div(s float64) Vec2 { return Vec2{a.X / s, a.Y / s} }

// Length returns the Euclidean magnitude
func (a Vec2) Length() float64 { return math.Hypot(a.X, a.Y) }

// LengthSq returns squared magnitude without the sqrt
func (a Vec2) LengthSq() float64 { return a.X*a.X + a.Y*a.Y }

// Normalize returns the unit vector, zero-safe
func (a Vec2) Normalize() Vec2 {
	l := a.Length()
	if l == 0 {
		return Vec2Zero
	}
	return Vec2{a.X / l, a.Y / l}
}

func (a Vec2) Dot(b Vec2) float64 { return a.X*b.X + a.Y*b.Y }

func (a Vec2) Distance(b Vec2) float64 { return a.Sub(b).Length() }

func (a Vec2) DistanceSq(b Vec2) float64 { return a.Sub(b).LengthSq() }

// Lerp interpolates from a to b; t is clamped to [0,1]
func (a Vec2) Lerp(b Vec2, t float64) Vec2 {
	t = Clamp(t, 0, 1)
	return Vec2{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
	}
}

// Rotate returns the vector rotated by angle radians counter-clockwise
func (a Vec2) Rotate(angle float64) Vec2 {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Vec2{
		X: a.X*cos - a.Y*sin,
		Y: a.X*sin + a.Y*cos,
	}
}

// Angle returns the heading in radians
func (a Vec2) Angle() float64 { return math.Atan2(a.Y, a.X) }

// Reflect mirrors the vector off a surface with the given unit normal:
// v' = v - 2*dot(v, n)*n
func (a Vec2) Reflect(normal Vec2) Vec2 {
	return a.Sub(normal.Scale(2 * a.Dot(normal)))
}

// Perpendicular returns the vector rotated 90° counter-clockwise
func (a Vec2) Perpendicular() Vec2 { return Vec2{-a.Y, a.X} }
