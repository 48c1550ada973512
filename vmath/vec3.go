package vmath

import "math"

// Vec3 is a 3D vector with float64 components
type Vec3 struct {
	X, Y, Z float64
}

var (
	Vec3Zero    = Vec3{0, 0, 0}
	Vec3One     = Vec3{1, 1, 1}
	Vec3Up      = Vec3{0, 1, 0}
	Vec3Down    = Vec3{0, -1, 0}
	Vec3Left    = Vec3{-1, 0, 0}
	Vec3Right   = Vec3{1, 0, 0}
	Vec3Forward = Vec3{0, 0, 1}
	Vec3Back    = Vec3{0, 0, -1}
)

func (a Vec3) Add(b Vec3) Vec3 { return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }

func (a Vec3) Sub(b Vec3) Vec3 { return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }

func (a Vec3) Scale(s float64) Vec3 { return Vec3{a.X * s, a.Y * s, a.Z * s} }

func (a Vec3) Div(s float64) Vec3 { return Vec3{a.X / s, a.Y / s, a.Z / s} }

func (a Vec3) Length() float64 { return math.Sqrt(a.LengthSq()) }

func (a Vec3) LengthSq() float64 { return a.X*a.X + a.Y*a.Y + a.Z*a.Z }

// Normalize returns the unit vector, zero-safe
func (a Vec3) Normalize() Vec3 {
	l := a.Length()
	if l == 0 {
		return Vec3Zero
	}
	return Vec3{a.X / l, a.Y / l, a.Z / l}
}

func (a Vec3) Dot(b Vec3) float64 { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }

// Cross returns the right-handed cross product
func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

func (a Vec3) Distance(b Vec3) float64 { return a.Sub(b).Length() }

func (a Vec3) DistanceSq(b Vec3) float64 { return a.Sub(b).LengthSq() }

// Lerp interpolates from a to b; t is clamped to [0,1]
func (a Vec3) Lerp(b Vec3, t float64) Vec3 {
	t = Clamp(t, 0, 1)
	return Vec3{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
		Z: a.Z + (b.Z-a.Z)*t,
	}
}

// Reflect mirrors the vector off a surface with the given unit normal
func (a Vec3) Reflect(normal Vec3) Vec3 {
	return a.Sub(normal.Scale(2 * a.Dot(normal)))
}
