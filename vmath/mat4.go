package vmath

import "math"

// Mat4 is a 4x4 matrix stored flat in OpenGL column-major order:
// translation occupies elements 12..14. Row/column accessors index
// the flat array as data[row*4+col], matching the upload layout used
// by the render backend.
type Mat4 struct {
	data [16]float64
}

// Mat4Identity returns the identity matrix
func Mat4Identity() Mat4 {
	return Mat4{data: [16]float64{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}}
}

// Mat4Translation returns a translation matrix
func Mat4Translation(x, y, z float64) Mat4 {
	return Mat4{data: [16]float64{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		x, y, z, 1,
	}}
}

// Mat4Scaling returns a non-uniform scale matrix
func Mat4Scaling(x, y, z float64) Mat4 {
	return Mat4{data: [16]float64{
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	}}
}

// Mat4RotationZ returns a rotation around the Z axis by angle radians
func Mat4RotationZ(angle float64) Mat4 {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Mat4{data: [16]float64{
		cos, sin, 0, 0,
		-sin, cos, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}}
}

// Mat4Orthographic returns an orthographic projection mapping the box
// [left,right]x[bottom,top]x[near,far] to clip space
func Mat4Orthographic(left, right, bottom, top, near, far float64) Mat4 {
	width := right - left
	height := top - bottom
	depth := far - near
	return Mat4{data: [16]float64{
		2 / width, 0, 0, 0,
		0, 2 / height, 0, 0,
		0, 0, -2 / depth, 0,
		-(right + left) / width, -(top + bottom) / height, -(far + near) / depth, 1,
	}}
}

// Mat4Perspective returns a perspective projection. fovY is the vertical
// field of view in radians
func Mat4Perspective(fovY, aspect, near, far float64) Mat4 {
	f := 1 / math.Tan(fovY/2)
	depth := near - far
	return Mat4{data: [16]float64{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (far + near) / depth, -1,
		0, 0, (2 * far * near) / depth, 0,
	}}
}

// Mat4LookAt returns a right-handed view matrix for a camera at eye
// looking toward center with the given up vector
func Mat4LookAt(eye, center, up Vec3) Mat4 {
	f := center.Sub(eye).Normalize()
	s := f.Cross(up).Normalize()
	u := s.Cross(f)
	return Mat4{data: [16]float64{
		s.X, u.X, -f.X, 0,
		s.Y, u.Y, -f.Y, 0,
		s.Z, u.Z, -f.Z, 0,
		-s.Dot(eye), -u.Dot(eye), f.Dot(eye), 1,
	}}
}

// Get returns the element at (row, col)
func (m Mat4) Get(row, col int) float64 { return m.data[row*4+col] }

// Set writes the element at (row, col)
func (m *Mat4) Set(row, col int, v float64) { m.data[row*4+col] = v }

// Data returns the flat element array in upload order
func (m Mat4) Data() [16]float64 { return m.data }

// Mul returns the matrix product m * other
func (m Mat4) Mul(other Mat4) Mat4 {
	var result Mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			sum := 0.0
			for k := 0; k < 4; k++ {
				sum += m.Get(row, k) * other.Get(k, col)
			}
			result.Set(row, col, sum)
		}
	}
	return result
}

// Transpose returns the transposed matrix
func (m Mat4) Transpose() Mat4 {
	var result Mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			result.Set(col, row, m.Get(row, col))
		}
	}
	return result
}

// TransformPoint applies the matrix to a point (w=1), dividing by the
// resulting w for perspective projections
func (m Mat4) TransformPoint(v Vec3) Vec3 {
	x := v.X*m.Get(0, 0) + v.Y*m.Get(1, 0) + v.Z*m.Get(2, 0) + m.Get(3, 0)
	y := v.X*m.Get(0, 1) + v.Y*m.Get(1, 1) + v.Z*m.Get(2, 1) + m.Get(3, 1)
	z := v.X*m.Get(0, 2) + v.Y*m.Get(1, 2) + v.Z*m.Get(2, 2) + m.Get(3, 2)
	w := v.X*m.Get(0, 3) + v.Y*m.Get(1, 3) + v.Z*m.Get(2, 3) + m.Get(3, 3)
	if w != 0 && w != 1 {
		return Vec3{x / w, y / w, z / w}
	}
	return Vec3{x, y, z}
}
