package vmath

import (
	"math"
	"testing"
)

func mat4AlmostEqual(a, b Mat4) bool {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if math.Abs(a.Get(i, j)-b.Get(i, j)) > 1e-9 {
				return false
			}
		}
	}
	return true
}

func TestMat4IdentityMul(t *testing.T) {
	m := Mat4Translation(2, 3, 4)
	if got := m.Mul(Mat4Identity()); !mat4AlmostEqual(got, m) {
		t.Error("M * I should equal M")
	}
	if got := Mat4Identity().Mul(m); !mat4AlmostEqual(got, m) {
		t.Error("I * M should equal M")
	}
}

func TestMat4TranslationPoint(t *testing.T) {
	m := Mat4Translation(5, -2, 1)
	p := m.TransformPoint(Vec3{1, 1, 1})
	want := Vec3{6, -1, 2}
	if p.Distance(want) > 1e-9 {
		t.Errorf("translated point: got %v, want %v", p, want)
	}
}

func TestMat4ScalingPoint(t *testing.T) {
	m := Mat4Scaling(2, 3, 1)
	p := m.TransformPoint(Vec3{1, 1, 1})
	want := Vec3{2, 3, 1}
	if p.Distance(want) > 1e-9 {
		t.Errorf("scaled point: got %v, want %v", p, want)
	}
}

func TestMat4RotationZPoint(t *testing.T) {
	m := Mat4RotationZ(math.Pi / 2)
	p := m.TransformPoint(Vec3{1, 0, 0})
	want := Vec3{0, 1, 0}
	if p.Distance(want) > 1e-9 {
		t.Errorf("rotated point: got %v, want %v", p, want)
	}
}

func TestMat4OrthographicCorners(t *testing.T) {
	// A 0..800 x 0..600 viewport maps to clip space [-1,1]
	m := Mat4Orthographic(0, 800, 0, 600, -1, 1)

	bl := m.TransformPoint(Vec3{0, 0, 0})
	if math.Abs(bl.X+1) > 1e-9 || math.Abs(bl.Y+1) > 1e-9 {
		t.Errorf("bottom-left corner: got %v, want (-1,-1)", bl)
	}
	tr := m.TransformPoint(Vec3{800, 600, 0})
	if math.Abs(tr.X-1) > 1e-9 || math.Abs(tr.Y-1) > 1e-9 {
		t.Errorf("top-right corner: got %v, want (1,1)", tr)
	}
	c := m.TransformPoint(Vec3{400, 300, 0})
	if math.Abs(c.X) > 1e-9 || math.Abs(c.Y) > 1e-9 {
		t.Errorf("center: got %v, want (0,0)", c)
	}
}

func TestMat4Transpose(t *testing.T) {
	m := Mat4Translation(1, 2, 3)
	tt := m.Transpose()
	if tt.Get(0, 3) != 1 || tt.Get(1, 3) != 2 || tt.Get(2, 3) != 3 {
		t.Errorf("transpose should move translation to the last column: %v", tt.Data())
	}
	if !mat4AlmostEqual(tt.Transpose(), m) {
		t.Error("double transpose should restore the matrix")
	}
}

func TestMat4LookAtAtOrigin(t *testing.T) {
	// Camera at origin looking down -Z with +Y up is the identity view
	m := Mat4LookAt(Vec3Zero, Vec3{0, 0, -1}, Vec3Up)
	if !mat4AlmostEqual(m, Mat4Identity()) {
		t.Errorf("look-at from origin down -Z: got %v", m.Data())
	}
}

func TestVec3Cross(t *testing.T) {
	got := Vec3Right.Cross(Vec3Up)
	if got.Distance(Vec3Forward) > 1e-9 {
		t.Errorf("right x up: got %v, want forward", got)
	}
}
