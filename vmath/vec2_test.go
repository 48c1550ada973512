package vmath

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestVec2Arithmetic(t *testing.T) {
	a := Vec2{3, 4}
	b := Vec2{1, -2}

	if got := a.Add(b); got != (Vec2{4, 2}) {
		t.Errorf("Add: got %v", got)
	}
	if got := a.Sub(b); got != (Vec2{2, 6}) {
		t.Errorf("Sub: got %v", got)
	}
	if got := a.Scale(2); got != (Vec2{6, 8}) {
		t.Errorf("Scale: got %v", got)
	}
	if got := a.Dot(b); got != -5 {
		t.Errorf("Dot: got %v", got)
	}
}

func TestVec2Length(t *testing.T) {
	v := Vec2{3, 4}
	if got := v.Length(); !almostEqual(got, 5) {
		t.Errorf("Length: got %v, want 5", got)
	}
	if got := v.LengthSq(); !almostEqual(got, 25) {
		t.Errorf("LengthSq: got %v, want 25", got)
	}
}

func TestVec2NormalizeZeroSafe(t *testing.T) {
	if got := (Vec2{0, 0}).Normalize(); got != Vec2Zero {
		t.Errorf("Normalize of zero vector: got %v, want zero", got)
	}
	n := Vec2{10, 0}.Normalize()
	if !almostEqual(n.X, 1) || !almostEqual(n.Y, 0) {
		t.Errorf("Normalize: got %v", n)
	}
}

func TestVec2Rotate(t *testing.T) {
	v := Vec2Right.Rotate(math.Pi / 2)
	if !almostEqual(v.X, 0) || !almostEqual(v.Y, 1) {
		t.Errorf("Rotate 90°: got %v, want (0,1)", v)
	}
}

func TestVec2Reflect(t *testing.T) {
	// Falling diagonally onto a floor with upward normal
	v := Vec2{1, -1}.Reflect(Vec2Up)
	if !almostEqual(v.X, 1) || !almostEqual(v.Y, 1) {
		t.Errorf("Reflect: got %v, want (1,1)", v)
	}
}

func TestVec2LerpClamps(t *testing.T) {
	a := Vec2{0, 0}
	b := Vec2{10, 10}
	if got := a.Lerp(b, 0.5); got != (Vec2{5, 5}) {
		t.Errorf("Lerp mid: got %v", got)
	}
	if got := a.Lerp(b, 2); got != b {
		t.Errorf("Lerp t>1 should clamp to b, got %v", got)
	}
	if got := a.Lerp(b, -1); got != a {
		t.Errorf("Lerp t<0 should clamp to a, got %v", got)
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 1); got != 1 {
		t.Errorf("Clamp above: got %v", got)
	}
	if got := Clamp(-5, 0, 1); got != 0 {
		t.Errorf("Clamp below: got %v", got)
	}
	if got := Clamp(0.5, 0, 1); got != 0.5 {
		t.Errorf("Clamp inside: got %v", got)
	}
}
