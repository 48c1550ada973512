package physics

import (
	"math"
	"testing"
)

func TestAABBIntersects(t *testing.T) {
	a := NewAABB(0, 0, 10, 10)
	b := NewAABB(5, 5, 10, 10)
	c := NewAABB(20, 20, 5, 5)

	if !a.Intersects(b) {
		t.Error("overlapping boxes should intersect")
	}
	if a.Intersects(c) {
		t.Error("distant boxes should not intersect")
	}
	// Touching edges count as intersecting
	d := NewAABB(10, 0, 5, 5)
	if !a.Intersects(d) {
		t.Error("edge-touching boxes should intersect")
	}
}

func TestAABBContainsPoint(t *testing.T) {
	box := NewAABB(0, 0, 10, 10)
	if !box.ContainsPoint(5, 5) {
		t.Error("interior point should be contained")
	}
	if !box.ContainsPoint(0, 0) || !box.ContainsPoint(10, 10) {
		t.Error("boundary points should be contained")
	}
	if box.ContainsPoint(10.1, 5) {
		t.Error("exterior point should not be contained")
	}
}

func TestCircleVsCircle(t *testing.T) {
	d := NewDetector()
	if !d.CircleVsCircle(0, 0, 5, 8, 0, 5) {
		t.Error("overlapping circles should intersect")
	}
	// Touching circles (distance == radius sum) count
	if !d.CircleVsCircle(0, 0, 5, 10, 0, 5) {
		t.Error("touching circles should intersect")
	}
	if d.CircleVsCircle(0, 0, 1, 10, 0, 1) {
		t.Error("distant circles should not intersect")
	}
}

func TestCircleVsAABB(t *testing.T) {
	d := NewDetector()
	box := NewAABB(0, 0, 10, 10)
	if !d.CircleVsAABB(5, 5, 1, box) {
		t.Error("circle inside box should intersect")
	}
	if !d.CircleVsAABB(12, 5, 2.5, box) {
		t.Error("circle overlapping right edge should intersect")
	}
	if d.CircleVsAABB(15, 15, 1, box) {
		t.Error("distant circle should not intersect")
	}
	// Corner: closest point (10,10), distance sqrt(2) vs radius
	if d.CircleVsAABB(11, 11, 1, box) {
		t.Error("circle short of the corner should not intersect")
	}
	if !d.CircleVsAABB(11, 11, 1.5, box) {
		t.Error("circle reaching the corner should intersect")
	}
}

func TestRayVsAABBHit(t *testing.T) {
	d := NewDetector()
	box := NewAABB(5, -1, 2, 2)

	dist, ok := d.RayVsAABB(0, 0, 1, 0, box)
	if !ok {
		t.Fatal("ray toward box should hit")
	}
	if math.Abs(dist-5) > 1e-9 {
		t.Errorf("hit distance: got %v, want 5", dist)
	}

	// Same origin, reversed direction: box is behind the ray
	if _, ok := d.RayVsAABB(0, 0, -1, 0, box); ok {
		t.Error("ray away from box should miss")
	}
}

func TestRayVsAABBZeroComponent(t *testing.T) {
	// A zero direction component divides to ±Inf; the slab method
	// must tolerate it, not error
	d := NewDetector()
	box := NewAABB(-1, 5, 2, 2)

	dist, ok := d.RayVsAABB(0, 0, 0, 1, box)
	if !ok {
		t.Fatal("vertical ray with zero X direction should hit")
	}
	if math.Abs(dist-5) > 1e-9 {
		t.Errorf("hit distance: got %v, want 5", dist)
	}

	// Shifted so the X slab excludes the origin: clean miss
	missBox := NewAABB(3, 5, 2, 2)
	if _, ok := d.RayVsAABB(0, 0, 0, 1, missBox); ok {
		t.Error("vertical ray left of box should miss")
	}
}

func TestRayVsAABBGrazingFace(t *testing.T) {
	// Origin sitting exactly on a slab face while the matching
	// direction component is zero makes (face-origin)*Inf produce
	// 0*Inf = NaN. The result must be a clean miss, never a NaN hit
	// distance.
	d := NewDetector()

	cases := []struct {
		name         string
		x, y, dx, dy float64
		box          AABB
	}{
		{"on left face, sliding up", 0, 0, 0, 1, NewAABB(0, 5, 2, 2)},
		{"on right face, sliding up", 2, 0, 0, 1, NewAABB(0, 5, 2, 2)},
		{"on bottom face, sliding right", 0, 5, 1, 0, NewAABB(5, 5, 2, 2)},
		{"on top face, sliding right", 0, 7, 1, 0, NewAABB(5, 5, 2, 2)},
	}
	for _, tc := range cases {
		dist, ok := d.RayVsAABB(tc.x, tc.y, tc.dx, tc.dy, tc.box)
		if ok {
			t.Errorf("%s: grazing ray reported a hit at %v", tc.name, dist)
		}
		if math.IsNaN(dist) {
			t.Errorf("%s: distance is NaN", tc.name)
		}
	}
}

func TestRayVsAABBOriginInside(t *testing.T) {
	d := NewDetector()
	box := NewAABB(-5, -5, 10, 10)

	dist, ok := d.RayVsAABB(0, 0, 1, 0, box)
	if !ok {
		t.Fatal("ray from inside should hit")
	}
	if math.Abs(dist-5) > 1e-9 {
		t.Errorf("exit distance: got %v, want 5", dist)
	}
}

func TestRayVsAABBDiagonal(t *testing.T) {
	d := NewDetector()
	box := NewAABB(4, 4, 2, 2)

	dist, ok := d.RayVsAABB(0, 0, 1, 1, box)
	if !ok {
		t.Fatal("diagonal ray should hit")
	}
	// Entry at (4,4), parametric distance 4 along an unnormalized
	// (1,1) direction
	if math.Abs(dist-4) > 1e-9 {
		t.Errorf("hit distance: got %v, want 4", dist)
	}
}
