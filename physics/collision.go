package physics

import "math"

// Detector answers pairwise collision queries over value-type shapes.
// It carries no state today; it is the seam where spatial partitioning
// (quadtree, grid) would live.
type Detector struct{}

// NewDetector creates a stateless collision detector
func NewDetector() *Detector {
	return &Detector{}
}

// AABBVsAABB reports whether two boxes overlap
func (d *Detector) AABBVsAABB(a, b AABB) bool {
	return a.Intersects(b)
}

// PointInAABB reports whether a point lies inside the box, inclusive
func (d *Detector) PointInAABB(px, py float64, box AABB) bool {
	return box.ContainsPoint(px, py)
}

// CircleVsCircle reports intersection of two circles by comparing
// squared center distance against the squared radius sum
func (d *Detector) CircleVsCircle(x1, y1, r1, x2, y2, r2 float64) bool {
	dx := x2 - x1
	dy := y2 - y1
	radiusSum := r1 + r2
	return dx*dx+dy*dy <= radiusSum*radiusSum
}

// CircleVsAABB clamps the circle center to the box extents to find
// the nearest box point, then compares squared distances
func (d *Detector) CircleVsAABB(cx, cy, radius float64, box AABB) bool {
	closestX := math.Min(math.Max(cx, box.MinX()), box.MaxX())
	closestY := math.Min(math.Max(cy, box.MinY()), box.MaxY())
	dx := cx - closestX
	dy := cy - closestY
	return dx*dx+dy*dy <= radius*radius
}

// RayVsAABB intersects a ray against a box using the slab method and
// returns the nearest non-negative hit distance along the ray.
//
// Zero direction components are not an error: the 1/d divisions
// produce ±Inf, which the entry/exit comparisons tolerate per IEEE
// semantics. Callers sweeping many rays rely on this. A ray whose
// origin lies exactly on the face it slides along reports a miss.
func (d *Detector) RayVsAABB(rayX, rayY, rayDX, rayDY float64, box AABB) (float64, bool) {
	invDX := 1 / rayDX
	invDY := 1 / rayDY

	t1 := (box.MinX() - rayX) * invDX
	t2 := (box.MaxX() - rayX) * invDX
	t3 := (box.MinY() - rayY) * invDY
	t4 := (box.MaxY() - rayY) * invDY

	tmin := math.Max(math.Min(t1, t2), math.Min(t3, t4))
	tmax := math.Min(math.Max(t1, t2), math.Max(t3, t4))

	// Origin exactly on a slab face with a zero direction component
	// gives 0*Inf = NaN in the products above; such a graze is a miss
	if math.IsNaN(tmin) || math.IsNaN(tmax) {
		return 0, false
	}
	// Box is entirely behind the ray origin
	if tmax < 0 {
		return 0, false
	}
	// Slab intervals do not overlap
	if tmin > tmax {
		return 0, false
	}
	// Origin inside the box: nearest hit is the exit
	if tmin < 0 {
		return tmax, true
	}
	return tmin, true
}
