package physics

// AABB is an axis-aligned bounding box defined by its origin (min
// corner) and non-negative extents. Min/max/center are derived, not
// stored. Value type; zero or negative extents degrade to empty
// overlap rather than erroring.
type AABB struct {
	X, Y          float64
	Width, Height float64
}

// NewAABB constructs a box from origin and extents
func NewAABB(x, y, width, height float64) AABB {
	return AABB{X: x, Y: y, Width: width, Height: height}
}

func (a AABB) MinX() float64 { return a.X }

func (a AABB) MinY() float64 { return a.Y }

func (a AABB) MaxX() float64 { return a.X + a.Width }

func (a AABB) MaxY() float64 { return a.Y + a.Height }

func (a AABB) CenterX() float64 { return a.X + a.Width/2 }

func (a AABB) CenterY() float64 { return a.Y + a.Height/2 }

// ContainsPoint reports whether the point lies inside the box,
// boundary inclusive
func (a AABB) ContainsPoint(px, py float64) bool {
	return px >= a.MinX() && px <= a.MaxX() &&
		py >= a.MinY() && py <= a.MaxY()
}

// Intersects reports whether the boxes overlap on both axes; touching
// edges count as intersecting
func (a AABB) Intersects(b AABB) bool {
	return !(a.MaxX() < b.MinX() ||
		a.MinX() > b.MaxX() ||
		a.MaxY() < b.MinY() ||
		a.MinY() > b.MaxY())
}
